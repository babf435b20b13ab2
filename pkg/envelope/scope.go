// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package envelope

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/AccelByte/extend-core-objectpool/pkg/utils"
)

const (
	traceIdLogField = "traceID"
	tracerName      = "objectpool"

	PoolTagAttribute  = "objectpool.tag"
	ResolvedAttribute = "objectpool.resolved_descriptors"
)

// Scope carries the logger and trace span through startup and loader calls.
type Scope struct {
	Ctx     context.Context
	TraceID string
	span    oteltrace.Span
	Log     *logrus.Entry
}

// NewRootScope starts a root span. A missing or malformed traceID is replaced with a fresh one.
func NewRootScope(rootCtx context.Context, name string, traceID string) *Scope {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(rootCtx, name)

	if traceID == "" || len(traceID) != 32 {
		traceID = utils.GenerateUUID()
	}

	return &Scope{
		Ctx:     ctx,
		TraceID: traceID,
		span:    span,
		Log:     logrus.WithField(traceIdLogField, traceID),
	}
}

// SetLogger allows for setting a different logger than the default std logger. This is mostly useful for testing.
func (s *Scope) SetLogger(logger *logrus.Logger) {
	s.Log = logger.WithField(traceIdLogField, s.TraceID)
}

// Finish finishes current scope
func (s *Scope) Finish() {
	s.span.End()
}

// NewChildScope creates new child Scope sharing the trace ID and logger.
func (s *Scope) NewChildScope(name string) *Scope {
	tracer := s.span.TracerProvider().Tracer(tracerName)
	ctx, span := tracer.Start(s.Ctx, name)

	return &Scope{
		Ctx:     ctx,
		TraceID: s.TraceID,
		span:    span,
		Log:     s.Log,
	}
}

// SetAttributes adds attributes onto a span based on the value object type
func (s *Scope) SetAttributes(key string, value interface{}) {
	switch v := value.(type) {
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	case fmt.Stringer:
		s.span.SetAttributes(attribute.String(key, v.String()))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// RecordError marks the span as having hit err.
func (s *Scope) RecordError(err error) {
	if err != nil {
		s.span.RecordError(err)
	}
}
