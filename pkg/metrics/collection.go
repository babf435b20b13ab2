// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type PoolMetrics interface {
	SetPooledInstances(tag string, count int)
	SetActiveInstances(tag string, count int)
	AddSynthesizedInstance(tag string)
	AddRejectedRelease(tag string, reason string)
}

func NewMetrics(registry *prometheus.Registry) PoolMetrics {
	return setupPrometheusMetrics(registry)
}
