// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/AccelByte/extend-core-objectpool/pkg/envelope"
)

type GomegaWithScope struct {
	TestScope *envelope.Scope
	*gomega.GomegaWithT
}

func ParallelWithGomega(t *testing.T) GomegaWithScope {
	t.Parallel()
	return WithGomega(t)
}

func WithGomega(t *testing.T) GomegaWithScope {
	scope := NewTestScope()
	t.Cleanup(scope.Finish)
	return GomegaWithScope{scope, gomega.NewGomegaWithT(t)}
}
