// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AccelByte/extend-core-objectpool/pkg/catalog"
	"github.com/AccelByte/extend-core-objectpool/pkg/common"
	"github.com/AccelByte/extend-core-objectpool/pkg/config"
	"github.com/AccelByte/extend-core-objectpool/pkg/envelope"
	"github.com/AccelByte/extend-core-objectpool/pkg/metrics"
	"github.com/AccelByte/extend-core-objectpool/pkg/pooler"
)

// Setup builds a pool manager from the environment: it configures logrus, registers pool
// metrics on registry and initializes the pools described by POOL_DESCRIPTOR_FILE against c.
//
// Only a configuration error is fatal. Descriptor problems come back as a non-nil error next to
// a usable manager, matching pooler.Manager.Initialize.
func Setup(ctx context.Context, c *catalog.Catalog, registry *prometheus.Registry) (*pooler.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("unable to parse environment variables: %w", err)
	}

	return SetupWithConfig(ctx, cfg, c, registry)
}

// SetupWithConfig is Setup with an already loaded configuration.
func SetupWithConfig(ctx context.Context, cfg *config.Config, c *catalog.Catalog, registry *prometheus.Registry) (*pooler.Manager, error) {
	common.SetupLogger(cfg)

	scope := envelope.NewRootScope(ctx, "objectpool.Setup", "")
	defer scope.Finish()

	var poolMetrics metrics.PoolMetrics
	if registry != nil {
		poolMetrics = metrics.NewMetrics(registry)
	}
	manager := pooler.New(cfg, poolMetrics)

	descriptors, loadErr := c.Load(scope, cfg)
	initErr := manager.Initialize(scope, descriptors)
	if loadErr != nil || initErr != nil {
		scope.Log.Warn("pool manager started with descriptor errors")
		return manager, errors.Join(loadErr, initErr)
	}

	return manager, nil
}
