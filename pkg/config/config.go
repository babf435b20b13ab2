// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/caarlos0/env"

	"github.com/AccelByte/extend-core-objectpool/pkg/models"
)

type Config struct {
	LogLevel            string  `env:"LOG_LEVEL"                  envDefault:"info" envDocs:"logrus level: trace, debug, info, warn, error"`
	LogFormat           string  `env:"LOG_FORMAT"                 envDefault:"text" envDocs:"log output format: text or json"`
	DescriptorFile      string  `env:"POOL_DESCRIPTOR_FILE"       envDefault:""     envDocs:"optional YAML file with the pool descriptor table"`
	DefaultInitialCount int     `env:"POOL_DEFAULT_INITIAL_COUNT" envDefault:"10"   envDocs:"initial count used when a descriptor omits initial_count"`
	AnchorX             float64 `env:"ANCHOR_X"                   envDefault:"0"    envDocs:"x of the position acquired instances are moved to"`
	AnchorY             float64 `env:"ANCHOR_Y"                   envDefault:"0"    envDocs:"y of the position acquired instances are moved to"`
	AnchorZ             float64 `env:"ANCHOR_Z"                   envDefault:"0"    envDocs:"z of the position acquired instances are moved to"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Anchor returns the configured spawn anchor.
func (c *Config) Anchor() models.Vector3 {
	return models.Vector3{X: c.AnchorX, Y: c.AnchorY, Z: c.AnchorZ}
}
