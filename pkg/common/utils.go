// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-core-objectpool/pkg/config"
)

// SetupLogger applies the configured level and format to the standard logrus logger.
func SetupLogger(cfg *config.Config) {
	ConfigureLogger(logrus.StandardLogger(), cfg)
}

// ConfigureLogger applies the configured level and format to logger.
// An unparsable level falls back to info.
func ConfigureLogger(logger *logrus.Logger, cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("invalid log level %q, falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(cfg.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{PrettyPrint: false})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// LogJSONFormatter is printing the data in log
func LogJSONFormatter(data interface{}) string {
	response, err := json.Marshal(data)
	if err != nil {
		logrus.Errorf("failed to marshal json.")

		return ""
	}

	return string(response)
}
