// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

// Package config loads client configuration using Koanf v2.
//
// Configuration is layered with clear precedence:
//
//  1. Defaults: built into defaultConfig
//  2. Config file: optional YAML (PDL_CONFIG_PATH, pdl.yaml, ~/.config/pdl/config.yaml)
//  3. Environment variables: PDL_API_KEY, PDL_SANDBOX, LOG_LEVEL and friends
//
// Example config file:
//
//	api:
//	  key: your-api-key
//	  version: v5
//	  sandbox: false
//	  timeout: 10s
//	breaker:
//	  enabled: true
//	  failure_ratio: 0.6
//	logging:
//	  level: info
//	  format: console
package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/peopledatalabs/internal/logging"
)

// Config holds everything needed to build a client.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Breaker BreakerConfig `koanf:"breaker"`
	Logging LoggingConfig `koanf:"logging"`
}

// APIConfig describes how to reach the People Data Labs API.
type APIConfig struct {
	Key       string        `koanf:"key" validate:"required"`
	Version   string        `koanf:"version" validate:"required"`
	Sandbox   bool          `koanf:"sandbox"`
	Timeout   time.Duration `koanf:"timeout" validate:"gt=0"`
	BaseURL   string        `koanf:"base_url" validate:"omitempty,url"`
	UserAgent string        `koanf:"user_agent"`
}

// BreakerConfig configures the optional circuit breaker around API calls.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gte=0"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

// LoggingConfig mirrors logging.Config for the fields exposed to users.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// LoggingConfig converts to the logging package configuration.
func (c *Config) LoggingConfig() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	if c.Logging.Format != "" {
		lc.Format = c.Logging.Format
	}
	lc.Caller = c.Logging.Caller
	return lc
}

// String renders the configuration with the API key redacted.
func (c *Config) String() string {
	return fmt.Sprintf("api{key=%s version=%s sandbox=%t timeout=%s base_url=%q} breaker{enabled=%t} logging{level=%s format=%s}",
		logging.SanitizeToken(c.API.Key), c.API.Version, c.API.Sandbox, c.API.Timeout, c.API.BaseURL,
		c.Breaker.Enabled, c.Logging.Level, c.Logging.Format)
}
