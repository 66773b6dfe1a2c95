// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"fmt"

	"github.com/tomtom215/peopledatalabs/internal/config"
	"github.com/tomtom215/peopledatalabs/internal/logging"
)

// PDL groups the endpoint services around one Client.
type PDL struct {
	Client       *Client
	Person       *PersonService
	Company      *CompanyService
	IP           *IPService
	JobTitle     *JobTitleService
	Location     *LocationService
	School       *SchoolService
	Skill        *SkillService
	Autocomplete *AutocompleteService
}

// New builds a client for apiKey and every service on top of it.
func New(apiKey string, opts ...Option) *PDL {
	return NewWithClient(NewClient(apiKey, opts...))
}

// NewWithClient wires every service to its own clone of c.
func NewWithClient(c *Client) *PDL {
	return &PDL{
		Client:       c,
		Person:       &PersonService{client: c.Clone()},
		Company:      &CompanyService{client: c.Clone()},
		IP:           &IPService{client: c.Clone()},
		JobTitle:     &JobTitleService{client: c.Clone()},
		Location:     &LocationService{client: c.Clone()},
		School:       &SchoolService{client: c.Clone()},
		Skill:        &SkillService{client: c.Clone()},
		Autocomplete: &AutocompleteService{client: c.Clone()},
	}
}

// NewFromEnv loads configuration from the config file and PDL_* environment
// variables, configures logging, and builds a PDL. Extra options apply after
// the configured ones.
func NewFromEnv(opts ...Option) (*PDL, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.Init(cfg.LoggingConfig())
	logging.Debug().Str("config", cfg.String()).Msg("configuration loaded")
	return New(cfg.API.Key, append(optionsFromConfig(cfg), opts...)...), nil
}

// optionsFromConfig translates loaded configuration into client options.
func optionsFromConfig(cfg *config.Config) []Option {
	opts := []Option{
		WithVersion(cfg.API.Version),
		WithTimeout(cfg.API.Timeout),
		WithUserAgent(cfg.API.UserAgent),
	}
	if cfg.API.Sandbox {
		opts = append(opts, WithSandbox())
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.API.BaseURL))
	}
	if cfg.Breaker.Enabled {
		opts = append(opts, WithCircuitBreaker(BreakerSettings{
			MaxRequests:  cfg.Breaker.MaxRequests,
			Interval:     cfg.Breaker.Interval,
			Timeout:      cfg.Breaker.Timeout,
			MinRequests:  cfg.Breaker.MinRequests,
			FailureRatio: cfg.Breaker.FailureRatio,
		}))
	}
	return opts
}
