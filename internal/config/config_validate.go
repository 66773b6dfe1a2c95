// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/peopledatalabs/internal/logging"
	"github.com/tomtom215/peopledatalabs/internal/validation"
)

// Validate checks the configuration with the struct tags on Config and a few
// rules tags cannot express.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	if containsPlaceholder(c.API.Key) {
		return fmt.Errorf("PDL_API_KEY contains a placeholder value; set a real API key")
	}
	if c.API.Sandbox && c.API.BaseURL != "" {
		return fmt.Errorf("PDL_SANDBOX and PDL_BASE_URL are mutually exclusive")
	}
	return nil
}

// placeholderPatterns defines common placeholder patterns that indicate
// the user forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_API_KEY",
	"PLACEHOLDER",
}

func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
