// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package logging

import (
	"strings"
	"testing"
)

func TestSanitizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"short", "***"},
		{"exactly12chr", "***"},
		{"0123456789abcdef0123", "0123...0123"},
	}

	for _, tt := range tests {
		if got := SanitizeToken(tt.input); got != tt.expected {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"john.doe@example.com", "jo***@example.com"},
		{"ab@example.com", "***@example.com"},
		{"not-an-email", "***"},
	}

	for _, tt := range tests {
		if got := SanitizeEmail(tt.input); got != tt.expected {
			t.Errorf("SanitizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	if got := SanitizeValue("X-Api-Key", "0123456789abcdef0123"); got != "0123...0123" {
		t.Errorf("api key not masked: %q", got)
	}
	if got := SanitizeValue("email", "sean@peopledatalabs.com"); got != "se***@peopledatalabs.com" {
		t.Errorf("email not masked: %q", got)
	}
	if got := SanitizeValue("email", "sean@peopledatalabs.com,al@example.com"); got != "se***@peopledatalabs.com, ***@example.com" {
		t.Errorf("email list not masked per address: %q", got)
	}
	if got := SanitizeValue("company", "people data labs"); got != "people data labs" {
		t.Errorf("plain value changed: %q", got)
	}
	long := strings.Repeat("x", 300)
	if got := SanitizeValue("sql", long); len(got) != 203 {
		t.Errorf("long value not truncated, len = %d", len(got))
	}
}
