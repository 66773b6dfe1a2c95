// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{
		Level:     "debug",
		Format:    "json",
		Timestamp: true,
		Output:    &buf,
	})
	defer Init(DefaultConfig())

	Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected output to contain level, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"DEBUG", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "INFO", "warning", "disabled"} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "verbose", "loud"} {
		if ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = true, want false", level)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "warn", Output: &buf})
	defer Init(DefaultConfig())

	logger := WithComponent("pdl")
	logger.Warn().Msg("component message")

	if !strings.Contains(buf.String(), `"component":"pdl"`) {
		t.Errorf("expected component field in output: %s", buf.String())
	}
}

func TestInit_LevelIsLocal(t *testing.T) {
	var buf bytes.Buffer
	globalBefore := zerolog.GlobalLevel()

	Init(Config{Level: "warn", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("filtered")
	Warn().Msg("kept")

	if strings.Contains(buf.String(), "filtered") || !strings.Contains(buf.String(), "kept") {
		t.Errorf("package level not applied: %s", buf.String())
	}
	if got := zerolog.GlobalLevel(); got != globalBefore {
		t.Errorf("global level changed from %v to %v", globalBefore, got)
	}
}

func TestInit_HostLoggerUnaffected(t *testing.T) {
	var host bytes.Buffer
	hostLogger := zerolog.New(&host).Level(zerolog.DebugLevel)

	Init(Config{Level: "error", Output: &bytes.Buffer{}})
	defer Init(DefaultConfig())

	hostLogger.Debug().Msg("host debug")
	if !strings.Contains(host.String(), "host debug") {
		t.Errorf("host logger silenced after Init: %q", host.String())
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{
		Level:  "info",
		Format: "console",
		Output: &buf,
	})
	defer Init(DefaultConfig())

	Info().Msg("console test")

	if strings.Contains(buf.String(), `"level"`) {
		t.Errorf("expected console format (not JSON): %s", buf.String())
	}
}
