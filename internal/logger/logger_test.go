package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_CustomWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: "json",
		Writer: &buf,
	})

	logger.Info("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "\"level\":\"INFO\"")
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{"production uses json", "production", true},
		{"development uses pretty", "development", false},
		{"staging uses pretty", "staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:       slog.LevelInfo,
				Environment: tt.environment,
				Writer:      &buf,
			})

			logger.Info("test")

			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"msg":"test"`)
			} else {
				assert.Contains(t, buf.String(), "INF")
			}
		})
	}
}

func TestPrettyHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelWarn,
		Format: "pretty",
		Writer: &buf,
	})

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestPrettyHandler_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: "pretty",
		Writer: &buf,
	})

	logger.Info("created", "slug", "midnight-harvest", "year", 2024)

	out := buf.String()
	assert.Contains(t, out, "slug=midnight-harvest")
	assert.Contains(t, out, "year=2024")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: "json",
		Writer: &buf,
	})

	logger.WithError(assert.AnError).Error("request failed")

	assert.Contains(t, buf.String(), assert.AnError.Error())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestWithAttrs_Propagates(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: "pretty",
		Writer: &buf,
	})

	child := logger.With("component", "store")
	child.Info("opened")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "component=store")
}
