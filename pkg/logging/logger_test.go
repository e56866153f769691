package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/flodolo/moz-cldr-data/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")

	tl.AssertContains(t, "info message")
	tl.AssertContains(t, "warning message")
	assert.Equal(t, 3, tl.Count())
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithLocale(ctx, "it")
	ctx = logging.WithCategory(ctx, "region")
	ctx = logging.WithOperation(ctx, "compare")

	logging.FromContext(ctx).Info().Msg("comparing")

	tl.AssertContains(t, `"locale":"it"`)
	tl.AssertContains(t, `"category":"region"`)
	tl.AssertContains(t, `"operation":"compare"`)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}

func TestConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		config *logging.Config
		check  func(t *testing.T, output string)
	}{
		{
			name:   "debug level",
			config: &logging.Config{Level: "debug", Format: "json", Output: "discard"},
			check: func(t *testing.T, output string) {
				assert.Contains(t, output, `"level":"debug"`)
			},
		},
		{
			name:   "error level only",
			config: &logging.Config{Level: "error", Format: "json", Output: "discard"},
			check: func(t *testing.T, output string) {
				assert.NotContains(t, output, `"level":"info"`)
				assert.Contains(t, output, `"level":"error"`)
			},
		},
		{
			name:   "warning alias",
			config: &logging.Config{Level: "warning", Format: "json", Output: "discard"},
			check: func(t *testing.T, output string) {
				assert.False(t, strings.Contains(output, `"level":"info"`))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			old := zerolog.GlobalLevel()
			t.Cleanup(func() { zerolog.SetGlobalLevel(old) })

			buf := &bytes.Buffer{}
			logger := logging.NewLoggerFromConfig(tc.config).Output(buf)

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Error().Msg("error")

			tc.check(t, buf.String())
		})
	}
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Logger.Info().Msg("message 1")
	tl.Logger.Error().Msg("message 2")

	tl.AssertContains(t, "message 1")
	assert.Equal(t, 2, tl.Count())

	tl.Clear()
	assert.Equal(t, 0, tl.Count())
}
