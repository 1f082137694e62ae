package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/furylabs/fury-go/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	// Create a buffer to capture output
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "debug message") {
		t.Errorf("Expected debug message in output, got: %s", output)
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New(buf)

	logger.Info().Str("endpoint", "/api/tokens/buy").Msg("request sent")

	output := buf.String()
	if !strings.Contains(output, "/api/tokens/buy") {
		t.Errorf("Expected endpoint field in output, got: %s", output)
	}
	if !strings.Contains(output, "request sent") {
		t.Errorf("Expected message in output, got: %s", output)
	}
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	child := logging.With().Str("component", "transport").Logger()
	child.Info().Msg("child message")

	output := buf.String()
	if !strings.Contains(output, "transport") {
		t.Errorf("Expected component field in output, got: %s", output)
	}
}
