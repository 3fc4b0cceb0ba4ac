package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/0xalexb/d2conf/logging"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "INFO"}, &buf)

	logger.Info("configuration accepted", slog.String("path", "preprocessor:d2"))

	var logEntry map[string]any

	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "output should be valid JSON")
	require.Equal(t, "configuration accepted", logEntry["msg"])
	require.Equal(t, "preprocessor:d2", logEntry["path"])
	require.Equal(t, "INFO", logEntry["level"])
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		configLevel   string
		logLevel      slog.Level
		expectedLevel string
	}{
		{name: "debug level logs debug", configLevel: "DEBUG", logLevel: slog.LevelDebug, expectedLevel: "DEBUG"},
		{name: "warning alias", configLevel: "WARNING", logLevel: slog.LevelWarn, expectedLevel: "WARN"},
		{name: "lowercase level is accepted", configLevel: "error", logLevel: slog.LevelError, expectedLevel: "ERROR"},
		{name: "info level does not log debug", configLevel: "INFO", logLevel: slog.LevelDebug},
		{name: "warn level does not log info", configLevel: "warn", logLevel: slog.LevelInfo},
		{name: "empty level defaults to info", configLevel: "", logLevel: slog.LevelInfo, expectedLevel: "INFO"},
		{name: "invalid level defaults to info", configLevel: "LOUD", logLevel: slog.LevelDebug},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.LoggerConfig{Level: testCase.configLevel}, &buf)

			logger.Log(context.Background(), testCase.logLevel, "test message")

			if testCase.expectedLevel == "" {
				require.Empty(t, buf.String(), "log should not be written")

				return
			}

			var logEntry map[string]any

			err := json.Unmarshal(buf.Bytes(), &logEntry)
			require.NoError(t, err, "output should be valid JSON")
			require.Equal(t, testCase.expectedLevel, logEntry["level"])
		})
	}
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug", Format: "TEXT"}, &buf)

	logger.Debug("ignoring unknown key", slog.String("key", "command"))

	output := buf.String()
	require.True(t, strings.HasPrefix(output, "time="), "text handler output expected, got %q", output)
	require.Contains(t, output, "level=DEBUG")
	require.Contains(t, output, "key=command")
}

func TestNewLogger_UnknownFormatFallsBackToJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Format: "xml"}, &buf)

	logger.Info("configuration accepted")

	var logEntry map[string]any

	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "output should be valid JSON")
	require.Equal(t, "configuration accepted", logEntry["msg"])
}
