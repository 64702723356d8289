package logging

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})
	return &buf
}

func TestGetLogger_AddsComponent(t *testing.T) {
	buf := captureLogs(t)

	logger := GetLogger("compiler.tree")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"compiler.tree"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogDuration(t *testing.T) {
	buf := captureLogs(t)

	LogDuration(time.Now().Add(-time.Second), "compile-pass")

	assert.Contains(t, buf.String(), "compile-pass")
	assert.Contains(t, buf.String(), "duration")
}

func TestLogOperationStart(t *testing.T) {
	buf := captureLogs(t)

	done := LogOperationStart(log.Logger, "write-phase")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
}

func TestWithFields(t *testing.T) {
	buf := captureLogs(t)

	logger := WithFields(map[string]interface{}{"file": "index.html"})
	logger.Info().Msg("compiled")

	assert.Contains(t, buf.String(), `"file":"index.html"`)
}

func TestSetupLogger_Verbosity(t *testing.T) {
	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	t.Setenv(EnvLogFile, filepath.Join(t.TempDir(), "splice.log"))

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		var console bytes.Buffer
		SetupLoggerWithOutput(tt.verbosity, &console)
		assert.Equal(t, tt.want, zerolog.GlobalLevel())
	}
}

func TestSetupLogger_WritesLogFile(t *testing.T) {
	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	logPath := filepath.Join(t.TempDir(), "splice.log")
	t.Setenv(EnvLogFile, logPath)

	var console bytes.Buffer
	SetupLoggerWithOutput(1, &console)
	log.Info().Msg("to file")

	path, err := getLogFilePath()
	require.NoError(t, err)
	assert.Equal(t, logPath, path)
	assert.FileExists(t, logPath)
}
