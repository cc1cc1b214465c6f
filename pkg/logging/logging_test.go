package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerVerbosity(t *testing.T) {
	// Keep log files out of the real state dir
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{99, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.level, zerolog.GlobalLevel(),
			"verbosity %d should map to %s", tt.verbosity, tt.level)
	}
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	SetupLogger(1)

	_, err := os.Stat(filepath.Join(stateHome, "quill", "quill.log"))
	require.NoError(t, err, "log file should be created under XDG_STATE_HOME")
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("printer")
	// Smoke test: the logger must be usable without panicking
	logger.Debug().Str("key", "value").Msg("test message")
}
