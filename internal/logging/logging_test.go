package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantLvl zapcore.Level
	}{
		{name: "empty level falls back to warn", level: "", wantLvl: zapcore.WarnLevel},
		{name: "debug level", level: "debug", wantLvl: zapcore.DebugLevel},
		{name: "error level", level: "error", wantLvl: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level, filepath.Join(t.TempDir(), "parlor.log"))
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.wantLvl))
			if tt.wantLvl > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.wantLvl-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "")
	assert.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parlor.log")
	logger, err := New("info", path)
	require.NoError(t, err)

	logger.Info("flavor added")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flavor added")
}
