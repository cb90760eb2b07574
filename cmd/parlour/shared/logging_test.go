package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parlour.log")

	logger, closeLog, err := SetupLogger(path, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("Round complete", "round", 3)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Round complete")
	assert.Contains(t, string(data), "round=3")
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLoggerBadPath(t *testing.T) {
	_, _, err := SetupLogger(filepath.Join(t.TempDir(), "missing", "x.log"), false)
	assert.Error(t, err)
}
