package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_ = Close()
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})
}

func TestInit_DefaultLevel(t *testing.T) {
	resetLogger(t)
	t.Setenv(DebugEnv, "")

	require.NoError(t, Init("", ""))
	assert.Equal(t, log.WarnLevel, log.GetLevel())
}

func TestInit_ParsesLevel(t *testing.T) {
	resetLogger(t)
	t.Setenv(DebugEnv, "")

	require.NoError(t, Init("info", "console"))
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestInit_DebugEnvOverrides(t *testing.T) {
	resetLogger(t)
	t.Setenv(DebugEnv, "1")

	require.NoError(t, Init("error", ""))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestInit_InvalidLevel(t *testing.T) {
	resetLogger(t)
	t.Setenv(DebugEnv, "")

	assert.Error(t, Init("loud", ""))
}

func TestInit_WritesToFile(t *testing.T) {
	resetLogger(t)
	t.Setenv(DebugEnv, "")
	path := filepath.Join(t.TempDir(), "wv2setup.log")

	require.NoError(t, Init("info", path))
	log.Info("probe finished")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe finished")
}
