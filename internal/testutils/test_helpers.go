package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type TestEnvironment struct {
	HomeDir    string
	ThunderDir string
	ConfigFile string
}

// SetupTestEnvironment points HOME (and USERPROFILE) at a fresh temp dir with
// an empty .thunder directory.
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	thunderDir := filepath.Join(home, ".thunder")
	if err := os.MkdirAll(thunderDir, 0o700); err != nil {
		t.Fatalf("Failed to create thunder directory: %v", err)
	}

	return &TestEnvironment{
		HomeDir:    home,
		ThunderDir: thunderDir,
		ConfigFile: filepath.Join(thunderDir, "webview2.json"),
	}
}

// WriteConfig stores cfg as the webview2 config file.
func (e *TestEnvironment) WriteConfig(t *testing.T, cfg map[string]interface{}) {
	t.Helper()

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(e.ConfigFile, data, 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
}
