package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Thunder-Compute/wv2setup/internal/logging"
	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/spf13/cobra"
)

const (
	configDirName  = ".thunder"
	configFileName = "webview2.json"

	envPrompt       = "WV2_PROMPT"
	envNoSelfUpdate = "WV2_NO_SELFUPDATE"
)

// Config is the optional on-disk configuration. Unset fields fall back to
// the defaults.
type Config struct {
	Elevate    *bool  `json:"elevate,omitempty"`
	AssumeYes  *bool  `json:"assume_yes,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
	MinVersion string `json:"min_version,omitempty"`
	LogLevel   string `json:"log_level,omitempty"`
	LogFile    string `json:"log_file,omitempty"`
}

// Settings is the effective configuration after flags, environment and the
// config file have been merged.
type Settings struct {
	Elevate    bool
	AssumeYes  bool
	Prompt     PromptMode
	MinVersion string
	LogLevel   string
	LogFile    string
}

func defaultSettings() Settings {
	return Settings{
		Elevate:  true,
		Prompt:   PromptAuto,
		LogLevel: logging.DefaultLevel,
	}
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configDirName, configFileName), nil
}

// LoadConfig reads ~/.thunder/webview2.json. A missing file yields an empty
// config.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &config, nil
}

// resolveSettings merges defaults, the config file, the environment and
// explicitly set flags, in increasing order of precedence.
func resolveSettings(cmd *cobra.Command, cfg *Config, getenv func(string) string) (Settings, error) {
	s := defaultSettings()

	if cfg != nil {
		if cfg.Elevate != nil {
			s.Elevate = *cfg.Elevate
		}
		if cfg.AssumeYes != nil {
			s.AssumeYes = *cfg.AssumeYes
		}
		if cfg.Prompt != "" {
			s.Prompt = PromptMode(cfg.Prompt)
		}
		if cfg.MinVersion != "" {
			s.MinVersion = cfg.MinVersion
		}
		if cfg.LogLevel != "" {
			s.LogLevel = cfg.LogLevel
		}
		if cfg.LogFile != "" {
			s.LogFile = cfg.LogFile
		}
	}

	if v := strings.TrimSpace(getenv(envPrompt)); v != "" {
		s.Prompt = PromptMode(v)
	}

	flags := cmd.Flags()
	var err error
	if flags.Changed("elevate") {
		if s.Elevate, err = flags.GetBool("elevate"); err != nil {
			return s, err
		}
	}
	if flags.Changed("yes") {
		if s.AssumeYes, err = flags.GetBool("yes"); err != nil {
			return s, err
		}
	}
	if flags.Changed("prompt") {
		v, err := flags.GetString("prompt")
		if err != nil {
			return s, err
		}
		s.Prompt = PromptMode(v)
	}
	if flags.Changed("min-version") {
		if s.MinVersion, err = flags.GetString("min-version"); err != nil {
			return s, err
		}
	}
	if flags.Changed("log-level") {
		if s.LogLevel, err = flags.GetString("log-level"); err != nil {
			return s, err
		}
	}
	if flags.Changed("log-file") {
		if s.LogFile, err = flags.GetString("log-file"); err != nil {
			return s, err
		}
	}

	s.Prompt = PromptMode(strings.ToLower(string(s.Prompt)))
	if !s.Prompt.valid() {
		return s, fmt.Errorf("invalid prompt mode %q (want auto, dialog or terminal)", s.Prompt)
	}
	s.MinVersion = strings.TrimSpace(s.MinVersion)
	if err := webview2.ValidateMinimum(s.MinVersion); err != nil {
		return s, fmt.Errorf("invalid min-version: %w", err)
	}
	return s, nil
}

func selfUpdateDisabled() bool {
	v, err := strconv.ParseBool(os.Getenv(envNoSelfUpdate))
	return err == nil && v
}
