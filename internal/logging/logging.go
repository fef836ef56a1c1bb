// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultLevel keeps diagnostic output out of the way of prompts.
	DefaultLevel = "warn"

	// DebugEnv forces debug logging when set to "1".
	DebugEnv = "WV2_DEBUG"

	consoleOutput = "console"
)

var rotator *lumberjack.Logger

// Init parses logLevel and directs output to logPath. An empty path or
// "console" keeps logging on stderr.
func Init(logLevel, logPath string) error {
	if os.Getenv(DebugEnv) == "1" {
		logLevel = "debug"
	}
	if strings.TrimSpace(logLevel) == "" {
		logLevel = DefaultLevel
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	_ = Close()
	var out io.Writer = os.Stderr
	if logPath != "" && logPath != consoleOutput {
		rotator = &lumberjack.Logger{
			Filename:   filepath.ToSlash(logPath),
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		}
		out = rotator
	}

	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    rotator != nil,
		QuoteEmptyFields: true,
	})
	log.SetLevel(level)
	return nil
}

// Close releases the log file, if one is open.
func Close() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}
