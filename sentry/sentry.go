package sentry

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds Sentry configuration options
type Config struct {
	DSN         string
	Environment string // "dev" or "production"
	Release     string // e.g. "wv2setup@1.0.0"
	Debug       bool
	SampleRate  float64 // 0.0 to 1.0

	// Error messages that are never reported
	FilteredErrors []string

	ServiceName string
	BuildCommit string
}

// Init initializes Sentry. An empty DSN leaves reporting disabled.
func Init(cfg Config) error {
	if cfg.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
		SampleRate:       cfg.SampleRate,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			return filterEvent(cfg, event)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("service", cfg.ServiceName)
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
		scope.SetTag("go_version", runtime.Version())
		scope.SetTag("build_commit", cfg.BuildCommit)
		scope.SetTag("instance_id", InstanceID())
	})
	return nil
}

// filterEvent drops events matching cfg.FilteredErrors and tags the rest
// with the service name.
func filterEvent(cfg Config, event *sentry.Event) *sentry.Event {
	if matchesAny(event.Message, cfg.FilteredErrors) {
		return nil
	}
	for _, exception := range event.Exception {
		if matchesAny(exception.Value, cfg.FilteredErrors) {
			return nil
		}
	}

	if event.Extra == nil {
		event.Extra = make(map[string]interface{})
	}
	event.Extra["service_name"] = cfg.ServiceName
	return event
}

func matchesAny(s string, filters []string) bool {
	if s == "" {
		return false
	}
	for _, f := range filters {
		if f != "" && strings.Contains(s, f) {
			return true
		}
	}
	return false
}

// Flush flushes buffered events with timeout
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// CaptureError captures an error with typed options
func CaptureError(err error, opts *EventOptions) *sentry.EventID {
	if err == nil {
		return nil
	}

	var eventID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		opts.apply(scope)
		eventID = sentry.CaptureException(err)
	})
	return eventID
}

// Level is a Sentry severity level.
type Level = sentry.Level

const (
	LevelInfo    = sentry.LevelInfo
	LevelWarning = sentry.LevelWarning
	LevelError   = sentry.LevelError
	LevelFatal   = sentry.LevelFatal
)

// AddBreadcrumb records a step of the install flow for later events.
func AddBreadcrumb(category, message string, data map[string]interface{}) {
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Type:      "default",
		Category:  category,
		Message:   message,
		Data:      data,
		Level:     LevelInfo,
		Timestamp: time.Now(),
	})
}

// CapturePanic should be used in a defer statement. It reports the panic,
// flushes, and re-panics.
func CapturePanic(opts *EventOptions) {
	if r := recover(); r != nil {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(LevelFatal)
			opts.apply(scope)
			sentry.CurrentHub().Recover(r)
		})
		sentry.Flush(5 * time.Second)
		panic(r)
	}
}

// Environment maps a build version to a Sentry environment.
func Environment(buildVersion string) string {
	if buildVersion == "" || buildVersion == "dev" {
		return "dev"
	}
	return "production"
}

// InstanceID identifies the reporting machine without user data.
func InstanceID() string {
	for _, key := range []string{"COMPUTERNAME", "HOSTNAME"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	return "unknown"
}
