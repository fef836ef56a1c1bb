package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Thunder-Compute/wv2setup/cmd"
	"github.com/Thunder-Compute/wv2setup/internal/console"
	"github.com/Thunder-Compute/wv2setup/internal/version"
	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/Thunder-Compute/wv2setup/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	console.Init()

	if err := initSentry(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer sentry.Flush(5 * time.Second)

	// Wrap execution with panic recovery
	defer func() {
		if r := recover(); r != nil {
			sentrygo.CurrentHub().Recover(r)
			sentry.Flush(5 * time.Second)
			panic(r)
		}
	}()

	cmd.Execute()
}

func initSentry() error {
	// DSN is injected at build time - if empty, Sentry is disabled
	return sentry.Init(sentry.Config{
		DSN:         version.SentryDSN,
		Environment: sentry.Environment(version.BuildVersion),
		Release:     fmt.Sprintf("wv2setup@%s", version.BuildVersion),
		SampleRate:  1.0,
		ServiceName: "wv2setup",
		BuildCommit: version.BuildCommit,
		FilteredErrors: []string{
			webview2.ErrUserCancelled.Error(),
		},
	})
}
