package cmd

import (
	"errors"
	"time"

	"github.com/Thunder-Compute/wv2setup/internal/version"
	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/Thunder-Compute/wv2setup/sentry"
	"github.com/spf13/cobra"
)

// WrapCommandWithSentry wraps a cobra.Command's RunE function
// to automatically capture panics to Sentry
func WrapCommandWithSentry(cmd *cobra.Command) {
	if cmd.RunE == nil {
		return
	}

	originalRunE := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		defer sentry.CapturePanic(&sentry.EventOptions{
			Tags: sentry.NewTags().
				Set("command", cmd.Name()).
				Set("version", version.BuildVersion),
		})

		return originalRunE(c, args)
	}
}

// CaptureCommandError reports a failed command. User cancellations are
// not reported.
func CaptureCommandError(cmd *cobra.Command, err error) {
	if err == nil || isCancellation(err) {
		return
	}

	eventID := sentry.CaptureError(err, &sentry.EventOptions{
		Tags: sentry.NewTags().
			Set("command", cmd.Name()).
			Set("version", version.BuildVersion).
			Set("error_type", getErrorType(err)).
			Set("prompt_mode", string(activeMode)),
		Extra: sentry.NewExtra().
			Set("args", cmd.Flags().Args()).
			Set("elevate", settings.Elevate).
			Set("min_version", settings.MinVersion),
		Level: ptr(getLogLevelForError(err)),
	})

	if eventID != nil {
		// os.Exit skips deferred flushes
		sentry.Flush(2 * time.Second)
	}
}

// ptr is a helper to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}

// getLogLevelForError treats outcomes caused by the user's environment as
// warnings and everything else as errors.
func getLogLevelForError(err error) sentry.Level {
	var downloadErr *webview2.DownloadError
	switch {
	case errors.Is(err, webview2.ErrElevationTimeout),
		errors.Is(err, webview2.ErrElevationAbandoned),
		errors.Is(err, webview2.ErrUnsupportedPlatform),
		errors.As(err, &downloadErr):
		return sentry.LevelWarning
	default:
		return sentry.LevelError
	}
}
