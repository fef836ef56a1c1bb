package cmd

import (
	"encoding/json"
	"errors"

	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/Thunder-Compute/wv2setup/tui"
)

// getErrorType categorizes errors for better Sentry grouping
func getErrorType(err error) string {
	var (
		pathErr     *webview2.PathResolutionError
		writeErr    *webview2.WriteError
		downloadErr *webview2.DownloadError
		launchErr   *webview2.LaunchError
		comErr      *webview2.ComInitError
		waitErr     *webview2.WaitFailedError
		dialogErr   *webview2.UnknownDialogResultError
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, webview2.ErrUserCancelled):
		return "user_cancelled"
	case errors.Is(err, webview2.ErrElevationTimeout):
		return "elevation_timeout"
	case errors.Is(err, webview2.ErrElevationAbandoned):
		return "elevation_abandoned"
	case errors.Is(err, webview2.ErrUnsupportedPlatform):
		return "unsupported_platform"
	case errors.Is(err, tui.ErrNotInteractive):
		return "prompt_error"
	case errors.As(err, &pathErr):
		return "path_error"
	case errors.As(err, &writeErr):
		return "write_error"
	case errors.As(err, &downloadErr):
		return "download_error"
	case errors.As(err, &launchErr):
		return "launch_error"
	case errors.As(err, &comErr):
		return "com_error"
	case errors.As(err, &waitErr):
		return "wait_error"
	case errors.As(err, &dialogErr):
		return "prompt_error"
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return "config_error"
	default:
		return "unknown_error"
	}
}
