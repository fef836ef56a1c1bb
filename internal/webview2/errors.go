package webview2

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUserCancelled is returned when the user declines the install prompt.
	ErrUserCancelled = errors.New("webview2 installation cancelled by user")

	// ErrElevationAbandoned maps WAIT_ABANDONED on the elevated installer.
	ErrElevationAbandoned = errors.New("wait on elevated installer was abandoned")

	// ErrElevationTimeout maps WAIT_TIMEOUT on the elevated installer.
	ErrElevationTimeout = errors.New("timed out waiting for elevated installer")

	// ErrUnsupportedPlatform is returned by Windows-only operations elsewhere.
	ErrUnsupportedPlatform = errors.New("operation is only supported on windows")
)

// PathResolutionError means the download directory could not be determined.
type PathResolutionError struct {
	Err error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("resolve download directory: %v", e.Err)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }

// WriteError means the installer could not be written to disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write installer %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// DownloadError covers transport failures and non-200 responses.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download %s: unexpected HTTP status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// LaunchError reports an installer that failed to start or exited non-zero.
// ExitCode is -1 when the process never produced one.
type LaunchError struct {
	Path     string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *LaunchError) Error() string {
	var b strings.Builder
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, "installer %s exited with code %d", e.Path, e.ExitCode)
	} else {
		fmt.Fprintf(&b, "launch installer %s", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if out := strings.TrimSpace(e.Stdout); out != "" {
		fmt.Fprintf(&b, "\nstdout: %s", out)
	}
	if out := strings.TrimSpace(e.Stderr); out != "" {
		fmt.Fprintf(&b, "\nstderr: %s", out)
	}
	return b.String()
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ComInitError wraps a CoInitializeEx failure.
type ComInitError struct {
	Err error
}

func (e *ComInitError) Error() string {
	return fmt.Sprintf("initialize COM apartment: %v", e.Err)
}

func (e *ComInitError) Unwrap() error { return e.Err }

// WaitFailedError carries the OS error code of a failed wait.
type WaitFailedError struct {
	Code uint32
	Err  error
}

func (e *WaitFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wait on elevated installer failed (code %d): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("wait on elevated installer failed (code %d)", e.Code)
}

func (e *WaitFailedError) Unwrap() error { return e.Err }

// UnknownDialogResultError is returned for a dialog answer outside yes/no/cancel.
type UnknownDialogResultError struct {
	Value int32
}

func (e *UnknownDialogResultError) Error() string {
	return fmt.Sprintf("unknown dialog result %d", e.Value)
}
