package webview2

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Launcher runs a downloaded installer to completion.
type Launcher interface {
	Run(ctx context.Context, path string, args []string) error
	RunElevated(ctx context.Context, path string, args []string, timeout time.Duration) error
}

// ExecLauncher launches installers as child processes. RunElevated goes
// through the shell's "runas" verb and is only implemented on Windows.
type ExecLauncher struct{}

// Run starts the installer and waits for it, capturing its output.
func (ExecLauncher) Run(ctx context.Context, path string, args []string) error {
	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	launchErr := &LaunchError{
		Path:     path,
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		launchErr.ExitCode = exitErr.ExitCode()
		launchErr.Err = nil
	}
	return launchErr
}
