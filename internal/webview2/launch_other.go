//go:build !windows

package webview2

import (
	"context"
	"time"
)

// RunElevated is not available off Windows.
func (ExecLauncher) RunElevated(ctx context.Context, path string, args []string, timeout time.Duration) error {
	return ErrUnsupportedPlatform
}
