//go:build !windows

package dialog

import "github.com/Thunder-Compute/wv2setup/internal/webview2"

const available = false

func messageBox(string, string, uint32) (int32, error) {
	return 0, webview2.ErrUnsupportedPlatform
}
