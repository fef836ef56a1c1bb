//go:build !windows

package webview2

// IsElevated is always false off Windows.
func IsElevated() bool {
	return false
}
