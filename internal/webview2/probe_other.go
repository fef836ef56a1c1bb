//go:build !windows

package webview2

// InstalledVersion always reports the runtime as absent off Windows.
func InstalledVersion() (string, bool) {
	return "", false
}
