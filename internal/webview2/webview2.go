// Package webview2 detects the Microsoft Edge WebView2 runtime and installs it
// through the Evergreen bootstrapper when it is missing.
package webview2

import "time"

const (
	// DefaultDownloadURL points at Microsoft's Evergreen bootstrapper.
	DefaultDownloadURL = "https://go.microsoft.com/fwlink/p/?LinkId=2124703"

	// InstallerFileName is the name the bootstrapper is saved under.
	InstallerFileName = "MicrosoftEdgeWebview2Setup.exe"

	// DefaultElevationTimeout bounds the wait on an elevated installer.
	DefaultElevationTimeout = 600 * time.Second

	// clientGUID identifies the WebView2 runtime under EdgeUpdate\Clients.
	clientGUID = "{F3017226-FE2A-4295-8BDF-00C3A9A7E4C5}"
)

// InstallerArgs are passed to the bootstrapper on every launch.
var InstallerArgs = []string{"/silent", "/install"}
