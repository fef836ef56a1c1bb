package cmd

import (
	"fmt"
	"io"

	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/Thunder-Compute/wv2setup/tui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	errRuntimeMissing  = &silentError{msg: "webview2 runtime not installed"}
	errRuntimeOutdated = &silentError{msg: "webview2 runtime older than the required minimum"}
)

// probeRuntime is replaced in tests.
var probeRuntime webview2.ProbeFunc = webview2.InstalledVersion

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the installed WebView2 runtime version",
	Long:  "Report the installed WebView2 runtime version. Exits with status 1 when the runtime is missing or older than --min-version.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(out io.Writer) error {
	installed, ok := probeRuntime()
	if !ok {
		fmt.Fprintln(out, tui.RenderNotInstalled())
		return errRuntimeMissing
	}

	meets, err := webview2.MeetsMinimum(installed, settings.MinVersion)
	if err != nil {
		log.Warnf("treating runtime %q as outdated: %v", installed, err)
	}
	if !meets {
		fmt.Fprintln(out, tui.RenderOutdated(installed, settings.MinVersion))
		return errRuntimeOutdated
	}

	fmt.Fprintln(out, tui.RenderInstalled(installed))
	return nil
}
