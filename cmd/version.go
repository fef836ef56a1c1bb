package cmd

import (
	"fmt"
	"runtime"

	"github.com/Thunder-Compute/wv2setup/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wv2setup %s (commit %s, built %s, %s/%s)\n",
			version.BuildVersion, version.BuildCommit, version.BuildDate, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
