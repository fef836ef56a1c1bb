package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Thunder-Compute/wv2setup/internal/version"
	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/Thunder-Compute/wv2setup/sentry"
	"github.com/Thunder-Compute/wv2setup/tui"
	"github.com/spf13/cobra"
)

var ensureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Install the WebView2 runtime if it is missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEnsure(cmd.Context(), cmd.OutOrStdout(), false)
	},
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download and run the WebView2 installer without checking first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEnsure(cmd.Context(), cmd.OutOrStdout(), true)
	},
}

func init() {
	rootCmd.AddCommand(ensureCmd)
	rootCmd.AddCommand(installCmd)
}

// newEnsurer builds the orchestrator for the resolved settings.
var newEnsurer = func(s Settings, prompter webview2.Prompter, mode PromptMode) *webview2.Ensurer {
	e := webview2.NewEnsurer(version.BuildVersion, prompter, s.Elevate)
	e.MinVersion = s.MinVersion
	e.AssumeYes = s.AssumeYes
	if mode == PromptTerminal && isInteractive() {
		e.Installer = newProgressInstaller(e.Installer, os.Stderr)
	}
	return e
}

func runEnsure(ctx context.Context, out io.Writer, skipProbe bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	activeMode = resolvePromptMode(settings.Prompt)
	activePrompter = newPrompter(activeMode)
	ensurer := newEnsurer(settings, activePrompter, activeMode)

	var (
		res webview2.Result
		err error
	)
	if skipProbe {
		res, err = ensurer.Install(ctx)
	} else {
		res, err = ensurer.Ensure(ctx)
	}
	sentry.AddBreadcrumb("install", "install flow finished", map[string]interface{}{
		"status":    res.Status.String(),
		"attempts":  res.Attempts,
		"elevated":  res.Elevated,
		"installed": res.AlreadyInstalled,
	})
	if err != nil {
		return err
	}

	if activeMode == PromptDialog {
		activePrompter.ShowInfo(webview2.PromptTitle, versionMessage(res.Version))
	}
	if res.AlreadyInstalled {
		fmt.Fprintln(out, tui.RenderInstalled(res.Version))
		return nil
	}
	fmt.Fprintln(out, tui.RenderInstallSuccess(res.Version))
	return nil
}

// versionMessage is the text of the success dialog.
func versionMessage(v string) string {
	if v == "" {
		return "WebView2 Runtime installed."
	}
	return fmt.Sprintf("WebView2 Runtime Version: %s", v)
}

// progressInstaller shows a spinner while each install attempt runs.
type progressInstaller struct {
	next       webview2.InstallRunner
	out        io.Writer
	isElevated func() bool
	run        func(ctx context.Context, out io.Writer, message string, action func(context.Context) error) error
}

func newProgressInstaller(next webview2.InstallRunner, out io.Writer) *progressInstaller {
	return &progressInstaller{
		next:       next,
		out:        out,
		isElevated: webview2.IsElevated,
		run:        tui.RunInstallProgress,
	}
}

func (p *progressInstaller) Install(ctx context.Context, elevate bool) (bool, error) {
	message := "Installing WebView2 runtime..."
	if elevate && !p.isElevated() {
		fmt.Fprintln(p.out, tui.RenderElevationNotice())
		message = "Installing WebView2 runtime (waiting for administrator approval)..."
	}
	var elevated bool
	err := p.run(ctx, p.out, message, func(ctx context.Context) error {
		var err error
		elevated, err = p.next.Install(ctx, elevate)
		return err
	})
	return elevated, err
}
