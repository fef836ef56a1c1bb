package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/Thunder-Compute/wv2setup/internal/logging"
	"github.com/Thunder-Compute/wv2setup/internal/version"
	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/Thunder-Compute/wv2setup/tui"
	helpmenus "github.com/Thunder-Compute/wv2setup/tui/help-menus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// settings is filled in by the root pre-run hook.
	settings = defaultSettings()

	// activeMode is the prompt mode the current run resolved to.
	activeMode     PromptMode
	activePrompter webview2.Prompter
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wv2setup",
	Short: "Install the Microsoft Edge WebView2 runtime",
	Long: "wv2setup checks whether the Microsoft Edge WebView2 runtime is installed and,\n" +
		"after asking for confirmation, downloads and runs the Evergreen bootstrapper.",
	Version:       version.BuildVersion,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	WrapCommandWithSentry(rootCmd)
	for _, c := range rootCmd.Commands() {
		WrapCommandWithSentry(c)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	cmd, err := rootCmd.ExecuteContextC(ctx)
	stop()
	_ = logging.Close()
	if err != nil {
		reportError(cmd, err)
		os.Exit(1)
	}
}

func init() {
	tui.InitCommonStyles(os.Stdout)

	rootCmd.RunE = ensureCmd.RunE

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != rootCmd {
			defaultHelp(c, args)
			return
		}
		helpmenus.RenderRootHelp(c, c.OutOrStdout())
	})

	addSettingsFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		s, err := resolveSettings(cmd, cfg, os.Getenv)
		if err != nil {
			return err
		}
		if err := logging.Init(s.LogLevel, s.LogFile); err != nil {
			return fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
		}
		settings = s
		log.Debugf("settings: %+v", s)
		return nil
	}
}

func addSettingsFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.Bool("elevate", true, "request administrator rights for the first install attempt")
	flags.BoolP("yes", "y", false, "answer yes to every confirmation")
	flags.String("prompt", string(PromptAuto), "how to ask for confirmation: auto, dialog or terminal")
	flags.String("min-version", "", "treat runtimes older than this version as missing")
	flags.String("log-level", logging.DefaultLevel, "log level (trace, debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file instead of stderr")
}

// reportError prints err, mirrors it in a dialog when dialogs are in use and
// reports it to Sentry. Declines and silent failures only set the exit code.
func reportError(cmd *cobra.Command, err error) {
	var silent *silentError
	if errors.As(err, &silent) {
		return
	}
	if isCancellation(err) {
		fmt.Fprintln(os.Stderr, tui.RenderDeclined())
		return
	}

	if isInstallCommand(cmd) {
		fmt.Fprintln(os.Stderr, tui.RenderInstallFailed(err, webview2.DefaultDownloadURL))
	} else {
		PrintError(err)
	}
	if activeMode == PromptDialog && activePrompter != nil {
		activePrompter.ShowError(webview2.PromptTitle, err.Error())
	}
	if cmd != nil {
		CaptureCommandError(cmd, err)
	}
}

func isInstallCommand(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == ensureCmd || cmd == installCmd
}

// isCancellation covers declined prompts and interrupted installs, including
// a Ctrl+C on the spinner (tui.CancellationError unwraps to context.Canceled).
func isCancellation(err error) bool {
	return errors.Is(err, webview2.ErrUserCancelled) || errors.Is(err, context.Canceled)
}

// silentError fails the command without printing anything.
type silentError struct {
	msg string
}

func (e *silentError) Error() string { return e.msg }
