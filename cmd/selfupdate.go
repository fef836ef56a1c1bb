package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Thunder-Compute/wv2setup/internal/version"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const (
	repositorySlug = "Thunder-Compute/wv2setup"
	releasesURL    = "https://github.com/Thunder-Compute/wv2setup/releases"
	checksumsFile  = "checksums.txt"
)

var selfUpdateCmd = &cobra.Command{
	Use:   "self-update",
	Short: "Update wv2setup to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()
		return runSelfUpdate(ctx, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(selfUpdateCmd)
}

// releaseSource is the subset of go-selfupdate used by runSelfUpdate.
type releaseSource interface {
	DetectLatest(ctx context.Context, repository selfupdate.Repository) (*selfupdate.Release, bool, error)
	UpdateTo(ctx context.Context, rel *selfupdate.Release, cmdPath string) error
}

var newReleaseSource = func() (releaseSource, error) {
	return selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: checksumsFile},
	})
}

var executablePath = getCurrentBinaryPath

func runSelfUpdate(ctx context.Context, out io.Writer) error {
	if selfUpdateDisabled() {
		fmt.Fprintf(out, "Self-update disabled by %s=1\n", envNoSelfUpdate)
		return nil
	}

	binPath, err := executablePath()
	if err != nil {
		return err
	}
	if isPMManaged(binPath) {
		PrintWarning("this installation is managed by a package manager; update it with scoop or winget")
		return nil
	}

	currentVersion := version.BuildVersion
	if currentVersion == "dev" || currentVersion == "" {
		fmt.Fprintln(out, "Development build detected. Cannot check for updates.")
		fmt.Fprintf(out, "Download the latest version manually from %s\n", releasesURL)
		return nil
	}

	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintln(out, "Checking for updates...")

	source, err := newReleaseSource()
	if err != nil {
		return fmt.Errorf("create updater: %w", err)
	}
	latest, found, err := source.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}
	if latest.LessOrEqual(currentVersion) {
		fmt.Fprintf(out, "Already up to date (version %s)\n", currentVersion)
		return nil
	}

	fmt.Fprintf(out, "New version available: %s\n", latest.Version())
	if err := source.UpdateTo(ctx, latest, binPath); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("install path %s is not writable; rerun from an elevated prompt: %w", binPath, err)
		}
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	PrintSuccess(fmt.Sprintf("updated to version %s", latest.Version()))
	return nil
}

func getCurrentBinaryPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

func isPMManaged(binPath string) bool {
	p := strings.ToLower(binPath)
	return strings.Contains(p, `\scoop\apps\`) ||
		strings.Contains(p, "windowsapps") ||
		strings.Contains(p, `\winget\packages\`)
}
