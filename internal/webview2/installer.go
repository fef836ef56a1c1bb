package webview2

import (
	"context"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// Fetcher retrieves the installer and returns its local path.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Installer downloads the bootstrapper and launches it, elevated when asked
// to and not already running as administrator.
type Installer struct {
	Fetcher  Fetcher
	Launcher Launcher

	// IsElevated defaults to the process token check.
	IsElevated func() bool

	// Timeout bounds the elevated wait.
	Timeout time.Duration
	Args    []string

	// KeepInstaller leaves the downloaded file in place after the attempt.
	KeepInstaller bool
}

// NewInstaller wires the default downloader, launcher and timeout.
func NewInstaller(buildVersion string) *Installer {
	return &Installer{
		Fetcher:    NewDownloader(buildVersion),
		Launcher:   ExecLauncher{},
		IsElevated: IsElevated,
		Timeout:    DefaultElevationTimeout,
		Args:       InstallerArgs,
	}
}

// Install performs one download-and-launch attempt. It reports whether the
// attempt used the elevated launch path, which is false when elevation was
// not asked for or the process already runs as administrator.
func (i *Installer) Install(ctx context.Context, elevate bool) (bool, error) {
	isElevated := i.IsElevated
	if isElevated == nil {
		isElevated = IsElevated
	}
	useElevation := elevate && !isElevated()

	path, err := i.Fetcher.Fetch(ctx)
	if err != nil {
		return useElevation, err
	}
	if !i.KeepInstaller {
		defer func() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				log.Debugf("leaving installer at %s: %v", path, err)
			}
		}()
	}

	if !useElevation {
		log.Infof("running installer %s", path)
		return false, i.Launcher.Run(ctx, path, i.Args)
	}

	timeout := i.Timeout
	if timeout <= 0 {
		timeout = DefaultElevationTimeout
	}
	log.Infof("running installer %s with elevation", path)
	return true, i.Launcher.RunElevated(ctx, path, i.Args, timeout)
}
