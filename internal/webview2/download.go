package webview2

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	userAgent = "wv2setup/%s"

	// downloadTimeout bounds the whole bootstrapper request.
	downloadTimeout = 5 * time.Minute
)

// HTTPClient is the subset of *http.Client the downloader needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Downloader fetches the bootstrapper into the temporary directory.
type Downloader struct {
	URL       string
	Client    HTTPClient
	UserAgent string

	// Getenv and Getwd default to the os package.
	Getenv func(string) string
	Getwd  func() (string, error)
}

// NewDownloader returns a downloader for DefaultDownloadURL.
func NewDownloader(buildVersion string) *Downloader {
	return &Downloader{
		URL:       DefaultDownloadURL,
		Client:    &http.Client{Timeout: downloadTimeout},
		UserAgent: fmt.Sprintf(userAgent, buildVersion),
	}
}

// TempDir returns TMP or TEMP, falling back to the current directory. The
// chosen directory must exist.
func (d *Downloader) TempDir() (string, error) {
	dir, err := d.tempDirCandidate()
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &PathResolutionError{Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", &PathResolutionError{Err: err}
	}
	if !info.IsDir() {
		return "", &PathResolutionError{Err: fmt.Errorf("%s is not a directory", abs)}
	}
	return abs, nil
}

func (d *Downloader) tempDirCandidate() (string, error) {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, key := range []string{"TMP", "TEMP"} {
		if dir := strings.TrimSpace(getenv(key)); dir != "" {
			return dir, nil
		}
	}

	getwd := d.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	dir, err := getwd()
	if err != nil {
		return "", &PathResolutionError{Err: err}
	}
	if dir == "" {
		return "", &PathResolutionError{Err: errors.New("empty working directory")}
	}
	return dir, nil
}

// Fetch downloads the installer and returns the path it was written to.
func (d *Downloader) Fetch(ctx context.Context) (string, error) {
	dir, err := d.TempDir()
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dir, InstallerFileName)
	log.Debugf("downloading %s to %s", d.URL, dst)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.URL, nil)
	if err != nil {
		return "", &DownloadError{URL: d.URL, Err: err}
	}
	if d.UserAgent != "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}

	client := d.Client
	if client == nil {
		client = &http.Client{Timeout: downloadTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &DownloadError{URL: d.URL, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warnf("error closing response body: %v", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", &DownloadError{URL: d.URL, StatusCode: resp.StatusCode}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", &WriteError{Path: dst, Err: err}
	}

	w := &recordingWriter{w: out}
	n, copyErr := io.Copy(w, resp.Body)
	closeErr := out.Close()
	switch {
	case copyErr != nil && w.err != nil:
		_ = os.Remove(dst)
		return "", &WriteError{Path: dst, Err: w.err}
	case copyErr != nil:
		_ = os.Remove(dst)
		return "", &DownloadError{URL: d.URL, Err: copyErr}
	case closeErr != nil:
		_ = os.Remove(dst)
		return "", &WriteError{Path: dst, Err: closeErr}
	}

	log.Infof("downloaded %d bytes to %s", n, dst)
	return dst, nil
}

// recordingWriter remembers write failures so they can be told apart from
// failures reading the response body.
type recordingWriter struct {
	w   io.Writer
	err error
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	n, err := r.w.Write(p)
	if err != nil {
		r.err = err
	}
	return n, err
}
