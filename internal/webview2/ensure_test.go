package webview2_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Thunder-Compute/wv2setup/internal/testutils"
	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probeReturning(version string, ok bool) webview2.ProbeFunc {
	return func() (string, bool) { return version, ok }
}

func TestEnsure_AlreadyInstalledSkipsEverything(t *testing.T) {
	prompter := &testutils.MockPrompter{}
	installer := &testutils.MockInstaller{}
	e := &webview2.Ensurer{
		Probe:     probeReturning("120.0.2210.91", true),
		Installer: installer,
		Prompter:  prompter,
		Elevate:   true,
	}

	res, err := e.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, webview2.StatusSuccess, res.Status)
	assert.True(t, res.AlreadyInstalled)
	assert.Equal(t, "120.0.2210.91", res.Version)
	assert.Zero(t, res.Attempts)
	assert.Empty(t, installer.Calls)
	assert.Empty(t, prompter.Confirms)
	assert.Empty(t, prompter.Errors)
}

func TestEnsure_DeclineMakesNoNetworkCall(t *testing.T) {
	httpClient := &testutils.MockHTTPClient{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			t.Fatalf("unexpected request to %s", req.URL)
			return nil, nil
		},
	}
	launcher := &testutils.MockLauncher{}
	installer := &webview2.Installer{
		Fetcher:    &webview2.Downloader{URL: webview2.DefaultDownloadURL, Client: httpClient},
		Launcher:   launcher,
		IsElevated: func() bool { return false },
	}
	prompter := &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerNo)}
	e := &webview2.Ensurer{
		Probe:     probeReturning("", false),
		Installer: installer,
		Prompter:  prompter,
		Elevate:   true,
	}

	res, err := e.Ensure(context.Background())
	require.ErrorIs(t, err, webview2.ErrUserCancelled)
	assert.Equal(t, webview2.StatusDeclined, res.Status)
	assert.Len(t, prompter.Confirms, 1)
	assert.Empty(t, httpClient.Requests)
	assert.Zero(t, launcher.RunCalls)
	assert.Zero(t, launcher.ElevatedCalls)
}

func TestEnsure_CancelOnInitialPromptIsDecline(t *testing.T) {
	installer := &testutils.MockInstaller{}
	e := &webview2.Ensurer{
		Probe:     probeReturning("", false),
		Installer: installer,
		Prompter:  &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerCancel)},
	}

	res, err := e.Ensure(context.Background())
	assert.ErrorIs(t, err, webview2.ErrUserCancelled)
	assert.Equal(t, webview2.StatusDeclined, res.Status)
	assert.Empty(t, installer.Calls)
}

func TestEnsure_FallbackDeclinedReturnsOriginalError(t *testing.T) {
	for _, answer := range []webview2.Answer{webview2.AnswerNo, webview2.AnswerCancel} {
		t.Run(answer.String(), func(t *testing.T) {
			original := &webview2.LaunchError{Path: "setup.exe", ExitCode: -1, Err: errors.New("The operation was canceled by the user.")}
			installer := &testutils.MockInstaller{
				InstallFunc: func(ctx context.Context, elevate bool) error { return original },
			}
			prompter := &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerYes, answer)}
			e := &webview2.Ensurer{
				Probe:     probeReturning("", false),
				Installer: installer,
				Prompter:  prompter,
				Elevate:   true,
			}

			res, err := e.Ensure(context.Background())
			require.Error(t, err)
			assert.Same(t, original, err)
			assert.Equal(t, webview2.StatusFailed, res.Status)
			assert.Equal(t, []bool{true}, installer.Calls)
			assert.Len(t, prompter.Confirms, 2)
			assert.Contains(t, prompter.Confirms[1].Message, "without administrator rights")
		})
	}
}

func TestEnsure_FallbackAcceptedRetriesOnceWithoutElevation(t *testing.T) {
	installer := &testutils.MockInstaller{
		InstallFunc: func(ctx context.Context, elevate bool) error {
			if elevate {
				return webview2.ErrElevationTimeout
			}
			return nil
		},
	}
	installed := false
	e := &webview2.Ensurer{
		Probe: func() (string, bool) {
			if installed {
				return "121.0.2277.83", true
			}
			installed = true
			return "", false
		},
		Installer: installer,
		Prompter:  &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerYes, webview2.AnswerYes)},
		Elevate:   true,
	}

	res, err := e.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, installer.Calls)
	assert.Equal(t, webview2.StatusSuccess, res.Status)
	assert.Equal(t, 2, res.Attempts)
	assert.False(t, res.Elevated)
	assert.Equal(t, "121.0.2277.83", res.Version)
}

func TestEnsure_FallbackFailureIsFinal(t *testing.T) {
	second := &webview2.LaunchError{Path: "setup.exe", ExitCode: 5}
	installer := &testutils.MockInstaller{
		InstallFunc: func(ctx context.Context, elevate bool) error {
			if elevate {
				return webview2.ErrElevationAbandoned
			}
			return second
		},
	}
	prompter := &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerYes, webview2.AnswerYes, webview2.AnswerYes)}
	e := &webview2.Ensurer{
		Probe:     probeReturning("", false),
		Installer: installer,
		Prompter:  prompter,
		Elevate:   true,
	}

	res, err := e.Ensure(context.Background())
	assert.Same(t, second, err)
	assert.Equal(t, webview2.StatusFailed, res.Status)
	assert.Equal(t, []bool{true, false}, installer.Calls)
	assert.Len(t, prompter.Confirms, 2)
}

func TestEnsure_NonElevatedFailureDoesNotOfferFallback(t *testing.T) {
	installErr := &webview2.WriteError{Path: `C:\Temp\setup.exe`, Err: errors.New("disk full")}
	installer := &testutils.MockInstaller{
		InstallFunc: func(ctx context.Context, elevate bool) error { return installErr },
	}
	prompter := &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerYes, webview2.AnswerYes)}
	e := &webview2.Ensurer{
		Probe:     probeReturning("", false),
		Installer: installer,
		Prompter:  prompter,
	}

	_, err := e.Ensure(context.Background())
	assert.Same(t, installErr, err)
	assert.Equal(t, []bool{false}, installer.Calls)
	assert.Len(t, prompter.Confirms, 1)
}

func TestEnsure_PromptErrorFailsRun(t *testing.T) {
	dialogErr := &webview2.UnknownDialogResultError{Value: 42}
	installer := &testutils.MockInstaller{}
	e := &webview2.Ensurer{
		Probe:     probeReturning("", false),
		Installer: installer,
		Prompter: &testutils.MockPrompter{ConfirmFunc: func(string, string) (webview2.Answer, error) {
			return webview2.AnswerNo, dialogErr
		}},
	}

	res, err := e.Ensure(context.Background())
	var target *webview2.UnknownDialogResultError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, int32(42), target.Value)
	assert.Equal(t, webview2.StatusFailed, res.Status)
	assert.Empty(t, installer.Calls)
}

func TestEnsure_AssumeYesSkipsPrompts(t *testing.T) {
	installer := &testutils.MockInstaller{
		InstallFunc: func(ctx context.Context, elevate bool) error {
			if elevate {
				return webview2.ErrElevationTimeout
			}
			return nil
		},
	}
	prompter := &testutils.MockPrompter{}
	e := &webview2.Ensurer{
		Probe:     probeReturning("", false),
		Installer: installer,
		Prompter:  prompter,
		Elevate:   true,
		AssumeYes: true,
	}

	res, err := e.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Attempts)
	assert.Empty(t, prompter.Confirms)
}

func TestEnsure_OutdatedRuntimeIsReinstalled(t *testing.T) {
	installer := &testutils.MockInstaller{}
	prompter := &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerYes)}
	e := &webview2.Ensurer{
		Probe:      probeReturning("86.0.616.0", true),
		Installer:  installer,
		Prompter:   prompter,
		MinVersion: "110.0.1587.40",
	}

	res, err := e.Ensure(context.Background())
	require.NoError(t, err)
	assert.False(t, res.AlreadyInstalled)
	assert.Equal(t, []bool{false}, installer.Calls)
	require.Len(t, prompter.Confirms, 1)
	assert.Contains(t, prompter.Confirms[0].Message, "86.0.616.0")
	assert.Contains(t, prompter.Confirms[0].Message, "110.0.1587.40")
}

func TestEnsure_MinimumSatisfied(t *testing.T) {
	installer := &testutils.MockInstaller{}
	e := &webview2.Ensurer{
		Probe:      probeReturning("120.0.2210.91", true),
		Installer:  installer,
		Prompter:   &testutils.MockPrompter{},
		MinVersion: "110.0.1587.40",
	}

	res, err := e.Ensure(context.Background())
	require.NoError(t, err)
	assert.True(t, res.AlreadyInstalled)
	assert.Empty(t, installer.Calls)
}

func TestInstall_IgnoresProbe(t *testing.T) {
	installer := &testutils.MockInstaller{}
	e := &webview2.Ensurer{
		Probe:     probeReturning("120.0.2210.91", true),
		Installer: installer,
		Prompter:  &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerYes)},
		Elevate:   true,
	}

	res, err := e.Install(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, installer.Calls)
	assert.True(t, res.Elevated)
	assert.Equal(t, 1, res.Attempts)
}

func TestEnsure_InterruptedElevatedAttemptSkipsFallback(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() context.Context
		err  error
	}{
		{
			name: "cancelledError",
			ctx:  context.Background,
			err:  fmt.Errorf("install progress: %w", context.Canceled),
		},
		{
			name: "cancelledContext",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			err: &webview2.LaunchError{Path: "setup.exe", ExitCode: -1, Err: errors.New("signal: killed")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installer := &testutils.MockInstaller{
				InstallFunc: func(ctx context.Context, elevate bool) error { return tt.err },
			}
			prompter := &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerYes, webview2.AnswerYes)}
			e := &webview2.Ensurer{
				Probe:     probeReturning("", false),
				Installer: installer,
				Prompter:  prompter,
				Elevate:   true,
			}

			res, err := e.Ensure(tt.ctx())
			assert.Same(t, tt.err, err)
			assert.Equal(t, webview2.StatusFailed, res.Status)
			assert.Equal(t, []bool{true}, installer.Calls)
			assert.Len(t, prompter.Confirms, 1)
		})
	}
}

func TestEnsure_AlreadyElevatedFailureSkipsFallback(t *testing.T) {
	installErr := &webview2.LaunchError{Path: "setup.exe", ExitCode: 5}
	installer := &testutils.MockInstaller{
		AlreadyElevated: true,
		InstallFunc:     func(ctx context.Context, elevate bool) error { return installErr },
	}
	prompter := &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerYes, webview2.AnswerYes)}
	e := &webview2.Ensurer{
		Probe:     probeReturning("", false),
		Installer: installer,
		Prompter:  prompter,
		Elevate:   true,
	}

	res, err := e.Ensure(context.Background())
	assert.Same(t, installErr, err)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, []bool{true}, installer.Calls)
	assert.Len(t, prompter.Confirms, 1)
}

func TestEnsure_AlreadyElevatedSuccessIsNotReportedAsElevated(t *testing.T) {
	installer := &testutils.MockInstaller{AlreadyElevated: true}
	e := &webview2.Ensurer{
		Probe:     probeReturning("", false),
		Installer: installer,
		Prompter:  &testutils.MockPrompter{ConfirmFunc: testutils.Answers(webview2.AnswerYes)},
		Elevate:   true,
	}

	res, err := e.Install(context.Background())
	require.NoError(t, err)
	assert.Equal(t, webview2.StatusSuccess, res.Status)
	assert.False(t, res.Elevated)
}

func TestEnsure_InvalidMinimumIsRejected(t *testing.T) {
	for _, installed := range []webview2.ProbeFunc{probeReturning("120.0.2210.91", true), probeReturning("", false)} {
		installer := &testutils.MockInstaller{}
		prompter := &testutils.MockPrompter{}
		e := &webview2.Ensurer{
			Probe:      installed,
			Installer:  installer,
			Prompter:   prompter,
			MinVersion: "latest",
		}

		res, err := e.Ensure(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latest")
		assert.Equal(t, webview2.StatusFailed, res.Status)
		assert.Empty(t, installer.Calls)
		assert.Empty(t, prompter.Confirms)

		_, err = e.Install(context.Background())
		require.Error(t, err)
		assert.Empty(t, installer.Calls)
	}
}
