package webview2

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Answer is the user's reply to a confirmation.
type Answer int

const (
	AnswerNo Answer = iota
	AnswerYes
	AnswerCancel
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	case AnswerCancel:
		return "cancel"
	default:
		return fmt.Sprintf("Answer(%d)", int(a))
	}
}

// Prompter asks the user to confirm each branch and shows the outcome.
type Prompter interface {
	Confirm(title, message string) (Answer, error)
	ShowInfo(title, message string)
	ShowError(title, message string)
}

// InstallRunner performs a single install attempt and reports whether it
// went through the elevated launch path.
type InstallRunner interface {
	Install(ctx context.Context, elevate bool) (bool, error)
}

const (
	PromptTitle = "WebView2 Runtime"

	installMessage = "The Microsoft Edge WebView2 runtime is required but was not found.\n\n" +
		"Download and install it now?"
	outdatedMessage = "The installed Microsoft Edge WebView2 runtime (%s) is older than the required %s.\n\n" +
		"Download and install the latest runtime now?"
	fallbackMessage = "Installing the WebView2 runtime with administrator rights failed:\n\n%v\n\n" +
		"Try again without administrator rights?"
)

// Ensurer drives the detect, confirm, install and fallback sequence.
type Ensurer struct {
	Probe     ProbeFunc
	Installer InstallRunner
	Prompter  Prompter

	// Elevate requests an elevated first attempt.
	Elevate bool

	// MinVersion, when set, makes older runtimes count as missing.
	MinVersion string

	// AssumeYes answers every confirmation with yes.
	AssumeYes bool
}

// NewEnsurer returns an Ensurer using the registry probe and the default
// installer.
func NewEnsurer(buildVersion string, prompter Prompter, elevate bool) *Ensurer {
	return &Ensurer{
		Probe:     InstalledVersion,
		Installer: NewInstaller(buildVersion),
		Prompter:  prompter,
		Elevate:   elevate,
	}
}

// Ensure returns immediately when a suitable runtime is installed, otherwise
// it asks for confirmation and installs.
func (e *Ensurer) Ensure(ctx context.Context) (Result, error) {
	if err := ValidateMinimum(e.MinVersion); err != nil {
		return Result{Status: StatusFailed}, err
	}
	probe := e.probe()
	installed, ok := probe()
	message := installMessage
	if ok {
		meets, err := MeetsMinimum(installed, e.MinVersion)
		if err != nil {
			log.Warnf("treating unparsable runtime %q as outdated: %v", installed, err)
		}
		if meets {
			log.Infof("webview2 runtime %s already installed", installed)
			return Result{Status: StatusSuccess, Version: installed, AlreadyInstalled: true}, nil
		}
		message = fmt.Sprintf(outdatedMessage, installed, e.MinVersion)
	}
	return e.install(ctx, message)
}

// Install skips the probe and runs the confirmation and install steps.
func (e *Ensurer) Install(ctx context.Context) (Result, error) {
	if err := ValidateMinimum(e.MinVersion); err != nil {
		return Result{Status: StatusFailed}, err
	}
	return e.install(ctx, installMessage)
}

func (e *Ensurer) install(ctx context.Context, message string) (Result, error) {
	res := Result{Status: StatusFailed}

	answer, err := e.confirm(message)
	if err != nil {
		return res, err
	}
	if answer != AnswerYes {
		log.Infof("user answered %s to install prompt", answer)
		res.Status = StatusDeclined
		return res, ErrUserCancelled
	}

	res.Attempts++
	elevated, installErr := e.Installer.Install(ctx, e.Elevate)
	if installErr == nil {
		return e.succeeded(res, elevated), nil
	}
	if interrupted(ctx, installErr) {
		log.Infof("install interrupted: %v", installErr)
		return res, installErr
	}
	if !elevated {
		return res, installErr
	}

	log.Warnf("elevated install failed: %v", installErr)
	answer, err = e.confirm(fmt.Sprintf(fallbackMessage, installErr))
	if err != nil {
		return res, err
	}
	if answer != AnswerYes {
		log.Infof("user answered %s to fallback prompt", answer)
		return res, installErr
	}

	res.Attempts++
	if _, err := e.Installer.Install(ctx, false); err != nil {
		return res, err
	}
	return e.succeeded(res, false), nil
}

// interrupted reports whether the caller cancelled the attempt, in which
// case no fallback is offered.
func interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}

func (e *Ensurer) succeeded(res Result, elevated bool) Result {
	res.Status = StatusSuccess
	res.Elevated = elevated
	if v, ok := e.probe()(); ok {
		res.Version = v
	}
	return res
}

func (e *Ensurer) confirm(message string) (Answer, error) {
	if e.AssumeYes {
		return AnswerYes, nil
	}
	return e.Prompter.Confirm(PromptTitle, message)
}

func (e *Ensurer) probe() ProbeFunc {
	if e.Probe != nil {
		return e.Probe
	}
	return InstalledVersion
}
