package cmd

import (
	"os"

	"github.com/Thunder-Compute/wv2setup/internal/console"
	"github.com/Thunder-Compute/wv2setup/internal/dialog"
	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/Thunder-Compute/wv2setup/tui"
)

// PromptMode selects how confirmations are shown.
type PromptMode string

const (
	PromptAuto     PromptMode = "auto"
	PromptDialog   PromptMode = "dialog"
	PromptTerminal PromptMode = "terminal"
)

func (m PromptMode) valid() bool {
	switch m {
	case PromptAuto, PromptDialog, PromptTerminal:
		return true
	}
	return false
}

var (
	dialogAvailable = dialog.Available
	isInteractive   = console.IsInteractive
)

// resolvePromptMode turns auto into a concrete mode: terminal prompts when
// attached to a console, native dialogs otherwise.
func resolvePromptMode(mode PromptMode) PromptMode {
	if mode != PromptAuto {
		return mode
	}
	if isInteractive() || !dialogAvailable() {
		return PromptTerminal
	}
	return PromptDialog
}

var newPrompter = func(mode PromptMode) webview2.Prompter {
	if resolvePromptMode(mode) == PromptDialog {
		return dialog.New()
	}
	return tui.NewTerminalPrompter(os.Stderr)
}
