package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Thunder-Compute/wv2setup/internal/console"
	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ErrNotInteractive is returned when a terminal prompt is needed but no
// terminal is attached.
var ErrNotInteractive = errors.New("confirmation requires an interactive terminal; rerun with --yes or --prompt dialog")

// TerminalPrompter asks for confirmation with a huh form.
type TerminalPrompter struct {
	out        io.Writer
	isTerminal func() bool
	confirm    func(title, message string) (bool, error)
}

func NewTerminalPrompter(out io.Writer) *TerminalPrompter {
	p := &TerminalPrompter{out: out, isTerminal: console.IsInteractive}
	p.confirm = p.runConfirm
	return p
}

func (p *TerminalPrompter) Confirm(title, message string) (webview2.Answer, error) {
	if !p.isTerminal() {
		return webview2.AnswerCancel, ErrNotInteractive
	}

	accepted, err := p.confirm(title, message)
	switch {
	case errors.Is(err, huh.ErrUserAborted):
		return webview2.AnswerCancel, nil
	case err != nil:
		return webview2.AnswerCancel, fmt.Errorf("confirmation prompt: %w", err)
	case accepted:
		return webview2.AnswerYes, nil
	default:
		return webview2.AnswerNo, nil
	}
}

func (p *TerminalPrompter) ShowInfo(_ string, message string) {
	InitCommonStyles(os.Stdout)
	fmt.Fprintln(p.out, SuccessStyle().Render("✓ "+message))
}

func (p *TerminalPrompter) ShowError(_ string, message string) {
	InitCommonStyles(os.Stdout)
	fmt.Fprintln(p.out, RenderErrorMessage(message))
}

func (p *TerminalPrompter) runConfirm(title, message string) (bool, error) {
	accepted := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(message).
				Affirmative("Yes").
				Negative("No").
				Value(&accepted),
		),
	)
	form.WithProgramOptions(tea.WithOutput(p.out))
	if err := form.Run(); err != nil {
		return false, err
	}
	return accepted, nil
}
