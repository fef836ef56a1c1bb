package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type installStyles struct {
	version    lipgloss.Style
	arrow      lipgloss.Style
	help       lipgloss.Style
	spinnerMsg lipgloss.Style
}

func newInstallStyles() installStyles {
	return installStyles{
		version:    PrimaryStyle().Bold(true),
		arrow:      SubtleTextStyle(),
		help:       HelpStyle(),
		spinnerMsg: LabelStyle().Bold(false),
	}
}

func RenderInstalled(version string) string {
	InitCommonStyles(os.Stdout)
	return SuccessStyle().Render(fmt.Sprintf("✓ WebView2 runtime is installed (%s)", version))
}

func RenderNotInstalled() string {
	InitCommonStyles(os.Stdout)
	return WarningStyle().Render("⚠ WebView2 runtime is not installed")
}

func RenderOutdated(installed, minimum string) string {
	InitCommonStyles(os.Stdout)
	styles := newInstallStyles()
	return fmt.Sprintf("%s %s %s %s",
		WarningStyle().Render("⚠ WebView2 runtime is outdated:"),
		styles.version.Render(installed),
		styles.arrow.Render("<"),
		styles.version.Render(minimum))
}

func RenderInstallSuccess(version string) string {
	InitCommonStyles(os.Stdout)
	if version == "" {
		return SuccessStyle().Render("✓ WebView2 runtime installed successfully!")
	}
	return SuccessStyle().Render(fmt.Sprintf("✓ WebView2 runtime %s installed successfully!", version))
}

func RenderDeclined() string {
	InitCommonStyles(os.Stdout)
	return WarningStyle().Render("⚠ WebView2 runtime installation skipped.")
}

func RenderInstallFailed(err error, downloadURL string) string {
	InitCommonStyles(os.Stdout)
	var content strings.Builder
	content.WriteString(ErrorStyle().Render(fmt.Sprintf("✗ Installation failed: %v", err)))
	content.WriteString("\n")
	content.WriteString(HelpStyle().Render(fmt.Sprintf("You can download the runtime manually from: %s", downloadURL)))
	return content.String()
}

// RenderElevationNotice boxes the hint shown before a UAC prompt appears.
func RenderElevationNotice() string {
	InitCommonStyles(os.Stdout)
	return WarningBoxStyle().Render("Windows will ask for administrator permission.\nAccept the prompt to install for all users.")
}

type InstallProgressModel struct {
	spinner     spinner.Model
	message     string
	quitting    bool
	done        bool
	interrupted bool
	err         error
	action      func() error
	cancel      context.CancelFunc
	styles      installStyles
}

type installDoneMsg struct {
	err error
}

func runInstallAction(action func() error) tea.Cmd {
	return func() tea.Msg {
		return installDoneMsg{err: action()}
	}
}

func NewInstallProgressModel(message string, action func() error, cancel context.CancelFunc) InstallProgressModel {
	InitCommonStyles(os.Stdout)
	return InstallProgressModel{
		spinner: NewPrimarySpinner(),
		message: message,
		action:  action,
		cancel:  cancel,
		styles:  newInstallStyles(),
	}
}

func (m InstallProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runInstallAction(m.action))
}

func (m InstallProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case installDoneMsg:
		m.done = true
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		// The action keeps running until the installer it started has exited.
		if msg.String() == "ctrl+c" && !m.interrupted {
			if m.cancel != nil {
				m.cancel()
			}
			m.interrupted = true
			return m, nil
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m InstallProgressModel) View() string {
	if m.quitting || m.done {
		return ""
	}
	if m.interrupted {
		return fmt.Sprintf("%s %s\n", m.spinner.View(),
			m.styles.spinnerMsg.Render("Cancelling, waiting for the installer to exit..."))
	}
	return fmt.Sprintf("%s %s\n%s", m.spinner.View(), m.styles.spinnerMsg.Render(m.message),
		m.styles.help.Render("Press Ctrl+C to cancel\n"))
}

// RunInstallProgress runs action behind a spinner written to out. Ctrl+C
// cancels the action's context, waits for the action to return and then
// returns a CancellationError.
func RunInstallProgress(ctx context.Context, out io.Writer, message string, action func(context.Context) error) error {
	InitCommonStyles(os.Stdout)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewInstallProgressModel(message, func() error { return action(ctx) }, cancel)
	p := tea.NewProgram(m, tea.WithOutput(out))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running install progress: %w", err)
	}

	result := finalModel.(InstallProgressModel)
	if result.interrupted {
		return &CancellationError{}
	}
	return result.err
}
