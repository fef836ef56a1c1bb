package tui

import (
	"context"
	"io"

	"github.com/Thunder-Compute/wv2setup/tui/theme"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpStyleTUI    lipgloss.Style
	errorStyleTUI   lipgloss.Style
	warningStyleTUI lipgloss.Style
	successStyle    lipgloss.Style

	primaryStyle    lipgloss.Style
	labelStyle      lipgloss.Style
	subtleTextStyle lipgloss.Style
	warningBoxStyle lipgloss.Style
)

// CancellationError is returned when the user interrupts an interactive step.
type CancellationError struct{}

func (e *CancellationError) Error() string {
	return "operation cancelled"
}

func (e *CancellationError) Unwrap() error {
	return context.Canceled
}

func InitCommonStyles(out io.Writer) {
	theme.Init(out)

	helpStyleTUI = theme.Neutral().Italic(true)
	errorStyleTUI = theme.Error()
	warningStyleTUI = theme.Warning()
	successStyle = theme.Success()

	primaryStyle = theme.Primary()
	labelStyle = theme.Label()
	subtleTextStyle = theme.Neutral()
	warningBoxStyle = warningStyleTUI.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.WarningColorHex)).
		Padding(1, 2)
}

// renderStatus prefixes message with a status glyph. Empty messages render
// as nothing.
func renderStatus(style lipgloss.Style, prefix, message string) string {
	if message == "" {
		return ""
	}
	return style.Render(prefix + message)
}

func RenderWarning(message string) string {
	return renderStatus(warningStyleTUI, "⚠ Warning: ", message)
}

func RenderSuccess(message string) string {
	return renderStatus(successStyle, "✓ Success: ", message)
}

func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return RenderErrorMessage(err.Error())
}

func RenderErrorMessage(message string) string {
	return renderStatus(errorStyleTUI, "✗ Error: ", message)
}

func PrimaryStyle() lipgloss.Style {
	return primaryStyle
}

func LabelStyle() lipgloss.Style {
	return labelStyle
}

func SubtleTextStyle() lipgloss.Style {
	return subtleTextStyle
}

func WarningBoxStyle() lipgloss.Style {
	return warningBoxStyle
}

func HelpStyle() lipgloss.Style {
	return helpStyleTUI
}

func WarningStyle() lipgloss.Style {
	return warningStyleTUI
}

func SuccessStyle() lipgloss.Style {
	return successStyle
}

func ErrorStyle() lipgloss.Style {
	return errorStyleTUI
}

func NewPrimarySpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = primaryStyle
	return s
}
