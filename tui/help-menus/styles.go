package helpmenus

import (
	"io"
	"sync"

	"github.com/Thunder-Compute/wv2setup/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

var (
	initOnce     sync.Once
	HeaderStyle  lipgloss.Style
	SectionStyle lipgloss.Style
	CommandStyle lipgloss.Style
	DescStyle    lipgloss.Style
	FlagStyle    lipgloss.Style
	ExampleStyle lipgloss.Style
)

const (
	flagColorHex    = "#ff6b35"
	descColorHex    = "#f2f2f2"
	exampleColorHex = "#bcbcbc"
)

func InitHelpStyles(out io.Writer) {
	theme.Init(out)

	initOnce.Do(func() {
		r := theme.Renderer()

		HeaderStyle = theme.Primary().Bold(true).Padding(1, 0)
		SectionStyle = theme.Label().MarginTop(1)
		CommandStyle = theme.Primary().Bold(true).Width(14)
		DescStyle = r.NewStyle().Foreground(lipgloss.Color(descColorHex))
		FlagStyle = r.NewStyle().Foreground(lipgloss.Color(flagColorHex)).Bold(true).Width(22)
		ExampleStyle = r.NewStyle().Foreground(lipgloss.Color(exampleColorHex)).Italic(true)
	})
}
