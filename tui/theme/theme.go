package theme

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const (
	PrimaryColorHex     = "#8dc8ff"
	NeutralTextColorHex = "#888888"
	LabelTextColorHex   = "#FFFFFF"
	SuccessColorHex     = "#00D787"
	ErrorColorHex       = "#FF5555"
	WarningColorHex     = "#FFB86C"
)

// Palette is the set of base styles every view derives from.
type Palette struct {
	Primary lipgloss.Style
	Neutral lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var (
	once     sync.Once
	renderer *lipgloss.Renderer
	palette  Palette
)

// Init binds the palette to out. Only the first call has an effect.
func Init(out io.Writer) {
	once.Do(func() {
		renderer = lipgloss.NewRenderer(out)
		palette = NewPalette(renderer)
	})
}

// NewPalette builds the palette on r.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Primary: r.NewStyle().Foreground(lipgloss.Color(PrimaryColorHex)),
		Neutral: r.NewStyle().Foreground(lipgloss.Color(NeutralTextColorHex)),
		Label:   r.NewStyle().Foreground(lipgloss.Color(LabelTextColorHex)).Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color(SuccessColorHex)).Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color(ErrorColorHex)).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color(WarningColorHex)).Bold(true),
	}
}

func Renderer() *lipgloss.Renderer {
	return renderer
}

func Primary() lipgloss.Style {
	return palette.Primary
}

func Neutral() lipgloss.Style {
	return palette.Neutral
}

func Label() lipgloss.Style {
	return palette.Label
}

func Success() lipgloss.Style {
	return palette.Success
}

func Error() lipgloss.Style {
	return palette.Error
}

func Warning() lipgloss.Style {
	return palette.Warning
}
