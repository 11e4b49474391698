package tui

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
// https://catppuccin.com/palette
const (
	colorBase    = "#1e1e2e"
	colorSurface = "#313244"
	colorOverlay = "#6c7086"
	colorSubtext = "#a6adc8"
	colorText    = "#cdd6f4"
	colorRed     = "#f38ba8"
	colorPeach   = "#fab387"
	colorGreen   = "#a6e3a1"
	colorTeal    = "#94e2d5"
	colorBlue    = "#89b4fa"
	colorMauve   = "#cba6f7"
)

// DefaultAccent is the accent color used when the config does not set one.
const DefaultAccent = "#AF87FF"

// Theme carries every style the interface renders with. Styles are plain
// values, so a Theme can be copied freely once built.
type Theme struct {
	Accent lipgloss.Color

	HeaderApp   lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style
	FooterSep  lipgloss.Style

	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style

	Cursor          lipgloss.Style
	PaneBorder      lipgloss.Style
	PaneBorderFocus lipgloss.Style

	ModalBox     lipgloss.Style
	ModalTitle   lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	LineNumber  lipgloss.Style
	CurrentLine lipgloss.Style
	Marker      lipgloss.Style

	Chroma *chroma.Style
}

// NewTheme builds a theme around the given accent color. An empty accent
// falls back to DefaultAccent; the value is passed straight to lipgloss,
// which accepts hex strings and ANSI color numbers alike.
func NewTheme(accent string) Theme {
	if accent == "" {
		accent = DefaultAccent
	}
	ac := lipgloss.Color(accent)

	return Theme{
		Accent: ac,

		HeaderApp: lipgloss.NewStyle().Bold(true).Foreground(ac).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBase)).
			Background(ac).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSubtext)).
			Padding(0, 1),

		FooterKey:  lipgloss.NewStyle().Bold(true).Foreground(ac),
		FooterDesc: lipgloss.NewStyle().Foreground(lipgloss.Color(colorSubtext)),
		FooterSep:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorOverlay)),

		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorText)),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color(colorSubtext)),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(colorOverlay)),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed)),

		Cursor: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBase)).
			Background(ac),
		PaneBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorSurface)),
		PaneBorderFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ac),

		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ac).
			Padding(1, 3),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorText)),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSubtext)).
			Background(lipgloss.Color(colorSurface)).
			Padding(0, 3),
		ButtonActive: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBase)).
			Background(ac).
			Padding(0, 3),

		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color(colorOverlay)),
		CurrentLine: lipgloss.NewStyle().Bold(true).
			Background(lipgloss.Color(colorSurface)),
		Marker: lipgloss.NewStyle().Bold(true).Foreground(ac),

		Chroma: newChromaStyle(),
	}
}

// newChromaStyle maps the palette onto the token classes the shell lexers
// emit. The table is static, so a construction error is a programmer
// mistake and panics.
func newChromaStyle() *chroma.Style {
	style, err := chroma.NewStyle("shdbg", chroma.StyleEntries{
		chroma.Text:            colorText,
		chroma.Error:           colorRed,
		chroma.Comment:         "italic " + colorOverlay,
		chroma.Keyword:         colorMauve,
		chroma.NameBuiltin:     colorRed,
		chroma.NameFunction:    colorBlue,
		chroma.NameVariable:    colorPeach,
		chroma.LiteralString:   colorGreen,
		chroma.LiteralNumber:   colorPeach,
		chroma.Operator:        colorTeal,
		chroma.Punctuation:     colorSubtext,
		chroma.GenericEmph:     "italic",
		chroma.GenericStrong:   "bold",
		chroma.GenericDeleted:  colorRed,
		chroma.GenericInserted: colorGreen,
	})
	if err != nil {
		panic(err)
	}
	return style
}
