package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one Catppuccin flavour.
type Palette struct {
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color
	Red      lipgloss.Color
}

// Mocha is the dark flavour.
var Mocha = Palette{
	Base:     lipgloss.Color("#1e1e2e"),
	Mantle:   lipgloss.Color("#181825"),
	Surface0: lipgloss.Color("#313244"),
	Surface1: lipgloss.Color("#45475a"),
	Text:     lipgloss.Color("#cdd6f4"),
	Subtext0: lipgloss.Color("#a6adc8"),
	Lavender: lipgloss.Color("#b4befe"),
	Sapphire: lipgloss.Color("#74c7ec"),
	Green:    lipgloss.Color("#a6e3a1"),
	Peach:    lipgloss.Color("#fab387"),
	Red:      lipgloss.Color("#f38ba8"),
}

// Latte is the light flavour.
var Latte = Palette{
	Base:     lipgloss.Color("#eff1f5"),
	Mantle:   lipgloss.Color("#e6e9ef"),
	Surface0: lipgloss.Color("#ccd0da"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Text:     lipgloss.Color("#4c4f69"),
	Subtext0: lipgloss.Color("#6c6f85"),
	Lavender: lipgloss.Color("#7287fd"),
	Sapphire: lipgloss.Color("#209fb5"),
	Green:    lipgloss.Color("#40a02b"),
	Peach:    lipgloss.Color("#fe640b"),
	Red:      lipgloss.Color("#d20f39"),
}

// Styles is everything a view needs to render in one mode. Views never
// reach for package-level styles; the shell hands them a Styles value.
type Styles struct {
	Dark    bool
	Palette Palette

	App        lipgloss.Style
	Bar        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Card       lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
	Selected   lipgloss.Style
}

// For builds the style set for dark or light mode.
func For(dark bool) Styles {
	p := Latte
	if dark {
		p = Mocha
	}

	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface1).
		Background(p.Mantle).
		Foreground(p.Text).
		Padding(1)

	return Styles{
		Dark:    dark,
		Palette: p,
		App: lipgloss.NewStyle().
			Background(p.Base).
			Foreground(p.Text),
		Bar:        lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Text),
		Pane:       pane,
		PaneActive: pane.BorderForeground(p.Lavender),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface1).
			Foreground(p.Text).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Foreground(p.Sapphire).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(p.Subtext0),
		Hot:      lipgloss.NewStyle().Foreground(p.Peach).Bold(true),
		Good:     lipgloss.NewStyle().Foreground(p.Green),
		Bad:      lipgloss.NewStyle().Foreground(p.Red),
		Selected: lipgloss.NewStyle().Foreground(p.Lavender).Bold(true),
	}
}

// Mode is the shared light/dark flag. The shell owns the only instance.
type Mode struct {
	dark bool
}

func NewMode(dark bool) Mode { return Mode{dark: dark} }

func (m Mode) Dark() bool { return m.dark }

func (m *Mode) Toggle() { m.dark = !m.dark }

func (m *Mode) Set(dark bool) { m.dark = dark }

func (m Mode) Styles() Styles { return For(m.dark) }
