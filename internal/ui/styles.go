package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/horizon/internal/chart"
	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/prefs"
)

// Palette is the set of colors for one theme.
type Palette struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Surface   lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Track     lipgloss.Color

	// Tiers colors the similarity badge: low, fair, good, great.
	Tiers [4]lipgloss.Color
}

var darkPalette = Palette{
	Text:      lipgloss.Color("#dfe6e9"),
	Muted:     lipgloss.Color("#636e72"),
	Accent:    lipgloss.Color("#6c5ce7"),
	Highlight: lipgloss.Color("#a29bfe"),
	Surface:   lipgloss.Color("236"),
	Error:     lipgloss.Color("#ff7675"),
	Success:   lipgloss.Color("#00b894"),
	Track:     lipgloss.Color("238"),
	Tiers: [4]lipgloss.Color{
		lipgloss.Color("#d63031"),
		lipgloss.Color("#fdcb6e"),
		lipgloss.Color("#0984e3"),
		lipgloss.Color("#00b894"),
	},
}

var lightPalette = Palette{
	Text:      lipgloss.Color("#2d3436"),
	Muted:     lipgloss.Color("#636e72"),
	Accent:    lipgloss.Color("#6c5ce7"),
	Highlight: lipgloss.Color("#5f27cd"),
	Surface:   lipgloss.Color("254"),
	Error:     lipgloss.Color("#d63031"),
	Success:   lipgloss.Color("#00a383"),
	Track:     lipgloss.Color("250"),
	Tiers: [4]lipgloss.Color{
		lipgloss.Color("#d63031"),
		lipgloss.Color("#e17055"),
		lipgloss.Color("#0984e3"),
		lipgloss.Color("#00a383"),
	},
}

// PaletteFor returns the palette of a theme.
func PaletteFor(t prefs.Theme) Palette {
	if t == prefs.Light {
		return lightPalette
	}
	return darkPalette
}

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Palette Palette

	Title        lipgloss.Style
	Section      lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	CardTitle    lipgloss.Style
	Meta         lipgloss.Style
	Genre        lipgloss.Style
	Favorite     lipgloss.Style
	Notice       lipgloss.Style
	Error        lipgloss.Style
	Chip         lipgloss.Style
	Suggestion   lipgloss.Style
	Active       lipgloss.Style
	Panel        lipgloss.Style
	Modal        lipgloss.Style
	Alert        lipgloss.Style
	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	Toast        lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles builds the styles for a theme.
func NewStyles(t prefs.Theme) Styles {
	p := PaletteFor(t)
	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Padding(0, 1),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Highlight).
			MarginTop(1).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Foreground(p.Text).
			Padding(0, 1),

		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Text).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Meta:      lipgloss.NewStyle().Foreground(p.Muted),
		Genre: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Background(p.Surface).
			Padding(0, 1).
			MarginRight(1),
		Favorite: lipgloss.NewStyle().Foreground(p.Error).Bold(true),

		Notice: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Padding(1, 2),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Foreground(p.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),

		Suggestion: lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1),
		Active: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(p.Accent).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),

		Alert: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Error).
			Foreground(p.Error).
			Bold(true).
			Padding(1, 2),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),

		StatusKey: lipgloss.NewStyle().Foreground(p.Highlight).Bold(true),

		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(p.Success).
			Bold(true).
			Padding(0, 1),

		Help: lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
	}
}

// Badge renders the similarity percentage in its tier color.
func (s Styles) Badge(percent int) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(s.Palette.Tiers[game.TierFor(percent)]).
		Padding(0, 1)
}

// ChartStyle colors charts to match the theme.
func (s Styles) ChartStyle() chart.Style {
	return chart.Style{
		Fill:  s.Palette.Accent,
		Track: s.Palette.Track,
		Label: s.Palette.Muted,
	}
}
