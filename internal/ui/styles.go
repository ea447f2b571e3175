package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type palette struct {
	primary   string
	secondary string
	muted     string
	accent    string
	border    string
}

var palettes = map[Theme]palette{
	ThemeDark: {
		primary:   "#F5F5F5",
		secondary: "#A3A3A3",
		muted:     "#5C5C5C",
		accent:    "#60A5FA",
		border:    "#333333",
	},
	ThemeLight: {
		primary:   "#1A1A1A",
		secondary: "#555555",
		muted:     "#9A9A9A",
		accent:    "#2563EB",
		border:    "#DDDDDD",
	},
}

type styles struct {
	header  lipgloss.Style
	heading lipgloss.Style
	sub     lipgloss.Style
	body    lipgloss.Style
	muted   lipgloss.Style
	badge   lipgloss.Style
	help    lipgloss.Style
	rule    lipgloss.Style
}

func newStyles(t Theme) styles {
	p := palettes[t]
	return styles{
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)),
		heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)),
		sub: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.secondary)),
		body: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		badge: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(p.accent)),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		rule: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.border)),
	}
}

func newHelp(s styles) help.Model {
	h := help.New()
	h.Styles.ShortKey = s.help.Bold(true)
	h.Styles.ShortDesc = s.help
	h.Styles.ShortSeparator = s.help
	return h
}

// highlightColor blends the resting title colour toward the accent as the
// selection highlight eases in.
func highlightColor(t Theme, level float64) lipgloss.Color {
	p := palettes[t]
	from, err := colorful.Hex(p.secondary)
	if err != nil {
		return lipgloss.Color(p.accent)
	}
	to, err := colorful.Hex(p.accent)
	if err != nil {
		return lipgloss.Color(p.accent)
	}
	return lipgloss.Color(from.BlendRgb(to, clamp01(level)).Clamped().Hex())
}

func newDelegate(t Theme, level float64) list.DefaultDelegate {
	p := palettes[t]
	d := list.NewDefaultDelegate()
	d.Styles.NormalTitle = d.Styles.NormalTitle.
		Foreground(lipgloss.Color(p.primary))
	d.Styles.NormalDesc = d.Styles.NormalDesc.
		Foreground(lipgloss.Color(p.secondary))
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(highlightColor(t, level)).
		BorderLeftForeground(lipgloss.Color(p.accent))
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(lipgloss.Color(p.primary)).
		BorderLeftForeground(lipgloss.Color(p.accent))
	d.Styles.DimmedTitle = d.Styles.DimmedTitle.
		Foreground(lipgloss.Color(p.muted))
	d.Styles.DimmedDesc = d.Styles.DimmedDesc.
		Foreground(lipgloss.Color(p.muted))
	return d
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
