package ui

import (
	"math"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// CategorySelectedMsg is emitted when the user opens a category.
type CategorySelectedMsg struct {
	Category Category
}

// BrowserModel lists the directory categories. The selected entry's title
// eases toward the accent colour on a spring, re-triggered on every move.
type BrowserModel struct {
	list    list.Model
	theme   Theme
	spring  harmonica.Spring
	glow    float64
	glowVel float64
	index   int
}

// NewBrowser creates the category list for theme t.
func NewBrowser(t Theme, fps int) BrowserModel {
	cats := Categories()
	items := make([]list.Item, len(cats))
	for i, c := range cats {
		items[i] = c
	}

	l := list.New(items, newDelegate(t, 0), 60, 20)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return BrowserModel{
		list:   l,
		theme:  t,
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 6.0, 0.8),
	}
}

// Filtering reports whether the list is capturing keys for its filter.
func (m BrowserModel) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the highlighted category.
func (m BrowserModel) Selected() (Category, bool) {
	c, ok := m.list.SelectedItem().(Category)
	return c, ok
}

// Glow is the current highlight level in [0,1].
func (m BrowserModel) Glow() float64 { return clamp01(m.glow) }

func (m *BrowserModel) SetTheme(t Theme) {
	m.theme = t
	m.list.SetDelegate(newDelegate(t, m.glow))
}

func (m *BrowserModel) SetSize(w, h int) {
	m.list.SetSize(w, h)
}

// Animate advances the highlight spring by one frame.
func (m *BrowserModel) Animate() {
	if m.list.Index() != m.index {
		m.index = m.list.Index()
		m.glow, m.glowVel = 0, 0
	}
	if math.Abs(1-m.glow) < 0.005 && math.Abs(m.glowVel) < 0.005 {
		return
	}
	m.glow, m.glowVel = m.spring.Update(m.glow, m.glowVel, 1)
	m.list.SetDelegate(newDelegate(m.theme, m.glow))
}

// Settle jumps the highlight to its resting level, for when no frames run.
func (m *BrowserModel) Settle() {
	m.index = m.list.Index()
	m.glow, m.glowVel = 1, 0
	m.list.SetDelegate(newDelegate(m.theme, 1))
}

func (m BrowserModel) Init() tea.Cmd { return nil }

func (m BrowserModel) Update(msg tea.Msg) (BrowserModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() && msg.String() == "enter" {
		if c, ok := m.Selected(); ok {
			return m, func() tea.Msg { return CategorySelectedMsg{Category: c} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) View() string {
	return m.list.View()
}
