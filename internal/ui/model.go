package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/gateway/internal/config"
	"github.com/olivier-w/gateway/internal/host"
	"github.com/olivier-w/gateway/internal/lifecycle"
	"github.com/olivier-w/gateway/internal/surface"
)

const (
	appTitle     = "GATEWAY LINKS 2K25"
	heroText     = "Your gateway to an extensive collection of streaming platforms, applications, books, AI tools, games, and more. Discover everything in one place with a clean, modern interface."
	pendingText  = "This section is currently being populated. Check back soon or use the navigation to explore other categories!"
	upgradeText  = "This section is currently under development and undergoing upgrades. Please check back soon for updates!"
	contentWidth = 72
	marginLeft   = 2
)

type page int

const (
	pageDirectory page = iota
	pageCategory
)

// Options wires the model to its display host.
type Options struct {
	Host     *host.Terminal
	Stars    *lifecycle.Controller // nil disables the star field
	Settings *config.Settings
	FPS      int
}

// Model is the Bubbletea model for the gateway directory.
type Model struct {
	host     *host.Terminal
	stars    *lifecycle.Controller
	settings config.Settings

	browser  BrowserModel
	help     help.Model
	page     page
	category Category
	theme    Theme
	styles   styles

	width    int
	height   int
	quitting bool
}

// New creates the directory model.
func New(opts Options) Model {
	settings := config.Default()
	if opts.Settings != nil {
		settings = opts.Settings
	}
	theme := ParseTheme(settings.Theme)
	st := newStyles(theme)
	return Model{
		host:     opts.Host,
		stars:    opts.Stars,
		settings: *settings,
		browser:  NewBrowser(theme, opts.FPS),
		help:     newHelp(st),
		theme:    theme,
		styles:   st,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Gateway Links")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.browser.SetSize(min(contentWidth, max(msg.Width-marginLeft*2, 20)), max(msg.Height-14, 4))
		m.host.Resize(msg.Width, msg.Height)
		if m.stars != nil {
			m.stars.Sync()
		}
		if !m.animating() {
			m.browser.Settle()
		}
		return m, m.host.Cmd()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.host.PointerMove(msg.X, msg.Y)
		}
		return m, nil

	case host.FrameMsg:
		m.host.Deliver(msg)
		m.browser.Animate()
		return m, m.host.Cmd()

	case settingsSavedMsg:
		if msg.err != nil {
			log.Printf("theme not saved: %v", msg.err)
		}
		return m, nil

	case CategorySelectedMsg:
		m.page = pageCategory
		m.category = msg.Category
		return m, tea.SetWindowTitle(msg.Category.Name + " | Gateway Links")

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.page == pageDirectory && m.browser.Filtering() {
		var cmd tea.Cmd
		m.browser, cmd = m.browser.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "t":
		return m.toggleTheme()
	case "esc", "backspace":
		if m.page == pageCategory {
			m.page = pageDirectory
			return m, tea.SetWindowTitle("Gateway Links")
		}
		if msg.String() == "esc" {
			return m.quit()
		}
		return m, nil
	}

	if m.page != pageDirectory {
		return m, nil
	}
	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)
	return m, cmd
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	if m.stars != nil {
		m.stars.Close()
	}
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

func (m Model) toggleTheme() (Model, tea.Cmd) {
	m.theme = m.theme.Next()
	m.styles = newStyles(m.theme)
	m.help = newHelp(m.styles)
	m.browser.SetTheme(m.theme)
	m.settings.Theme = m.theme.String()
	settings := m.settings
	return m, func() tea.Msg {
		return settingsSavedMsg{err: config.Save(&settings)}
	}
}

// animating reports whether frames are flowing to drive the highlight spring.
func (m Model) animating() bool {
	return m.stars != nil && m.stars.State() == lifecycle.Active
}

func (m Model) background() []string {
	if m.stars != nil {
		if r, ok := m.stars.Surface().(*surface.Raster); ok {
			return r.Lines()
		}
	}
	return blankLines(m.height)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.page {
	case pageCategory:
		content = m.categoryView()
	default:
		content = m.directoryView()
	}

	lines := overlay(m.background(), content, marginLeft, 1)
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) textWidth() int {
	return min(contentWidth, max(m.width-marginLeft*2, 20))
}

func (m Model) headerLine(left string) string {
	icon := m.styles.header.Render(m.theme.Icon())
	gap := m.textWidth() - lipgloss.Width(left) - lipgloss.Width(icon)
	return left + spaces(gap) + icon
}

func (m Model) directoryView() string {
	w := m.textWidth()
	var b strings.Builder
	b.WriteString(m.headerLine(m.styles.header.Render(appTitle)) + "\n")
	b.WriteString(m.styles.rule.Render(strings.Repeat("─", w)) + "\n\n")
	b.WriteString(m.styles.heading.Render("Gateway Links") + "\n")
	b.WriteString(m.styles.sub.Render("2K25") + "\n\n")
	b.WriteString(m.styles.body.Render(wrap(heroText, w)) + "\n\n")
	b.WriteString(m.browser.View() + "\n\n")
	b.WriteString(m.help.ShortHelpView(directoryKeys{keys}.ShortHelp()))
	return b.String()
}

func (m Model) categoryView() string {
	w := m.textWidth()
	var b strings.Builder
	b.WriteString(m.headerLine(m.styles.header.Render("← Back")) + "\n")
	b.WriteString(m.styles.rule.Render(strings.Repeat("─", w)) + "\n\n")
	b.WriteString(m.styles.heading.Render(m.category.Name) + "\n\n")
	if m.category.Disabled {
		b.WriteString(m.styles.body.Render(wrap(upgradeText, w)) + "\n\n")
		b.WriteString(m.styles.badge.Render("Coming Soon") + "\n\n")
	} else {
		b.WriteString(m.styles.body.Render(wrap(pendingText, w)) + "\n\n")
	}
	b.WriteString(m.styles.muted.Render(m.category.Path) + "\n\n")
	b.WriteString(m.help.ShortHelpView(pageKeys{keys}.ShortHelp()))
	return b.String()
}
