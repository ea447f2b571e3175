package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBrowserListsAllCategories(t *testing.T) {
	m := NewBrowser(ThemeDark, 60)
	if got := len(m.list.Items()); got != len(Categories()) {
		t.Fatalf("expected %d items, got %d", len(Categories()), got)
	}
}

func TestBrowserSelectionReturnsMessage(t *testing.T) {
	m := NewBrowser(ThemeDark, 60)
	m.SetSize(60, 30)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}
	selected, ok := cmd().(CategorySelectedMsg)
	if !ok {
		t.Fatal("expected CategorySelectedMsg")
	}
	if selected.Category.Path != "/apps" {
		t.Fatalf("expected /apps, got %q", selected.Category.Path)
	}
}

func TestBrowserHighlightEasesIn(t *testing.T) {
	m := NewBrowser(ThemeDark, 60)
	m.SetSize(60, 30)

	prev := m.Glow()
	for range 10 {
		m.Animate()
		if m.Glow() < prev {
			t.Fatalf("expected highlight to rise, got %v after %v", m.Glow(), prev)
		}
		prev = m.Glow()
	}
	if prev <= 0 {
		t.Fatal("expected highlight to move off zero")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Animate()
	if m.Glow() >= prev {
		t.Fatalf("expected highlight to restart on selection change, got %v", m.Glow())
	}
}

func TestBrowserSettle(t *testing.T) {
	m := NewBrowser(ThemeLight, 60)
	m.Settle()
	if m.Glow() != 1 {
		t.Fatalf("expected settled glow 1, got %v", m.Glow())
	}
}

func TestCategoryDescriptions(t *testing.T) {
	for _, c := range Categories() {
		if c.Description() == "" {
			t.Fatalf("expected description for %q", c.Name)
		}
		if c.Disabled && c.Description() != "Coming soon" {
			t.Fatalf("expected disabled %q to read Coming soon, got %q", c.Name, c.Description())
		}
	}
}

func TestThemeCycle(t *testing.T) {
	if ThemeDark.Next() != ThemeLight || ThemeLight.Next() != ThemeDark {
		t.Fatal("expected theme to alternate")
	}
	if ParseTheme("light") != ThemeLight || ParseTheme("anything") != ThemeDark {
		t.Fatal("unexpected theme parsing")
	}
}
