package ui

import "github.com/olivier-w/gateway/internal/config"

// Theme is the page colour scheme.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ParseTheme maps a settings value to a Theme, defaulting to dark.
func ParseTheme(s string) Theme {
	if s == config.ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Next flips between light and dark.
func (t Theme) Next() Theme {
	switch t {
	case ThemeDark:
		return ThemeLight
	default:
		return ThemeDark
	}
}

// String returns the settings value for the theme.
func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return config.ThemeLight
	default:
		return config.ThemeDark
	}
}

// Icon shows the theme the toggle switches to.
func (t Theme) Icon() string {
	switch t {
	case ThemeLight:
		return "☾"
	default:
		return "☀"
	}
}
