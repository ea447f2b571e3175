package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay splices the lines of fg over bg starting at column x, row y.
// Blank foreground lines leave the background visible.
func overlay(bg []string, fg string, x, y int) []string {
	out := append([]string(nil), bg...)
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		for row >= len(out) {
			out = append(out, "")
		}
		w := ansi.StringWidth(line)
		if w == 0 || strings.TrimSpace(ansi.Strip(line)) == "" {
			continue
		}
		out[row] = splice(out[row], line, x, w)
	}
	return out
}

func splice(bg, fg string, x, w int) string {
	left := ansi.Truncate(bg, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := ""
	if ansi.StringWidth(bg) > x+w {
		right = ansi.TruncateLeft(bg, x+w, "")
	}
	return left + "\x1b[0m" + fg + "\x1b[0m" + right
}

// blankLines returns n empty background rows.
func blankLines(n int) []string {
	return make([]string, max(n, 0))
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
