package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func RenderFooter(m Model) string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		label := b.Keys[0]
		if label == " " {
			label = "space"
		}
		parts = append(parts, keyStyle.Render(label)+space+descStyle.Render(b.Description))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
