package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/timerdeck/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width := max(1, m.width)
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	chrome := lipgloss.Height(header) + lipgloss.Height(status) + lipgloss.Height(footer)
	bodyHeight := max(0, m.height-chrome)

	var body string
	if len(m.tabs) > 0 && bodyHeight > 0 {
		body = m.tabs[m.activeTab].Build(&m).Render(max(1, m.width-2), bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, m.height-8)), m.width-2, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)

	view := strings.Join([]string{header, status, body, footer}, "\n")
	return appStyle.Width(width).MaxWidth(width).Render(fitHeight(view, max(1, m.height)))
}

// renderHeader puts the app name and tab strip on the left and the active
// scope on the right, so the bar always shows where keys will land.
func renderHeader(m Model) string {
	width := max(1, m.width)
	cells := []string{headerAppStyle.Render(" timerdeck ")}
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Title())
		if i == m.activeTab {
			cells = append(cells, activeTabStyle.Render(label))
		} else {
			cells = append(cells, inactiveTabStyle.Render(label))
		}
	}
	left := ansi.Truncate(strings.Join(cells, tabSepStyle.Render("│")), width, "")
	right := tabSepStyle.Render(" " + m.ActiveScope() + " ")
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		right = ""
		gap = max(0, width-ansi.StringWidth(left))
	}
	line := ansi.Truncate(left+strings.Repeat(" ", gap)+right, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return headerBarStyle.Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
