package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a titled, bordered card. Selection and focus tint the border
// and swap the title marker, mirroring the cluster's cursor state.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := p.Height
	if height > 0 && (h > height || h <= 0) {
		h = height
	}
	if h < 3 {
		h = 3
	}
	if width < 4 {
		width = 4
	}

	border := lipgloss.Color("#6c7086")
	if p.Selected {
		border = lipgloss.Color("#89b4fa")
	}
	if p.Focused {
		border = lipgloss.Color("#a6e3a1")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))

	titlePrefix := "  "
	if p.Selected {
		titlePrefix = "▶ "
	}
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
		width = innerWidth + 2
	}

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	titleW := ansi.StringWidth(titleText)
	dashes := innerWidth - titleW
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 1
	if dashes == 0 {
		leftDash = 0
	} else if leftDash > dashes {
		leftDash = dashes
	}
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")
	bottom := borderStyle.Render("╰") +
		borderStyle.Render(strings.Repeat("─", innerWidth)) +
		borderStyle.Render("╯")

	innerHeight := h - 2
	contentLines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, innerHeight+2)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = " " + PadRight(contentStyle.Render(line), contentWidth) + " "
		rows = append(rows, v+line+v)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// Box is the plain border variant used for secondary content.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		Height(max(1, height-2))
	return style.Render("[" + b.Title + "]\n" + b.Content)
}
