package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/timerdeck/core"
	"github.com/jask/timerdeck/widgets"
)

// HelpTab lists every registered keybinding grouped by scope.
type HelpTab struct{}

func NewHelpTab() *HelpTab { return &HelpTab{} }

func (t *HelpTab) ID() string    { return "help" }
func (t *HelpTab) Title() string { return "Help" }
func (t *HelpTab) Scope() string { return "tab:help" }

func (t *HelpTab) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }

func (t *HelpTab) Build(m *core.Model) widgets.Widget {
	var b strings.Builder
	seen := map[string]bool{}
	for _, scope := range []string{"tab:timers", "editor:rename", "screen:command", "screen:picker"} {
		wrote := false
		for _, kb := range m.KeyRegistry().BindingsForScope(scope) {
			if len(kb.Keys) == 0 {
				continue
			}
			line := fmt.Sprintf("%-14s %s", strings.Join(kb.Keys, "/"), kb.Description)
			if seen[scope+line] {
				continue
			}
			seen[scope+line] = true
			if !wrote {
				if b.Len() > 0 {
					b.WriteString("\n")
				}
				b.WriteString(scope + "\n")
				wrote = true
			}
			b.WriteString("  " + line + "\n")
		}
	}
	return widgets.Box{Title: "Keybindings", Content: b.String()}
}
