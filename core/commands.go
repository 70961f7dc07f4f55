package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
	score     int
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// Search filters the registry to commands visible in scope and ranks them
// against query. Substring matches rank first; near-misses are admitted by
// edit distance so a typo like "tiemr" still finds the timer commands.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		h := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		score, ok := matchScore(h, q)
		if !ok {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
			score:     score,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		if a.score != b.score {
			return cmp.Compare(a.score, b.score)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

func matchScore(haystack, query string) (int, bool) {
	if query == "" {
		return 0, true
	}
	if strings.Contains(haystack, query) {
		return 0, true
	}
	best := -1
	for _, word := range strings.Fields(haystack) {
		d := levenshtein.ComputeDistance(word, query)
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0, false
	}
	limit := (len(query) - 1) / 2
	if len(query) <= 3 {
		limit = 1
	}
	if best > limit {
		return 0, false
	}
	return best, true
}

// TabCommands builds one palette entry per tab for direct switching, as an
// alternative to the numbered keybindings.
func TabCommands(tabs []Tab) []Command {
	out := make([]Command, 0, len(tabs))
	for i, t := range tabs {
		index := i
		out = append(out, Command{
			ID:          "goto-" + t.ID(),
			Name:        "Go to " + t.Title(),
			Description: "Switch to the " + t.Title() + " tab",
			Execute: func(m *Model) tea.Cmd {
				return func() tea.Msg { return TabSwitchMsg{Index: index} }
			},
		})
	}
	return out
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
