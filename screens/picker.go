package screens

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/timerdeck/core"
)

type PickerItem struct {
	ID    string
	Label string
	Desc  string
}

func (i PickerItem) Title() string       { return i.Label }
func (i PickerItem) Description() string { return i.Desc }
func (i PickerItem) FilterValue() string { return i.Label + " " + i.Desc }

// PickerScreen is a filterable selection modal; the remove-timer command uses
// it to pick which card to drop. Matches are ranked by where the query first
// appears in the label, so prefix hits sort above mentions buried in the
// description.
type PickerScreen struct {
	title      string
	scope      string
	input      textinput.Model
	list       list.Model
	items      []PickerItem
	onSelected func(PickerItem) tea.Msg
}

func NewPickerScreen(title, scope string, items []PickerItem, onSelected func(PickerItem) tea.Msg) *PickerScreen {
	inp := textinput.New()
	inp.Placeholder = "type to filter"
	inp.Prompt = "pick> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 40, 12)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &PickerScreen{title: title, scope: scope, input: inp, list: lst, items: items, onSelected: onSelected}
	s.applyFilter()
	return s
}

func (s *PickerScreen) Title() string { return s.title }
func (s *PickerScreen) Scope() string { return s.scope }

func (s *PickerScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, nil, true
		case "enter":
			it, ok := s.list.SelectedItem().(PickerItem)
			if !ok || s.onSelected == nil {
				return s, nil, true
			}
			return s, func() tea.Msg { return s.onSelected(it) }, true
		}
	}
	var inputCmd, listCmd tea.Cmd
	s.input, inputCmd = s.input.Update(msg)
	s.applyFilter()
	s.list, listCmd = s.list.Update(msg)
	return s, tea.Batch(inputCmd, listCmd), false
}

func (s *PickerScreen) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(s.input.Value()))
	type ranked struct {
		item PickerItem
		pos  int
	}
	matches := make([]ranked, 0, len(s.items))
	for _, it := range s.items {
		label := strings.ToLower(it.Label)
		pos := strings.Index(label, q)
		if pos < 0 {
			if !strings.Contains(strings.ToLower(it.Desc), q) {
				continue
			}
			pos = len(label)
		}
		matches = append(matches, ranked{item: it, pos: pos})
	}
	slices.SortStableFunc(matches, func(a, b ranked) int { return a.pos - b.pos })
	out := make([]list.Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.item)
	}
	_ = s.list.SetItems(out)
}

func (s *PickerScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-4))
	head := fmt.Sprintf("%s  (%d of %d)", s.title, len(s.list.Items()), len(s.items))
	return head + "\n" + s.input.View() + "\n" + s.list.View()
}
