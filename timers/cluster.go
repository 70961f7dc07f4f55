package timers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/timerdeck/compose"
	"github.com/jask/timerdeck/core"
	"github.com/jask/timerdeck/screens"
	"github.com/jask/timerdeck/widgets"
)

// Cluster is the timers tab: a registry of Timer children rendered as a card
// wall, a position-based selection cursor, and an optional rename editor.
type Cluster struct {
	reg       compose.Registry[Timer]
	selected  int
	editor    *labelEditor
	interval  time.Duration
	maxTimers int
	log       *zap.Logger
}

func NewCluster(interval time.Duration, maxTimers int, log *zap.Logger) *Cluster {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cluster{
		reg:       compose.New(Update, Subscribe),
		interval:  interval,
		maxTimers: maxTimers,
		log:       log,
	}
}

func (c *Cluster) ID() string    { return "timers" }
func (c *Cluster) Title() string { return "Timers" }

func (c *Cluster) Scope() string {
	if c.editor != nil {
		return "editor:rename"
	}
	return "tab:timers"
}

func (c *Cluster) InitTab(m *core.Model) tea.Cmd {
	return c.reg.Subscriptions()
}

// CapturingInput reports whether the rename editor is open; while it is, the
// shell must not intercept typed characters as key actions.
func (c *Cluster) CapturingInput() bool { return c.editor != nil }

func (c *Cluster) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case editorUpdateMsg:
		_, cmd := msg.apply(c)
		return cmd
	case compose.AddMsg[Timer]:
		var cmd tea.Cmd
		c.reg, cmd = c.reg.Update(msg)
		return cmd
	case compose.DeleteMsg:
		var cmd tea.Cmd
		c.reg, cmd = c.reg.Update(msg)
		c.clampSelection()
		c.log.Info("timer removed", zap.Int("id", int(msg.ID)))
		m.SetStatus(fmt.Sprintf("Removed timer #%d", int(msg.ID)))
		return cmd
	case compose.InnerMsg:
		var cmd tea.Cmd
		c.reg, cmd = c.reg.Update(msg)
		return cmd
	case tea.KeyMsg:
		return c.handleKey(m, msg)
	}
	return nil
}

func (c *Cluster) handleKey(m *core.Model, msg tea.KeyMsg) tea.Cmd {
	keys := m.KeyRegistry()

	if c.editor != nil {
		switch {
		case keys.IsAction(msg, "close", "editor:rename"):
			c.editor = nil
			return nil
		case keys.IsAction(msg, "select", "editor:rename"):
			label := strings.TrimSpace(c.editor.input.Value())
			target := c.editor.target
			c.editor = nil
			if label == "" {
				return nil
			}
			var cmd tea.Cmd
			c.reg, cmd = c.reg.Dispatch(target, RenameMsg{Label: label})
			c.log.Info("timer renamed", zap.Int("id", int(target)), zap.String("label", label))
			return cmd
		}
		if up, ok := editorRoute(msg).(editorUpdateMsg); ok {
			_, cmd := up.apply(c)
			return cmd
		}
		return nil
	}

	scope := c.Scope()
	switch {
	case keys.IsAction(msg, "timer-add", scope):
		return c.addTimer(m)
	case keys.IsAction(msg, "timer-delete", scope):
		id, ok := c.selectedID()
		if !ok {
			return nil
		}
		return func() tea.Msg { return compose.DeleteMsg{ID: id} }
	case keys.IsAction(msg, "timer-toggle", scope):
		id, ok := c.selectedID()
		if !ok {
			return nil
		}
		t, _ := c.reg.Get(id)
		var cmd tea.Cmd
		if t.Running {
			c.reg, cmd = c.reg.Dispatch(id, StopMsg{})
		} else {
			c.reg, cmd = c.reg.Dispatch(id, StartMsg{})
		}
		return cmd
	case keys.IsAction(msg, "timer-reset", scope):
		id, ok := c.selectedID()
		if !ok {
			return nil
		}
		var cmd tea.Cmd
		c.reg, cmd = c.reg.Dispatch(id, ResetMsg{})
		return cmd
	case keys.IsAction(msg, "timer-start-all", scope):
		return c.dispatchAll(StartMsg{})
	case keys.IsAction(msg, "timer-stop-all", scope):
		return c.dispatchAll(StopMsg{})
	case keys.IsAction(msg, "select-prev", scope):
		c.moveSelection(-1)
		return nil
	case keys.IsAction(msg, "select-next", scope):
		c.moveSelection(1)
		return nil
	case keys.IsAction(msg, "timer-rename", scope):
		id, ok := c.selectedID()
		if !ok {
			return nil
		}
		t, _ := c.reg.Get(id)
		ed := newLabelEditor(id, t.Label)
		c.editor = &ed
		return compose.MapCmd(textinput.Blink, editorRoute)
	}
	return nil
}

func (c *Cluster) addTimer(m *core.Model) tea.Cmd {
	if c.maxTimers > 0 && c.reg.Len() >= c.maxTimers {
		m.SetError(fmt.Errorf("timer limit reached (%d)", c.maxTimers))
		return nil
	}
	label := fmt.Sprintf("Timer %d", int(c.reg.NextID())+1)
	var cmd tea.Cmd
	c.reg, cmd = c.reg.Update(compose.AddMsg[Timer]{Model: NewTimer(label, c.interval)})
	id := c.reg.NextID() - 1
	c.selected = c.position(id)
	c.log.Info("timer added", zap.Int("id", int(id)), zap.String("label", label))
	m.SetStatus("Added " + label)
	return cmd
}

func (c *Cluster) dispatchAll(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, c.reg.Len())
	for _, id := range c.reg.IDs() {
		var cmd tea.Cmd
		c.reg, cmd = c.reg.Dispatch(id, msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (c *Cluster) selectedID() (compose.ID, bool) {
	ids := c.reg.IDs()
	if len(ids) == 0 {
		return 0, false
	}
	i := c.selected
	if i < 0 {
		i = 0
	}
	if i >= len(ids) {
		i = len(ids) - 1
	}
	return ids[i], true
}

func (c *Cluster) position(id compose.ID) int {
	for i, existing := range c.reg.IDs() {
		if existing == id {
			return i
		}
	}
	return 0
}

func (c *Cluster) moveSelection(delta int) {
	n := c.reg.Len()
	if n == 0 {
		c.selected = 0
		return
	}
	c.selected += delta
	if c.selected < 0 {
		c.selected = 0
	}
	if c.selected >= n {
		c.selected = n - 1
	}
}

func (c *Cluster) clampSelection() {
	if n := c.reg.Len(); c.selected >= n && n > 0 {
		c.selected = n - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}

func (c *Cluster) Build(m *core.Model) widgets.Widget {
	if c.reg.Len() == 0 {
		return widgets.Box{Title: "Timers", Content: "No timers yet. Press a to add one."}
	}
	selID, _ := c.selectedID()
	cards := compose.Views(c.reg, func(id compose.ID, t Timer, _ func(tea.Msg) tea.Msg) (widgets.Widget, bool) {
		state := "stopped"
		if t.Running {
			state = "running"
		}
		return widgets.Pane{
			Title:    fmt.Sprintf("#%d %s", int(id), t.Label),
			Height:   4,
			Content:  FormatElapsed(t.Elapsed) + "\n" + state,
			Selected: id == selID,
			Focused:  t.Running,
		}, true
	})
	grid := widgets.Grid{Widgets: cards, Columns: 3, Gap: 1}
	if c.editor == nil {
		return grid
	}
	editorPane := widgets.Pane{Title: "Rename", Height: 3, Content: c.editor.input.View(), Focused: true}
	return widgets.VStack{Widgets: []widgets.Widget{grid, editorPane}, Ratios: []float64{0.8, 0.2}}
}

// Commands exposes the cluster's palette entries; main registers them.
func (c *Cluster) Commands() []core.Command {
	return []core.Command{
		{
			ID:          "timer-add",
			Name:        "Add Timer",
			Description: "Add a new stopped timer",
			Execute:     func(m *core.Model) tea.Cmd { return c.addTimer(m) },
		},
		{
			ID:          "timer-remove",
			Name:        "Remove Timer",
			Description: "Pick a timer to remove",
			Disabled: func(m *core.Model) (bool, string) {
				if c.reg.Len() == 0 {
					return true, "no timers"
				}
				return false, ""
			},
			Execute: func(m *core.Model) tea.Cmd {
				items := make([]screens.PickerItem, 0, c.reg.Len())
				for _, id := range c.reg.IDs() {
					t, _ := c.reg.Get(id)
					items = append(items, screens.PickerItem{
						ID:    strconv.Itoa(int(id)),
						Label: t.Label,
						Desc:  FormatElapsed(t.Elapsed),
					})
				}
				s := screens.NewPickerScreen("Remove Timer", "screen:picker", items, func(it screens.PickerItem) tea.Msg {
					n, err := strconv.Atoi(it.ID)
					if err != nil {
						return core.StatusMsg{Text: "bad timer id: " + it.ID, IsErr: true}
					}
					return compose.DeleteMsg{ID: compose.ID(n)}
				})
				return func() tea.Msg { return core.PushScreenMsg{Screen: s} }
			},
		},
		{
			ID:          "timer-start-all",
			Name:        "Start All Timers",
			Description: "Start every stopped timer",
			Execute:     func(m *core.Model) tea.Cmd { return c.dispatchAll(StartMsg{}) },
		},
		{
			ID:          "timer-stop-all",
			Name:        "Stop All Timers",
			Description: "Stop every running timer",
			Execute:     func(m *core.Model) tea.Cmd { return c.dispatchAll(StopMsg{}) },
		},
		{
			ID:          "timer-reset-all",
			Name:        "Reset All Timers",
			Description: "Zero every timer's elapsed time",
			Execute:     func(m *core.Model) tea.Cmd { return c.dispatchAll(ResetMsg{}) },
		},
	}
}
