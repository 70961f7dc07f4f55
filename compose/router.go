package compose

import tea "github.com/charmbracelet/bubbletea"

// Updater captures one pending child update. Applying it to the current
// parent model yields the next parent model plus any commands. Updaters are
// created per inbound child message and consumed by the parent's next
// dispatch step.
type Updater[P any] func(parent P) (P, tea.Cmd)

// Binding bundles the four functions that compose one child into a parent
// model. A binding is a stateless value built once per composition point.
//
// Get reports the current child model, or ok=false when the child is not
// present (closed editor, removed panel); Set stores an updated child back
// into the parent; Update is the child's own update function; React lets the
// parent layer extra transformation and commands on top of a child update.
// A nil React behaves like NoReaction.
type Binding[P, C any] struct {
	Get    func(parent P) (C, bool)
	Set    func(child C, parent P) P
	Update func(msg tea.Msg, child C) (C, tea.Cmd)
	React  func(msg tea.Msg, child C, parent P) (P, tea.Cmd)
}

// NoReaction is the stock React: the parent has nothing to add.
func NoReaction[P, C any](msg tea.Msg, child C, parent P) (P, tea.Cmd) {
	return parent, nil
}

// Convert builds a converter from child messages to parent messages. wrap
// lifts a pending Updater into the parent's message space (typically by
// returning a parent message struct holding it).
//
// Applying the wrapped updater performs: Get the child (absent means the
// whole update is a pass-through), run b.Update, store the result with
// b.Set, then run b.React on the updated parent. Commands the child emitted
// are routed back through this same converter, so a chain of child-originated
// effects never escapes the binding; React's commands follow them.
func Convert[P, C any](wrap func(Updater[P]) tea.Msg, b Binding[P, C]) func(tea.Msg) tea.Msg {
	var conv func(tea.Msg) tea.Msg
	conv = func(msg tea.Msg) tea.Msg {
		return wrap(func(parent P) (P, tea.Cmd) {
			child, ok := b.Get(parent)
			if !ok {
				return parent, nil
			}
			updated, childCmd := b.Update(msg, child)
			parent = b.Set(updated, parent)
			routed := MapCmd(childCmd, conv)
			react := b.React
			if react == nil {
				return parent, routed
			}
			parent, reactCmd := react(msg, updated, parent)
			return parent, tea.Batch(routed, reactCmd)
		})
	}
	return conv
}

// MapCmd rewrites the message a command will eventually produce.
func MapCmd(cmd tea.Cmd, f func(tea.Msg) tea.Msg) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		return f(cmd())
	}
}
