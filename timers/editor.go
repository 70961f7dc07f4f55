package timers

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/timerdeck/compose"
)

// labelEditor is the rename child: a textinput bound to one timer id. It is
// composed into the cluster through compose.Binding, so its cursor-blink
// commands route back to it and quietly pass through once it is closed.
type labelEditor struct {
	target compose.ID
	input  textinput.Model
}

func newLabelEditor(target compose.ID, current string) labelEditor {
	inp := textinput.New()
	inp.Placeholder = "timer label"
	inp.Prompt = "rename> "
	inp.CharLimit = 40
	inp.SetValue(current)
	inp.Focus()
	return labelEditor{target: target, input: inp}
}

func updateEditor(msg tea.Msg, e labelEditor) (labelEditor, tea.Cmd) {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

// editorUpdateMsg lifts a pending editor update into the cluster's message
// space; the cluster applies it to itself on arrival.
type editorUpdateMsg struct {
	apply compose.Updater[*Cluster]
}

func wrapEditorUpdate(u compose.Updater[*Cluster]) tea.Msg {
	return editorUpdateMsg{apply: u}
}

func editorBinding() compose.Binding[*Cluster, labelEditor] {
	return compose.Binding[*Cluster, labelEditor]{
		Get: func(c *Cluster) (labelEditor, bool) {
			if c.editor == nil {
				return labelEditor{}, false
			}
			return *c.editor, true
		},
		Set: func(e labelEditor, c *Cluster) *Cluster {
			next := e
			c.editor = &next
			return c
		},
		Update: updateEditor,
	}
}

// editorRoute converts editor-level messages (key presses, blink ticks) into
// cluster messages. Built once; shared by every Cluster instance.
var editorRoute = compose.Convert(wrapEditorUpdate, editorBinding())
