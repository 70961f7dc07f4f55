package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			if next != nil {
				m.screens.items[len(m.screens.items)-1] = next
			}
			return m, cmd
		}

		if len(m.tabs) > 0 {
			if capt, ok := m.tabs[m.activeTab].(InputCapturer); ok && capt.CapturingInput() {
				return m, m.tabs[m.activeTab].Update(&m, msg)
			}
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
				m.SwitchTab(i)
				return m, nil
			}
		}
		if len(m.tabs) > 0 {
			return m, m.tabs[m.activeTab].Update(&m, msg)
		}
		return m, nil
	}

	// Non-key traffic reaches the active tab even while a screen is open:
	// timer ticks must keep flowing or running timers stall for good. The
	// top screen also sees the message (textinput cursor blink).
	var cmds []tea.Cmd
	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
		} else if next != nil {
			m.screens.items[len(m.screens.items)-1] = next
		}
		cmds = append(cmds, cmd)
	}
	if len(m.tabs) > 0 {
		cmds = append(cmds, m.tabs[m.activeTab].Update(&m, msg))
	}
	return m, tea.Batch(cmds...)
}
