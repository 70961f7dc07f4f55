package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
