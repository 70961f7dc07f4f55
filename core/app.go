package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/timerdeck/widgets"
)

// Screen is a modal layer pushed over the tab body (palette, picker). The
// bool result of Update asks the shell to pop the screen.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Tab is one top-level page of the app.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// TabInitializer lets a tab contribute startup commands.
type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// InputCapturer marks a tab that is currently consuming raw key input (an
// inline editor is open). While capturing, shell-level key actions stand
// aside so typed characters reach the tab untouched. ctrl+c still quits.
type InputCapturer interface {
	CapturingInput() bool
}

type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool

	// OpenCommandModal builds the command palette screen; injected by main
	// so core stays free of concrete screen implementations.
	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry) Model {
	return Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) KeyRegistry() *KeyRegistry {
	return m.keys
}

func (m Model) Size() (width, height int) {
	return m.width, m.height
}
