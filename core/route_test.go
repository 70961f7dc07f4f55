package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/timerdeck/widgets"
)

type tickProbe struct{}

type fakeTab struct {
	id   string
	seen []tea.Msg
}

func (t *fakeTab) ID() string {
	if t.id != "" {
		return t.id
	}
	return "fake"
}
func (t *fakeTab) Title() string { return "Fake" }
func (t *fakeTab) Scope() string { return "tab:fake" }
func (t *fakeTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	t.seen = append(t.seen, msg)
	return nil
}
func (t *fakeTab) Build(m *Model) widgets.Widget {
	return widgets.Box{Title: "Fake", Content: ""}
}

type fakeScreen struct {
	seen []tea.Msg
	pop  bool
}

func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	s.seen = append(s.seen, msg)
	return s, nil, s.pop
}
func (s *fakeScreen) View(width, height int) string { return "" }
func (s *fakeScreen) Scope() string                 { return "screen:fake" }
func (s *fakeScreen) Title() string                 { return "Fake" }

func TestCtrlCAlwaysQuits(t *testing.T) {
	tab := &fakeTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(DefaultKeyBindings(), nil), NewCommandRegistry(nil))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestKeysGoToTopScreenOnly(t *testing.T) {
	tab := &fakeTab{}
	screen := &fakeScreen{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(DefaultKeyBindings(), nil), NewCommandRegistry(nil))
	m.PushScreen(screen)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if len(screen.seen) != 1 {
		t.Fatalf("expected screen to see the key, saw %d messages", len(screen.seen))
	}
	if len(tab.seen) != 0 {
		t.Fatalf("expected tab shielded from keys while a screen is open")
	}
}

func TestNonKeyMessagesReachTabUnderScreen(t *testing.T) {
	tab := &fakeTab{}
	screen := &fakeScreen{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(DefaultKeyBindings(), nil), NewCommandRegistry(nil))
	m.PushScreen(screen)

	m.Update(tickProbe{})
	if len(tab.seen) != 1 {
		t.Fatalf("expected tab to keep receiving ticks under a screen, saw %d", len(tab.seen))
	}
	if len(screen.seen) != 1 {
		t.Fatalf("expected screen to also see the message, saw %d", len(screen.seen))
	}
}

type capturingTab struct {
	fakeTab
	capturing bool
}

func (t *capturingTab) CapturingInput() bool { return t.capturing }

func TestCapturingTabGetsRawKeys(t *testing.T) {
	tab := &capturingTab{capturing: true}
	m := NewModel([]Tab{tab}, NewKeyRegistry(DefaultKeyBindings(), nil), NewCommandRegistry(nil))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if cmd != nil {
		t.Fatalf("expected q to reach the tab, not trigger quit")
	}
	if len(tab.seen) != 1 {
		t.Fatalf("expected tab to receive the captured key, saw %d", len(tab.seen))
	}

	tab.capturing = false
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit once capture ends")
	}
}

func TestTabSwitchKeysAndStatus(t *testing.T) {
	a, b := &fakeTab{}, &fakeTab{}
	m := NewModel([]Tab{a, b}, NewKeyRegistry(DefaultKeyBindings(), nil), NewCommandRegistry(nil))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)
	if m.activeTab != 1 {
		t.Fatalf("expected tab 2 active, got %d", m.activeTab)
	}

	next, _ = m.Update(TabSwitchMsg{Index: 0})
	m = next.(Model)
	if m.activeTab != 0 {
		t.Fatalf("expected TabSwitchMsg to activate tab 1, got %d", m.activeTab)
	}

	next, _ = m.Update(StatusMsg{Text: "boom", IsErr: true})
	m = next.(Model)
	if m.status != "boom" || !m.statusErr {
		t.Fatalf("expected error status recorded, got %q err=%v", m.status, m.statusErr)
	}
}
