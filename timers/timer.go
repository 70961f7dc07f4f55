package timers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer is one stopwatch-style card. Elapsed time is folded into Elapsed on
// every tick and on stop; anchor marks the wall-clock moment of the last fold
// so the accumulated total never drifts with tick jitter.
type Timer struct {
	Label    string
	Running  bool
	Elapsed  time.Duration
	Interval time.Duration

	anchor time.Time
	run    int
}

func NewTimer(label string, interval time.Duration) Timer {
	if interval <= 0 {
		interval = time.Second
	}
	return Timer{Label: label, Interval: interval}
}

type StartMsg struct{}

type StopMsg struct{}

type ResetMsg struct{}

type RenameMsg struct {
	Label string
}

// TickMsg carries the run generation it was scheduled under. Ticks from a
// previous run (the timer was stopped and restarted in between) are inert.
type TickMsg struct {
	Run int
	At  time.Time
}

// Update is the shared child update function installed in the cluster's
// registry. Start schedules the tick loop; each handled tick reschedules it;
// stopping simply lets the pending tick arrive with a stale run and die.
func Update(msg tea.Msg, t Timer) (Timer, tea.Cmd) {
	switch msg := msg.(type) {
	case StartMsg:
		if t.Running {
			return t, nil
		}
		t.Running = true
		t.run++
		t.anchor = time.Now()
		return t, tick(t.run, t.Interval)
	case StopMsg:
		if !t.Running {
			return t, nil
		}
		if d := time.Since(t.anchor); d > 0 {
			t.Elapsed += d
		}
		t.Running = false
		return t, nil
	case ResetMsg:
		t.Elapsed = 0
		if t.Running {
			t.anchor = time.Now()
		}
		return t, nil
	case RenameMsg:
		t.Label = msg.Label
		return t, nil
	case TickMsg:
		if !t.Running || msg.Run != t.run {
			return t, nil
		}
		if d := msg.At.Sub(t.anchor); d > 0 {
			t.Elapsed += d
			t.anchor = msg.At
		}
		return t, tick(t.run, t.Interval)
	}
	return t, nil
}

// Subscribe restarts the tick loop for a timer that enters the registry
// already running (the plain path, a stopped NewTimer, yields nil).
func Subscribe(t Timer) tea.Cmd {
	if !t.Running {
		return nil
	}
	return tick(t.run, t.Interval)
}

func tick(run int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return TickMsg{Run: run, At: at}
	})
}

// FormatElapsed renders a duration as h:mm:ss, dropping the hour part while
// it is zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
