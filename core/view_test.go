package core

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeaderShowsTabsAndActiveScope(t *testing.T) {
	tabs := []Tab{&fakeTab{id: "timers"}, &fakeTab{id: "help"}}
	m := NewModel(tabs, NewKeyRegistry(DefaultKeyBindings(), nil), NewCommandRegistry(nil))

	plain := ansi.Strip(renderHeader(m))
	if !strings.Contains(plain, "timerdeck") {
		t.Fatalf("header missing app name: %q", plain)
	}
	if !strings.Contains(plain, "1:Fake") || !strings.Contains(plain, "2:Fake") {
		t.Fatalf("header missing tab strip: %q", plain)
	}
	if !strings.Contains(plain, "tab:fake") {
		t.Fatalf("header missing active scope: %q", plain)
	}
}

func TestFooterListsScopeBindings(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{" "}, Action: "timer-toggle", Description: "start/stop", Scopes: []string{"*"}},
	}, nil)
	m := NewModel(nil, reg, NewCommandRegistry(nil))

	plain := ansi.Strip(RenderFooter(m))
	if !strings.Contains(plain, "q quit") {
		t.Fatalf("footer missing binding: %q", plain)
	}
	if !strings.Contains(plain, "space start/stop") {
		t.Fatalf("footer must spell out the space key: %q", plain)
	}
}

func TestFooterFallsBackWhenScopeEmpty(t *testing.T) {
	m := NewModel(nil, NewKeyRegistry(nil, nil), NewCommandRegistry(nil))
	if plain := ansi.Strip(RenderFooter(m)); !strings.Contains(plain, "No shortcuts") {
		t.Fatalf("expected fallback footer, got %q", plain)
	}
}
