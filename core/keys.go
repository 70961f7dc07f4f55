package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to named actions. Bindings are indexed by
// normalized key at construction time; per-action overrides from config
// replace a binding's default keys before indexing, so the footer and the
// dispatch path always agree on what a key does.
type KeyRegistry struct {
	bindings []KeyBinding
	byKey    map[string][]int
}

func NewKeyRegistry(bindings []KeyBinding, overrides map[string][]string) *KeyRegistry {
	reg := &KeyRegistry{
		bindings: make([]KeyBinding, 0, len(bindings)),
		byKey:    make(map[string][]int, len(bindings)),
	}
	for _, b := range bindings {
		if keys, ok := overrides[b.Action]; ok && len(keys) > 0 {
			b.Keys = append([]string(nil), keys...)
		} else {
			b.Keys = append([]string(nil), b.Keys...)
		}
		b.Scopes = append([]string(nil), b.Scopes...)
		idx := len(reg.bindings)
		reg.bindings = append(reg.bindings, b)
		for _, k := range b.Keys {
			nk := normalizeKey(k)
			reg.byKey[nk] = append(reg.byKey[nk], idx)
		}
	}
	return reg
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, i := range r.byKey[normalizeKey(msg.String())] {
		b := r.bindings[i]
		if b.Action == action && scopeMatch(scope, b.Scopes) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
