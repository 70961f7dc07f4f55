package compose

import (
	"maps"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// ID is an integer handle for one child in a Registry. Handles count up from
// zero and are never handed out twice, even after the child is deleted.
type ID int

// UpdateFunc transforms one child model in response to a message.
type UpdateFunc[M any] func(msg tea.Msg, model M) (M, tea.Cmd)

// SubscribeFunc produces the ongoing command (tick loop, listener) a child
// wants running. May return nil for children with no background activity.
type SubscribeFunc[M any] func(model M) tea.Cmd

// Registry holds an ordered-by-id collection of child models of one uniform
// type, all sharing a single update function and subscription source.
//
// Registries have value semantics: every mutating operation returns a new
// registry and leaves the receiver intact, so a dispatch step is always
// "fetch, transform, store back" with no aliasing.
type Registry[M any] struct {
	nextID    ID
	children  map[ID]M
	update    UpdateFunc[M]
	subscribe SubscribeFunc[M]
}

// New returns an empty registry. subscribe may be nil.
func New[M any](update UpdateFunc[M], subscribe SubscribeFunc[M]) Registry[M] {
	return Registry[M]{children: map[ID]M{}, update: update, subscribe: subscribe}
}

// AddMsg requests insertion of a new child. The assigned id is not reported
// back; callers that need it derive it from NextID after the add.
type AddMsg[M any] struct {
	Model M
}

// DeleteMsg requests removal of the child under ID. Unknown ids are ignored.
type DeleteMsg struct {
	ID ID
}

// InnerMsg carries a child-level message addressed to the child under ID.
// Commands produced by a child are re-tagged so their eventual messages
// arrive wrapped in InnerMsg again; the envelope, not a closure chain, is
// what keeps effect provenance inspectable.
type InnerMsg struct {
	ID  ID
	Msg tea.Msg
}

// Update interprets the three registry messages and delegates to Add, Delete
// and Dispatch. Any other message leaves the registry untouched.
//
// A handled AddMsg also starts the new child's subscription, since bubbletea
// has no re-evaluated subscription tree: the one chance to start a child's
// tick loop is the moment it is added.
func (r Registry[M]) Update(msg tea.Msg) (Registry[M], tea.Cmd) {
	switch msg := msg.(type) {
	case AddMsg[M]:
		next := r.Add(msg.Model)
		return next, next.Subscribe(next.nextID - 1)
	case DeleteMsg:
		return r.Delete(msg.ID), nil
	case InnerMsg:
		return r.Dispatch(msg.ID, msg.Msg)
	}
	return r, nil
}

// Add inserts initial under the next free id and bumps the counter.
func (r Registry[M]) Add(initial M) Registry[M] {
	next := r.clone()
	next.children[next.nextID] = initial
	next.nextID++
	return next
}

// Delete removes the child under id. Deleting an unknown id is a no-op, not
// an error; the id is retired either way.
func (r Registry[M]) Delete(id ID) Registry[M] {
	if _, ok := r.children[id]; !ok {
		return r
	}
	next := r.clone()
	delete(next.children, id)
	return next
}

// Dispatch runs the shared update function against the child under id and
// stores the result back. The child's command is re-tagged so its eventual
// message routes through Dispatch(id, ·) again.
//
// A missing id returns the registry unchanged with no command: a Delete and
// a stale Inner message for the same child may arrive in either order, and
// the late one must simply evaporate.
func (r Registry[M]) Dispatch(id ID, msg tea.Msg) (Registry[M], tea.Cmd) {
	child, ok := r.children[id]
	if !ok {
		return r, nil
	}
	updated, cmd := r.update(msg, child)
	next := r.clone()
	next.children[id] = updated
	return next, Tag(id, cmd)
}

// Subscribe returns the re-tagged subscription command for one child, or nil
// when the id is unknown or the child has nothing to run.
func (r Registry[M]) Subscribe(id ID) tea.Cmd {
	if r.subscribe == nil {
		return nil
	}
	child, ok := r.children[id]
	if !ok {
		return nil
	}
	return Tag(id, r.subscribe(child))
}

// Subscriptions merges the subscription commands of every child, each
// re-tagged to route back to its own id.
func (r Registry[M]) Subscriptions() tea.Cmd {
	if r.subscribe == nil {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(r.children))
	for _, id := range r.ids() {
		if cmd := r.Subscribe(id); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Get returns the child under id.
func (r Registry[M]) Get(id ID) (M, bool) {
	child, ok := r.children[id]
	return child, ok
}

// Len reports the number of surviving children.
func (r Registry[M]) Len() int { return len(r.children) }

// NextID reports the id the next Add will assign. Immediately after an Add,
// NextID()-1 is the id of the newest child.
func (r Registry[M]) NextID() ID { return r.nextID }

// IDs returns the surviving ids in ascending order.
func (r Registry[M]) IDs() []ID { return r.ids() }

// Tag re-addresses a child command so that the message it eventually
// produces is delivered as InnerMsg{ID: id}.
func Tag(id ID, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		return InnerMsg{ID: id, Msg: cmd()}
	}
}

// Views renders every surviving child in ascending id order. render receives
// the id, the child model, and a wrapper that converts a child-produced
// message into the matching InnerMsg; returning ok=false skips that child.
//
// Package-level because the view type V is the caller's choice and Go
// methods cannot introduce new type parameters.
func Views[M, V any](r Registry[M], render func(id ID, model M, wrap func(tea.Msg) tea.Msg) (V, bool)) []V {
	out := make([]V, 0, len(r.children))
	for _, id := range r.ids() {
		wrap := func(msg tea.Msg) tea.Msg { return InnerMsg{ID: id, Msg: msg} }
		if v, ok := render(id, r.children[id], wrap); ok {
			out = append(out, v)
		}
	}
	return out
}

func (r Registry[M]) ids() []ID {
	ids := slices.Collect(maps.Keys(r.children))
	slices.Sort(ids)
	return ids
}

func (r Registry[M]) clone() Registry[M] {
	next := r
	next.children = maps.Clone(r.children)
	return next
}
