// Package compose wires dynamically-created child components into a parent
// bubbletea model.
//
// Allowed here:
// - the Registry (ordered-by-id collection of uniform child models)
// - message envelopes and command re-tagging for child routing
// - the Binding/Convert router for single-child parent/child composition
//
// Not allowed here:
// - rendering, key handling, or any app-specific state
package compose
