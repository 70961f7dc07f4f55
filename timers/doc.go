// Package timers implements the manual timer cluster: the Timer child model,
// the Cluster tab that hosts a dynamic set of them, and the rename editor.
//
// Allowed here:
// - timer domain state and message handling
// - cluster-level composition over compose.Registry and compose.Binding
//
// Not allowed here:
// - app-wide routing or registry ownership (core)
// - reusable rendering primitives (widgets)
package timers
