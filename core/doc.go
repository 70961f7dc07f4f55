// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - tab and screen policy (tab definitions, screen stack behavior)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
// - timer domain logic (that lives in the timers package)
package core
