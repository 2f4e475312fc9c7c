// Package primitives defines the declarative form of an action tree.
//
// A Script is plain data: a tree of ActionConfig nodes naming the action kind
// and its parameters, with callbacks and conditions referred to by name or
// expression. Scripts round-trip through JSON and YAML and are turned into
// live actions by core.Compile.
//
// Core invariants:
//   - Leaves (callback, condition, delay, delay_frame) have no children
//   - Durations, frame counts and repeat counts are never negative
//   - Node IDs, when given, are unique within a script
package primitives
