// Package replay drives a slider engine from a scripted sequence of pointer
// events over a static track and reports every committed state.
package replay
