// Package scenario ships a catalogue of named planning scenarios and a
// batch runner for executing them.
//
// What this package offers:
//
//   - Scenario: a named map with robot dimensions, field options and the
//     status the scenario is expected to terminate with.
//   - Catalogue: the built-in scenario set, from a trivial open grid up
//     to a serpentine large map and a deliberately unreachable goal.
//   - Runner: sequential execution with context cancellation between
//     scenarios and structured logging via log/slog.
//   - Summarize: batch statistics (success rate, mean/stddev of elapsed
//     time and path cost) for benchmark reporting.
//
// Every run is independent: scenarios share no state, and a failing
// scenario never aborts the batch. Only context cancellation stops a
// batch early.
package scenario
