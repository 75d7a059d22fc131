// Package orchestration coordinates concurrent evaluation of the same
// Fibonacci index across multiple strain engines and aggregates the outcomes
// for comparison. It decouples business logic from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
