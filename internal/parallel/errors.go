// Package parallel holds the small concurrency primitives shared by the
// chunked range computation.
package parallel

import "sync"

// ErrorCollector retains the first non-nil error reported to it. The range
// computation hands one to its chunk workers so that the earliest abnormal
// termination surfaces while the remaining workers run to completion; later
// errors are discarded, not aggregated.
//
// The zero value is ready to use. Report from any number of goroutines with
// SetError and read the outcome with Err after the workers have been joined.
// A collector is single-use.
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records err unless an error has already been recorded. Nil errors
// are ignored. Safe for concurrent use.
func (c *ErrorCollector) SetError(err error) {
	if err != nil {
		c.once.Do(func() {
			c.err = err
		})
	}
}

// Err returns the first recorded error, or nil. Call it only after the
// reporting goroutines have finished.
func (c *ErrorCollector) Err() error {
	return c.err
}
