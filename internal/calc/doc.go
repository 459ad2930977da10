// Package calc is the calculation and summary engine: pure functions that
// turn raw report and project records into the numeric facts every
// consumer (dashboard, PDF generation, project lists) displays.
//
// The package performs no I/O and no logging, never mutates its inputs,
// and never panics on malformed domain data. Malformed times and amounts
// degrade to zero rather than erroring, because every output here feeds
// money totals that must never become NaN. Identical inputs always
// produce identical outputs, so callers are free to memoize and to call
// concurrently.
package calc
