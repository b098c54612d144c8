// Package aggregate groups employee rows by department and computes the
// per-department statistics.
//
// Build performs a single sequential pass over the rows. The first row is the
// header and is never aggregated. Any malformed salary aborts the pass and no
// partial result is returned.
package aggregate
