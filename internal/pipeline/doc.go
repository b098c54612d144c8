// Package pipeline aggregates several employee files into one report.
//
// A single input is loaded and aggregated in the calling goroutine. When more
// files are given, each is loaded and aggregated in its own goroutine and the
// per-file results are merged in argument order, so that department order in
// every report is the same from run to run.
//
// Design decision: We aggregate each file independently and merge afterwards
// instead of sharing one Stats between goroutines because:
// 1. No locking is needed inside the aggregation loop
// 2. Merge order, and with it report order, stays deterministic
// 3. A failed file leaves no partial state behind
package pipeline
