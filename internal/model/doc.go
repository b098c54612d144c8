// Package model defines the core data structures used throughout deptreport.
//
// This package contains the following main types:
//   - Row: One parsed line of the employee file
//   - Layout: Positional meaning of the fields in a Row
//   - DepartmentStats: Running aggregates for a single department
//   - Stats: Departments keyed by name, iterated in first-seen order
//   - SummaryRow: Read-only view of DepartmentStats used by the reporters
//
// Design decision: We keep raw sums in DepartmentStats and derive the average
// when a SummaryRow is built. Ratios are never stored, so merging two Stats
// never accumulates rounding error.
package model
