// Package main provides the entry point for the deptreport CLI.
//
// deptreport reads a semicolon-delimited export of employee records, groups
// the employees by department and prints or saves per-department statistics:
// teams, head count, and minimum, maximum and average salary.
//
// Usage:
//
//	deptreport                 # interactive menu
//	deptreport teams
//	deptreport summary --format markdown
//	deptreport save -o report.csv --history
//
// See --help for all available options.
package main

// main is the entry point for deptreport.
func main() {
	Execute()
}
