package model

import (
	"math"
	"strconv"
)

// DepartmentStats holds the running aggregates for one department.
//
// Design decision: We use named fields instead of a positional tuple so that
// every reporter reads the same value by name. MinSalary starts at +Inf and
// MaxSalary at -Inf, so the first observed salary always replaces both, even
// when every salary in the department is negative.
type DepartmentStats struct {
	// Name is the department key as it appears in the input (case-sensitive).
	Name string `json:"department"`

	// MinSalary is the smallest salary observed so far.
	MinSalary float64 `json:"min_salary"`

	// MaxSalary is the largest salary observed so far.
	MaxSalary float64 `json:"max_salary"`

	// Count is the number of employee rows attributed to the department.
	Count int `json:"count"`

	// TotalSalary is the sum of all observed salaries.
	TotalSalary float64 `json:"total_salary"`

	// teams keeps distinct team names in first-seen order.
	teams []string

	// seen indexes teams for constant-time membership checks.
	seen map[string]struct{}
}

// NewDepartmentStats creates an empty record for the named department.
func NewDepartmentStats(name string) *DepartmentStats {
	return &DepartmentStats{
		Name:      name,
		MinSalary: math.Inf(1),
		MaxSalary: math.Inf(-1),
		seen:      make(map[string]struct{}),
	}
}

// Observe folds one employee row into the aggregates.
func (d *DepartmentStats) Observe(team string, salary float64) {
	d.AddTeam(team)
	d.MinSalary = min(d.MinSalary, salary)
	d.MaxSalary = max(d.MaxSalary, salary)
	d.Count++
	d.TotalSalary += salary
}

// AddTeam adds a team to the set. Duplicates are ignored.
func (d *DepartmentStats) AddTeam(team string) {
	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	if _, ok := d.seen[team]; ok {
		return
	}
	d.seen[team] = struct{}{}
	d.teams = append(d.teams, team)
}

// HasTeam reports whether the team was seen in this department.
func (d *DepartmentStats) HasTeam(team string) bool {
	_, ok := d.seen[team]
	return ok
}

// Teams returns a copy of the distinct team names in first-seen order.
func (d *DepartmentStats) Teams() []string {
	out := make([]string, len(d.teams))
	copy(out, d.teams)
	return out
}

// AverageSalary returns TotalSalary / Count, unrounded.
// It returns 0 for a record with no rows, which never occurs inside a Stats.
func (d *DepartmentStats) AverageSalary() float64 {
	if d.Count == 0 {
		return 0
	}
	return d.TotalSalary / float64(d.Count)
}

// merge folds another record for the same department into d.
func (d *DepartmentStats) merge(other *DepartmentStats) {
	for _, team := range other.teams {
		d.AddTeam(team)
	}
	d.MinSalary = min(d.MinSalary, other.MinSalary)
	d.MaxSalary = max(d.MaxSalary, other.MaxSalary)
	d.Count += other.Count
	d.TotalSalary += other.TotalSalary
}

// RoundTo2 rounds v to two decimal places.
// Exact binary ties round to even, so 100.125 becomes 100.12.
func RoundTo2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
