package model

// Stats maps department names to their aggregates.
// Iteration follows the order in which departments were first seen.
//
// Stats is built by a single owner and must not be mutated once it is handed
// to the reporters.
type Stats struct {
	order  []string
	byName map[string]*DepartmentStats
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{byName: make(map[string]*DepartmentStats)}
}

// GetOrCreate returns the record for name, inserting an empty one on first sight.
func (s *Stats) GetOrCreate(name string) *DepartmentStats {
	if d, ok := s.byName[name]; ok {
		return d
	}
	d := NewDepartmentStats(name)
	s.byName[name] = d
	s.order = append(s.order, name)
	return d
}

// Get returns the record for name.
func (s *Stats) Get(name string) (*DepartmentStats, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// Len returns the number of departments.
func (s *Stats) Len() int {
	return len(s.order)
}

// IsEmpty reports whether no department has been recorded.
func (s *Stats) IsEmpty() bool {
	return len(s.order) == 0
}

// Names returns department names in first-seen order.
func (s *Stats) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Departments returns the records in first-seen order.
func (s *Stats) Departments() []*DepartmentStats {
	out := make([]*DepartmentStats, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// TotalEmployees returns the sum of Count over all departments.
func (s *Stats) TotalEmployees() int {
	total := 0
	for _, d := range s.byName {
		total += d.Count
	}
	return total
}

// Merge folds other into s. Departments new to s are appended in other's order.
// Count, sums and extrema do not depend on merge order.
func (s *Stats) Merge(other *Stats) {
	if other == nil {
		return
	}
	for _, name := range other.order {
		s.GetOrCreate(name).merge(other.byName[name])
	}
}

// Summary returns the report table view of s, one row per department.
func (s *Stats) Summary() []SummaryRow {
	rows := make([]SummaryRow, 0, len(s.order))
	for _, d := range s.Departments() {
		rows = append(rows, NewSummaryRow(d))
	}
	return rows
}
