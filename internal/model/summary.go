package model

// SummaryRow is the read-only report view of one department.
// It is what the summary printer, the CSV persister and the history
// database consume.
type SummaryRow struct {
	// Department is the department name.
	Department string `json:"department"`

	// Employees is the number of employee rows.
	Employees int `json:"employees"`

	// MinSalary is the raw minimum salary.
	MinSalary float64 `json:"min_salary"`

	// MaxSalary is the raw maximum salary.
	MaxSalary float64 `json:"max_salary"`

	// AverageSalary is TotalSalary / Count rounded to two decimals.
	AverageSalary float64 `json:"average_salary"`
}

// NewSummaryRow derives a SummaryRow from a department record.
func NewSummaryRow(d *DepartmentStats) SummaryRow {
	return SummaryRow{
		Department:    d.Name,
		Employees:     d.Count,
		MinSalary:     d.MinSalary,
		MaxSalary:     d.MaxSalary,
		AverageSalary: RoundTo2(d.AverageSalary()),
	}
}
