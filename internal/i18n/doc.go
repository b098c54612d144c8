// Package i18n holds the user-facing text of deptreport in English and Russian.
//
// Messages are registered in a golang.org/x/text catalog keyed by their
// English text. Numeric values are passed to the printers as preformatted
// strings so that salaries are shown exactly as computed, without locale
// digit grouping.
package i18n
