// Package log provides logging with automatic redaction of payroll and
// personal data, built on top of the standard slog package.
//
// Employee exports carry salaries and, depending on the source system,
// personal identifiers. Debug output is meant to be pasted into bug reports,
// so the RedactingHandler masks those values before they reach any writer:
//   - Pay related attributes (salary, wage, compensation, bonus, payroll)
//   - Personal identifiers (email, phone, passport, tax and insurance numbers)
//   - Credentials (password, token, secret)
//   - Values that look like an email address or a social security number
//
// Redaction also applies in verbose mode.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("row aggregated",
//	    "department", "Engineering",
//	    "salary", 50000.0, // logged as salary=***REDACTED***
//	)
//
//	slog.SetDefault(logger)
package log
