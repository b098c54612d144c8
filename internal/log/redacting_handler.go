package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// sensitiveKeys contains attribute keys that are always redacted.
var sensitiveKeys = map[string]bool{
	// Pay
	"salary":       true,
	"wage":         true,
	"wages":        true,
	"pay":          true,
	"payroll":      true,
	"bonus":        true,
	"compensation": true,
	"total_salary": true,

	// Personal identifiers
	"email":      true,
	"phone":      true,
	"passport":   true,
	"ssn":        true,
	"inn":        true,
	"snils":      true,
	"birth_date": true,
	"birthdate":  true,
	"address":    true,

	// Credentials
	"password": true,
	"secret":   true,
	"token":    true,
}

// sensitiveKeywords are matched as substrings of lower-cased keys.
// Short words like "pay" and "inn" are left to the exact-match map because
// they occur inside harmless keys ("display", "inner").
var sensitiveKeywords = []string{
	"salary", "wage", "compensation", "payroll",
	"password", "secret", "token", "passport",
}

// sensitivePatterns contains regex patterns that indicate sensitive values.
// Values matching these patterns are redacted regardless of key name.
var sensitivePatterns = []*regexp.Regexp{
	// Email addresses
	regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`),

	// US social security numbers
	regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`),

	// Russian insurance numbers (SNILS)
	regexp.MustCompile(`^\d{3}-\d{3}-\d{3} \d{2}$`),
}

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// RedactingHandler wraps an slog.Handler and masks sensitive attributes.
// It intercepts log records and replaces attribute values that match
// sensitive key names or value patterns before passing them on.
//
// Design decision: a handler wrapper rather than a custom logger, so that
// every component keeps taking a plain *slog.Logger and any underlying
// handler (text or JSON) can be used.
type RedactingHandler struct {
	handler slog.Handler
}

// NewRedactingHandler creates a new RedactingHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewRedactingHandler(handler slog.Handler) *RedactingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactingHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle redacts the record's attributes and passes it to the underlying handler.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(redactAttr(a))
		return true
	})
	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are redacted before being added.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &RedactingHandler{handler: h.handler.WithAttrs(redacted)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{handler: h.handler.WithGroup(name)}
}

// redactAttr redacts a single attribute, recursing into groups.
// Key matches mask values of every kind, numbers included.
func redactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			redacted[i] = redactAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString && isSensitiveValue(a.Value.String()) {
		return slog.String(a.Key, MaskValue)
	}

	return a
}

func isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if sensitiveKeys[k] {
		return true
	}
	for _, kw := range sensitiveKeywords {
		if strings.Contains(k, kw) {
			return true
		}
	}
	return false
}

func isSensitiveValue(value string) bool {
	v := strings.TrimSpace(value)
	for _, p := range sensitivePatterns {
		if p.MatchString(v) {
			return true
		}
	}
	return false
}

// NewLogger creates a text slog.Logger that redacts sensitive data.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewRedactingHandler(textHandler))
}

