// Package validation implements the request-validation contract as
// declarative per-field rule lists. Every rule for every field is evaluated
// and all failures are collected; nothing short-circuits, so a response
// always carries the complete list of problems.
package validation

import (
	"strings"

	"inkwell/internal/models"
)

// Check validates a single field value and returns a failure message, or ""
// when the value passes.
type Check func(value string) string

// Field binds a named input value to its ordered list of checks.
type Field struct {
	Name   string
	Value  string
	Checks []Check
	// NoTrim skips whitespace trimming before evaluation (password
	// fields keep their exact bytes).
	NoTrim bool
}

// Result holds the sanitized field values and every collected failure.
type Result struct {
	Values map[string]string
	Errors []models.FieldError
}

// OK reports whether no check failed.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Get returns the sanitized value for a field.
func (r Result) Get(name string) string {
	return r.Values[name]
}

// Evaluate runs every check of every field, collecting all failures, and
// returns the trimmed and markup-escaped values for persistence.
func Evaluate(fields []Field) Result {
	res := Result{Values: make(map[string]string, len(fields))}

	for _, f := range fields {
		value := f.Value
		if !f.NoTrim {
			value = strings.TrimSpace(value)
		}

		for _, check := range f.Checks {
			if msg := check(value); msg != "" {
				res.Errors = append(res.Errors, models.FieldError{
					Field:   f.Name,
					Message: msg,
					Value:   value,
				})
			}
		}

		res.Values[f.Name] = Escape(value)
	}

	return res
}
