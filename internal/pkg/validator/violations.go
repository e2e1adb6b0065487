package validator

import (
	"sort"
	"strings"
)

// Violations is a collected set of field violations. Domain rules append to
// it instead of returning on the first failure, so a response carries every
// violation at once.
type Violations map[string]string

func (v Violations) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f + ": " + v[f])
	}
	return b.String()
}

// Add records a violation for field unless one is already present.
func (v Violations) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

// Merge folds other into v.
func (v Violations) Merge(other map[string]string) {
	for f, m := range other {
		v.Add(f, m)
	}
}

// OrNil returns nil when no violation was collected, so callers can use the
// usual `if err != nil` shape.
func (v Violations) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
