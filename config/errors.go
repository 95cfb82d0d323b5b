package config

import "strings"

// ValidationBanner is the fixed first line of every aggregated validation
// report.
const ValidationBanner = "some errors occurred while validating the release config:"

// ValidationError aggregates every problem found in one validation pass.
// Problems are independent human-readable messages, ordered by field
// declaration order and then by intra-field iteration order. Except for
// duplicate linked-package reports, which are deduplicated by package name,
// problems are never merged or deduplicated.
type ValidationError struct {
	Problems []string
}

// Error returns the banner line followed by the newline-joined problem list.
func (e *ValidationError) Error() string {
	return ValidationBanner + "\n" + strings.Join(e.Problems, "\n")
}
