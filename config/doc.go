// Package config normalizes and validates the release configuration of a
// monorepo workspace.
//
// The input is the loosely typed document at .skifta/config.json plus the
// discovered workspace. Validation is exhaustive: every field check runs and
// every problem is collected into one ordered *ValidationError, so the user
// gets a single actionable report instead of an error-fix-error loop. When
// no problems are found the document is merged over the default template
// into a fully typed Resolved value.
//
// The package keeps two small extension points from the loader pipeline:
//   - DataFetcher: retrieves the raw document (see config/fetcher/file)
//   - Parser: deserializes the document into the loose Raw form
//     (see config/parser/json)
//
// A typical standalone use:
//
//	ws, err := workspace.Find(".")
//	// handle err
//	fetcher, err := filefetcher.NewFetcher(".")()
//	// handle err
//	cfg, err := config.Load(fetcher, jsonparser.NewParser(), ws)
//
// Under fx, NewModule wires the same pipeline into the container.
package config
