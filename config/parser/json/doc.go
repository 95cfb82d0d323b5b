// Package json provides the Parser implementation for the release
// configuration document.
//
// The document is JSON, which goccy/go-yaml parses as a YAML subset; using
// it here keeps one parsing stack for the config document, package.json
// manifests, and pnpm-workspace.yaml, and its errors carry source positions.
package json
