// Package workspace discovers the packages of a monorepo workspace.
//
// A workspace is rooted at a directory containing a package.json manifest.
// Member packages are located through the root manifest's "workspaces" globs
// (npm, yarn) or through a pnpm-workspace.yaml file (pnpm). A root manifest
// with neither yields a single-package workspace.
//
// The resulting Workspace is a read-only snapshot: discovery happens once in
// Find and nothing in this package mutates the result afterwards.
package workspace
