// Package depgraph builds the reverse dependency index of a workspace:
// for every package name, the ordered list of workspace packages that
// declare a dependency on it.
package depgraph
