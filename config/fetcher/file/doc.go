// Package file provides the DataFetcher implementation that reads the
// release configuration document from its fixed workspace-relative location.
//
// The document lives at .skifta/config.json under the workspace root. It is
// read once at construction time and cached, so the core sees one consistent
// document for the lifetime of the fetcher.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/workspace")()
//	if err != nil {
//	    // Handle error: document missing, permission denied, etc.
//	}
//	data, err := fetcher.Fetch()
package file
