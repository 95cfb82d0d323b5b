package depgraph

import "github.com/0xalexb/skifta/workspace"

// Dependents builds the dependents graph for a workspace: package name to the
// names of workspace packages that depend on it, in workspace package order.
// Only dependencies on workspace members are indexed; external dependencies
// are ignored. Every workspace package has an entry, possibly empty.
func Dependents(ws *workspace.Workspace) map[string][]string {
	graph := make(map[string][]string, len(ws.Packages))

	for _, pkg := range ws.Packages {
		graph[pkg.PackageJSON.Name] = nil
	}

	for _, pkg := range ws.Packages {
		name := pkg.PackageJSON.Name

		for _, dependency := range internalDependencies(pkg.PackageJSON, graph) {
			graph[dependency] = append(graph[dependency], name)
		}
	}

	return graph
}

// internalDependencies returns the workspace members this manifest depends
// on, deduplicated across the four dependency fields. Order is not
// significant here: dependent lists are ordered by the caller's package loop.
func internalDependencies(manifest workspace.PackageJSON, members map[string][]string) []string {
	fields := []map[string]string{
		manifest.Dependencies,
		manifest.DevDependencies,
		manifest.PeerDependencies,
		manifest.OptionalDependencies,
	}

	var internal []string

	seen := make(map[string]bool)

	for _, field := range fields {
		for dependency := range field {
			if _, ok := members[dependency]; !ok {
				continue
			}

			if seen[dependency] {
				continue
			}

			seen[dependency] = true
			internal = append(internal, dependency)
		}
	}

	return internal
}
