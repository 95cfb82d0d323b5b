package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"
)

// ErrMissingName is returned when a discovered package.json has no name field.
var ErrMissingName = errors.New("package has no name")

// ErrDuplicateName is returned when two workspace packages share a name.
var ErrDuplicateName = errors.New("duplicate package name")

// Tool identifies the package manager that defines the workspace layout.
type Tool string

// Workspace layout tools recognized by Find.
const (
	ToolNPM  Tool = "npm"
	ToolYarn Tool = "yarn"
	ToolPNPM Tool = "pnpm"
	ToolRoot Tool = "root"
)

// PackageJSON holds the subset of package.json fields the tool reads.
type PackageJSON struct {
	Name                 string            `yaml:"name"`
	Version              string            `yaml:"version"`
	Private              bool              `yaml:"private"`
	Workspaces           []string          `yaml:"workspaces"`
	Dependencies         map[string]string `yaml:"dependencies"`
	DevDependencies      map[string]string `yaml:"devDependencies"`
	PeerDependencies     map[string]string `yaml:"peerDependencies"`
	OptionalDependencies map[string]string `yaml:"optionalDependencies"`
}

// Package is one package of the workspace. Identity is PackageJSON.Name,
// unique within a Workspace.
type Package struct {
	Dir         string
	PackageJSON PackageJSON
}

// Workspace is the set of packages under management plus root and tool
// metadata. It is a read-only input for the rest of the module.
type Workspace struct {
	Root     Package
	Tool     Tool
	Packages []Package
}

// pnpmManifest is the shape of pnpm-workspace.yaml.
type pnpmManifest struct {
	Packages []string `yaml:"packages"`
}

// Find discovers the workspace rooted at dir. Member packages are resolved
// from pnpm-workspace.yaml when present, otherwise from the root manifest's
// "workspaces" globs. Packages are returned sorted by name.
func Find(dir string) (*Workspace, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	rootPkg, err := readPackage(root)
	if err != nil {
		return nil, err
	}

	tool, globs, err := detectTool(root, rootPkg.PackageJSON)
	if err != nil {
		return nil, err
	}

	packages, err := expand(root, globs)
	if err != nil {
		return nil, err
	}

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].PackageJSON.Name < packages[j].PackageJSON.Name
	})

	seen := make(map[string]string, len(packages))

	for _, pkg := range packages {
		name := pkg.PackageJSON.Name
		if previous, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q found in %s and %s", ErrDuplicateName, name, previous, pkg.Dir)
		}

		seen[name] = pkg.Dir
	}

	return &Workspace{
		Root:     rootPkg,
		Tool:     tool,
		Packages: packages,
	}, nil
}

// detectTool decides which package manager owns the workspace and returns the
// member globs to expand.
func detectTool(root string, rootManifest PackageJSON) (Tool, []string, error) {
	pnpmPath := filepath.Join(root, "pnpm-workspace.yaml")

	data, err := os.ReadFile(pnpmPath) // #nosec G304 -- path is derived from the workspace root
	if err == nil {
		var manifest pnpmManifest

		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return "", nil, fmt.Errorf("parsing %s: %w", pnpmPath, err)
		}

		return ToolPNPM, manifest.Packages, nil
	}

	if !os.IsNotExist(err) {
		return "", nil, fmt.Errorf("reading %s: %w", pnpmPath, err)
	}

	if len(rootManifest.Workspaces) == 0 {
		return ToolRoot, nil, nil
	}

	if _, err := os.Stat(filepath.Join(root, "yarn.lock")); err == nil {
		return ToolYarn, rootManifest.Workspaces, nil
	}

	return ToolNPM, rootManifest.Workspaces, nil
}

// expand resolves workspace globs to packages. Matches without a package.json
// are skipped; matches with a manifest but no name are an error.
func expand(root string, globs []string) ([]Package, error) {
	var packages []Package

	for _, pattern := range globs {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("expanding workspace glob %q: %w", pattern, err)
		}

		for _, match := range matches {
			stat, err := os.Stat(match)
			if err != nil || !stat.IsDir() {
				continue
			}

			if _, err := os.Stat(filepath.Join(match, "package.json")); err != nil {
				continue
			}

			pkg, err := readPackage(match)
			if err != nil {
				return nil, err
			}

			packages = append(packages, pkg)
		}
	}

	return packages, nil
}

// readPackage loads the package.json manifest of a single package directory.
func readPackage(dir string) (Package, error) {
	manifestPath := filepath.Join(dir, "package.json")

	data, err := os.ReadFile(manifestPath) // #nosec G304 -- path is derived from the workspace root
	if err != nil {
		return Package{}, fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	var manifest PackageJSON

	// package.json is JSON, which goccy/go-yaml parses as a YAML subset.
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return Package{}, fmt.Errorf("parsing %s: %w", manifestPath, err)
	}

	if manifest.Name == "" {
		return Package{}, fmt.Errorf("%w: %s", ErrMissingName, manifestPath)
	}

	return Package{Dir: dir, PackageJSON: manifest}, nil
}
