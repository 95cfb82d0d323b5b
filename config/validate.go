package config

import (
	"encoding/json"
	"fmt"

	"github.com/0xalexb/skifta/depgraph"
	"github.com/0xalexb/skifta/workspace"
)

// DependentsFunc supplies the dependents graph of a workspace: package name
// to the names of packages that depend on it.
type DependentsFunc func(*workspace.Workspace) map[string][]string

// validator accumulates problems across every field check of one Parse call.
type validator struct {
	raw        *Raw
	ws         *workspace.Workspace
	warner     Warner
	dependents DependentsFunc
	problems   []string
	access     Access // legacy spelling already rewritten; empty if unset
}

// fieldChecks is the declarative validation table. Checks run in field
// declaration order; every check appends zero or more problems and none
// short-circuits another, so one pass reports everything that is wrong.
var fieldChecks = []struct {
	field string
	check func(v *validator, field string)
}{
	{"changelog", (*validator).checkChangelog},
	{"access", (*validator).checkAccess},
	{"commit", (*validator).checkCommit},
	{"baseBranch", (*validator).checkBaseBranch},
	{"linked", (*validator).checkLinked},
	{"updateInternalDependencies", (*validator).checkUpdateInternalDependencies},
	{"ignore", (*validator).checkIgnore},
	{"experimental", (*validator).checkExperimental},
}

// Parse validates the raw document against the workspace and, when no
// problems are found, assembles the resolved configuration. All checks
// always run; on failure the returned error is a *ValidationError carrying
// every problem in order and no partial configuration is returned.
func Parse(raw *Raw, ws *workspace.Workspace, opts ...Option) (*Resolved, error) {
	if raw == nil {
		raw = &Raw{}
	}

	if ws == nil {
		ws = &workspace.Workspace{}
	}

	v := &validator{
		raw:        raw,
		ws:         ws,
		warner:     defaultWarner{},
		dependents: depgraph.Dependents,
	}

	for _, apply := range opts {
		apply(v)
	}

	for _, entry := range fieldChecks {
		entry.check(v, entry.field)
	}

	if len(v.problems) > 0 {
		return nil, &ValidationError{Problems: v.problems}
	}

	resolved := assemble(raw, v.access)

	return &resolved, nil
}

func (v *validator) checkChangelog(field string) {
	value := v.raw.Changelog

	switch c := value.(type) {
	case nil:
		return
	case bool:
		if !c {
			return
		}
	case string:
		return
	case []any:
		if len(c) == 2 {
			if _, ok := c[0].(string); ok {
				return
			}
		}
	}

	v.reject(field, value, "false, a generator name, or a [generator, options] pair")
}

func (v *validator) checkAccess(field string) {
	value := v.raw.Access
	if value == nil {
		return
	}

	if s, ok := value.(string); ok {
		// The legacy spelling is rewritten, not rejected; the warning is
		// informational and does not block success.
		if s == legacyAccessPrivate {
			v.warner.Warn(`the "access" option is set as "private"; this value is deprecated, using "restricted" instead`)
			v.access = AccessRestricted

			return
		}

		if access := Access(s); access == AccessPublic || access == AccessRestricted {
			v.access = access

			return
		}
	}

	v.reject(field, value, `"public" or "restricted"`)
}

func (v *validator) checkCommit(field string) {
	value := v.raw.Commit
	if value == nil {
		return
	}

	if _, ok := value.(bool); !ok {
		v.reject(field, value, "a boolean")
	}
}

func (v *validator) checkBaseBranch(field string) {
	value := v.raw.BaseBranch
	if value == nil {
		return
	}

	if _, ok := value.(string); !ok {
		v.reject(field, value, "a branch name string")
	}
}

func (v *validator) checkLinked(field string) {
	value := v.raw.Linked
	if value == nil {
		return
	}

	sets, ok := toStringSets(value)
	if !ok {
		v.reject(field, value, "an array of arrays of package names")

		return
	}

	known := v.packageNames()
	occurrences := make(map[string]int)

	var duplicates []string

	for _, set := range sets {
		for _, name := range set {
			if !known[name] {
				v.problemf("the package %q specified in the %q option does not exist in the workspace", name, field)
			}

			occurrences[name]++

			// Reported once per name, however many extra sets it is in.
			if occurrences[name] == 2 {
				duplicates = append(duplicates, name)
			}
		}
	}

	for _, name := range duplicates {
		v.problemf("the package %q can only belong to one set of linked packages", name)
	}
}

func (v *validator) checkUpdateInternalDependencies(field string) {
	value := v.raw.UpdateInternalDependencies
	if value == nil {
		return
	}

	if s, ok := value.(string); ok {
		if bump := Bump(s); bump == BumpPatch || bump == BumpMinor {
			return
		}
	}

	v.reject(field, value, `"patch" or "minor"`)
}

func (v *validator) checkIgnore(field string) {
	value := v.raw.Ignore
	if value == nil {
		return
	}

	ignored, ok := toStrings(value)
	if !ok {
		v.reject(field, value, "an array of package names")

		return
	}

	known := v.packageNames()

	for _, name := range ignored {
		if !known[name] {
			v.problemf("the package %q specified in the %q option does not exist in the workspace", name, field)
		}
	}

	// The ignore set must be closed under "depended on by": versioning a
	// dependent of an ignored package would still bump the ignored package.
	// The graph is built lazily, only for a well-shaped ignore field.
	graph := v.dependents(v.ws)
	inIgnore := make(map[string]bool, len(ignored))

	for _, name := range ignored {
		inIgnore[name] = true
	}

	// One message per ignored package and missing dependent pair; messages
	// for the same dependent reached through different ignored packages are
	// deliberately not merged.
	for _, name := range ignored {
		for _, dependent := range graph[name] {
			if !inIgnore[dependent] {
				v.problemf("the package %q depends on the ignored package %q but is not being ignored itself; please add it to the %q option", dependent, name, field)
			}
		}
	}
}

func (v *validator) checkExperimental(field string) {
	value := v.raw.Experimental
	if value == nil {
		return
	}

	flags, ok := value.(map[string]any)
	if !ok {
		v.reject(field, value, "an object of experimental flags")

		return
	}

	for _, flag := range []string{flagOnlyUpdatePeerDependents, flagUseCalculatedVersion} {
		raw, present := flags[flag]
		if !present {
			continue
		}

		if _, ok := raw.(bool); !ok {
			v.reject(field+"."+flag, raw, "a boolean")
		}
	}
}

// reject records a type/shape problem naming the field, the serialized
// offending value, and the accepted values.
func (v *validator) reject(field string, value any, accepted string) {
	v.problemf("the %q option is set as %s but can only be set as %s", field, serialize(value), accepted)
}

func (v *validator) problemf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

// packageNames indexes the workspace package names for existence checks.
func (v *validator) packageNames() map[string]bool {
	names := make(map[string]bool, len(v.ws.Packages))

	for _, pkg := range v.ws.Packages {
		names[pkg.PackageJSON.Name] = true
	}

	return names
}

// serialize renders an offending value the way the user wrote it in the
// JSON document.
func serialize(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

// toStringSets converts a raw linked value to its typed shape, reporting
// whether the value is an array of arrays of strings.
func toStringSets(value any) ([][]string, bool) {
	list, ok := value.([]any)
	if !ok {
		return nil, false
	}

	sets := make([][]string, 0, len(list))

	for _, entry := range list {
		set, ok := toStrings(entry)
		if !ok {
			return nil, false
		}

		sets = append(sets, set)
	}

	return sets, true
}

// toStrings converts a raw array value to a string slice, reporting whether
// every element is a string.
func toStrings(value any) ([]string, bool) {
	list, ok := value.([]any)
	if !ok {
		return nil, false
	}

	names := make([]string, 0, len(list))

	for _, entry := range list {
		name, ok := entry.(string)
		if !ok {
			return nil, false
		}

		names = append(names, name)
	}

	return names, true
}
