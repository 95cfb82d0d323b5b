package config

// assemble merges the user document over the default template: the user
// value where one is set, the template's value everywhere else. It runs only
// after validation has passed (or on the empty document, for Default), so it
// is total and cannot fail. access carries the validator's already-rewritten
// access value; empty means the document did not set one.
func assemble(raw *Raw, access Access) Resolved {
	resolved := defaults

	resolved.Changelog = normalizeChangelog(raw.Changelog)

	if commit, ok := raw.Commit.(bool); ok {
		resolved.Commit = commit
	}

	if access != "" {
		resolved.Access = access
	}

	if branch, ok := raw.BaseBranch.(string); ok {
		resolved.BaseBranch = branch
	}

	if sets, ok := toStringSets(raw.Linked); ok {
		resolved.Linked = sets
	}

	if bump, ok := raw.UpdateInternalDependencies.(string); ok {
		resolved.UpdateInternalDependencies = Bump(bump)
	}

	if ignored, ok := toStrings(raw.Ignore); ok {
		resolved.Ignore = ignored
	}

	// The experimental flags default independently: a missing flag stays
	// false whether or not the experimental object itself was present.
	if flags, ok := raw.Experimental.(map[string]any); ok {
		if flag, ok := flags[flagOnlyUpdatePeerDependents].(bool); ok {
			resolved.Experimental.OnlyUpdatePeerDependentsWhenOutOfRange = flag
		}

		if flag, ok := flags[flagUseCalculatedVersion].(bool); ok {
			resolved.Experimental.UseCalculatedVersionForSnapshots = flag
		}
	}

	return resolved
}
