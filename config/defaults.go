package config

// DefaultChangelogGenerator is the changelog strategy used when the document
// does not choose one.
const DefaultChangelogGenerator = "skifta/changelog"

// defaults is the template every resolved configuration starts from. The
// assembler takes the user value where one is set and falls back to this
// template everywhere else.
var defaults = Resolved{
	Changelog:                  Changelog{Generator: DefaultChangelogGenerator},
	Commit:                     false,
	Access:                     AccessRestricted,
	BaseBranch:                 "master",
	Linked:                     nil,
	UpdateInternalDependencies: BumpPatch,
	Ignore:                     nil,
	Experimental:               Experimental{},
}

// Default is the resolved configuration for a document with no overrides,
// computed once at package initialization and never mutated afterwards.
// Callers that need "config with no user input" can read it directly instead
// of running a validation pass.
var Default = assemble(&Raw{}, "")
