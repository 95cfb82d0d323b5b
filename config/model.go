package config

// Access controls where released packages are published.
type Access string

// Accepted access values. The legacy spelling "private" is rewritten to
// AccessRestricted during validation.
const (
	AccessPublic     Access = "public"
	AccessRestricted Access = "restricted"

	legacyAccessPrivate = "private"
)

// Bump selects how internal dependency ranges are bumped when a dependency
// they point at is released.
type Bump string

// Accepted bump values for updateInternalDependencies.
const (
	BumpPatch Bump = "patch"
	BumpMinor Bump = "minor"
)

// Raw is the user-authored configuration document as parsed from
// .skifta/config.json. Every field is deliberately loose so malformed shapes
// survive parsing and reach the validator, which reports all problems in a
// single pass instead of failing on the first one. Absent fields are nil and
// resolve to their defaults.
type Raw struct {
	Changelog                  any `yaml:"changelog"`
	Access                     any `yaml:"access"`
	Commit                     any `yaml:"commit"`
	BaseBranch                 any `yaml:"baseBranch"`
	Linked                     any `yaml:"linked"`
	UpdateInternalDependencies any `yaml:"updateInternalDependencies"`
	Ignore                     any `yaml:"ignore"`
	Experimental               any `yaml:"experimental"`
}

// Changelog is the normalized form of the raw changelog field: false becomes
// Disabled, a bare generator name becomes a Generator with nil Options, and a
// [generator, options] pair keeps its options.
type Changelog struct {
	Disabled  bool
	Generator string
	Options   any
}

// Experimental holds unstable flags that may change between patch releases.
// Both default to false whether or not the experimental object was present.
type Experimental struct {
	OnlyUpdatePeerDependentsWhenOutOfRange bool
	UseCalculatedVersionForSnapshots       bool
}

// Raw field names of the experimental flags.
const (
	flagOnlyUpdatePeerDependents = "onlyUpdatePeerDependentsWhenOutOfRange"
	flagUseCalculatedVersion     = "useCalculatedVersionForSnapshots"
)

// Resolved is the fully typed, fully defaulted configuration produced once
// validation passes. It is a plain value; callers may copy it freely.
type Resolved struct {
	Changelog                  Changelog
	Commit                     bool
	Access                     Access
	BaseBranch                 string
	Linked                     [][]string
	UpdateInternalDependencies Bump
	Ignore                     []string
	Experimental               Experimental
}
