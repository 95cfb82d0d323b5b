package config_test

import (
	"testing"

	"github.com/0xalexb/skifta/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ChangelogNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected config.Changelog
	}{
		{
			name:     "absent resolves to default generator",
			value:    nil,
			expected: config.Changelog{Generator: config.DefaultChangelogGenerator},
		},
		{
			name:     "false disables the changelog",
			value:    false,
			expected: config.Changelog{Disabled: true},
		},
		{
			name:     "bare generator name gets nil options",
			value:    "my-generator",
			expected: config.Changelog{Generator: "my-generator"},
		},
		{
			name:  "generator with options passes through",
			value: []any{"my-generator", map[string]any{"repo": "org/repo"}},
			expected: config.Changelog{
				Generator: "my-generator",
				Options:   map[string]any{"repo": "org/repo"},
			},
		},
		{
			name:     "generator with explicit null options",
			value:    []any{"my-generator", nil},
			expected: config.Changelog{Generator: "my-generator"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolved, err := config.Parse(&config.Raw{Changelog: tt.value}, testWorkspace("pkg-a"))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, resolved.Changelog)
		})
	}
}

func TestParse_UserValuesOverrideDefaults(t *testing.T) {
	t.Parallel()

	raw := &config.Raw{
		Changelog:                  false,
		Access:                     "public",
		Commit:                     true,
		BaseBranch:                 "main",
		Linked:                     []any{[]any{"pkg-a", "pkg-b"}},
		UpdateInternalDependencies: "minor",
		Ignore:                     []any{"pkg-c"},
		Experimental: map[string]any{
			"onlyUpdatePeerDependentsWhenOutOfRange": true,
		},
	}

	resolved, err := config.Parse(raw, testWorkspace("pkg-a", "pkg-b", "pkg-c"))

	require.NoError(t, err)
	assert.True(t, resolved.Changelog.Disabled)
	assert.Equal(t, config.AccessPublic, resolved.Access)
	assert.True(t, resolved.Commit)
	assert.Equal(t, "main", resolved.BaseBranch)
	assert.Equal(t, [][]string{{"pkg-a", "pkg-b"}}, resolved.Linked)
	assert.Equal(t, config.BumpMinor, resolved.UpdateInternalDependencies)
	assert.Equal(t, []string{"pkg-c"}, resolved.Ignore)
	assert.True(t, resolved.Experimental.OnlyUpdatePeerDependentsWhenOutOfRange)
	// The other flag defaults independently of the object being present.
	assert.False(t, resolved.Experimental.UseCalculatedVersionForSnapshots)
}

func TestDefault_MatchesTemplate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, config.Changelog{Generator: config.DefaultChangelogGenerator}, config.Default.Changelog)
	assert.False(t, config.Default.Commit)
	assert.Equal(t, config.AccessRestricted, config.Default.Access)
	assert.Equal(t, "master", config.Default.BaseBranch)
	assert.Empty(t, config.Default.Linked)
	assert.Equal(t, config.BumpPatch, config.Default.UpdateInternalDependencies)
	assert.Empty(t, config.Default.Ignore)
	assert.Equal(t, config.Experimental{}, config.Default.Experimental)
}
