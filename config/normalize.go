package config

// normalizeChangelog maps the raw changelog field to its canonical variant.
// It only sees values the validator already accepted, or nil for an absent
// field; every other shape has been rejected before this point and the final
// fallback exists only to keep the function total.
func normalizeChangelog(value any) Changelog {
	switch v := value.(type) {
	case nil:
		return defaults.Changelog
	case bool:
		if !v {
			return Changelog{Disabled: true}
		}
	case string:
		return Changelog{Generator: v}
	case []any:
		if len(v) == 2 {
			if generator, ok := v[0].(string); ok {
				return Changelog{Generator: generator, Options: v[1]}
			}
		}
	}

	return defaults.Changelog
}
