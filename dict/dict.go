// Package dict provides helpers for loosely shaped string-keyed maps, as
// produced by ad-hoc JSON or YAML decoding.
package dict

// FindField returns the first of the candidate keys present in src.
func FindField[V any](src map[string]V, candidates ...string) (string, bool) {
	for _, k := range candidates {
		if _, ok := src[k]; ok {
			return k, true
		}
	}
	return "", false
}

// FindValue returns the value for the first candidate key present in src.
func FindValue[V any](src map[string]V, candidates ...string) (V, bool) {
	for _, k := range candidates {
		if v, ok := src[k]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Normalize returns a copy of src with aliased keys renamed to their
// canonical form. aliases maps a canonical key to the spellings that should
// collapse into it; the canonical key itself, when present, wins over every
// alias, and aliases are consulted in their declared order. An alias that
// loses (because the canonical key or an earlier alias supplied the value)
// keeps its own entry. Keys not mentioned in aliases are copied through
// unchanged.
func Normalize[V any](src map[string]V, aliases map[string][]string) map[string]V {
	out := make(map[string]V, len(src))
	claimed := make(map[string]bool, len(aliases))
	for canonical, names := range aliases {
		if v, ok := src[canonical]; ok {
			out[canonical] = v
			claimed[canonical] = true
			continue
		}
		for _, n := range names {
			if v, ok := src[n]; ok {
				out[canonical] = v
				claimed[n] = true
				break
			}
		}
	}
	for k, v := range src {
		if claimed[k] {
			continue
		}
		if _, taken := out[k]; taken {
			continue
		}
		out[k] = v
	}
	return out
}
