// Package strings provides slice normalization helpers for list-valued
// configuration such as airport codes and dispute categories.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
func DedupeAndTrim(values []string) []string {
	return normalize(values, strings.TrimSpace)
}

// DedupeAndTrimUpper is like DedupeAndTrim but also uppercases each
// element. Airport and carrier codes are compared uppercase throughout,
// so env-supplied lists are normalized once at load.
func DedupeAndTrimUpper(values []string) []string {
	return normalize(values, func(v string) string {
		return strings.ToUpper(strings.TrimSpace(v))
	})
}

func normalize(values []string, fn func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		normalized := fn(v)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; !ok {
			seen[normalized] = struct{}{}
			result = append(result, normalized)
		}
	}

	return result
}
