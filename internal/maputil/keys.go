// Package maputil provides small helpers for working with maps.
package maputil

import "sort"

// SortedKeys returns the keys of m in ascending order. The result is never
// nil, so callers can range or append without a nil check.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
