package util

import "sort"

// OrderedKeys returns the keys of m sorted in ascending order. Used
// throughout the LR(1) construction code to get deterministic iteration
// order over maps keyed by state or item string representations.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
