package utils

import "strings"

func RemoveDuplicates[T comparable](in []T) []T {
	seen := make(map[T]bool)
	out := []T{}
	for _, v := range in {
		if _, ok := seen[v]; !ok {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// CleanStrings trims every value, drops blanks and duplicates, keeping first-seen order.
func CleanStrings(in []string) []string {
	trimmed := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			trimmed = append(trimmed, v)
		}
	}
	return RemoveDuplicates(trimmed)
}
