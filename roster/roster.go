// Package roster loads the list of names the wheel draws from and the
// rotating banner messages shown under it. Both come from a JSON file
// or URL and fall back to built-in samples when no source is given.
package roster

import (
	"strings"
)

// Roster is the loaded participant list plus banner messages
type Roster struct {
	Names   []string
	Banners []string
}

// Normalize trims whitespace, drops empties and removes duplicates
// case-insensitively, keeping the first spelling and the original
// order. Slice order drives wedge order on the wheel, so it must be
// stable across loads of the same file.
func Normalize(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
