package modpool

import "sort"

// Categories maps a category group (e.g. "jewellery") to its concrete item categories
type Categories map[string][]string

// Expand replaces group names with their member categories and removes duplicates.
// Names that are not groups pass through unchanged.
func (c Categories) Expand(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range names {
		if members, ok := c[name]; ok {
			for _, m := range members {
				add(m)
			}
			continue
		}
		add(name)
	}
	return out
}

// Contains reports whether category is in names once names are expanded
func (c Categories) Contains(names []string, category string) bool {
	for _, n := range c.Expand(names) {
		if n == category {
			return true
		}
	}
	return false
}

// Groups returns the group names in sorted order
func (c Categories) Groups() []string {
	out := make([]string, 0, len(c))
	for g := range c {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}
