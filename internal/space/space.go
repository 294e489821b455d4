package space

import "sort"

// Space maps item identifiers to their position in one embedding space.
type Space map[string]Point

func (s Space) Clone() Space {
	c := make(Space, len(s))
	for k, v := range s {
		c[k] = v.Clone()
	}
	return c
}

// Keys returns the item identifiers in lexical order.
func (s Space) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Shared returns the items present in both s and other, in lexical order.
func (s Space) Shared(other Space) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		if _, ok := other[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Dim returns the dimension of the space, or 0 when it is empty or mixed.
func (s Space) Dim() int {
	dim := -1
	for _, p := range s {
		if dim == -1 {
			dim = len(p)
		} else if dim != len(p) {
			return 0
		}
	}
	if dim < 0 {
		return 0
	}
	return dim
}
