package loom

import (
	"sort"

	"github.com/TheBitDrifter/mask"
)

// ComponentSpec is an ordered, deduplicated set of TypeIds naming an
// archetype's component columns. Two specs are equal iff they name the
// same types, regardless of construction order — canonicalized here by
// keeping ids sorted.
type ComponentSpec struct {
	ids []TypeId
}

// NewComponentSpec builds a canonicalized spec from possibly-unsorted,
// possibly-duplicated TypeIds.
func NewComponentSpec(ids ...TypeId) ComponentSpec {
	seen := make(map[TypeId]struct{}, len(ids))
	out := make([]TypeId, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return ComponentSpec{ids: out}
}

func (s ComponentSpec) IDs() []TypeId { return s.ids }

func (s ComponentSpec) Len() int { return len(s.ids) }

// Mask renders the spec as a mask.Mask suitable for matching against a
// table's archetype mask.
func (s ComponentSpec) Mask() mask.Mask {
	var m mask.Mask
	for _, id := range s.ids {
		m.Mark(uint32(id))
	}
	return m
}

func (s ComponentSpec) contains(id TypeId) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Union returns the set union of s and other.
func (s ComponentSpec) Union(other ComponentSpec) ComponentSpec {
	return NewComponentSpec(append(append([]TypeId{}, s.ids...), other.ids...)...)
}

// Intersection returns the set intersection of s and other.
func (s ComponentSpec) Intersection(other ComponentSpec) ComponentSpec {
	out := make([]TypeId, 0, len(s.ids))
	for _, id := range s.ids {
		if other.contains(id) {
			out = append(out, id)
		}
	}
	return NewComponentSpec(out...)
}

// Difference returns s with every id in other removed.
func (s ComponentSpec) Difference(other ComponentSpec) ComponentSpec {
	out := make([]TypeId, 0, len(s.ids))
	for _, id := range s.ids {
		if !other.contains(id) {
			out = append(out, id)
		}
	}
	return NewComponentSpec(out...)
}

// ContainsAll reports whether s contains every id in other.
func (s ComponentSpec) ContainsAll(other ComponentSpec) bool {
	for _, id := range other.ids {
		if !s.contains(id) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether s and other share at least one id.
func (s ComponentSpec) ContainsAny(other ComponentSpec) bool {
	for _, id := range other.ids {
		if s.contains(id) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the spec names no types.
func (s ComponentSpec) IsEmpty() bool { return len(s.ids) == 0 }

// Equals reports set equality (order-insensitive, since both sides are
// canonicalized at construction).
func (s ComponentSpec) Equals(other ComponentSpec) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}
