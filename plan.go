package loom

import "sort"

// Task pairs a system's index (within the phase's parallel-systems
// slice) with its required access — the planner's raw input.
type Task struct {
	SystemIndex int
	Access      AccessRequest
}

// Unit bundles task indices that share byte-identical access; tasks in
// a unit run sequentially against a single shared shard.
type Unit struct {
	SystemIndices []int
	Access        AccessRequest
}

// Group is a set of units that may run in parallel because their
// accesses pairwise don't conflict.
type Group struct {
	Units []Unit
}

// unitize bundles tasks by identical access: a task joins the first
// existing unit whose access equals its own, else starts a new unit.
// Idempotent up to ordering — running unitize on an already-bundled
// unit-task list yields one unit per input unit.
func unitize(tasks []Task) []Unit {
	units := make([]Unit, 0, len(tasks))
	for _, t := range tasks {
		placed := false
		for i := range units {
			if units[i].Access.Equals(t.Access) {
				units[i].SystemIndices = append(units[i].SystemIndices, t.SystemIndex)
				placed = true
				break
			}
		}
		if !placed {
			units = append(units, Unit{SystemIndices: []int{t.SystemIndex}, Access: t.Access})
		}
	}
	return units
}

// difficulty scores a unit for prioritize's descending sort: immutable
// world access is maximal difficulty (it conflicts with everything);
// otherwise score weights mutable access twice as constraining as
// immutable access.
func difficulty(a AccessRequest) int {
	if a.IsWorldImmut() || a.IsWorldMut() {
		return 1 << 30
	}
	return a.Immut().Len() + 2*a.Mut().Len()
}

// prioritize sorts units by descending difficulty; placing the most
// constrained units first improves the greedy coloring below.
func prioritize(units []Unit) []Unit {
	sorted := make([]Unit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return difficulty(sorted[i].Access) > difficulty(sorted[j].Access)
	})
	return sorted
}

// Planner turns a task list into an ordered list of Groups.
type Planner interface {
	Plan(tasks []Task) []Group
}

// GraphColorPlanner implements Welsh-Powell greedy graph coloring:
// place each (prioritized) unit into the first group with no
// conflicting unit, else start a new group.
type GraphColorPlanner struct{}

func (GraphColorPlanner) Plan(tasks []Task) []Group {
	units := prioritize(unitize(tasks))
	var groups []Group
	for _, u := range units {
		placed := false
		for gi := range groups {
			conflict := false
			for _, existing := range groups[gi].Units {
				if existing.Access.ConflictsWith(u.Access) {
					conflict = true
					break
				}
			}
			if !conflict {
				groups[gi].Units = append(groups[gi].Units, u)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, Group{Units: []Unit{u}})
		}
	}
	return groups
}

// SequentialPlanner produces one group per unit, preserving unitize's
// bundling but forcing full serialization — a baseline, and a fallback
// for platforms without real parallelism.
type SequentialPlanner struct{}

func (SequentialPlanner) Plan(tasks []Task) []Group {
	units := unitize(tasks)
	groups := make([]Group, len(units))
	for i, u := range units {
		groups[i] = Group{Units: []Unit{u}}
	}
	return groups
}
