package loom

import "testing"

func TestUnitizeBundlesIdenticalAccess(t *testing.T) {
	readA := NewComponentRequest(NewComponentSpec(1), ComponentSpec{})
	writeB := NewComponentRequest(ComponentSpec{}, NewComponentSpec(2))
	writeA := NewComponentRequest(ComponentSpec{}, NewComponentSpec(1))

	tasks := []Task{
		{SystemIndex: 0, Access: readA},
		{SystemIndex: 1, Access: readA},
		{SystemIndex: 2, Access: writeB},
		{SystemIndex: 3, Access: writeA},
	}

	units := unitize(tasks)
	if len(units) != 3 {
		t.Fatalf("unitize produced %d units, want 3", len(units))
	}
	for _, u := range units {
		if u.Access.Equals(readA) && len(u.SystemIndices) != 2 {
			t.Errorf("read-A unit bundled %d tasks, want 2", len(u.SystemIndices))
		}
	}
}

func TestGraphColorPlannerGroupsConflictFreeUnits(t *testing.T) {
	readA := NewComponentRequest(NewComponentSpec(1), ComponentSpec{})
	writeB := NewComponentRequest(ComponentSpec{}, NewComponentSpec(2))
	writeA := NewComponentRequest(ComponentSpec{}, NewComponentSpec(1))

	tasks := []Task{
		{SystemIndex: 0, Access: readA},
		{SystemIndex: 1, Access: readA},
		{SystemIndex: 2, Access: writeB},
		{SystemIndex: 3, Access: writeA},
	}

	groups := (GraphColorPlanner{}).Plan(tasks)
	if len(groups) != 2 {
		t.Fatalf("planned %d groups, want 2", len(groups))
	}

	totalUnits := 0
	for _, g := range groups {
		totalUnits += len(g.Units)
	}
	if totalUnits != 3 {
		t.Fatalf("planned %d total units across groups, want 3", totalUnits)
	}

	// Every pair of units sharing a group must be conflict-free.
	for _, g := range groups {
		for i := range g.Units {
			for j := range g.Units {
				if i == j {
					continue
				}
				if g.Units[i].Access.ConflictsWith(g.Units[j].Access) {
					t.Errorf("group contains conflicting units: %+v vs %+v", g.Units[i], g.Units[j])
				}
			}
		}
	}
}

func TestSequentialPlannerFullySerializes(t *testing.T) {
	readA := NewComponentRequest(NewComponentSpec(1), ComponentSpec{})
	writeB := NewComponentRequest(ComponentSpec{}, NewComponentSpec(2))

	tasks := []Task{
		{SystemIndex: 0, Access: readA},
		{SystemIndex: 1, Access: writeB},
	}
	groups := (SequentialPlanner{}).Plan(tasks)
	if len(groups) != 2 {
		t.Fatalf("sequential planner produced %d groups, want one per unit (2)", len(groups))
	}
	for _, g := range groups {
		if len(g.Units) != 1 {
			t.Errorf("sequential planner group has %d units, want 1", len(g.Units))
		}
	}
}
