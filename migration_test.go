package loom

import "testing"

type dropCounter struct {
	Tag    string
	counts map[string]int
}

func (d dropCounter) Drop() {
	d.counts[d.Tag]++
}

func TestMigrationAddRemoveComponents(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition]()
	RegisterComponent[testVelocity]()
	RegisterComponent[testHealth]()

	e := w.Spawn(testPosition{X: 1}, testVelocity{X: 2})

	if ok := w.AddComponents(e, testHealth{Current: 10, Max: 10}); !ok {
		t.Fatal("expected AddComponents to succeed")
	}
	if ok := w.AddComponents(e, testHealth{}); ok {
		t.Error("re-adding an already-present component type should fail")
	}

	loc, ok := w.Location(e)
	if !ok {
		t.Fatal("entity should still be alive after migration")
	}
	tbl := w.Storage().tableAt(loc.Table)
	if tbl.Spec().Len() != 3 {
		t.Errorf("migrated table has %d columns, want 3", tbl.Spec().Len())
	}

	if ok := w.RemoveComponentIDs(e, componentID[testVelocity]()); !ok {
		t.Fatal("expected RemoveComponentIDs to succeed")
	}
	if ok := w.RemoveComponentIDs(e, componentID[testVelocity]()); ok {
		t.Error("removing an absent component type should fail")
	}

	loc, _ = w.Location(e)
	tbl = w.Storage().tableAt(loc.Table)
	if tbl.Spec().Len() != 2 {
		t.Errorf("migrated table has %d columns, want 2", tbl.Spec().Len())
	}
	if tbl.Spec().contains(componentID[testVelocity]()) {
		t.Error("velocity column should have been dropped from the spec")
	}
}

func TestMigrationDropsRemovedComponentExactlyOnce(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition]()
	RegisterComponent[dropCounter]()

	counts := make(map[string]int)
	e := w.Spawn(testPosition{}, dropCounter{Tag: "removed", counts: counts})

	if ok := w.RemoveComponentIDs(e, componentID[dropCounter]()); !ok {
		t.Fatal("expected removal to succeed")
	}
	if got := counts["removed"]; got != 1 {
		t.Errorf("dropped component fired Drop %d times, want 1", got)
	}

	// The entity must still be alive, in a table whose spec no longer
	// names the removed component.
	loc, ok := w.Location(e)
	if !ok {
		t.Fatal("entity should still be alive")
	}
	tbl := w.Storage().tableAt(loc.Table)
	if tbl.Spec().contains(componentID[dropCounter]()) {
		t.Error("removed component's type should no longer be in the entity's spec")
	}
}

func TestMigrationPreservesSharedComponentAcrossMigrationSwap(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition]()
	RegisterComponent[testVelocity]()

	a := w.Spawn(testPosition{X: 1}, testVelocity{})
	b := w.Spawn(testPosition{X: 2}, testVelocity{})
	w.AddComponents(a, testHealth{Current: 5})

	// a's migration swapped b from row 1 into row 0 of the
	// two-component table; migrating b afterwards must carry its own
	// shared position along and hold the newly added health value.
	if ok := w.AddComponents(b, testHealth{Current: 9}); !ok {
		t.Fatal("expected AddComponents to succeed")
	}
	loc, _ := w.Location(b)
	tbl := w.Storage().tableAt(loc.Table)
	col := tbl.columnByID(componentID[testHealth]())
	got := col.get(loc.Row).(testHealth)
	if got.Current != 9 {
		t.Errorf("migrated component value = %+v, want Current=9", got)
	}
	pos := tbl.columnByID(componentID[testPosition]()).get(loc.Row).(testPosition)
	if pos.X != 2 {
		t.Errorf("shared position after migration = %+v, want X=2", pos)
	}
}
