package loom

import "testing"

func TestQueryRequiredAndOptionalComponents(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition]()
	RegisterComponent[testVelocity]()
	RegisterComponent[testHealth]()

	withBoth := w.Spawn(testPosition{X: 1}, testVelocity{X: 10})
	posOnly := w.Spawn(testPosition{X: 2})
	_ = w.Spawn(testVelocity{X: 99})

	query := NewQuery2[testPosition, testVelocity](Write[testPosition](), OptRead[testVelocity]())
	shard, err := w.Shard(query.AccessRequest())
	if err != nil {
		t.Fatalf("unexpected shard conflict: %v", err)
	}
	defer w.ReleaseShard(shard)

	seen := map[Entity]Row2[testPosition, testVelocity]{}
	for e, row := range query.Iter(shard) {
		seen[e] = row
	}

	if len(seen) != 2 {
		t.Fatalf("matched %d entities, want 2 (position is required)", len(seen))
	}
	if row, ok := seen[withBoth]; !ok || row.B == nil || row.B.X != 10 {
		t.Errorf("entity with both components: row = %+v", row)
	}
	if row, ok := seen[posOnly]; !ok || row.B != nil {
		t.Errorf("entity missing optional velocity should yield nil B, got %+v", row)
	}
}

func TestQueryWriteMutatesStorage(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition]()
	RegisterComponent[testVelocity]()

	e := w.Spawn(testPosition{X: 0}, testVelocity{X: 5})

	query := NewQuery2[testPosition, testVelocity](Write[testPosition](), Read[testVelocity]())
	shard, err := w.Shard(query.AccessRequest())
	if err != nil {
		t.Fatalf("unexpected shard conflict: %v", err)
	}
	for _, row := range query.Iter(shard) {
		row.A.X += row.B.X
	}
	w.ReleaseShard(shard)

	loc, _ := w.Location(e)
	tbl := w.Storage().tableAt(loc.Table)
	pos := tbl.columnByID(componentID[testPosition]()).get(loc.Row).(testPosition)
	if pos.X != 5 {
		t.Errorf("position.X = %v, want 5", pos.X)
	}
}

func TestQueryRejectsDuplicateComponentType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a query claiming the same component type twice")
		}
	}()
	RegisterComponent[testPosition]()
	NewQuery2[testPosition, testPosition](Write[testPosition](), Read[testPosition]())
}
