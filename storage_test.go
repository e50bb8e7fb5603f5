package loom

import "testing"

type testPosition struct{ X, Y float64 }
type testVelocity struct{ X, Y float64 }
type testHealth struct{ Current, Max int }

func TestArchetypeReuse(t *testing.T) {
	pos := RegisterComponent[testPosition]()
	vel := RegisterComponent[testVelocity]()

	tests := []struct {
		name        string
		firstSpec   ComponentSpec
		secondSpec  ComponentSpec
		expectEqual bool
	}{
		{"identical spec", NewComponentSpec(pos.ID(), vel.ID()), NewComponentSpec(pos.ID(), vel.ID()), true},
		{"order independent", NewComponentSpec(pos.ID(), vel.ID()), NewComponentSpec(vel.ID(), pos.ID()), true},
		{"different types", NewComponentSpec(pos.ID()), NewComponentSpec(vel.ID()), false},
		{"subset", NewComponentSpec(pos.ID(), vel.ID()), NewComponentSpec(pos.ID()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStorage()
			a1 := s.archetypeFor(tt.firstSpec)
			a2 := s.archetypeFor(tt.secondSpec)
			if (a1.ID() == a2.ID()) != tt.expectEqual {
				t.Errorf("archetype equal = %v, want %v", a1.ID() == a2.ID(), tt.expectEqual)
			}
		})
	}
}

func TestSpawnAndDespawn(t *testing.T) {
	w := NewWorld()

	entities := make([]Entity, 10)
	for i := range entities {
		entities[i] = w.Spawn(testPosition{X: float64(i)}, testVelocity{})
	}

	for i, e := range entities {
		loc, ok := w.Location(e)
		if !ok {
			t.Fatalf("entity %d: expected live location", i)
		}
		if loc.Row != i {
			t.Errorf("entity %d: row = %d, want %d", i, loc.Row, i)
		}
	}

	// Despawn a middle entity; the last entity should swap into its row.
	lastEntity := entities[9]
	if ok := w.Despawn(entities[3]); !ok {
		t.Fatal("expected despawn to succeed")
	}

	loc, ok := w.Location(lastEntity)
	if !ok {
		t.Fatal("expected surviving entity to still be live")
	}
	if loc.Row != 3 {
		t.Errorf("swapped entity row = %d, want 3", loc.Row)
	}

	if _, ok := w.Location(entities[3]); ok {
		t.Error("despawned entity should no longer resolve to a location")
	}

	if ok := w.Despawn(entities[3]); ok {
		t.Error("double despawn should report false")
	}
}

func TestEntityGenerationPreventsStaleAlias(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(testPosition{})
	w.Despawn(e)
	reused := w.Spawn(testPosition{})

	if reused.Index() != e.Index() {
		t.Skip("allocator did not recycle the freed index under this run")
	}
	if reused.Generation() == e.Generation() {
		t.Error("recycled index should bump generation")
	}
	if _, ok := w.Location(e); ok {
		t.Error("stale handle should not resolve to the new occupant's location")
	}
}
