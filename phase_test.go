package loom

import (
	"iter"
	"testing"
)

func TestPhaseRunsDisjointMutableSystemsInParallel(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition]()
	RegisterComponent[testVelocity]()

	const entityCount = 50
	entities := make([]Entity, entityCount)
	for i := range entities {
		entities[i] = w.Spawn(testPosition{X: float64(i)}, testVelocity{X: float64(i)})
	}

	posQuery := NewQuery1[testPosition](Write[testPosition]())
	velQuery := NewQuery1[testVelocity](Write[testVelocity]())

	bumpPos := NewSystem1[iter.Seq2[Entity, *testPosition]](
		"bump_position", posQuery,
		func(rows iter.Seq2[Entity, *testPosition], cb *CommandBuffer) {
			for _, p := range rows {
				p.X += 1
			}
		},
	)
	bumpVel := NewSystem1[iter.Seq2[Entity, *testVelocity]](
		"bump_velocity", velQuery,
		func(rows iter.Seq2[Entity, *testVelocity], cb *CommandBuffer) {
			for _, v := range rows {
				v.X += 100
			}
		},
	)

	if bumpPos.RequiredAccess().ConflictsWith(bumpVel.RequiredAccess()) {
		t.Fatal("disjoint-component systems must not conflict")
	}

	phase := NewPhase(GraphColorPlanner{})
	phase.AddSystem(bumpPos)
	phase.AddSystem(bumpVel)

	if len(phase.plan) != 1 {
		t.Fatalf("expected both systems in a single group, got %d groups", len(phase.plan))
	}
	if len(phase.plan[0].Units) != 2 {
		t.Fatalf("expected 2 units in the group, got %d", len(phase.plan[0].Units))
	}

	executor := NewExecutor(2)
	phase.Run(w, executor)

	for i, e := range entities {
		loc, ok := w.Location(e)
		if !ok {
			t.Fatalf("entity %d should still be alive", i)
		}
		tbl := w.Storage().tableAt(loc.Table)
		pos := tbl.columnByID(componentID[testPosition]()).get(loc.Row).(testPosition)
		vel := tbl.columnByID(componentID[testVelocity]()).get(loc.Row).(testVelocity)
		if pos.X != float64(i)+1 {
			t.Errorf("entity %d: position.X = %v, want %v", i, pos.X, float64(i)+1)
		}
		if vel.X != float64(i)+100 {
			t.Errorf("entity %d: velocity.X = %v, want %v", i, vel.X, float64(i)+100)
		}
	}
}

func TestPhasePanicInOneUnitDoesNotLeakOtherUnitsGrants(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition]()
	RegisterComponent[testVelocity]()
	w.Spawn(testPosition{}, testVelocity{})

	posQuery := NewQuery1[testPosition](Write[testPosition]())
	velQuery := NewQuery1[testVelocity](Write[testVelocity]())

	panicky := NewSystem1[iter.Seq2[Entity, *testPosition]](
		"panics", posQuery,
		func(rows iter.Seq2[Entity, *testPosition], cb *CommandBuffer) {
			panic("boom")
		},
	)
	fine := NewSystem1[iter.Seq2[Entity, *testVelocity]](
		"fine", velQuery,
		func(rows iter.Seq2[Entity, *testVelocity], cb *CommandBuffer) {
			for _, v := range rows {
				v.X += 1
			}
		},
	)

	phase := NewPhase(GraphColorPlanner{})
	phase.AddSystem(panicky)
	phase.AddSystem(fine)

	if len(phase.plan) != 1 || len(phase.plan[0].Units) != 2 {
		t.Fatalf("expected both systems bundled into one 2-unit group, got plan %+v", phase.plan)
	}

	phase.Run(w, NewExecutor(2))

	if len(w.grants.active) != 0 {
		t.Fatalf("expected every unit's grant to be released even though one unit panicked, got %d still active", len(w.grants.active))
	}

	// The world must still be usable afterward: a fresh, disjoint shard
	// request must not see a phantom conflict from a leaked grant.
	if _, err := w.Shard(NewComponentRequest(ComponentSpec{}, NewComponentSpec(componentID[testPosition]()))); err != nil {
		t.Fatalf("unexpected conflict after phase run, grant leaked: %v", err)
	}
}

func TestExclusiveSystemRunsInPrePhase(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition]()
	e := w.Spawn(testPosition{X: 1})

	ran := false
	exclusive := NewExclusiveSystem("reset_positions", func(world *World) {
		ran = true
		world.RemoveComponentIDs(e, componentID[testPosition]())
	})

	phase := NewPhase(GraphColorPlanner{})
	phase.AddSystem(exclusive)
	phase.Run(w, NewExecutor(1))

	if !ran {
		t.Fatal("exclusive system should have run")
	}
	loc, _ := w.Location(e)
	tbl := w.Storage().tableAt(loc.Table)
	if tbl.Spec().Len() != 0 {
		t.Errorf("expected the component to have been removed, spec len = %d", tbl.Spec().Len())
	}
}
