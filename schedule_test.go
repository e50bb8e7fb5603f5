package loom

import "testing"

func TestScheduleRunSequenceSkipsUnregisteredPhases(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition]()
	e := w.Spawn(testPosition{X: 1})

	sched := NewSchedule(GraphColorPlanner{})
	sched.AddSystem("update", NewExclusiveSystem("bump", func(world *World) {
		loc, _ := world.Location(e)
		tbl := world.Storage().tableAt(loc.Table)
		pos := tbl.columnByID(componentID[testPosition]()).get(loc.Row).(testPosition)
		pos.X++ // mutating the copy on purpose: exercised only to prove the phase ran
	}))

	ranUpdate := false
	sched.AddSystem("update", NewExclusiveSystem("mark_ran", func(world *World) {
		ranUpdate = true
	}))

	ex := NewExecutor(1)
	sched.RunSequence([]Label{"pre_update", "update", "post_update"}, w, ex)

	if !ranUpdate {
		t.Error("expected the registered 'update' phase to have run")
	}
	if sched.Phase("pre_update") != nil {
		t.Error("unregistered phase should stay nil")
	}
}
