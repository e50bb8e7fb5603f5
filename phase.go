package loom

// Phase owns a sequential pre-phase of exclusive (world_mut) systems
// and a planned main phase of parallel systems. AddSystem routes a
// system to the right bucket and re-plans whenever a parallel system is
// added.
type Phase struct {
	exclusive []*System
	parallel  []*System
	planner   Planner
	plan      []Group
}

// NewPhase builds an empty phase using the given planner (typically
// GraphColorPlanner; SequentialPlanner as a baseline/fallback).
func NewPhase(planner Planner) *Phase {
	if planner == nil {
		planner = GraphColorPlanner{}
	}
	return &Phase{planner: planner}
}

// AddSystem routes sys to the pre-phase (if it requests world_mut) or
// the parallel plan, replanning the parallel systems immediately.
func (p *Phase) AddSystem(sys *System) {
	if sys.IsExclusive() {
		p.exclusive = append(p.exclusive, sys)
		return
	}
	p.parallel = append(p.parallel, sys)
	p.replan()
}

func (p *Phase) replan() {
	tasks := make([]Task, len(p.parallel))
	for i, sys := range p.parallel {
		tasks[i] = Task{SystemIndex: i, Access: sys.RequiredAccess()}
	}
	p.plan = p.planner.Plan(tasks)
}

// Run executes the phase: the pre-phase's exclusive systems run
// sequentially against the bare world, then every group in the main
// phase's plan runs in turn, then the phase's command buffer is
// flushed into the world.
func (p *Phase) Run(w *World, ex *Executor) {
	for _, sys := range p.exclusive {
		sys.runExclusive(w)
	}
	if len(p.parallel) == 0 {
		return
	}
	cb := NewCommandBuffer()
	for _, g := range p.plan {
		p.runGroup(w, g, cb, ex)
	}
	cb.Flush(w)
}

// runGroup executes one group's units. A single-unit group takes the
// fast path (one shard, systems run sequentially, no worker dispatch);
// a multi-unit group acquires one shard per unit up front (fail-fast),
// dispatches each unit's systems into the executor's scope, and
// releases every grant on the main thread once the scope has joined.
func (p *Phase) runGroup(w *World, g Group, cb *CommandBuffer, ex *Executor) {
	if len(g.Units) == 1 {
		p.runUnitFastPath(w, g.Units[0], cb)
		return
	}

	shards := make([]Shard, 0, len(g.Units))
	for _, u := range g.Units {
		s, err := w.Shard(u.Access)
		if err != nil {
			for _, acquired := range shards {
				w.ReleaseShard(acquired)
			}
			return
		}
		shards = append(shards, s)
	}

	futures := make([]*Future[struct{}], len(g.Units))

	ex.Scope(func(scope *Scope) {
		for i, u := range g.Units {
			unit := u
			shard := shards[i]
			futures[i] = SpawnWithResult(scope, func() struct{} {
				for _, sysIdx := range unit.SystemIndices {
					p.parallel[sysIdx].runParallel(shard, cb)
				}
				return struct{}{}
			})
		}
	})

	// Release every shard's grant regardless of whether its unit's
	// goroutine panicked: the grant was issued (and recorded in
	// w.grants) before the goroutine ever ran, and a panic unwinds the
	// goroutine stack without ever reaching the normal return, so the
	// grant to release has to come from `shards`, captured here on the
	// main thread, never from the future's (possibly zero-valued) result.
	for i, fut := range futures {
		fut.Wait()
		w.ReleaseShard(shards[i])
	}
}

func (p *Phase) runUnitFastPath(w *World, u Unit, cb *CommandBuffer) {
	shard, err := w.Shard(u.Access)
	if err != nil {
		return
	}
	defer w.ReleaseShard(shard)
	for _, sysIdx := range u.SystemIndices {
		p.parallel[sysIdx].runParallel(shard, cb)
	}
}
