/*
Package loom provides an archetype-based Entity-Component-System (ECS)
core: type-erased columnar storage, compiled queries, and an
access-graph scheduler that runs independent systems in parallel.

Loom keeps entities that share the same component set together in one
table so that iterating a query walks contiguous, per-component
columns rather than chasing pointers. Structural changes (adding or
removing a component) migrate an entity's row from its source table to
the table matching its new component set.

Core Concepts:

  - Entity: a generational identifier for a row in storage.
  - Component: a registered Go type stored column-wise per archetype.
  - Archetype: the table holding entities with one exact component
    set.
  - Query: a compiled descriptor over a fixed tuple of component slots,
    reused across every Iter call.
  - System: a function plus the access its parameters declare; systems
    whose access doesn't conflict are planned into the same parallel
    group.

Basic Usage:

	w := loom.NewWorld()

	pos := loom.RegisterComponent[Position]()
	vel := loom.RegisterComponent[Velocity]()

	w.Spawn(Position{}, Velocity{X: 1})

	query := loom.NewQuery2[Position, Velocity](loom.Write[Position](), loom.Read[Velocity]())
	shard, _ := w.Shard(query.AccessRequest())
	for _, row := range query.Iter(shard) {
		row.A.X += row.B.X
	}
	w.ReleaseShard(shard)

	_ = pos
	_ = vel

Systems, phases, and schedules wrap that same shard/query plumbing so a
set of independently-accessed systems can be handed to an Executor and
run concurrently without the caller reasoning about locks.
*/
package loom
