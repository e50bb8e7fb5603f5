package loom

// System is an executable unit with a merged access request computed
// once at construction. A system is either exclusive (requests
// world_mut and runs in a phase's sequential pre-phase against the bare
// *World) or parallel (runs against a shard plus the phase's command
// buffer, and is eligible for the planner's graph-coloring plan).
type System struct {
	access       AccessRequest
	label        string
	runExclusive func(*World)
	runParallel  func(Shard, *CommandBuffer)
}

// RequiredAccess returns the system's merged access request — the value
// the planner bundles and colors units/groups by.
func (s *System) RequiredAccess() AccessRequest { return s.access }

// IsExclusive reports whether this system must run in the pre-phase
// against the whole world rather than being planned in parallel.
func (s *System) IsExclusive() bool { return s.runExclusive != nil }

// NewExclusiveSystem builds a system that runs sequentially against the
// bare world — used for structural mutation logic that can't be
// expressed as a deferred command-buffer operation.
func NewExclusiveSystem(label string, fn func(*World)) *System {
	return &System{access: NewWorldMutRequest(), label: label, runExclusive: fn}
}

// NewSystem0 builds a parallel system taking no declared parameters
// beyond the command buffer — useful for periodic bookkeeping that
// only ever queues deferred operations.
func NewSystem0(label string, fn func(*CommandBuffer)) *System {
	return &System{
		access: AccessRequest{},
		label:  label,
		runParallel: func(_ Shard, cb *CommandBuffer) {
			fn(cb)
		},
	}
}

func NewSystem1[V1 any, P1 Parameter[V1]](label string, p1 P1, fn func(V1, *CommandBuffer)) *System {
	return &System{
		access: p1.accessRequest(),
		label:  label,
		runParallel: func(s Shard, cb *CommandBuffer) {
			fn(p1.extract(s), cb)
		},
	}
}

func NewSystem2[V1 any, P1 Parameter[V1], V2 any, P2 Parameter[V2]](
	label string, p1 P1, p2 P2, fn func(V1, V2, *CommandBuffer),
) *System {
	return &System{
		access: p1.accessRequest().Merge(p2.accessRequest()),
		label:  label,
		runParallel: func(s Shard, cb *CommandBuffer) {
			fn(p1.extract(s), p2.extract(s), cb)
		},
	}
}

func NewSystem3[V1 any, P1 Parameter[V1], V2 any, P2 Parameter[V2], V3 any, P3 Parameter[V3]](
	label string, p1 P1, p2 P2, p3 P3, fn func(V1, V2, V3, *CommandBuffer),
) *System {
	return &System{
		access: p1.accessRequest().Merge(p2.accessRequest()).Merge(p3.accessRequest()),
		label:  label,
		runParallel: func(s Shard, cb *CommandBuffer) {
			fn(p1.extract(s), p2.extract(s), p3.extract(s), cb)
		},
	}
}

func NewSystem4[
	V1 any, P1 Parameter[V1],
	V2 any, P2 Parameter[V2],
	V3 any, P3 Parameter[V3],
	V4 any, P4 Parameter[V4],
](label string, p1 P1, p2 P2, p3 P3, p4 P4, fn func(V1, V2, V3, V4, *CommandBuffer)) *System {
	return &System{
		access: p1.accessRequest().Merge(p2.accessRequest()).Merge(p3.accessRequest()).Merge(p4.accessRequest()),
		label:  label,
		runParallel: func(s Shard, cb *CommandBuffer) {
			fn(p1.extract(s), p2.extract(s), p3.extract(s), p4.extract(s), cb)
		},
	}
}

func NewSystem5[
	V1 any, P1 Parameter[V1],
	V2 any, P2 Parameter[V2],
	V3 any, P3 Parameter[V3],
	V4 any, P4 Parameter[V4],
	V5 any, P5 Parameter[V5],
](label string, p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, fn func(V1, V2, V3, V4, V5, *CommandBuffer)) *System {
	return &System{
		access: p1.accessRequest().Merge(p2.accessRequest()).Merge(p3.accessRequest()).Merge(p4.accessRequest()).Merge(p5.accessRequest()),
		label:  label,
		runParallel: func(s Shard, cb *CommandBuffer) {
			fn(p1.extract(s), p2.extract(s), p3.extract(s), p4.extract(s), p5.extract(s), cb)
		},
	}
}

func NewSystem6[
	V1 any, P1 Parameter[V1],
	V2 any, P2 Parameter[V2],
	V3 any, P3 Parameter[V3],
	V4 any, P4 Parameter[V4],
	V5 any, P5 Parameter[V5],
	V6 any, P6 Parameter[V6],
](label string, p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, fn func(V1, V2, V3, V4, V5, V6, *CommandBuffer)) *System {
	return &System{
		access: p1.accessRequest().Merge(p2.accessRequest()).Merge(p3.accessRequest()).Merge(p4.accessRequest()).Merge(p5.accessRequest()).Merge(p6.accessRequest()),
		label:  label,
		runParallel: func(s Shard, cb *CommandBuffer) {
			fn(p1.extract(s), p2.extract(s), p3.extract(s), p4.extract(s), p5.extract(s), p6.extract(s), cb)
		},
	}
}

func NewSystem7[
	V1 any, P1 Parameter[V1],
	V2 any, P2 Parameter[V2],
	V3 any, P3 Parameter[V3],
	V4 any, P4 Parameter[V4],
	V5 any, P5 Parameter[V5],
	V6 any, P6 Parameter[V6],
	V7 any, P7 Parameter[V7],
](label string, p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, fn func(V1, V2, V3, V4, V5, V6, V7, *CommandBuffer)) *System {
	return &System{
		access: p1.accessRequest().Merge(p2.accessRequest()).Merge(p3.accessRequest()).Merge(p4.accessRequest()).Merge(p5.accessRequest()).Merge(p6.accessRequest()).Merge(p7.accessRequest()),
		label:  label,
		runParallel: func(s Shard, cb *CommandBuffer) {
			fn(p1.extract(s), p2.extract(s), p3.extract(s), p4.extract(s), p5.extract(s), p6.extract(s), p7.extract(s), cb)
		},
	}
}

func NewSystem8[
	V1 any, P1 Parameter[V1],
	V2 any, P2 Parameter[V2],
	V3 any, P3 Parameter[V3],
	V4 any, P4 Parameter[V4],
	V5 any, P5 Parameter[V5],
	V6 any, P6 Parameter[V6],
	V7 any, P7 Parameter[V7],
	V8 any, P8 Parameter[V8],
](label string, p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8, fn func(V1, V2, V3, V4, V5, V6, V7, V8, *CommandBuffer)) *System {
	return &System{
		access: p1.accessRequest().Merge(p2.accessRequest()).Merge(p3.accessRequest()).Merge(p4.accessRequest()).Merge(p5.accessRequest()).Merge(p6.accessRequest()).Merge(p7.accessRequest()).Merge(p8.accessRequest()),
		label:  label,
		runParallel: func(s Shard, cb *CommandBuffer) {
			fn(p1.extract(s), p2.extract(s), p3.extract(s), p4.extract(s), p5.extract(s), p6.extract(s), p7.extract(s), p8.extract(s), cb)
		},
	}
}
