package loom

// Label names a phase within a Schedule (e.g. "update", "render").
// Plain strings are the common case; any comparable value works.
type Label interface{}

// Schedule is an unordered collection of named phases. Systems are added
// to a named phase; running the schedule runs a sequence of phases by
// label, skipping any label with no registered phase.
type Schedule struct {
	phases  map[Label]*Phase
	planner Planner
}

// NewSchedule builds an empty schedule. planner is used for every phase
// created through AddSystem; pass nil for the default GraphColorPlanner.
func NewSchedule(planner Planner) *Schedule {
	if planner == nil {
		planner = GraphColorPlanner{}
	}
	return &Schedule{phases: make(map[Label]*Phase), planner: planner}
}

// AddSystem registers sys under the named phase, creating the phase on
// first use.
func (s *Schedule) AddSystem(label Label, sys *System) {
	p, ok := s.phases[label]
	if !ok {
		p = NewPhase(s.planner)
		s.phases[label] = p
	}
	p.AddSystem(sys)
}

// Phase returns the named phase, or nil if nothing has been added to
// it yet.
func (s *Schedule) Phase(label Label) *Phase {
	return s.phases[label]
}

// Run executes the named phase against w using ex, if it exists.
func (s *Schedule) Run(label Label, w *World, ex *Executor) {
	p, ok := s.phases[label]
	if !ok {
		return
	}
	p.Run(w, ex)
}

// RunSequence runs each named phase in order, skipping any label with
// no registered phase. Typical use is a fixed per-tick sequence such as
// []Label{"pre_update", "update", "post_update", "render"}.
func (s *Schedule) RunSequence(labels []Label, w *World, ex *Executor) {
	for _, label := range labels {
		s.Run(label, w, ex)
	}
}
