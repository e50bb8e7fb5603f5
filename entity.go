package loom

// Entity is an opaque identifier composed of a dense index and a
// generation (reuse counter). Equality compares both fields, so a stale
// entity (same index, older generation) never aliases a current one.
type Entity struct {
	index      uint32
	generation uint32
}

func (e Entity) Index() uint32      { return e.index }
func (e Entity) Generation() uint32 { return e.generation }

// Location pins a live entity to its physical storage: which archetype,
// which table within that archetype, and which row within that table.
// Any operation that moves a row must update the moved entity's
// Location before returning.
type Location struct {
	Archetype ArchetypeId
	Table     TableId
	Row       int
}

// entityAllocator hands out Entity identifiers, recycling indices from
// despawned entities with a bumped generation so a stale handle never
// aliases the index's new occupant.
type entityAllocator struct {
	generations []uint32 // generations[index] is the current generation for that index
	freeList    []uint32
	locations   []Location
	alive       []bool
}

func newEntityAllocator() *entityAllocator {
	return &entityAllocator{}
}

func (a *entityAllocator) alloc() Entity {
	if len(a.freeList) > 0 {
		idx := a.freeList[len(a.freeList)-1]
		a.freeList = a.freeList[:len(a.freeList)-1]
		a.alive[idx] = true
		return Entity{index: idx, generation: a.generations[idx]}
	}
	idx := uint32(len(a.generations))
	a.generations = append(a.generations, 0)
	a.locations = append(a.locations, Location{})
	a.alive = append(a.alive, true)
	return Entity{index: idx, generation: 0}
}

func (a *entityAllocator) free(e Entity) {
	a.alive[e.index] = false
	a.generations[e.index]++
	a.freeList = append(a.freeList, e.index)
}

// isAlive reports whether e is still the current occupant of its index.
func (a *entityAllocator) isAlive(e Entity) bool {
	idx := int(e.index)
	return idx < len(a.generations) && a.alive[idx] && a.generations[idx] == e.generation
}

func (a *entityAllocator) locationOf(e Entity) (Location, bool) {
	if !a.isAlive(e) {
		return Location{}, false
	}
	return a.locations[e.index], true
}

func (a *entityAllocator) setLocation(e Entity, loc Location) {
	a.locations[e.index] = loc
}
