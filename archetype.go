package loom

import "github.com/TheBitDrifter/mask"

// ArchetypeId identifies one archetype — a distinct component-set spec —
// within a Storage.
type ArchetypeId uint32

// Archetype is the record binding a component spec to its table. The
// archetype registry enforces exactly one archetype per distinct spec.
type Archetype struct {
	id    ArchetypeId
	spec  mask.Mask
	table *Table
}

func (a *Archetype) ID() ArchetypeId  { return a.id }
func (a *Archetype) Spec() mask.Mask  { return a.spec }
func (a *Archetype) Table() *Table    { return a.table }

// archetypeRegistry maps component specs to archetypes, creating them
// lazily on first use.
type archetypeRegistry struct {
	nextID   ArchetypeId
	bySpec   map[mask.Mask]*Archetype
	asSlice  []*Archetype
	nextTblID TableId
}

func newArchetypeRegistry() *archetypeRegistry {
	return &archetypeRegistry{
		nextID: 1,
		bySpec: make(map[mask.Mask]*Archetype),
	}
}

// getOrCreate returns the archetype for spec, building a fresh table
// (via columns) the first time this exact spec is seen.
func (r *archetypeRegistry) getOrCreate(spec mask.Mask, columnsFor func() map[TypeId]*column) *Archetype {
	if existing, ok := r.bySpec[spec]; ok {
		return existing
	}
	tblID := r.nextTblID
	r.nextTblID++
	tbl := newTable(tblID, spec, columnsFor())
	arche := &Archetype{id: r.nextID, spec: spec, table: tbl}
	r.nextID++
	r.bySpec[spec] = arche
	r.asSlice = append(r.asSlice, arche)
	return arche
}

func (r *archetypeRegistry) all() []*Archetype {
	return r.asSlice
}
