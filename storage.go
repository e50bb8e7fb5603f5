package loom

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// Storage owns the tables, the archetype registry, the entity-location
// registry, and the type-indexed singleton (unique) map for one World.
type Storage struct {
	archetypes *archetypeRegistry
	entities   *entityAllocator
	uniques    map[TypeId]interface{}
	growth     GrowthStrategy
}

func newStorage() *Storage {
	return &Storage{
		archetypes: newArchetypeRegistry(),
		entities:   newEntityAllocator(),
		uniques:    make(map[TypeId]interface{}),
		growth:     Config.GrowthStrategy(),
	}
}

// specFor builds the canonical ComponentSpec for a set of TypeIds.
func specFor(ids ...TypeId) ComponentSpec {
	return NewComponentSpec(ids...)
}

// archetypeFor returns the archetype for spec, creating its table (and
// a fresh column per component) the first time this spec is seen.
func (s *Storage) archetypeFor(spec ComponentSpec) *Archetype {
	return s.archetypes.getOrCreate(spec.Mask(), func() map[TypeId]*column {
		cols := make(map[TypeId]*column, spec.Len())
		for _, id := range spec.IDs() {
			info := globalTypeRegistry.info(id)
			if info.kind != KindComponent {
				panic(bark.AddTrace(fmt.Errorf("loom: type %v is not registered as a component", id)))
			}
			cols[id] = newColumn(id, info.rtype, s.growth)
		}
		return cols
	})
}

// Location returns the current location of a live entity.
func (s *Storage) Location(e Entity) (Location, bool) {
	return s.entities.locationOf(e)
}

func (s *Storage) tableAt(tid TableId) *Table {
	for _, a := range s.archetypes.all() {
		if a.table.id == tid {
			return a.table
		}
	}
	return nil
}

// spawn allocates a new entity, resolves (or creates) the archetype for
// the value pack's spec, and inserts one row.
func (s *Storage) spawn(values map[TypeId]interface{}, spec ComponentSpec) Entity {
	e := s.entities.alloc()
	arche := s.archetypeFor(spec)
	row := arche.table.addEntity(e, values)
	s.entities.setLocation(e, Location{Archetype: arche.id, Table: arche.table.id, Row: row})
	return e
}

// despawn removes an entity's row, fixes up any row that was swapped
// into its place, and frees its index for reuse.
func (s *Storage) despawn(e Entity) bool {
	loc, ok := s.entities.locationOf(e)
	if !ok {
		return false
	}
	tbl := s.tableAt(loc.Table)
	moved, movedOK := tbl.swapRemoveRow(loc.Row)
	if movedOK {
		s.entities.setLocation(moved, loc)
	}
	s.entities.free(e)
	return true
}

// GetUnique returns the singleton of type id, if installed.
func (s *Storage) GetUnique(id TypeId) (interface{}, bool) {
	v, ok := s.uniques[id]
	return v, ok
}

// SetUnique installs or replaces the singleton of type id.
func (s *Storage) SetUnique(id TypeId, value interface{}) {
	s.uniques[id] = value
}

// RemoveUnique uninstalls the singleton of type id, if present.
func (s *Storage) RemoveUnique(id TypeId) {
	delete(s.uniques, id)
}
