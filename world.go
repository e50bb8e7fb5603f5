package loom

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// World is the top-level container: storage, the active-grant tracker,
// and the command-buffer/executor plumbing systems run against. The
// world itself lives on a single designated main thread and is never
// sent across goroutines; parallelism is achieved entirely by lending
// shards to workers (see Shard).
type World struct {
	storage *Storage
	grants  *grantTracker
}

// NewWorld constructs an empty world.
func NewWorld() *World {
	return &World{
		storage: newStorage(),
		grants:  newGrantTracker(),
	}
}

// valuePack derives the canonical spec and per-type values map for a
// heterogeneous set of component values, registering any type not yet
// seen as a component.
func valuePack(values ...interface{}) (ComponentSpec, map[TypeId]interface{}) {
	ids := make([]TypeId, len(values))
	byID := make(map[TypeId]interface{}, len(values))
	for i, v := range values {
		rtype := reflect.TypeOf(v)
		id := globalTypeRegistry.register(rtype, KindComponent)
		ids[i] = id
		if _, dup := byID[id]; dup {
			panic(bark.AddTrace(fmt.Errorf("loom: duplicate component type %s in one value pack", rtype)))
		}
		byID[id] = v
	}
	return NewComponentSpec(ids...), byID
}

// Spawn allocates a new entity with the given component values and
// returns its identifier.
func (w *World) Spawn(values ...interface{}) Entity {
	spec, byID := valuePack(values...)
	return w.storage.spawn(byID, spec)
}

// SpawnMany spawns n entities that share the same component spec, one
// set of values per entity. All entities end up in the same archetype,
// so the archetype lookup happens once for the whole batch.
func (w *World) SpawnMany(valuesPerEntity [][]interface{}) []Entity {
	out := make([]Entity, len(valuesPerEntity))
	var arche *Archetype
	var archeSpec ComponentSpec
	for i, values := range valuesPerEntity {
		spec, byID := valuePack(values...)
		if arche == nil || !spec.Equals(archeSpec) {
			arche, archeSpec = w.storage.archetypeFor(spec), spec
		}
		e := w.storage.entities.alloc()
		row := arche.table.addEntity(e, byID)
		w.storage.entities.setLocation(e, Location{Archetype: arche.id, Table: arche.table.id, Row: row})
		out[i] = e
	}
	return out
}

// Despawn removes an entity from the world. Returns false if the
// entity was already despawned (or never existed).
func (w *World) Despawn(e Entity) bool {
	return w.storage.despawn(e)
}

// AddComponents migrates e to include the given new component values.
// Returns false if any of them is already present on e.
func (w *World) AddComponents(e Entity, values ...interface{}) bool {
	_, byID := valuePack(values...)
	return w.storage.addComponents(e, byID)
}

// RemoveComponentIDs migrates e to drop the named component types.
// Returns false if any of them is absent from e.
func (w *World) RemoveComponentIDs(e Entity, ids ...TypeId) bool {
	return w.storage.removeComponents(e, ids...)
}

// RemoveComponents is the typed convenience form of RemoveComponentIDs
// for a single component type.
func RemoveComponents[C any](w *World, e Entity) bool {
	return w.RemoveComponentIDs(e, componentID[C]())
}

// Location returns the current storage location of a live entity.
func (w *World) Location(e Entity) (Location, bool) {
	return w.storage.Location(e)
}

// Storage exposes the world's storage for read-only introspection
// (used by tests).
func (w *World) Storage() *Storage { return w.storage }

// AddUnique installs or replaces a singleton value.
func AddUnique[U any](w *World, value *U) {
	w.storage.SetUnique(uniqueID[U](), value)
}

// GetUnique returns the installed singleton of type U, or nil if none.
func GetUnique[U any](w *World) *U {
	v, ok := w.storage.GetUnique(uniqueID[U]())
	if !ok {
		return nil
	}
	return v.(*U)
}

// RemoveUnique uninstalls the singleton of type U, if present.
func RemoveUnique[U any](w *World) {
	w.storage.RemoveUnique(uniqueID[U]())
}

// Shard requests a capability matching req. On success the returned
// Shard may be handed to a worker goroutine; on conflict a
// *ConflictError names the offending request and no grant is issued.
func (w *World) Shard(req AccessRequest) (Shard, error) {
	grant, err := w.grants.checkAndGrant(req)
	if err != nil {
		return Shard{}, err
	}
	return Shard{world: w, grant: grant}, nil
}

// ReleaseShard returns a shard's grant to the tracker. Every shard
// acquired via Shard must eventually be released exactly once.
func (w *World) ReleaseShard(s Shard) {
	w.grants.remove(s.grant)
}

// exclusiveShard returns a shard granting mutable whole-world access
// without going through the grant tracker: no conflict check is made
// and the grant is not recorded as active.
func (w *World) exclusiveShard() Shard {
	return Shard{world: w, grant: AccessGrant{access{worldMut: true}}}
}
