package loom

import (
	"fmt"
	"sort"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// TableId identifies one table (archetype instance) within a Storage.
type TableId uint32

// Table is the concrete storage for one archetype: one column per
// component type in the archetype's spec, plus a parallel slice of
// entity identifiers. Invariant: len(entities) == every column's Len().
type Table struct {
	id       TableId
	spec     mask.Mask
	columns  map[TypeId]*column
	order    []TypeId // stable, sorted column iteration order
	entities []Entity
}

func newTable(id TableId, spec mask.Mask, columns map[TypeId]*column) *Table {
	order := make([]TypeId, 0, len(columns))
	for tid := range columns {
		order = append(order, tid)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return &Table{
		id:      id,
		spec:    spec,
		columns: columns,
		order:   order,
	}
}

// Mask implements mask.Maskable so table specs can be matched the way
// the teacher matches archetypes against a query's required spec.
func (t *Table) Mask() mask.Mask { return t.spec }

func (t *Table) Len() int { return len(t.entities) }

func (t *Table) IsEmpty() bool { return len(t.entities) == 0 }

func (t *Table) Entities() []Entity { return t.entities }

func (t *Table) Entity(row int) Entity { return t.entities[row] }

func (t *Table) columnByID(id TypeId) *column {
	return t.columns[id]
}

func (t *Table) componentIDs() []TypeId { return t.order }

// Spec returns the canonical component spec this table stores.
func (t *Table) Spec() ComponentSpec { return NewComponentSpec(t.order...) }

// addEntity appends one row. values must contain exactly one value per
// column in the table, keyed by the column's TypeId.
func (t *Table) addEntity(entity Entity, values map[TypeId]interface{}) int {
	for _, tid := range t.order {
		col := t.columns[tid]
		v, ok := values[tid]
		if !ok {
			panic(bark.AddTrace(fmt.Errorf("loom: addEntity missing value for type %v", tid)))
		}
		col.push(v)
	}
	t.entities = append(t.entities, entity)
	t.verifyInvariants()
	return len(t.entities) - 1
}

// addEntities batch-inserts n rows, one per values[i].
func (t *Table) addEntities(entities []Entity, values []map[TypeId]interface{}) {
	for _, tid := range t.order {
		t.columns[tid].reserve(len(entities))
	}
	for i, e := range entities {
		t.addEntity(e, values[i])
	}
}

// swapRemoveRow removes row by swapping the last row into its place.
// Returns the entity that was moved into `row`, if any.
func (t *Table) swapRemoveRow(row int) (moved Entity, ok bool) {
	last := len(t.entities) - 1
	for _, tid := range t.order {
		t.columns[tid].swapRemove(row)
	}
	if row != last {
		moved = t.entities[last]
		ok = true
		t.entities[row] = moved
	}
	t.entities = t.entities[:last]
	t.verifyInvariants()
	return moved, ok
}

// extractAndSwapRow is the migration primitive: it swap-removes the row,
// but for every column whose TypeId is in keepSpec the value is
// extracted (ownership transferred out, no drop) rather than dropped.
// Columns not in keepSpec are dropped normally.
func (t *Table) extractAndSwapRow(row int, keepSpec mask.Mask) (extracted map[TypeId]interface{}, moved Entity, movedOK bool) {
	extracted = make(map[TypeId]interface{}, len(t.order))
	last := len(t.entities) - 1
	for _, tid := range t.order {
		col := t.columns[tid]
		var nodeMask mask.Mask
		nodeMask.Mark(uint32(tid))
		if keepSpec.ContainsAll(nodeMask) {
			v, _ := col.swapRemoveNoDrop(row)
			extracted[tid] = v
		} else {
			col.swapRemove(row)
		}
	}
	if row != last {
		moved = t.entities[last]
		movedOK = true
		t.entities[row] = moved
	}
	t.entities = t.entities[:last]
	t.verifyInvariants()
	return extracted, moved, movedOK
}

// addEntityFromExtract completes a migration: for each column in this
// table, either writes the value already extracted from the source
// table or constructs one fresh from additions. Precondition (checked
// when Config.Strict is set): extract's keys union additions' keys must
// exactly equal this table's column set.
func (t *Table) addEntityFromExtract(entity Entity, extract map[TypeId]interface{}, additions map[TypeId]interface{}) int {
	if Config.strict {
		for _, tid := range t.order {
			_, fromExtract := extract[tid]
			_, fromAdditions := additions[tid]
			if !fromExtract && !fromAdditions {
				panic(bark.AddTrace(fmt.Errorf(
					"loom: migration precondition violated: table column %v covered by neither extract nor additions", tid)))
			}
		}
		for _, keys := range []map[TypeId]interface{}{extract, additions} {
			for tid := range keys {
				if _, ok := t.columns[tid]; !ok {
					panic(bark.AddTrace(fmt.Errorf(
						"loom: migration precondition violated: type %v is not a column of the target table", tid)))
				}
			}
		}
	}
	values := make(map[TypeId]interface{}, len(t.order))
	for _, tid := range t.order {
		if v, ok := extract[tid]; ok {
			values[tid] = v
		} else {
			values[tid] = additions[tid]
		}
	}
	return t.addEntity(entity, values)
}

func (t *Table) verifyInvariants() {
	if !Config.strict {
		return
	}
	n := len(t.entities)
	for _, tid := range t.order {
		if t.columns[tid].Len() != n {
			panic(bark.AddTrace(fmt.Errorf(
				"loom: table desynchronized: entities len %d, column %v len %d", n, tid, t.columns[tid].Len())))
		}
	}
}
