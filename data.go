package loom

import (
	"fmt"
	"iter"

	"github.com/TheBitDrifter/bark"
)

// checkDistinctSlots panics if the same component type is claimed by
// more than one slot in a single query — aliasing two pointers into the
// same column is a programmer error the compiler can't catch, since
// each slot is only distinguished by its own type parameter.
func checkDistinctSlots(ids ...TypeId) {
	seen := make(map[TypeId]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			panic(bark.AddTrace(fmt.Errorf("loom: query declares component type %v more than once", id)))
		}
		seen[id] = struct{}{}
	}
}

// Slot is one element of a Query's data descriptor, declaring a
// component type plus whether it's read or written and whether its
// absence should filter the table out (required) or just yield nil
// (optional). Read/Write/OptRead/OptWrite build slots; Entity access
// doesn't need a slot at all — every Iter already yields the row's
// Entity alongside its fetched data, which is this package's rendition
// of spec's "Entity: a pseudo-parameter contributing no access".
type Slot[C any] struct {
	acc      Accessor[C]
	mutable  bool
	optional bool
}

// Read declares read-only access to C; missing C filters the table out.
func Read[C any]() Slot[C] { return Slot[C]{acc: Accessor[C]{id: componentID[C]()}} }

// Write declares mutable access to C; missing C filters the table out.
func Write[C any]() Slot[C] {
	return Slot[C]{acc: Accessor[C]{id: componentID[C]()}, mutable: true}
}

// OptRead declares read-only access to C without requiring its
// presence: entities lacking C still match, with a nil fetch result.
// The component's type is still reserved in the merged access request
// even on entities that lack it — see spec's note on optional mutable
// components for why this conservatism is intentional.
func OptRead[C any]() Slot[C] {
	return Slot[C]{acc: Accessor[C]{id: componentID[C]()}, optional: true}
}

// OptWrite is the mutable counterpart to OptRead.
func OptWrite[C any]() Slot[C] {
	return Slot[C]{acc: Accessor[C]{id: componentID[C]()}, mutable: true, optional: true}
}

func (s Slot[C]) id() TypeId { return s.acc.id }

func (s Slot[C]) requiredSpec() ComponentSpec {
	if s.optional {
		return ComponentSpec{}
	}
	return NewComponentSpec(s.acc.id)
}

func (s Slot[C]) access() AccessRequest {
	if s.mutable {
		return NewComponentRequest(ComponentSpec{}, NewComponentSpec(s.acc.id))
	}
	return NewComponentRequest(NewComponentSpec(s.acc.id), ComponentSpec{})
}

func (s Slot[C]) fetch(tbl *Table, row int) *C {
	col := tbl.columnByID(s.acc.id)
	if col == nil || row >= col.Len() {
		return nil
	}
	return col.ptr(row).(*C)
}

// iterTables yields every table in shard's world whose mask satisfies
// required, the table-filtering step shared by every Query arity.
func iterTables(s Shard, required ComponentSpec) iter.Seq[*Table] {
	reqMask := required.Mask()
	return func(yield func(*Table) bool) {
		for _, arche := range s.world.storage.archetypes.all() {
			tbl := arche.table
			if !tbl.Mask().ContainsAll(reqMask) {
				continue
			}
			if !yield(tbl) {
				return
			}
		}
	}
}

// Query1 is a compiled one-component data descriptor: the required
// spec and merged access are computed once at construction, then
// reused by every Iter call against any shard.
type Query1[A any] struct {
	a        Slot[A]
	required ComponentSpec
	access   AccessRequest
}

func NewQuery1[A any](a Slot[A]) *Query1[A] {
	return &Query1[A]{a: a, required: a.requiredSpec(), access: a.access()}
}

func (q *Query1[A]) RequiredSpec() ComponentSpec  { return q.required }
func (q *Query1[A]) AccessRequest() AccessRequest { return q.access }
func (q *Query1[A]) accessRequest() AccessRequest { return q.access }
func (q *Query1[A]) extract(s Shard) iter.Seq2[Entity, *A] { return q.Iter(s) }

func (q *Query1[A]) Iter(s Shard) iter.Seq2[Entity, *A] {
	return func(yield func(Entity, *A) bool) {
		for tbl := range iterTables(s, q.required) {
			for row := 0; row < tbl.Len(); row++ {
				v := q.a.fetch(tbl, row)
				if v == nil && !q.a.optional {
					continue
				}
				if !yield(tbl.Entity(row), v) {
					return
				}
			}
		}
	}
}

// Row2 is the tuple Query2 yields per matching row.
type Row2[A, B any] struct {
	A *A
	B *B
}

type Query2[A, B any] struct {
	slotA    Slot[A]
	slotB    Slot[B]
	required ComponentSpec
	access   AccessRequest
}

func NewQuery2[A, B any](a Slot[A], b Slot[B]) *Query2[A, B] {
	checkDistinctSlots(a.id(), b.id())
	return &Query2[A, B]{
		slotA:    a,
		slotB:    b,
		required: a.requiredSpec().Union(b.requiredSpec()),
		access:   a.access().Merge(b.access()),
	}
}

func (q *Query2[A, B]) RequiredSpec() ComponentSpec  { return q.required }
func (q *Query2[A, B]) AccessRequest() AccessRequest { return q.access }
func (q *Query2[A, B]) accessRequest() AccessRequest { return q.access }
func (q *Query2[A, B]) extract(s Shard) iter.Seq2[Entity, Row2[A, B]] { return q.Iter(s) }

func (q *Query2[A, B]) Iter(s Shard) iter.Seq2[Entity, Row2[A, B]] {
	return func(yield func(Entity, Row2[A, B]) bool) {
		for tbl := range iterTables(s, q.required) {
			for row := 0; row < tbl.Len(); row++ {
				va := q.slotA.fetch(tbl, row)
				if va == nil && !q.slotA.optional {
					continue
				}
				vb := q.slotB.fetch(tbl, row)
				if vb == nil && !q.slotB.optional {
					continue
				}
				if !yield(tbl.Entity(row), Row2[A, B]{A: va, B: vb}) {
					return
				}
			}
		}
	}
}

// Row3 is the tuple Query3 yields per matching row.
type Row3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

type Query3[A, B, C any] struct {
	slotA    Slot[A]
	slotB    Slot[B]
	slotC    Slot[C]
	required ComponentSpec
	access   AccessRequest
}

func NewQuery3[A, B, C any](a Slot[A], b Slot[B], c Slot[C]) *Query3[A, B, C] {
	checkDistinctSlots(a.id(), b.id(), c.id())
	return &Query3[A, B, C]{
		slotA:    a,
		slotB:    b,
		slotC:    c,
		required: a.requiredSpec().Union(b.requiredSpec()).Union(c.requiredSpec()),
		access:   a.access().Merge(b.access()).Merge(c.access()),
	}
}

func (q *Query3[A, B, C]) RequiredSpec() ComponentSpec  { return q.required }
func (q *Query3[A, B, C]) AccessRequest() AccessRequest { return q.access }
func (q *Query3[A, B, C]) accessRequest() AccessRequest { return q.access }
func (q *Query3[A, B, C]) extract(s Shard) iter.Seq2[Entity, Row3[A, B, C]] { return q.Iter(s) }

func (q *Query3[A, B, C]) Iter(s Shard) iter.Seq2[Entity, Row3[A, B, C]] {
	return func(yield func(Entity, Row3[A, B, C]) bool) {
		for tbl := range iterTables(s, q.required) {
			for row := 0; row < tbl.Len(); row++ {
				va := q.slotA.fetch(tbl, row)
				if va == nil && !q.slotA.optional {
					continue
				}
				vb := q.slotB.fetch(tbl, row)
				if vb == nil && !q.slotB.optional {
					continue
				}
				vc := q.slotC.fetch(tbl, row)
				if vc == nil && !q.slotC.optional {
					continue
				}
				if !yield(tbl.Entity(row), Row3[A, B, C]{A: va, B: vb, C: vc}) {
					return
				}
			}
		}
	}
}

// Row4 is the tuple Query4 yields per matching row.
type Row4[A, B, C, D any] struct {
	A *A
	B *B
	C *C
	D *D
}

type Query4[A, B, C, D any] struct {
	slotA    Slot[A]
	slotB    Slot[B]
	slotC    Slot[C]
	slotD    Slot[D]
	required ComponentSpec
	access   AccessRequest
}

func NewQuery4[A, B, C, D any](a Slot[A], b Slot[B], c Slot[C], d Slot[D]) *Query4[A, B, C, D] {
	checkDistinctSlots(a.id(), b.id(), c.id(), d.id())
	return &Query4[A, B, C, D]{
		slotA:    a,
		slotB:    b,
		slotC:    c,
		slotD:    d,
		required: a.requiredSpec().Union(b.requiredSpec()).Union(c.requiredSpec()).Union(d.requiredSpec()),
		access:   a.access().Merge(b.access()).Merge(c.access()).Merge(d.access()),
	}
}

func (q *Query4[A, B, C, D]) RequiredSpec() ComponentSpec  { return q.required }
func (q *Query4[A, B, C, D]) AccessRequest() AccessRequest { return q.access }
func (q *Query4[A, B, C, D]) accessRequest() AccessRequest { return q.access }
func (q *Query4[A, B, C, D]) extract(s Shard) iter.Seq2[Entity, Row4[A, B, C, D]] {
	return q.Iter(s)
}

func (q *Query4[A, B, C, D]) Iter(s Shard) iter.Seq2[Entity, Row4[A, B, C, D]] {
	return func(yield func(Entity, Row4[A, B, C, D]) bool) {
		for tbl := range iterTables(s, q.required) {
			for row := 0; row < tbl.Len(); row++ {
				va := q.slotA.fetch(tbl, row)
				if va == nil && !q.slotA.optional {
					continue
				}
				vb := q.slotB.fetch(tbl, row)
				if vb == nil && !q.slotB.optional {
					continue
				}
				vc := q.slotC.fetch(tbl, row)
				if vc == nil && !q.slotC.optional {
					continue
				}
				vd := q.slotD.fetch(tbl, row)
				if vd == nil && !q.slotD.optional {
					continue
				}
				if !yield(tbl.Entity(row), Row4[A, B, C, D]{A: va, B: vb, C: vc, D: vd}) {
					return
				}
			}
		}
	}
}
