package loom

import "iter"

// Row5..Row8 and Query5..Query8 extend the data descriptor to higher
// arities, following the same per-arity free-function shape as Query1
// through Query4. Capped at 8 — see DESIGN.md's arity-ceiling note.

type Row5[A, B, C, D, E any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
}

type Query5[A, B, C, D, E any] struct {
	slotA    Slot[A]
	slotB    Slot[B]
	slotC    Slot[C]
	slotD    Slot[D]
	slotE    Slot[E]
	required ComponentSpec
	access   AccessRequest
}

func NewQuery5[A, B, C, D, E any](a Slot[A], b Slot[B], c Slot[C], d Slot[D], e Slot[E]) *Query5[A, B, C, D, E] {
	checkDistinctSlots(a.id(), b.id(), c.id(), d.id(), e.id())
	return &Query5[A, B, C, D, E]{
		slotA: a, slotB: b, slotC: c, slotD: d, slotE: e,
		required: a.requiredSpec().Union(b.requiredSpec()).Union(c.requiredSpec()).Union(d.requiredSpec()).Union(e.requiredSpec()),
		access:   a.access().Merge(b.access()).Merge(c.access()).Merge(d.access()).Merge(e.access()),
	}
}

func (q *Query5[A, B, C, D, E]) RequiredSpec() ComponentSpec  { return q.required }
func (q *Query5[A, B, C, D, E]) AccessRequest() AccessRequest { return q.access }
func (q *Query5[A, B, C, D, E]) accessRequest() AccessRequest { return q.access }
func (q *Query5[A, B, C, D, E]) extract(s Shard) iter.Seq2[Entity, Row5[A, B, C, D, E]] { return q.Iter(s) }

func (q *Query5[A, B, C, D, E]) Iter(s Shard) iter.Seq2[Entity, Row5[A, B, C, D, E]] {
	return func(yield func(Entity, Row5[A, B, C, D, E]) bool) {
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
				ve := q.slotE.fetch(tbl, row)
				if ve == nil && !q.slotE.optional {
					continue
				}
				if !yield(tbl.Entity(row), Row5[A, B, C, D, E]{A: va, B: vb, C: vc, D: vd, E: ve}) {
					return
				}
			}
		}
	}
}

type Row6[A, B, C, D, E, F any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
}

type Query6[A, B, C, D, E, F any] struct {
	slotA    Slot[A]
	slotB    Slot[B]
	slotC    Slot[C]
	slotD    Slot[D]
	slotE    Slot[E]
	slotF    Slot[F]
	required ComponentSpec
	access   AccessRequest
}

func NewQuery6[A, B, C, D, E, F any](a Slot[A], b Slot[B], c Slot[C], d Slot[D], e Slot[E], f Slot[F]) *Query6[A, B, C, D, E, F] {
	checkDistinctSlots(a.id(), b.id(), c.id(), d.id(), e.id(), f.id())
	return &Query6[A, B, C, D, E, F]{
		slotA: a, slotB: b, slotC: c, slotD: d, slotE: e, slotF: f,
		required: a.requiredSpec().Union(b.requiredSpec()).Union(c.requiredSpec()).Union(d.requiredSpec()).Union(e.requiredSpec()).Union(f.requiredSpec()),
		access:   a.access().Merge(b.access()).Merge(c.access()).Merge(d.access()).Merge(e.access()).Merge(f.access()),
	}
}

func (q *Query6[A, B, C, D, E, F]) RequiredSpec() ComponentSpec  { return q.required }
func (q *Query6[A, B, C, D, E, F]) AccessRequest() AccessRequest { return q.access }
func (q *Query6[A, B, C, D, E, F]) accessRequest() AccessRequest { return q.access }
func (q *Query6[A, B, C, D, E, F]) extract(s Shard) iter.Seq2[Entity, Row6[A, B, C, D, E, F]] { return q.Iter(s) }

func (q *Query6[A, B, C, D, E, F]) Iter(s Shard) iter.Seq2[Entity, Row6[A, B, C, D, E, F]] {
	return func(yield func(Entity, Row6[A, B, C, D, E, F]) bool) {
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
				ve := q.slotE.fetch(tbl, row)
				if ve == nil && !q.slotE.optional {
					continue
				}
				vf := q.slotF.fetch(tbl, row)
				if vf == nil && !q.slotF.optional {
					continue
				}
				if !yield(tbl.Entity(row), Row6[A, B, C, D, E, F]{A: va, B: vb, C: vc, D: vd, E: ve, F: vf}) {
					return
				}
			}
		}
	}
}

type Row7[A, B, C, D, E, F, G any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
	G *G
}

type Query7[A, B, C, D, E, F, G any] struct {
	slotA    Slot[A]
	slotB    Slot[B]
	slotC    Slot[C]
	slotD    Slot[D]
	slotE    Slot[E]
	slotF    Slot[F]
	slotG    Slot[G]
	required ComponentSpec
	access   AccessRequest
}

func NewQuery7[A, B, C, D, E, F, G any](a Slot[A], b Slot[B], c Slot[C], d Slot[D], e Slot[E], f Slot[F], g Slot[G]) *Query7[A, B, C, D, E, F, G] {
	checkDistinctSlots(a.id(), b.id(), c.id(), d.id(), e.id(), f.id(), g.id())
	return &Query7[A, B, C, D, E, F, G]{
		slotA: a, slotB: b, slotC: c, slotD: d, slotE: e, slotF: f, slotG: g,
		required: a.requiredSpec().Union(b.requiredSpec()).Union(c.requiredSpec()).Union(d.requiredSpec()).Union(e.requiredSpec()).Union(f.requiredSpec()).Union(g.requiredSpec()),
		access:   a.access().Merge(b.access()).Merge(c.access()).Merge(d.access()).Merge(e.access()).Merge(f.access()).Merge(g.access()),
	}
}

func (q *Query7[A, B, C, D, E, F, G]) RequiredSpec() ComponentSpec  { return q.required }
func (q *Query7[A, B, C, D, E, F, G]) AccessRequest() AccessRequest { return q.access }
func (q *Query7[A, B, C, D, E, F, G]) accessRequest() AccessRequest { return q.access }
func (q *Query7[A, B, C, D, E, F, G]) extract(s Shard) iter.Seq2[Entity, Row7[A, B, C, D, E, F, G]] { return q.Iter(s) }

func (q *Query7[A, B, C, D, E, F, G]) Iter(s Shard) iter.Seq2[Entity, Row7[A, B, C, D, E, F, G]] {
	return func(yield func(Entity, Row7[A, B, C, D, E, F, G]) bool) {
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
				ve := q.slotE.fetch(tbl, row)
				if ve == nil && !q.slotE.optional {
					continue
				}
				vf := q.slotF.fetch(tbl, row)
				if vf == nil && !q.slotF.optional {
					continue
				}
				vg := q.slotG.fetch(tbl, row)
				if vg == nil && !q.slotG.optional {
					continue
				}
				if !yield(tbl.Entity(row), Row7[A, B, C, D, E, F, G]{A: va, B: vb, C: vc, D: vd, E: ve, F: vf, G: vg}) {
					return
				}
			}
		}
	}
}

type Row8[A, B, C, D, E, F, G, H any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
	G *G
	H *H
}

type Query8[A, B, C, D, E, F, G, H any] struct {
	slotA    Slot[A]
	slotB    Slot[B]
	slotC    Slot[C]
	slotD    Slot[D]
	slotE    Slot[E]
	slotF    Slot[F]
	slotG    Slot[G]
	slotH    Slot[H]
	required ComponentSpec
	access   AccessRequest
}

func NewQuery8[A, B, C, D, E, F, G, H any](a Slot[A], b Slot[B], c Slot[C], d Slot[D], e Slot[E], f Slot[F], g Slot[G], h Slot[H]) *Query8[A, B, C, D, E, F, G, H] {
	checkDistinctSlots(a.id(), b.id(), c.id(), d.id(), e.id(), f.id(), g.id(), h.id())
	return &Query8[A, B, C, D, E, F, G, H]{
		slotA: a, slotB: b, slotC: c, slotD: d, slotE: e, slotF: f, slotG: g, slotH: h,
		required: a.requiredSpec().Union(b.requiredSpec()).Union(c.requiredSpec()).Union(d.requiredSpec()).Union(e.requiredSpec()).Union(f.requiredSpec()).Union(g.requiredSpec()).Union(h.requiredSpec()),
		access:   a.access().Merge(b.access()).Merge(c.access()).Merge(d.access()).Merge(e.access()).Merge(f.access()).Merge(g.access()).Merge(h.access()),
	}
}

func (q *Query8[A, B, C, D, E, F, G, H]) RequiredSpec() ComponentSpec  { return q.required }
func (q *Query8[A, B, C, D, E, F, G, H]) AccessRequest() AccessRequest { return q.access }
func (q *Query8[A, B, C, D, E, F, G, H]) accessRequest() AccessRequest { return q.access }
func (q *Query8[A, B, C, D, E, F, G, H]) extract(s Shard) iter.Seq2[Entity, Row8[A, B, C, D, E, F, G, H]] { return q.Iter(s) }

func (q *Query8[A, B, C, D, E, F, G, H]) Iter(s Shard) iter.Seq2[Entity, Row8[A, B, C, D, E, F, G, H]] {
	return func(yield func(Entity, Row8[A, B, C, D, E, F, G, H]) bool) {
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
				ve := q.slotE.fetch(tbl, row)
				if ve == nil && !q.slotE.optional {
					continue
				}
				vf := q.slotF.fetch(tbl, row)
				if vf == nil && !q.slotF.optional {
					continue
				}
				vg := q.slotG.fetch(tbl, row)
				if vg == nil && !q.slotG.optional {
					continue
				}
				vh := q.slotH.fetch(tbl, row)
				if vh == nil && !q.slotH.optional {
					continue
				}
				if !yield(tbl.Entity(row), Row8[A, B, C, D, E, F, G, H]{A: va, B: vb, C: vc, D: vd, E: ve, F: vf, G: vg, H: vh}) {
					return
				}
			}
		}
	}
}
