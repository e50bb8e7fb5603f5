package loom

import "reflect"

// GrowthStrategy decides how much a backing store grows when it runs out
// of room for new elements.
type GrowthStrategy interface {
	// nextCapacity returns the new capacity given the current capacity and
	// the capacity actually needed.
	nextCapacity(current, needed int) int
}

// Multiply grows capacity by a multiplicative factor, never below needed.
type Multiply float64

func (m Multiply) nextCapacity(current, needed int) int {
	grown := int(float64(current) * float64(m))
	if grown < needed {
		grown = needed
	}
	if grown < 1 {
		grown = 1
	}
	return grown
}

// Buffer grows capacity by a fixed additive headroom, never below needed.
type Buffer int

func (b Buffer) nextCapacity(current, needed int) int {
	grown := current + int(b)
	if grown < needed {
		grown = needed
	}
	return grown
}

// Exact grows capacity to precisely what was requested, no headroom.
type Exact struct{}

func (Exact) nextCapacity(_, needed int) int {
	return needed
}

// DefaultGrowthStrategy is used by columns that don't request one
// explicitly; it doubles on every reallocation.
var DefaultGrowthStrategy GrowthStrategy = Multiply(2)

// indexedMemory is a growable, type-erased backing store for one
// component's worth of rows.
//
// Unlike the raw-pointer arena this is modeled on, indexedMemory backs
// itself with a reflect.Value wrapping a slice of the column's concrete
// type. Go's collector only scans typed allocations; a hand-rolled
// []byte arena addressed with unsafe.Pointer arithmetic would silently
// corrupt any component holding a pointer, slice, string, or interface
// field. The reflect-backed slice keeps the same external contract
// (reserve/ptrAt/grow) while staying sound under the GC.
type indexedMemory struct {
	rtype    reflect.Type
	backing  reflect.Value // slice of rtype, len == capacity
	growth   GrowthStrategy
	zeroVal  reflect.Value
}

func newIndexedMemory(rtype reflect.Type, growth GrowthStrategy) *indexedMemory {
	if growth == nil {
		growth = DefaultGrowthStrategy
	}
	return &indexedMemory{
		rtype:   rtype,
		backing: reflect.MakeSlice(reflect.SliceOf(rtype), 0, 0),
		growth:  growth,
		zeroVal: reflect.Zero(rtype),
	}
}

func (m *indexedMemory) capacity() int {
	return m.backing.Cap()
}

// reserve guarantees capacity for at least `additional` more elements
// beyond `length`, the caller's current logical length.
func (m *indexedMemory) reserve(length, additional int) {
	needed := length + additional
	if needed <= m.backing.Cap() {
		return
	}
	newCap := m.growth.nextCapacity(m.backing.Cap(), needed)
	grown := reflect.MakeSlice(reflect.SliceOf(m.rtype), length, newCap)
	reflect.Copy(grown, m.backing.Slice(0, length))
	m.backing = grown
}

// growTo grows the visible slice length to n, which must not exceed
// capacity; reserve must have been called first.
func (m *indexedMemory) growTo(n int) {
	if n > m.backing.Cap() {
		panic("loom: growTo past reserved capacity")
	}
	m.backing = m.backing.Slice(0, n)
}

// at returns the addressable reflect.Value for row i. Zero-sized types
// still return a valid, distinct addressable value.
func (m *indexedMemory) at(i int) reflect.Value {
	return m.backing.Index(i)
}

// ptrAt returns a pointer to row i's storage, boxed as an interface{}
// holding a *T for the column's concrete type.
func (m *indexedMemory) ptrAt(i int) interface{} {
	return m.backing.Index(i).Addr().Interface()
}

func (m *indexedMemory) clearAt(i int) {
	m.backing.Index(i).Set(m.zeroVal)
}
