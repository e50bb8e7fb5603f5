package loom

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// Dropper lets a component type observe its own removal from storage.
// Drop is called exactly once whenever a row holding the component is
// swap-removed or cleared outside of a migration's shared-component
// transfer (which moves ownership instead of dropping it). Writing
// over a row with write does not call Drop. Types that don't need
// cleanup simply don't implement it.
type Dropper interface {
	Drop()
}

var dropperType = reflect.TypeOf((*Dropper)(nil)).Elem()

// column is a single contiguous, type-erased store for one component
// type within a table. Elements [0, length) are initialized; length
// never exceeds the backing store's capacity.
type column struct {
	typeID   TypeId
	rtype    reflect.Type
	mem      *indexedMemory
	length   int
	droppable bool
}

func newColumn(id TypeId, rtype reflect.Type, growth GrowthStrategy) *column {
	return &column{
		typeID:    id,
		rtype:     rtype,
		mem:       newIndexedMemory(rtype, growth),
		droppable: reflect.PointerTo(rtype).Implements(dropperType),
	}
}

func (c *column) Len() int { return c.length }

// reserve ensures room for `additional` more rows beyond the current
// length without changing the logical length.
func (c *column) reserve(additional int) {
	c.mem.reserve(c.length, additional)
}

// push validates value's runtime type against the column's recorded
// type, appends it, and returns the new row index. A type mismatch is a
// programmer error and panics.
func (c *column) push(value interface{}) int {
	rv := reflect.ValueOf(value)
	if rv.Type() != c.rtype {
		panic(bark.AddTrace(fmt.Errorf(
			"loom: column type mismatch: column holds %s, got %s", c.rtype, rv.Type())))
	}
	c.reserve(1)
	c.mem.growTo(c.length + 1)
	c.mem.at(c.length).Set(rv)
	c.length++
	return c.length - 1
}

// write is the two-phase variant used by table batch insertion: the
// caller has already reserved space via reserve/growTo and is writing
// directly into a row that is not yet counted toward length.
func (c *column) write(row int, value interface{}) {
	rv := reflect.ValueOf(value)
	if rv.Type() != c.rtype {
		panic(bark.AddTrace(fmt.Errorf(
			"loom: column type mismatch: column holds %s, got %s", c.rtype, rv.Type())))
	}
	c.mem.at(row).Set(rv)
}

// setLen commits the logical length after a batch of writes.
func (c *column) setLen(n int) {
	c.length = n
}

func (c *column) dropAt(row int) {
	if !c.droppable {
		return
	}
	if d, ok := c.mem.at(row).Addr().Interface().(Dropper); ok {
		d.Drop()
	}
}

// swapRemove removes row, swapping the last element into its place if
// row isn't already last, and fires the drop hook for the removed
// value. Returns true if another row (now at `row`) was moved.
func (c *column) swapRemove(row int) bool {
	last := c.length - 1
	c.dropAt(row)
	moved := false
	if row != last {
		c.mem.at(row).Set(c.mem.at(last))
		moved = true
	}
	c.mem.clearAt(last)
	c.length--
	return moved
}

// swapRemoveNoDrop is identical byte movement to swapRemove but skips
// the drop hook — used exclusively by migration to transfer ownership
// of a value out of this column without destroying it.
func (c *column) swapRemoveNoDrop(row int) (interface{}, bool) {
	last := c.length - 1
	extracted := reflect.New(c.rtype).Elem()
	extracted.Set(c.mem.at(row))
	moved := false
	if row != last {
		c.mem.at(row).Set(c.mem.at(last))
		moved = true
	}
	c.mem.clearAt(last)
	c.length--
	return extracted.Interface(), moved
}

// get returns the value at row, or nil if row is out of range.
func (c *column) get(row int) interface{} {
	if row < 0 || row >= c.length {
		return nil
	}
	return c.mem.at(row).Interface()
}

// ptr returns an addressable pointer to row's storage (as interface{}
// wrapping *T), for use by typed Accessor[T] façades. Panics if row is
// out of range — callers are expected to have already checked via a
// query/view fetch.
func (c *column) ptr(row int) interface{} {
	if row < 0 || row >= c.length {
		panic(bark.AddTrace(fmt.Errorf("loom: column row %d out of range (len %d)", row, c.length)))
	}
	return c.mem.at(row).Addr().Interface()
}

// clear drops every initialized element and resets length to 0.
func (c *column) clear() {
	for i := 0; i < c.length; i++ {
		c.dropAt(i)
	}
	c.length = 0
	c.mem.growTo(0)
}

// Accessor is a typed façade over a type-erased column, handed back by
// component registration so callers never see reflect.Value directly.
type Accessor[T any] struct {
	id TypeId
}

// ID returns the registered TypeId this accessor reads/writes.
func (a Accessor[T]) ID() TypeId { return a.id }

// Get returns a typed pointer to the component on the entity currently
// held by the shard's table at the given row. Panics if the column
// doesn't hold this row (programmer error — callers should have
// confirmed the entity/table match via a query or view first).
func (a Accessor[T]) Get(tbl *Table, row int) *T {
	col := tbl.columnByID(a.id)
	if col == nil {
		panic(bark.AddTrace(fmt.Errorf("loom: table has no column for type %v", a.id)))
	}
	return col.ptr(row).(*T)
}
