package loom

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// RegisterUnique registers U as a singleton type (or returns its
// existing TypeId) usable with AddUnique/Uniq[U]/UniqMut[U]. Panics if U
// was already registered as a component — a type may only be one kind.
func RegisterUnique[U any]() TypeId {
	return globalTypeRegistry.register(reflect.TypeFor[U](), KindUnique)
}

func uniqueID[U any]() TypeId {
	return globalTypeRegistry.register(reflect.TypeFor[U](), KindUnique)
}

// Uniq is a typed, read-only reference to a singleton. As a system
// parameter it contributes immutable access to U's TypeId to the
// system's merged access request. Extraction panics if the unique
// hasn't been installed; use Option[Uniq[U]] where that's expected.
type Uniq[U any] struct {
	value *U
}

func (u Uniq[U]) Get() *U { return u.value }

func getUniq[U any](s *Storage) Uniq[U] {
	id := uniqueID[U]()
	v, ok := s.GetUnique(id)
	if !ok {
		panic(bark.AddTrace(fmt.Errorf("loom: unique %T not installed; use Option[Uniq[%T]] if this system may run before it is", *new(U), *new(U))))
	}
	return Uniq[U]{value: v.(*U)}
}

// UniqMut is the mutable counterpart to Uniq: contributes mutable
// access to U's TypeId.
type UniqMut[U any] struct {
	value *U
}

func (u UniqMut[U]) Get() *U { return u.value }

func getUniqMut[U any](s *Storage) UniqMut[U] {
	id := uniqueID[U]()
	v, ok := s.GetUnique(id)
	if !ok {
		panic(bark.AddTrace(fmt.Errorf("loom: unique %T not installed; use Option[UniqMut[%T]] if this system may run before it is", *new(U), *new(U))))
	}
	return UniqMut[U]{value: v.(*U)}
}

// Option wraps a parameter value that may legitimately be absent — used
// for Option[Uniq[U]] and Option[UniqMut[U]], which carry the same
// access requirement as their non-optional counterparts but return a
// zero Option instead of panicking when the unique is missing.
type Option[T any] struct {
	value T
	ok    bool
}

func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

func getOptionUniq[U any](s *Storage) Option[Uniq[U]] {
	id := uniqueID[U]()
	v, ok := s.GetUnique(id)
	if !ok {
		return Option[Uniq[U]]{}
	}
	return Option[Uniq[U]]{value: Uniq[U]{value: v.(*U)}, ok: true}
}

func getOptionUniqMut[U any](s *Storage) Option[UniqMut[U]] {
	id := uniqueID[U]()
	v, ok := s.GetUnique(id)
	if !ok {
		return Option[UniqMut[U]]{}
	}
	return Option[UniqMut[U]]{value: UniqMut[U]{value: v.(*U)}, ok: true}
}
