package hold

import "fmt"

// DerivedOffset is the fixed distance between a live Value's plain value and
// the derived scalar kept in its owned slot.
const DerivedOffset = 3

// Value is a resource-owning value type: it holds a plain int plus exclusive
// ownership of at most one Slot containing the derived scalar
// (value + DerivedOffset).
//
// A Value is live while it owns a slot and empty once its slot has been
// moved away or released. The zero Value is empty but unwired; construct
// through New so the allocator, observer, and slot are in place.
//
// Values are single-goroutine objects: nothing here is synchronized, and no
// storage is ever shared between two live instances, so there is nothing to
// synchronize on.
type Value struct {
	val   int
	slot  *Slot
	alloc Allocator
	obs   Observer
}

// Option configures a Value under construction.
type Option func(*Value)

// WithAllocator makes the Value acquire and reclaim slots through a. Passing
// nil keeps the default HeapAllocator.
func WithAllocator(a Allocator) Option {
	return func(v *Value) {
		if a != nil {
			v.alloc = a
		}
	}
}

// WithObserver attaches o to the Value. Passing nil keeps the default
// NopObserver. Clones and move destinations inherit the source's observer.
func WithObserver(o Observer) Option {
	return func(v *Value) {
		if o != nil {
			v.obs = o
		}
	}
}

// New constructs a live Value: value = initial, and a freshly allocated slot
// holding initial + DerivedOffset.
//
// New panics with ErrAllocFailed if the allocator returns no slot; allocation
// failure is fatal and leaves no partial state to clean up.
func New(initial int, opts ...Option) *Value {
	v := &Value{val: initial, alloc: HeapAllocator{}, obs: NopObserver{}}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	v.slot = v.alloc.Alloc(initial + DerivedOffset)
	if v.slot == nil {
		panic(ErrAllocFailed)
	}
	v.observe(OpCreate)
	return v
}

// Clone copy-constructs a new Value from v: the plain value is copied and a
// fresh slot is allocated, independent of v's. The source is not touched, so
// cloning an empty value yields a live value carrying zero.
//
// The clone uses v's allocator and observer.
func (v *Value) Clone() *Value {
	w := &Value{val: v.val, alloc: v.alloc, obs: v.obs}
	w.slot = w.alloc.Alloc(v.val + DerivedOffset)
	if w.slot == nil {
		panic(ErrAllocFailed)
	}
	w.observe(OpClone)
	return w
}

// CopyFrom copy-assigns src into v: v's current slot (if any) is released, a
// fresh slot is allocated, and the plain value and derived scalar are
// recomputed from src. The source is not touched.
//
// Assigning a value to itself is a safe no-op aside from the emitted event.
// CopyFrom panics with ErrNilSource if src is nil.
//
// It returns v for chaining.
func (v *Value) CopyFrom(src *Value) *Value {
	if src == nil {
		panic(ErrNilSource)
	}
	if src != v {
		if v.slot != nil {
			v.alloc.Free(v.slot)
		}
		v.val = src.val
		v.slot = v.alloc.Alloc(src.val + DerivedOffset)
		if v.slot == nil {
			panic(ErrAllocFailed)
		}
	}
	v.observe(OpCopyAssign)
	return v
}

// Move move-constructs a new Value from src: the slot is transferred as-is
// (no allocation, no copy of the derived scalar), the plain value is copied,
// and src is left empty (value 0, no slot).
//
// Move performs no allocation and cannot fail, apart from panicking with
// ErrNilSource on a nil source. The new owner inherits src's allocator, so
// the slot is later reclaimed by the allocator that produced it.
func Move(src *Value) *Value {
	if src == nil {
		panic(ErrNilSource)
	}
	w := &Value{val: src.val, slot: src.slot, alloc: src.alloc, obs: src.obs}
	src.val = 0
	src.slot = nil
	w.observe(OpMove)
	return w
}

// MoveFrom move-assigns src into v: v's current slot (if any) is released,
// src's slot is adopted directly, and src is left empty.
//
// Adopting the slot also adopts src's allocator, keeping the slot bound to
// the allocator that produced it. Self-move is a safe no-op aside from the
// emitted event. MoveFrom panics with ErrNilSource if src is nil; otherwise
// it performs no allocation and cannot fail.
//
// It returns v for chaining.
func (v *Value) MoveFrom(src *Value) *Value {
	if src == nil {
		panic(ErrNilSource)
	}
	if src != v {
		if v.slot != nil {
			v.alloc.Free(v.slot)
		}
		v.val = src.val
		v.slot = src.slot
		v.alloc = src.alloc
		src.val = 0
		src.slot = nil
	}
	v.observe(OpMoveAssign)
	return v
}

// Release reports the value's final state to the observer and reclaims the
// owned slot, if any. Releasing an empty value reclaims nothing, and calling
// Release again is harmless: the slot is given back exactly once.
func (v *Value) Release() {
	v.observe(OpRelease)
	if v.slot != nil {
		v.alloc.Free(v.slot)
		v.slot = nil
	}
}

// Int returns the plain value.
func (v *Value) Int() int { return v.val }

// Derived returns the owned derived scalar. ok is false when the value is
// empty (moved-from or released) and owns no storage.
func (v *Value) Derived() (n int, ok bool) {
	if v.slot == nil {
		return 0, false
	}
	return v.slot.Get(), true
}

// Live reports whether the value currently owns a slot.
func (v *Value) Live() bool { return v.slot != nil }

// ID returns the instance identity used in diagnostics.
func (v *Value) ID() string { return fmt.Sprintf("%p", v) }

// slotRef exposes the owned slot to package-level tests that need to prove
// storage independence.
func (v *Value) slotRef() *Slot { return v.slot }

func (v *Value) observe(op Op) {
	if v.obs == nil {
		return
	}
	e := Event{Instance: v.ID(), Op: op, Value: v.val, Live: v.slot != nil}
	if v.slot != nil {
		e.Derived = v.slot.Get()
	}
	v.obs.Observe(e)
}
