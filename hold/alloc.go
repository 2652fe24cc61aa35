package hold

// Slot is one unit of owned storage: the "derived" scalar held on behalf of
// exactly one live Value. Slots are produced and reclaimed by an Allocator
// and stay bound to the allocator that produced them for their whole life.
type Slot struct {
	derived int
}

// Get returns the derived scalar stored in the slot.
func (s *Slot) Get() int { return s.derived }

// Set overwrites the derived scalar.
//
// Value never calls Set after allocation; it exists so tests can prove that
// two slots are independent (mutating one must not affect the other).
func (s *Slot) Set(n int) { s.derived = n }

// Allocator produces and reclaims Slots.
//
// Alloc must return a slot holding derived, or nil to signal allocation
// failure (which callers treat as fatal). Free reclaims a slot exactly once;
// freeing nil is a no-op.
type Allocator interface {
	Alloc(derived int) *Slot
	Free(s *Slot)
}

// HeapAllocator is the default Allocator: plain heap allocation, with
// reclamation left to the garbage collector.
type HeapAllocator struct{}

// Alloc implements Allocator.
func (HeapAllocator) Alloc(derived int) *Slot { return &Slot{derived: derived} }

// Free implements Allocator. The GC reclaims the slot once unreferenced.
func (HeapAllocator) Free(*Slot) {}

// CountingAllocator is an Allocator that accounts for every slot it hands
// out. It panics (with a typed error) on a double free or on freeing a slot
// it never produced, so ownership bugs fail fast instead of going unnoticed.
//
// It is intended for tests and demos and, like the values it backs, is not
// safe for concurrent use.
type CountingAllocator struct {
	live   map[*Slot]struct{}
	freed  map[*Slot]struct{}
	allocs int
	frees  int
}

// NewCountingAllocator returns an empty CountingAllocator.
func NewCountingAllocator() *CountingAllocator {
	return &CountingAllocator{
		live:  make(map[*Slot]struct{}),
		freed: make(map[*Slot]struct{}),
	}
}

// Alloc implements Allocator.
func (a *CountingAllocator) Alloc(derived int) *Slot {
	s := &Slot{derived: derived}
	a.live[s] = struct{}{}
	a.allocs++
	return s
}

// Free implements Allocator.
//
// It panics with DoubleFreeError if the slot was already freed, and with
// ForeignSlotError if the slot did not come from this allocator.
func (a *CountingAllocator) Free(s *Slot) {
	if s == nil {
		return
	}
	if _, ok := a.live[s]; !ok {
		if _, was := a.freed[s]; was {
			panic(DoubleFreeError{Slot: s})
		}
		panic(ForeignSlotError{Slot: s})
	}
	delete(a.live, s)
	a.freed[s] = struct{}{}
	a.frees++
}

// Live returns the number of slots currently allocated and not yet freed.
func (a *CountingAllocator) Live() int { return len(a.live) }

// Allocs returns the total number of allocations performed.
func (a *CountingAllocator) Allocs() int { return a.allocs }

// Frees returns the total number of successful frees performed.
func (a *CountingAllocator) Frees() int { return a.frees }

// Owns reports whether the slot is currently live in this allocator.
func (a *CountingAllocator) Owns(s *Slot) bool {
	_, ok := a.live[s]
	return ok
}

// Balanced reports whether every allocation has been matched by a free.
func (a *CountingAllocator) Balanced() bool { return len(a.live) == 0 && a.allocs == a.frees }
