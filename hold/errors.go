package hold

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSource is the panic value when a copy or move operation is given
	// a nil source. A nil source is a programming error, not a recoverable
	// condition, so the operations panic instead of returning an error.
	ErrNilSource = errors.New("hold: nil source value")

	// ErrAllocFailed is the panic value when an Allocator returns no slot.
	// Allocation failure is fatal: no operation leaves partial state behind.
	ErrAllocFailed = errors.New("hold: allocator returned no slot")
)

// DoubleFreeError is the panic value raised by CountingAllocator when a slot
// it already reclaimed is freed again.
type DoubleFreeError struct{ Slot *Slot }

// Error implements the error interface.
func (e DoubleFreeError) Error() string {
	// Example: hold: double free of slot 0xc000014090
	return fmt.Sprintf("hold: double free of slot %p", e.Slot)
}

// ForeignSlotError is the panic value raised by CountingAllocator when asked
// to free a slot it never produced.
type ForeignSlotError struct{ Slot *Slot }

// Error implements the error interface.
func (e ForeignSlotError) Error() string {
	// Example: hold: slot 0xc000014090 was not allocated here
	return fmt.Sprintf("hold: slot %p was not allocated here", e.Slot)
}
