// Package hold implements a resource-owning value type with explicit
// copy and move semantics.
//
// A Value owns at most one Slot of heap storage. While live, the slot holds
// the value plus a fixed offset (DerivedOffset) and is never shared with
// another live Value. The full lifecycle is modeled as explicit operations:
//
//   - New: construct with fresh storage
//   - Clone: copy-construct into fresh, independent storage
//   - CopyFrom: copy-assign (self-assignment is a guarded no-op)
//   - Move: move-construct, transferring the slot and emptying the source
//   - MoveFrom: move-assign (self-move is a guarded no-op)
//   - Release: give the slot back, exactly once
//
// Two states exist: live (owns a slot, derived == value+DerivedOffset) and
// empty (moved-from or released: no slot, value reset to zero on move-out).
// Copy and move destinations may start in either state.
//
// Design goals:
//   - Exclusive ownership: a slot belongs to exactly one live Value; copy
//     allocates, move transfers, nothing is reference counted.
//   - Observable lifecycle: every transition emits an Event to an injectable
//     Observer, keeping diagnostics out of the value-semantics contract.
//   - Testable storage: the Allocator seam lets tests account for every
//     allocation and detect double frees (see CountingAllocator).
//
// Failure model: allocation failure is fatal (panic, no partial state).
// Self-assignment and self-move are not errors; they are safe no-ops aside
// from the emitted event.
package hold
