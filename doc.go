// Package hold explores explicit ownership semantics for resource-holding
// value types in Go.
//
// The repository is organized around one core idea: a value that exclusively
// owns a single unit of heap storage, with the full set of lifetime transfers
// spelled out as explicit operations instead of implicit language magic:
//
//   - construct: allocate fresh storage
//   - clone: deep copy into fresh, independent storage
//   - copy-assign: replace own storage with a fresh copy (self-safe)
//   - move / move-assign: transfer storage wholesale, emptying the source
//   - release: give storage back, exactly once
//
// The goal is to keep ownership transfers visible at the call site, make the
// live/empty state machine testable, and keep diagnostics decoupled from the
// value semantics via an injectable observer.
//
// See subpackages:
//   - hold: the core library (Value, Slot, Allocator, Observer)
//   - holdlog: structured-logging observer adapter (charmbracelet/log)
//   - ordered: small generic helpers over ordered types
//   - cmd/hold: CLI driver for the end-to-end lifecycle scenario
//   - examples/*: runnable demos (scenario, dispatch, namespaces)
package hold
