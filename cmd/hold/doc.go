// Command hold is a small driver around the hold library.
//
// Its scenario subcommand walks one value through every ownership transfer
// the library supports — construct, clone, copy-assign, move-construct,
// move-assign, release — while a lifecycle observer narrates each step, and
// a counting allocator proves at the end that every slot was reclaimed
// exactly once.
//
// Configuration comes from HOLD_* environment variables (see
// internal/config); flags override the environment.
//
// Usage:
//
//	hold scenario                  # structured log output
//	hold scenario --format plain   # bare diagnostic lines
//	hold scenario --initial 42     # start from a different value
package main
