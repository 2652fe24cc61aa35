package hold_test

import (
	"testing"

	"github.com/okarel/hold/hold"
)

/*
   Benchmarks

   The interesting comparison is copy vs. move: copy pays for an allocation
   on every transfer, move only shuffles pointers.
*/

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = hold.New(15)
	}
}

func BenchmarkClone(b *testing.B) {
	src := hold.New(15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = src.Clone()
	}
}

func BenchmarkCopyFrom(b *testing.B) {
	src := hold.New(15)
	dst := hold.New(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst.CopyFrom(src)
	}
}

func BenchmarkMoveFrom(b *testing.B) {
	a := hold.New(15)
	c := hold.New(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Ping-pong the slot so every iteration performs a real transfer.
		if i%2 == 0 {
			c.MoveFrom(a)
		} else {
			a.MoveFrom(c)
		}
	}
}

func BenchmarkRelease_Empty(b *testing.B) {
	v := hold.New(15)
	v.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Release()
	}
}
