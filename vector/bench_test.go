package vector_test

import (
	"testing"

	"github.com/pwalczak/alglib/vector"
)

// BenchmarkPushBack measures amortized append cost across repeated doubling
// reallocations, starting from the default capacity.
func BenchmarkPushBack(b *testing.B) {
	v := vector.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.PushBack(i)
	}
}

// BenchmarkPushBack_Presized measures append cost when the capacity is
// reserved up front and no reallocation ever happens.
func BenchmarkPushBack_Presized(b *testing.B) {
	v := vector.NewWithCapacity[int](b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.PushBack(i)
	}
}

// BenchmarkInsert_Front measures the worst-case insert position, where every
// live element shifts one slot rightward.
func BenchmarkInsert_Front(b *testing.B) {
	v := vector.NewWithCapacity[int](b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Insert(i, 0)
	}
}

// BenchmarkCursorTraversal measures a full forward cursor sweep over 10k
// elements.
func BenchmarkCursorTraversal(b *testing.B) {
	v := vector.NewWithCapacity[int](10_000)
	for i := 0; i < 10_000; i++ {
		v.PushBack(i)
	}
	b.ResetTimer()

	var sum int
	for i := 0; i < b.N; i++ {
		for it := v.Begin(); it.NotEqual(v.End()); it.Next() {
			sum += it.Value()
		}
	}
	_ = sum
}

// BenchmarkSeqTraversal measures the same sweep through the All sequence for
// comparison with the explicit cursor loop.
func BenchmarkSeqTraversal(b *testing.B) {
	v := vector.NewWithCapacity[int](10_000)
	for i := 0; i < 10_000; i++ {
		v.PushBack(i)
	}
	b.ResetTimer()

	var sum int
	for i := 0; i < b.N; i++ {
		for n := range v.All() {
			sum += n
		}
	}
	_ = sum
}
