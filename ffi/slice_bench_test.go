package ffi

import "testing"

// BenchmarkToNative measures descriptor construction, which sits on the hot
// path of every key and value crossing the boundary.
func BenchmarkToNative(b *testing.B) {
	data := make([]byte, 256)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := ToNative(data)
		_ = s
	}
}

// BenchmarkRoundTrip measures a full to/from conversion.
func BenchmarkRoundTrip(b *testing.B) {
	data := make([]byte, 256)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view := FromNative(ToNative(data))
		_ = view
	}
}

// BenchmarkCall measures the status bookkeeping around a successful call.
func BenchmarkCall(b *testing.B) {
	fn := func(a int, st *Status) int { return a }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Call1(fn, i)
	}
}
