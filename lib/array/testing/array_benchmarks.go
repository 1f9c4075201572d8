package testing

import (
	"math/rand"
	"testing"

	"github.com/ValentinKolb/oarr/lib/array"
)

// benchLength is the number of slots of every benchmarked array
const benchLength = 1 << 16

// RunArrayBenchmarks runs all benchmarks for an overlay array implementation.
// Arrays are not safe for concurrent use, so no benchmark runs in parallel.
func RunArrayBenchmarks(b *testing.B, name string, factory ArrayFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("SetOne", func(b *testing.B) {
			benchmarkSetOne(b, factory(benchLength))
		})

		b.Run("SetAll", func(b *testing.B) {
			benchmarkSetAll(b, factory(benchLength))
		})

		b.Run("SetAll(small)", func(b *testing.B) {
			benchmarkSetAll(b, factory(16))
		})

		b.Run("Get", func(b *testing.B) {
			benchmarkGet(b, factory(benchLength))
		})

		b.Run("Get(miss)", func(b *testing.B) {
			benchmarkGetMiss(b, factory(benchLength))
		})

		b.Run("MixedUsage", func(b *testing.B) {
			benchmarkMixedUsage(b, factory(benchLength))
		})
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkSetOne(b *testing.B, arr array.OverlayArray) {
	requireFeature(b, arr, array.FeatureSetOne)

	mask := arr.Len() - 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arr.SetOne(i&mask, byte(i))
	}
}

// SetAll cost should not depend on the array length for engines with FeatureConstantSetAll
func benchmarkSetAll(b *testing.B, arr array.OverlayArray) {
	requireFeature(b, arr, array.FeatureSetAll)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.SetAll(byte(i))
	}
}

func benchmarkGet(b *testing.B, arr array.OverlayArray) {
	requireFeature(b, arr, array.FeatureSetOne|array.FeatureGet)

	// Prepare data: every second slot written individually
	for i := 0; i < arr.Len(); i += 2 {
		_ = arr.SetOne(i, byte(i))
	}

	mask := arr.Len() - 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Get(i & mask)
	}
}

func benchmarkGetMiss(b *testing.B, arr array.OverlayArray) {
	requireFeature(b, arr, array.FeatureSetAll|array.FeatureGet)

	arr.SetAll(1)

	mask := arr.Len() - 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Get(i & mask)
	}
}

// Benchmark for mixed usage patterns (45% SetOne, 5% SetAll, 50% Get)
func benchmarkMixedUsage(b *testing.B, arr array.OverlayArray) {
	requireFeature(b, arr, array.FeatureSetOne|array.FeatureSetAll|array.FeatureGet)

	rng := rand.New(rand.NewSource(42))
	ops := make([]int, 4096)
	for i := range ops {
		ops[i] = rng.Intn(100)
	}

	mask := arr.Len() - 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		op := ops[i&(len(ops)-1)]
		switch {
		case op < 5:
			arr.SetAll(byte(i))
		case op < 50:
			_ = arr.SetOne((i*31)&mask, byte(i))
		default:
			_, _ = arr.Get(i & mask)
		}
	}
}
