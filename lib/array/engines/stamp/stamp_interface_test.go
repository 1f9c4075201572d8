package stamp

import (
	"testing"

	"github.com/ValentinKolb/oarr/lib/array"
	arraytesting "github.com/ValentinKolb/oarr/lib/array/testing"
)

func Test(t *testing.T) {
	arraytesting.RunArrayTests(t, "StampArray", func(length int) array.OverlayArray {
		return NewStampArray(length)
	})
}

func Benchmark(b *testing.B) {
	arraytesting.RunArrayBenchmarks(b, "StampArray", func(length int) array.OverlayArray {
		return NewStampArray(length)
	})
}
