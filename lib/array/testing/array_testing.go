package testing

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ValentinKolb/oarr/lib/array"
)

// ArrayFactory is a function that creates a new instance of an OverlayArray implementation
type ArrayFactory func(length int) array.OverlayArray

// RunArrayTests runs a comprehensive test suite for an OverlayArray implementation.
func RunArrayTests(t *testing.T, name string, factory ArrayFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("FreshReadsZero", func(t *testing.T) {
			testFreshReadsZero(t, factory(100))
		})

		t.Run("SetOne&Get", func(t *testing.T) {
			testSetOneGet(t, factory(100))
		})

		t.Run("OutOfRange", func(t *testing.T) {
			testOutOfRange(t, factory(100))
		})

		t.Run("ZeroLength", func(t *testing.T) {
			testZeroLength(t, factory(0))
		})

		t.Run("SetAllOverridesEarlierWrites", func(t *testing.T) {
			testSetAllOverridesEarlierWrites(t, factory(100))
		})

		t.Run("SetOneAfterSetAllWins", func(t *testing.T) {
			testSetOneAfterSetAllWins(t, factory(100))
		})

		t.Run("UnaffectedIndices", func(t *testing.T) {
			testUnaffectedIndices(t, factory(100))
		})

		t.Run("SetAllIdempotent", func(t *testing.T) {
			testSetAllIdempotent(t, factory)
		})

		t.Run("ManyResets", func(t *testing.T) {
			testManyResets(t, factory(64))
		})

		t.Run("FullOverlay", func(t *testing.T) {
			testFullOverlay(t, factory(1000))
		})

		t.Run("Scenario", func(t *testing.T) {
			testScenario(t, factory(100))
		})

		t.Run("RandomizedModel", func(t *testing.T) {
			for _, length := range []int{1, 7, 100, 1000} {
				testRandomizedModel(t, factory(length), int64(length))
			}
		})

		t.Run("Info", func(t *testing.T) {
			testInfo(t, factory(100))
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Checks if the array supports the specified feature
// Skip the test if it is not supported
func requireFeature(t testing.TB, arr array.OverlayArray, feature array.Feature) {
	if !arr.SupportsFeature(feature) {
		t.Skip()
	}
}

// expectValue fails the test if Get(index) does not return want
func expectValue(t testing.TB, arr array.OverlayArray, index int, want byte) {
	t.Helper()
	got, err := arr.Get(index)
	if err != nil {
		t.Errorf("Get(%d) returned unexpected error: %v", index, err)
		return
	}
	if got != want {
		t.Errorf("Get(%d) = %d, expected %d", index, got, want)
	}
}

// mustSetOne fails the test if SetOne returns an error
func mustSetOne(t testing.TB, arr array.OverlayArray, index int, value byte) {
	t.Helper()
	if err := arr.SetOne(index, value); err != nil {
		t.Fatalf("SetOne(%d, %d) returned unexpected error: %v", index, value, err)
	}
}

// snapshot reads every index of the array
func snapshot(t testing.TB, arr array.OverlayArray) []byte {
	t.Helper()
	values := make([]byte, arr.Len())
	for i := range values {
		v, err := arr.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) returned unexpected error: %v", i, err)
		}
		values[i] = v
	}
	return values
}

// --------------------------------------------------------------------------
// Reference model (O(n) SetAll)
// --------------------------------------------------------------------------

type model []byte

func (m model) setOne(i int, v byte) { m[i] = v }

func (m model) setAll(v byte) {
	for i := range m {
		m[i] = v
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testFreshReadsZero(t *testing.T, arr array.OverlayArray) {
	requireFeature(t, arr, array.FeatureGet)

	if arr.Len() != 100 {
		t.Fatalf("Expected length 100, got %d", arr.Len())
	}
	for i := 0; i < arr.Len(); i++ {
		expectValue(t, arr, i, 0)
	}
}

func testSetOneGet(t *testing.T, arr array.OverlayArray) {
	requireFeature(t, arr, array.FeatureSetOne|array.FeatureGet)

	mustSetOne(t, arr, 0, 9)
	mustSetOne(t, arr, 99, 255)
	mustSetOne(t, arr, 50, 1)

	expectValue(t, arr, 0, 9)
	expectValue(t, arr, 99, 255)
	expectValue(t, arr, 50, 1)
	expectValue(t, arr, 49, 0)

	// overwrite keeps the latest value
	mustSetOne(t, arr, 50, 2)
	mustSetOne(t, arr, 50, 3)
	expectValue(t, arr, 50, 3)

	// writing zero explicitly
	mustSetOne(t, arr, 0, 0)
	expectValue(t, arr, 0, 0)
}

func testOutOfRange(t *testing.T, arr array.OverlayArray) {
	requireFeature(t, arr, array.FeatureSetOne|array.FeatureGet)

	mustSetOne(t, arr, 0, 1)
	before := snapshot(t, arr)

	for _, index := range []int{-1, arr.Len(), arr.Len() + 1, -1 << 40, 1 << 40} {
		if _, err := arr.Get(index); !errors.Is(err, array.ErrOutOfRange) {
			t.Errorf("Get(%d): expected ErrOutOfRange, got %v", index, err)
		}
		if err := arr.SetOne(index, 42); !errors.Is(err, array.ErrOutOfRange) {
			t.Errorf("SetOne(%d): expected ErrOutOfRange, got %v", index, err)
		}
	}

	var idxErr *array.IndexError
	_, err := arr.Get(arr.Len())
	if !errors.As(err, &idxErr) {
		t.Fatalf("Expected *array.IndexError, got %T", err)
	}
	if idxErr.Index != arr.Len() || idxErr.Length != arr.Len() {
		t.Errorf("Unexpected IndexError content: %+v", idxErr)
	}

	// rejected writes must not change anything
	after := snapshot(t, arr)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Index %d changed from %d to %d after rejected writes", i, before[i], after[i])
		}
	}
}

func testZeroLength(t *testing.T, arr array.OverlayArray) {
	if arr.Len() != 0 {
		t.Fatalf("Expected length 0, got %d", arr.Len())
	}
	if _, err := arr.Get(0); !errors.Is(err, array.ErrOutOfRange) {
		t.Errorf("Get(0) on empty array: expected ErrOutOfRange, got %v", err)
	}
	if err := arr.SetOne(0, 1); !errors.Is(err, array.ErrOutOfRange) {
		t.Errorf("SetOne(0) on empty array: expected ErrOutOfRange, got %v", err)
	}
	// must not panic
	arr.SetAll(1)
}

func testSetAllOverridesEarlierWrites(t *testing.T, arr array.OverlayArray) {
	requireFeature(t, arr, array.FeatureSetOne|array.FeatureSetAll|array.FeatureGet)

	for i := 0; i < arr.Len(); i += 3 {
		mustSetOne(t, arr, i, byte(i))
	}
	arr.SetAll(77)

	for i := 0; i < arr.Len(); i++ {
		expectValue(t, arr, i, 77)
	}
}

func testSetOneAfterSetAllWins(t *testing.T, arr array.OverlayArray) {
	requireFeature(t, arr, array.FeatureSetOne|array.FeatureSetAll|array.FeatureGet)

	mustSetOne(t, arr, 5, 1)
	arr.SetAll(2)
	mustSetOne(t, arr, 5, 3)
	expectValue(t, arr, 5, 3)

	// the same value as the global one is still an individual write
	arr.SetAll(4)
	mustSetOne(t, arr, 6, 4)
	arr.SetAll(8)
	expectValue(t, arr, 6, 8)
	mustSetOne(t, arr, 6, 4)
	expectValue(t, arr, 6, 4)
}

func testUnaffectedIndices(t *testing.T, arr array.OverlayArray) {
	requireFeature(t, arr, array.FeatureSetOne|array.FeatureSetAll|array.FeatureGet)

	arr.SetAll(10)
	mustSetOne(t, arr, 3, 99)

	for i := 0; i < arr.Len(); i++ {
		if i == 3 {
			expectValue(t, arr, i, 99)
		} else {
			expectValue(t, arr, i, 10)
		}
	}
}

func testSetAllIdempotent(t *testing.T, factory ArrayFactory) {
	once, twice := factory(50), factory(50)
	requireFeature(t, once, array.FeatureSetOne|array.FeatureSetAll|array.FeatureGet)

	for _, arr := range []array.OverlayArray{once, twice} {
		mustSetOne(t, arr, 1, 1)
		mustSetOne(t, arr, 2, 2)
	}
	once.SetAll(6)
	twice.SetAll(6)
	twice.SetAll(6)

	a, b := snapshot(t, once), snapshot(t, twice)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Index %d: single SetAll gives %d, repeated SetAll gives %d", i, a[i], b[i])
		}
	}
}

func testManyResets(t *testing.T, arr array.OverlayArray) {
	requireFeature(t, arr, array.FeatureSetOne|array.FeatureSetAll|array.FeatureGet)

	for round := 0; round < 5000; round++ {
		arr.SetAll(byte(round))
		idx := round % arr.Len()
		mustSetOne(t, arr, idx, byte(round+1))

		expectValue(t, arr, idx, byte(round+1))
		expectValue(t, arr, (idx+1)%arr.Len(), byte(round))
	}
}

func testFullOverlay(t *testing.T, arr array.OverlayArray) {
	requireFeature(t, arr, array.FeatureSetOne|array.FeatureSetAll|array.FeatureGet)

	// write every index (maximal table load), twice to exercise updates
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < arr.Len(); i++ {
			mustSetOne(t, arr, i, byte(i*7+pass))
		}
	}
	for i := 0; i < arr.Len(); i++ {
		expectValue(t, arr, i, byte(i*7+1))
	}

	arr.SetAll(200)
	for i := 0; i < arr.Len(); i += 2 {
		mustSetOne(t, arr, i, 1)
	}
	for i := 0; i < arr.Len(); i++ {
		if i%2 == 0 {
			expectValue(t, arr, i, 1)
		} else {
			expectValue(t, arr, i, 200)
		}
	}
}

// testScenario runs the reference walk-through on an array with 100 slots
func testScenario(t *testing.T, arr array.OverlayArray) {
	requireFeature(t, arr, array.FeatureSetOne|array.FeatureSetAll|array.FeatureGet)

	mustSetOne(t, arr, 0, 9)
	mustSetOne(t, arr, 2, 10)
	expectValue(t, arr, 0, 9)
	expectValue(t, arr, 8, 0)

	arr.SetAll(10)
	expectValue(t, arr, 0, 10)
	expectValue(t, arr, 2, 10)

	mustSetOne(t, arr, 3, 99)

	expected := make([]byte, 100)
	for i := range expected {
		expected[i] = 10
	}
	expected[3] = 99

	got := snapshot(t, arr)
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Index %d: expected %d, got %d", i, expected[i], got[i])
		}
	}

	if _, err := arr.Get(100); !errors.Is(err, array.ErrOutOfRange) {
		t.Errorf("Get(100): expected ErrOutOfRange, got %v", err)
	}
}

// testRandomizedModel replays a random operation sequence on the array and
// on a naive model and compares every read.
func testRandomizedModel(t *testing.T, arr array.OverlayArray, seed int64) {
	requireFeature(t, arr, array.FeatureSetOne|array.FeatureSetAll|array.FeatureGet)

	rng := rand.New(rand.NewSource(seed))
	ref := make(model, arr.Len())

	for op := 0; op < 20000; op++ {
		switch r := rng.Intn(100); {
		case r < 5:
			v := byte(rng.Intn(256))
			arr.SetAll(v)
			ref.setAll(v)
		case r < 50:
			i, v := rng.Intn(arr.Len()), byte(rng.Intn(256))
			mustSetOne(t, arr, i, v)
			ref.setOne(i, v)
		default:
			i := rng.Intn(arr.Len())
			got, err := arr.Get(i)
			if err != nil {
				t.Fatalf("Get(%d) returned unexpected error: %v", i, err)
			}
			if got != ref[i] {
				t.Fatalf("Length %d, op %d: Get(%d) = %d, model has %d", arr.Len(), op, i, got, ref[i])
			}
		}
	}

	got := snapshot(t, arr)
	for i := range ref {
		if got[i] != ref[i] {
			t.Fatalf("Length %d: final Get(%d) = %d, model has %d", arr.Len(), i, got[i], ref[i])
		}
	}
}

func testInfo(t *testing.T, arr array.OverlayArray) {
	info := arr.GetInfo()

	if info.Length != arr.Len() {
		t.Errorf("Expected info length %d, got %d", arr.Len(), info.Length)
	}
	if info.Engine == "" {
		t.Errorf("Expected engine name to be set")
	}
	if info.SizeBytes < arr.Len() {
		t.Errorf("Size estimate %d is smaller than the length %d", info.SizeBytes, arr.Len())
	}
	for _, f := range array.AllFeatures {
		listed := false
		for _, sf := range info.SupportedFeatures {
			if sf == f {
				listed = true
			}
		}
		if listed != arr.SupportsFeature(f) {
			t.Errorf("Feature %s: listed=%v but SupportsFeature=%v", f, listed, arr.SupportsFeature(f))
		}
	}
}
