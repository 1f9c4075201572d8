package engines

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/array/engines/overlay"
	"github.com/ValentinKolb/oarr/lib/array/engines/stamp"
)

// Implementations lists every engine that can be created with New
var Implementations = []array.Implementation{array.ImplStamp, array.ImplOverlay}

// ParseImplementation converts an engine name (case-insensitive) to an array.Implementation
func ParseImplementation(name string) (array.Implementation, error) {
	impl := array.Implementation(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Implementations {
		if impl == known {
			return impl, nil
		}
	}
	return "", fmt.Errorf("unknown engine %q (valid: %v)", name, Implementations)
}

// validate checks the engine name and length without allocating an array
func validate(impl array.Implementation, length int) error {
	if length < 0 {
		return fmt.Errorf("invalid length %d", length)
	}
	for _, known := range Implementations {
		if impl == known {
			return nil
		}
	}
	return fmt.Errorf("unknown engine %q", impl)
}

// New creates an array of the given engine with default options
func New(impl array.Implementation, length int) (array.OverlayArray, error) {
	if err := validate(impl, length); err != nil {
		return nil, err
	}
	switch impl {
	case array.ImplStamp:
		return stamp.NewStampArray(length), nil
	case array.ImplOverlay:
		return overlay.NewOverlayArray(length, nil), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", impl)
	}
}

// Factory returns a constructor for arrays of the given engine and length.
// The engine name is validated once, the returned function never fails.
func Factory(impl array.Implementation, length int) (func() array.OverlayArray, error) {
	if err := validate(impl, length); err != nil {
		return nil, err
	}
	return func() array.OverlayArray {
		arr, _ := New(impl, length)
		return arr
	}, nil
}
