package array

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplStamp   Implementation = "stamp"
	ImplOverlay Implementation = "overlay"
)

// Feature represents engine features as bit flags
type Feature uint64

const (
	FeatureSetOne         Feature = 1 << iota // Support for SetOne operations
	FeatureSetAll                             // Support for SetAll operations
	FeatureGet                                // Support for Get operations
	FeatureConstantSetAll                     // SetAll runs in O(1) independent of the length
)

func (f Feature) String() string {
	switch f {
	case FeatureSetOne:
		return "SetOne"
	case FeatureSetAll:
		return "SetAll"
	case FeatureGet:
		return "Get"
	case FeatureConstantSetAll:
		return "ConstantSetAll"
	default:
		return "Unknown"
	}
}

// AllFeatures lists every known feature flag in declaration order
var AllFeatures = []Feature{FeatureSetOne, FeatureSetAll, FeatureGet, FeatureConstantSetAll}

type ArrayInfo struct {
	SizeBytes         int            `json:"size_bytes"`
	Engine            Implementation `json:"engine"`
	Length            int            `json:"length"`
	SupportedFeatures []Feature      `json:"supported_features"`
	Metadata          interface{}    `json:"metadata"`
}

// --------------------------------------------------------------------------
// Errors
// --------------------------------------------------------------------------

// ErrOutOfRange is reported for every index outside [0, Len()).
var ErrOutOfRange = errors.New("index out of range")

// IndexError describes a rejected index. It matches ErrOutOfRange with errors.Is.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CheckIndex returns an *IndexError if index is not in [0, length).
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{Index: index, Length: length}
	}
	return nil
}

// --------------------------------------------------------------------------
// Overlay Array Interface
// --------------------------------------------------------------------------

// OverlayArray defines an interface for fixed length byte arrays that support
// resetting every element in constant time.
// Writes are ordered by call sequence: the last write affecting an index wins,
// where SetAll affects every index and SetOne only the given one.
// Implementations are not safe for concurrent use; callers that share an
// array between goroutines must guard all operations with one lock.
type OverlayArray interface {

	// --------------------------------------------------------------------------
	// Write Operations
	// --------------------------------------------------------------------------

	// SetOne stores value at index. The write takes priority over every earlier
	// SetAll and every earlier SetOne for the same index.
	// An index outside [0, Len()) is rejected with an error matching ErrOutOfRange
	// and the array is left unchanged.
	SetOne(index int, value byte) (err error)

	// SetAll makes value the result of every index that is not set individually afterward.
	// All earlier SetOne calls are superseded.
	SetAll(value byte)

	// --------------------------------------------------------------------------
	// Query Operations
	// --------------------------------------------------------------------------

	// Get returns the value established by the most recent write affecting index,
	// or zero if the index was never written.
	Get(index int) (value byte, err error)

	// Len returns the fixed number of elements.
	Len() (length int)

	// --------------------------------------------------------------------------
	// Feature Support
	// --------------------------------------------------------------------------

	// SupportsFeature checks if the implementation supports the specified feature.
	// Multiple features can be checked at once using bitwise OR (|) operator.
	SupportsFeature(feature Feature) (ok bool)

	// GetInfo returns information about the array.
	GetInfo() (info ArrayInfo)
}

// SupportedFeatures expands a feature mask into the list of single features it contains
func SupportedFeatures(mask Feature) []Feature {
	features := make([]Feature, 0, len(AllFeatures))
	for _, f := range AllFeatures {
		if mask&f == f {
			features = append(features, f)
		}
	}
	return features
}
