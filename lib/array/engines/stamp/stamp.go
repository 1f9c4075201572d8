package stamp

import (
	"unsafe"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/array/util"
)

// --------------------------------------------------------------------------
// Core Stamp array structure
// --------------------------------------------------------------------------

// stampImpl implements array.OverlayArray by tagging every write with a logical clock.
// A slot is overridden by the global value iff its stamp is not newer than the stamp
// of the last SetAll.
type stampImpl struct {
	values *util.FixedArray[byte]   // last individually written value per index
	stamps *util.FixedArray[uint64] // clock of the last individual write per index (0 = never)

	clock        uint64 // logical clock, incremented once per mutating call
	globalValue  byte
	globalClock  uint64
	globalActive bool
	resets       uint64 // number of SetAll calls
}

// Metadata is reported in array.ArrayInfo.Metadata
type Metadata struct {
	Clock       uint64 `json:"clock"`
	GlobalClock uint64 `json:"global_clock"`
	GlobalValue byte   `json:"global_value"`
	Resets      uint64 `json:"resets"`
}

// NewStampArray creates an array with length slots, all reading zero.
func NewStampArray(length int) array.OverlayArray {
	return &stampImpl{
		values: util.NewFixedArray[byte](length),
		stamps: util.NewFixedArray[uint64](length),
	}
}

// tick advances the logical clock and returns the new value.
// The first write carries 1 so that 0 keeps meaning "never written".
func (s *stampImpl) tick() uint64 {
	s.clock++
	return s.clock
}

// --------------------------------------------------------------------------
// Interface Methods (docu see array.OverlayArray)
// --------------------------------------------------------------------------

func (s *stampImpl) SetOne(index int, value byte) error {
	if err := array.CheckIndex(index, s.values.Len()); err != nil {
		return err
	}
	s.values.Set(index, value)
	s.stamps.Set(index, s.tick())
	return nil
}

func (s *stampImpl) SetAll(value byte) {
	s.globalValue = value
	s.globalClock = s.tick()
	s.globalActive = true
	s.resets++
}

func (s *stampImpl) Get(index int) (byte, error) {
	if err := array.CheckIndex(index, s.values.Len()); err != nil {
		return 0, err
	}
	if s.globalActive && s.stamps.Get(index) <= s.globalClock {
		return s.globalValue, nil
	}
	return s.values.Get(index), nil
}

func (s *stampImpl) Len() int {
	return s.values.Len()
}

func (s *stampImpl) SupportsFeature(feature array.Feature) bool {
	supported := array.FeatureSetOne | array.FeatureSetAll | array.FeatureGet | array.FeatureConstantSetAll
	return feature&supported == feature
}

func (s *stampImpl) GetInfo() array.ArrayInfo {
	return array.ArrayInfo{
		SizeBytes: s.values.SizeBytes() + s.stamps.SizeBytes() + int(unsafe.Sizeof(*s)),
		Engine:    array.ImplStamp,
		Length:    s.values.Len(),
		SupportedFeatures: array.SupportedFeatures(
			array.FeatureSetOne | array.FeatureSetAll | array.FeatureGet | array.FeatureConstantSetAll,
		),
		Metadata: Metadata{
			Clock:       s.clock,
			GlobalClock: s.globalClock,
			GlobalValue: s.globalValue,
			Resets:      s.resets,
		},
	}
}
