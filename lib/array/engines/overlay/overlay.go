package overlay

import (
	"fmt"
	"unsafe"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/array/engines/overlay/internal"
	"github.com/ValentinKolb/oarr/lib/array/util"
	"github.com/lni/dragonboat/v4/logger"
)

var plog = logger.GetLogger("array")

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	minTableCapacity = 8 // Smallest table ever allocated
	loadDivisor      = 2 // Table has at least loadDivisor * length buckets by default
)

// --------------------------------------------------------------------------
// Core Overlay array structure
// --------------------------------------------------------------------------

// overlayImpl implements array.OverlayArray as a global value plus a sparse
// table of individually written indices.
type overlayImpl struct {
	length      int
	globalValue byte
	table       *internal.Table
	eagerClear  bool
}

// Options configures the overlay array during initialization
type Options struct {
	TableCapacity int  // Minimum number of buckets (0 = 2 * length). Always raised above length and to a power of two.
	EagerClear    bool // Clear every bucket on SetAll instead of advancing the generation (O(capacity))
}

// DefaultOptions returns the default overlay options
func DefaultOptions() *Options {
	return &Options{
		TableCapacity: 0,
		EagerClear:    false,
	}
}

// Metadata is reported in array.ArrayInfo.Metadata
type Metadata struct {
	TableCapacity int        `json:"table_capacity"`
	LiveEntries   int        `json:"live_entries"`
	LoadFactor    float64    `json:"load_factor"`
	Generation    uint32     `json:"generation"`
	EagerClear    bool       `json:"eager_clear"`
	ProbeLength   util.Stats `json:"probe_length"`
}

// tableCapacity returns the number of buckets used for an array of length slots.
// Without a requested capacity the table gets loadDivisor buckets per slot.
// The result is a power of two and strictly greater than length, so an empty
// bucket always exists and insertion terminates.
func tableCapacity(length int, requested int) int {
	c := requested
	if c <= 0 {
		c = loadDivisor * length
	}
	c = util.Max(c, minTableCapacity)
	c = util.Max(c, length+1)
	return int(util.NextPowerOfTwo(uint(c)))
}

// NewOverlayArray creates an array with length slots with the specified options (optional)
func NewOverlayArray(length int, opts *Options) array.OverlayArray {
	if opts == nil {
		opts = DefaultOptions()
	}
	if length < 0 {
		length = 0
	}
	return &overlayImpl{
		length:     length,
		table:      internal.NewTable(tableCapacity(length, opts.TableCapacity)),
		eagerClear: opts.EagerClear,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see array.OverlayArray)
// --------------------------------------------------------------------------

func (o *overlayImpl) SetOne(index int, value byte) error {
	if err := array.CheckIndex(index, o.length); err != nil {
		return err
	}
	if _, ok := o.table.Put(index, value); !ok {
		// unreachable while the capacity exceeds the length
		panic(fmt.Sprintf("overlay table full: %d entries in %d buckets", o.table.Len(), o.table.Cap()))
	}
	return nil
}

func (o *overlayImpl) SetAll(value byte) {
	o.globalValue = value
	if o.eagerClear {
		o.table.Clear()
	} else if o.table.Reset() {
		plog.Debugf("generation counter wrapped, cleared %d bucket stamps", o.table.Cap())
	}
}

func (o *overlayImpl) Get(index int) (byte, error) {
	if err := array.CheckIndex(index, o.length); err != nil {
		return 0, err
	}
	if v, found := o.table.Lookup(index); found {
		return v, nil
	}
	return o.globalValue, nil
}

func (o *overlayImpl) Len() int {
	return o.length
}

func (o *overlayImpl) features() array.Feature {
	f := array.FeatureSetOne | array.FeatureSetAll | array.FeatureGet
	if !o.eagerClear {
		f |= array.FeatureConstantSetAll
	}
	return f
}

func (o *overlayImpl) SupportsFeature(feature array.Feature) bool {
	return feature&o.features() == feature
}

func (o *overlayImpl) GetInfo() array.ArrayInfo {
	var bucket internal.Bucket
	return array.ArrayInfo{
		SizeBytes:         o.table.Cap()*int(unsafe.Sizeof(bucket)) + int(unsafe.Sizeof(*o)),
		Engine:            array.ImplOverlay,
		Length:            o.length,
		SupportedFeatures: array.SupportedFeatures(o.features()),
		Metadata: Metadata{
			TableCapacity: o.table.Cap(),
			LiveEntries:   o.table.Len(),
			LoadFactor:    o.table.LoadFactor(),
			Generation:    o.table.Generation(),
			EagerClear:    o.eagerClear,
			ProbeLength:   util.NewStats(o.table.ProbeLengths()),
		},
	}
}
