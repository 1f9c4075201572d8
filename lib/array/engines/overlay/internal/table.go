package internal

import (
	"fmt"

	"github.com/ValentinKolb/oarr/lib/array/util"
)

// --------------------------------------------------------------------------
// Bucket Type (one slot of the open addressing table)
// --------------------------------------------------------------------------

// Bucket stores one key-value pair. A bucket is occupied iff Gen equals the
// generation of its table. Gen 0 is never a valid table generation.
type Bucket struct {
	Key   int
	Value byte
	Gen   uint32
}

func (b Bucket) String() string {
	return fmt.Sprintf("Bucket{Key: %d, Value: %d, Gen: %d}", b.Key, b.Value, b.Gen)
}

// --------------------------------------------------------------------------
// Table Type (generation stamped open addressing with linear probing)
// --------------------------------------------------------------------------

// Table maps non-negative int keys to bytes. The home bucket of a key is
// key & (capacity-1), collisions are resolved by linear probing.
// Keys are never removed individually; Reset drops all of them at once.
type Table struct {
	buckets []Bucket
	mask    int
	gen     uint32
	live    int
	wraps   uint64 // number of generation wrap-arounds
}

// NewTable creates a table with at least capacity buckets (rounded up to a power of two)
func NewTable(capacity int) *Table {
	if capacity < 1 {
		capacity = 1
	}
	size := int(util.NextPowerOfTwo(uint(capacity)))
	return &Table{
		buckets: make([]Bucket, size),
		mask:    size - 1,
		gen:     1,
	}
}

func (t *Table) home(key int) int {
	return key & t.mask
}

func (t *Table) occupied(i int) bool {
	return t.buckets[i].Gen == t.gen
}

// Put stores value for key. It returns the number of buckets inspected and
// false if the table has no bucket left for a new key.
func (t *Table) Put(key int, value byte) (probes int, ok bool) {
	start := t.home(key)
	i := start
	for {
		probes++
		b := &t.buckets[i]
		if b.Gen != t.gen {
			*b = Bucket{Key: key, Value: value, Gen: t.gen}
			t.live++
			return probes, true
		}
		if b.Key == key {
			b.Value = value
			return probes, true
		}
		i = (i + 1) & t.mask
		if i == start {
			return probes, false
		}
	}
}

// Lookup returns the value stored for key. The search stops at the first
// empty bucket or after a full cycle through the table.
func (t *Table) Lookup(key int) (value byte, found bool) {
	start := t.home(key)
	i := start
	for {
		if !t.occupied(i) {
			return 0, false
		}
		if t.buckets[i].Key == key {
			return t.buckets[i].Value, true
		}
		i = (i + 1) & t.mask
		if i == start {
			return 0, false
		}
	}
}

// Reset empties the table in O(1) by advancing the generation.
// When the generation counter wraps, every bucket stamp is zeroed once and
// wrapped is true.
func (t *Table) Reset() (wrapped bool) {
	t.live = 0
	t.gen++
	if t.gen == 0 {
		for i := range t.buckets {
			t.buckets[i].Gen = 0
		}
		t.gen = 1
		t.wraps++
		return true
	}
	return false
}

// Clear empties the table by visiting every bucket. This is O(capacity).
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = Bucket{}
	}
	t.live = 0
}

// Cap returns the number of buckets
func (t *Table) Cap() int {
	return len(t.buckets)
}

// Len returns the number of occupied buckets
func (t *Table) Len() int {
	return t.live
}

// Generation returns the current table generation
func (t *Table) Generation() uint32 {
	return t.gen
}

// Wraps returns how often the generation counter wrapped around
func (t *Table) Wraps() uint64 {
	return t.wraps
}

// LoadFactor returns Len() / Cap()
func (t *Table) LoadFactor() float64 {
	return float64(t.live) / float64(len(t.buckets))
}

// ProbeLengths returns, for every occupied bucket, the number of buckets a
// Lookup of its key inspects.
func (t *Table) ProbeLengths() []float64 {
	lengths := make([]float64, 0, t.live)
	for i := range t.buckets {
		if !t.occupied(i) {
			continue
		}
		dist := (i - t.home(t.buckets[i].Key)) & t.mask
		lengths = append(lengths, float64(dist+1))
	}
	return lengths
}
