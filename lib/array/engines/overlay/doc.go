// Package overlay implements array.OverlayArray as a global value with a sparse
// overlay of individually written indices.
//
// Key Components:
//
//   - overlayImpl: holds the global value established by the last SetAll and an
//     internal.Table with every index written by SetOne since then. Get returns
//     the table entry if one exists and the global value otherwise.
//
//   - internal.Table: an open addressing hash table with linear probing. The home
//     bucket of index i is i & (capacity-1). Every bucket carries the generation of
//     the table at the time it was written; buckets from an older generation read
//     as empty.
//
// Internal Mechanisms:
//
//   - Constant time SetAll: SetAll stores the new global value and advances the
//     table generation, which invalidates every bucket without touching them.
//     The generation is a uint32. When it wraps, all bucket stamps are zeroed once
//     and the generation restarts at 1, so a stale bucket can never be mistaken
//     for a live one. This costs O(capacity) once every 2^32 resets.
//
//   - Eager clearing: with Options.EagerClear set, SetAll visits and clears every
//     bucket instead. This is O(capacity) per call and only kept for comparison.
//     Engines created this way do not report array.FeatureConstantSetAll.
//
//   - Sizing: the table has NextPowerOfTwo(max(TableCapacity, 2*length, 8))
//     buckets and always more buckets than the array has slots. Keys are distinct
//     indices, so an empty bucket always exists and insertion terminates. Lookups
//     additionally stop after one full cycle through the table.
//
// The engine is not safe for concurrent use, see lib/store/lstore for a locked wrapper.
package overlay
