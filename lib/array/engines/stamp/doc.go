// Package stamp implements array.OverlayArray with per slot write stamps.
//
// Every mutating call advances a private uint64 logical clock exactly once.
// SetOne stores the value together with the new clock, SetAll only records the
// global value and the clock at which it was issued. Get returns the global
// value when a SetAll happened and the slot was not written after it, and the
// slot's own value otherwise. Because the clock is strictly monotonic two writes
// never share a stamp, so the order of calls alone decides which write wins.
//
// All operations are O(1). The array needs N bytes for values plus 8N bytes for
// stamps. A stamp of 0 means the slot was never written individually.
//
// The engine is not safe for concurrent use, see lib/store/lstore for a locked wrapper.
package stamp
