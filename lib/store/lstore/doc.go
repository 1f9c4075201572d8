// Package lstore implements a local, in-memory, single-node store based on the
// store.IStore interface. It provides a thin wrapper around any array.OverlayArray
// implementation. Data is stored entirely in memory and is not persisted between
// process restarts.
//
// Key Features:
//   - Direct integration with array.OverlayArray engines
//   - One exclusive lock guarding SetOne, SetAll, Get and GetInfo
//   - Feature detection to handle unsupported operations gracefully
//   - Conversion of engine errors into *store.Error (RetCOutOfRange for invalid indices)
//
// Thread Safety:
//
//	All operations in the local store are thread-safe. Engines are not, so the
//	store serializes every call with a sync.Mutex. Reads take the same lock as writes.
//
// Usage Example:
//
//	factory, _ := engines.Factory(array.ImplOverlay, 100)
//	s := lstore.NewLocalStore(factory)
//
//	_ = s.SetOne(3, 99)
//	_ = s.SetAll(10)
//	v, err := s.Get(3) // 10
package lstore
