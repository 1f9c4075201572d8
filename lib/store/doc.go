// Package store provides a high-level interface for accessing an overlay array
// with unified error handling and safe concurrent access.
// It serves as an abstraction layer over the lower-level array.OverlayArray engines.
//
// Key Components:
//
//   - IStore Interface: The core abstraction defining SetOne, SetAll, Get and GetInfo.
//     Local stores (lstore) and remote stores (rpc/client) share this interface, so
//     applications can switch between in-process and networked arrays without code
//     changes.
//
//   - Error System: Every failure is reported as *Error with a typed RetCode.
//     Errors with RetCOutOfRange match array.ErrOutOfRange with errors.Is, also
//     after they crossed the network, since only the code travels on the wire.
//
//   - ArrayFactory: A function type that abstracts the creation of the underlying
//     array.OverlayArray, e.g. engines.Factory(array.ImplOverlay, 100).
//
//   - MockIStore: a gomock mock of IStore for tests of code built on top of stores.
package store
