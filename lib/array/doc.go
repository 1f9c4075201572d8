// Package array provides a standardized interface for fixed length byte arrays
// that can reset every element in constant time.
//
// Key Components:
//
//   - OverlayArray Interface: The core interface that all engines must satisfy.
//     It provides SetOne (write a single index), SetAll (write every index),
//     Get, Len, feature discovery (SupportsFeature) and metadata (GetInfo).
//
//   - Feature Flags: engines advertise their capabilities through bit flags.
//     FeatureConstantSetAll marks engines whose SetAll does not depend on the length.
//
//   - Implementation Identifiers: "stamp" (lib/array/engines/stamp) and
//     "overlay" (lib/array/engines/overlay). Use lib/array/engines to create an
//     engine by name.
//
//   - Errors: ErrOutOfRange is the only error an engine reports. Engines return an
//     *IndexError which matches ErrOutOfRange with errors.Is.
//
// Semantics:
//
//   - Writes are ordered by call sequence. A Get returns the value of the most
//     recent SetOne for that index if no SetAll came after it, the value of the
//     most recent SetAll otherwise, and zero if the index was never written.
//
//   - The length is fixed at construction. An index is valid iff 0 <= index < Len().
//     Rejected calls leave the array unchanged.
//
//   - Engines are not safe for concurrent use. lib/store/lstore serializes every
//     operation with one lock.
package array
