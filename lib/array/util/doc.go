// Package util provides building blocks shared by the overlay array engines
// in lib/array/engines.
//
// The package contains:
//   - fixed: FixedArray, the contiguous store of fixed length every engine is built on
//   - functions: power of two helpers used for sizing hash tables
//   - statistics: Stats, a small summary of sample distributions (used for probe length reporting)
package util
