// Package testing provides standardised tests and benchmarks for
// overlay array implementations that satisfy the array.OverlayArray interface.
//
// The package contains:
//   - testing: A conformance suite for the OverlayArray contract, including a
//     randomized comparison against a naive array with an O(n) SetAll
//   - benchmark: Performance tests for SetOne, SetAll and Get
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func(length int) array.OverlayArray {
//		return NewMyArray(length)
//	}
//
//	// Running the standard test suite
//	arraytesting.RunArrayTests(t, "MyArray", factory)
//
//	// Running performance benchmarks
//	arraytesting.RunArrayBenchmarks(b, "MyArray", factory)
package testing
