// Package engines selects an array.OverlayArray implementation by name.
//
// Available engines:
//   - stamp: per slot logical write stamps (lib/array/engines/stamp)
//   - overlay: global value plus a generation stamped sparse table (lib/array/engines/overlay)
package engines
