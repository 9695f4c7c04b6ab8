// Package series provides the validated, ordered numeric sequence that all
// timeseg annotators and converters operate on.
//
// 🚀 What is a Series?
//
//	A Series couples a strictly increasing integer index with one float64
//	observation per index position.  The index carries the caller's own
//	labels (sample numbers, epoch offsets, row ids); every annotator in
//	this module reports its findings in terms of those labels, not raw
//	slice offsets.
//
// ✨ Key features:
//   - Check — the single validation gate every entry point runs inputs through
//   - Position / Label — O(log n) translation between index labels and offsets
//   - CombineFirst — index-label union merge used by the update lifecycle
//   - Describe — summary statistics (mean, std, min, max, median)
//   - CSV ingest & egress with configurable column mapping
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/timeseg/series"
//
//	x := series.New([]float64{1, 1, 1, 5, 5})
//	if err := series.Check(x); err != nil {
//	  // handle ErrEmptySeries, ErrIndexOrder, ErrLengthMismatch
//	}
//
// All operations allocate fresh outputs and never mutate their receiver
// unless documented otherwise.
package series
