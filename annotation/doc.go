// Package annotation converts time-series annotations between their sparse
// and dense representations.
//
// 🚀 Two representations, three shapes
//
//	Annotations over a sequence of length L come in a sparse form
//	(explicit event or segment records) and a dense form (one integer
//	label per position). The sparse side is a closed union of three
//	shapes:
//	  • Points        — positions of change points or anomalies
//	  • Segments      — labeled runs with explicit inclusive start/end
//	  • SegmentStarts — legacy shape: labeled starts, each segment ends
//	    where the next begins
//
// ✨ Operations:
//   - SparseToDense          — any sparse shape → per-position labels
//   - DenseToSparse          — per-position labels → Points or Segments
//   - ChangePointsToSegments — change points → interval segmentation
//   - SegmentsToChangePoints — segmentation → change points
//
// Dense encoding rules:
//   - point shapes use 0/1; value 1 marks an event position
//   - segment shapes use the positive segment labels; the sentinel
//     Unlabeled (-1) marks positions outside any known segment
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/timeseg/annotation"
//
//	dense, err := annotation.SparseToDense(annotation.Points{2, 5, 7}, 10)
//	// dense = [0 0 1 0 0 1 0 1 0 0]
//
// All four operations are deterministic pure functions: fresh outputs,
// no argument mutation, no retained state.
package annotation
