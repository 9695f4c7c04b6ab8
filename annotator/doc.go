// Package annotator wraps concrete annotation algorithms in the common
// estimator lifecycle: fitted-state tracking, input validation, update
// bookkeeping, and output-shape conversion.
//
// 🚀 Tasks and capabilities
//
//	An annotation algorithm declares its task — change point detection,
//	anomaly detection, or segmentation — and its learning type. Its
//	native sparse output shape follows from the task: point tasks emit
//	annotation.Points, segmentation emits annotation.Segments. The two
//	shapes are modeled as a closed pair of capability interfaces
//	(PointAlgorithm, SegmentAlgorithm); New rejects an algorithm whose
//	task and capability disagree, so invalid combinations fail at
//	construction rather than at call time.
//
// ✨ Model operations:
//   - Fit / Predict / FitPredict — the two-state unfitted→fitted lifecycle
//   - PredictPoints / PredictSegments / PredictDense — requested output
//     shape, converted from the native one where the task allows it
//   - Update / UpdatePredict — merge new observations with retained
//     history (index-label union, new data wins) and re-fit
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/timeseg/annotator"
//	  "github.com/katalvlaran/timeseg/binseg"
//	)
//
//	model, err := annotator.New(binseg.New(1.0))
//	if err != nil { ... }
//	if err = model.Fit(x); err != nil { ... }
//	segs, err := model.PredictSegments(x)
//
// Coordinate spaces: native point output reports the series' index
// labels; converted shapes (segments, dense) are positional, one entry
// per offset of the predicted series.
package annotator
