// Package binseg detects change points in a numeric time series with the
// binary segmentation algorithm.
//
// 🚀 What is binary segmentation?
//
//	Binary segmentation fits piecewise constant functions to a series by
//	repeatedly splitting it at the position with the strongest evidence
//	of a mean shift. Each accepted split divides its window into two
//	halves that are then searched independently — the other side is never
//	re-examined. Candidate splits are scored with the CUSUM statistic.
//
// Algorithm Outline:
//  1. Push the whole series window [0, n-1] onto a work stack.
//  2. Pop a window [start, end]; windows of fewer than two observations
//     hold no change point and are discarded.
//  3. Score every candidate c in [start, end) with the CUSUM statistic:
//     n  = end - start + 1
//     wL = sqrt((end-c) / (n·(c-start+1)))
//     wR = sqrt((c-start+1) / (n·(end-c)))
//     stat = |wL·sum(X[start..c]) - wR·sum(X[c+1..end])|
//     The weights normalize for unequal half sizes, so scores are
//     comparable across candidate positions.
//  4. If the best score exceeds the threshold, record the candidate and
//     push [start, c] and [c+1, end]; otherwise the window is done.
//  5. Sort all recorded change points ascending before returning.
//
// The classic formulation is recursive; this implementation drives the
// same search from an explicit work stack, so call-stack depth stays
// constant no matter how many change points the series holds.
//
// Complexity:
//
//	Time   = O(n²) per level, O(log n) levels when splits balance,
//	         degrading to O(n²) total on adversarial inputs
//	Memory = O(n) (prefix sums + work stack)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/timeseg/binseg"
//
//	det := binseg.New(1.0)                          // CUSUM threshold
//	points, err := det.FitPredict(series.New(data)) // sorted change points
//
// The threshold is a fixed hyperparameter with no default and no
// auto-tuning: splits whose best CUSUM score does not exceed it are
// rejected.
package binseg
