package binseg

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/timeseg/annotation"
	"github.com/katalvlaran/timeseg/annotator"
	"github.com/katalvlaran/timeseg/series"
)

var (
	// ErrNotFitted indicates Predict or Scores was called before Fit.
	ErrNotFitted = errors.New("binseg: detector must be fitted before use")

	// ErrChangePointOutOfWindow indicates the CUSUM statistic was requested
	// for a candidate outside its window's [start, end) range. This is an
	// internal contract violation, not a user-facing condition.
	ErrChangePointOutOfWindow = errors.New("binseg: change point must lie within [start, end)")
)

// Detector finds change points by binary segmentation. The zero value is
// not usable; construct with New. Fit performs no learning (the search
// runs entirely at predict time) but is required before Predict, matching
// the two-state unfitted→fitted lifecycle of every timeseg annotator.
type Detector struct {
	threshold float64
	fitted    bool
}

// New returns a Detector with the given CUSUM threshold. The threshold is
// required and has no default: a window whose best CUSUM score does not
// exceed it is not split further.
func New(threshold float64) *Detector {
	return &Detector{threshold: threshold}
}

// Threshold returns the configured CUSUM threshold.
func (d *Detector) Threshold() float64 { return d.threshold }

// Task reports change point detection.
func (d *Detector) Task() annotator.Task { return annotator.TaskChangePointDetection }

// LearningType reports unsupervised learning.
func (d *Detector) LearningType() annotator.LearningType { return annotator.LearningUnsupervised }

// Fit validates x and marks the detector fitted. No data is retained.
func (d *Detector) Fit(x *series.Series) error {
	if err := series.Check(x); err != nil {
		return err
	}
	d.fitted = true

	return nil
}

// Predict runs the binary segmentation search over x and returns the
// detected change points, ascending, as x's index labels. Requires a
// prior Fit.
func (d *Detector) Predict(x *series.Series) (annotation.Points, error) {
	if !d.fitted {
		return nil, ErrNotFitted
	}
	if err := series.Check(x); err != nil {
		return nil, err
	}

	offsets, err := findChangePoints(x.Values, d.threshold)
	if err != nil {
		return nil, err
	}

	points := make(annotation.Points, len(offsets))
	for i, pos := range offsets {
		points[i] = x.Label(pos)
	}

	return points, nil
}

// FitPredict fits to x and immediately predicts on it.
func (d *Detector) FitPredict(x *series.Series) (annotation.Points, error) {
	if err := d.Fit(x); err != nil {
		return nil, err
	}

	return d.Predict(x)
}

// Scores returns the CUSUM statistic of every candidate split of the
// whole series: element c scores a change point between positions c and
// c+1, so the result has x.Len()-1 entries. Requires a prior Fit.
func (d *Detector) Scores(x *series.Series) ([]float64, error) {
	if !d.fitted {
		return nil, ErrNotFitted
	}
	if err := series.Check(x); err != nil {
		return nil, err
	}

	n := x.Len()
	prefix := prefixSums(x.Values)
	scores := make([]float64, 0, n-1)
	for c := 0; c < n-1; c++ {
		stat, err := cusumStatistic(prefix, 0, n-1, c)
		if err != nil {
			return nil, err
		}
		scores = append(scores, stat)
	}

	return scores, nil
}

// window is one pending [start, end] (inclusive) search range.
type window struct {
	start, end int
}

// findChangePoints drives the binary segmentation search iteratively.
// Discovered positions go into the single accumulator owned here; the
// result is sorted ascending because left and right subwindows are
// processed in stack order, not series order.
func findChangePoints(values []float64, threshold float64) ([]int, error) {
	prefix := prefixSums(values)

	var found []int
	stack := []window{{0, len(values) - 1}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A window of fewer than two observations holds no change point.
		if w.end-w.start < 1 {
			continue
		}

		best, bestStat := -1, math.Inf(-1)
		for c := w.start; c < w.end; c++ {
			stat, err := cusumStatistic(prefix, w.start, w.end, c)
			if err != nil {
				return nil, err
			}
			if stat > bestStat {
				best, bestStat = c, stat
			}
		}

		if bestStat > threshold {
			found = append(found, best)
			stack = append(stack, window{w.start, best}, window{best + 1, w.end})
		}
	}

	sort.Ints(found)

	return found, nil
}

// cusumStatistic scores the candidate change point cp within the window
// [start, end] over prefix sums of the series. The weighted difference of
// the left and right sums is large when the mean level shifts sharply at
// cp. cp must lie in [start, end); anything else is a logic bug and
// yields ErrChangePointOutOfWindow.
func cusumStatistic(prefix []float64, start, end, cp int) (float64, error) {
	if cp < start || cp >= end {
		return 0, ErrChangePointOutOfWindow
	}

	n := float64(end - start + 1)
	wLeft := math.Sqrt(float64(end-cp) / (n * float64(cp-start+1)))
	wRight := math.Sqrt(float64(cp-start+1) / (n * float64(end-cp)))

	left := prefix[cp+1] - prefix[start]
	right := prefix[end+1] - prefix[cp+1]

	return math.Abs(wLeft*left - wRight*right), nil
}

// prefixSums returns sums[i] = values[0] + … + values[i-1], so any window
// sum is two lookups.
func prefixSums(values []float64) []float64 {
	sums := make([]float64, len(values)+1)
	for i, v := range values {
		sums[i+1] = sums[i] + v
	}

	return sums
}
