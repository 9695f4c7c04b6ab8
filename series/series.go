package series

import (
	"errors"
	"sort"

	"github.com/montanaflynn/stats"
)

var (
	// ErrNilSeries indicates a nil *Series was passed where a value is required.
	ErrNilSeries = errors.New("series: series must be non-nil")
	// ErrEmptySeries indicates the series holds no observations.
	ErrEmptySeries = errors.New("series: series must hold at least one observation")
	// ErrLengthMismatch indicates index and values differ in length.
	ErrLengthMismatch = errors.New("series: index and values must have the same length")
	// ErrIndexOrder indicates the index is not strictly increasing.
	ErrIndexOrder = errors.New("series: index must be strictly increasing")
)

// Series is an ordered, uniquely indexed sequence of float64 observations.
// Index is strictly increasing and len(Index) == len(Values); both are
// enforced by Check, which every timeseg entry point calls on its input.
type Series struct {
	Index  []int
	Values []float64
	Name   string
}

// New creates a Series over values with the default index 0..len(values)-1.
func New(values []float64) *Series {
	index := make([]int, len(values))
	for i := range index {
		index[i] = i
	}

	return &Series{Index: index, Values: values}
}

// NewWithIndex creates a Series with explicit index labels.
// Returns ErrLengthMismatch or ErrIndexOrder on malformed input.
func NewWithIndex(index []int, values []float64) (*Series, error) {
	s := &Series{Index: index, Values: values}
	if len(index) != len(values) {
		return nil, ErrLengthMismatch
	}
	if err := Check(s); err != nil {
		return nil, err
	}

	return s, nil
}

// Check validates a Series: non-nil, non-empty, index/values of equal
// length, index strictly increasing. All annotators run their inputs
// through Check before touching the data.
func Check(s *Series) error {
	if s == nil {
		return ErrNilSeries
	}
	if len(s.Index) != len(s.Values) {
		return ErrLengthMismatch
	}
	if len(s.Values) == 0 {
		return ErrEmptySeries
	}
	for i := 1; i < len(s.Index); i++ {
		if s.Index[i] <= s.Index[i-1] {
			return ErrIndexOrder
		}
	}

	return nil
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Label returns the index label at slice offset pos.
// pos must be in [0, Len()); out-of-range access panics like a slice would.
func (s *Series) Label(pos int) int {
	return s.Index[pos]
}

// Position returns the slice offset of the given index label and whether
// the label exists. Runs a binary search over the strictly increasing index.
func (s *Series) Position(label int) (int, bool) {
	pos := sort.SearchInts(s.Index, label)
	if pos < len(s.Index) && s.Index[pos] == label {
		return pos, true
	}

	return 0, false
}

// Copy returns a deep copy of the series.
func (s *Series) Copy() *Series {
	index := make([]int, len(s.Index))
	copy(index, s.Index)
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{Index: index, Values: values, Name: s.Name}
}

// Slice returns a copy of the series restricted to offsets [start, end).
// Bounds are clamped to the valid range; an inverted range yields an empty
// series.
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Index: []int{}, Values: []float64{}, Name: s.Name}
	}

	index := make([]int, end-start)
	copy(index, s.Index[start:end])
	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Series{Index: index, Values: values, Name: s.Name}
}

// CombineFirst merges s with other by index label and returns a fresh
// series: labels present in s keep s's value, labels only in other fill
// the gaps. The result index is the sorted union of both indexes.
//
// This mirrors the update bookkeeping of the annotator lifecycle, where
// newly observed data takes precedence over retained history.
func (s *Series) CombineFirst(other *Series) *Series {
	merged := make(map[int]float64, len(s.Index)+len(other.Index))
	for i, label := range other.Index {
		merged[label] = other.Values[i]
	}
	for i, label := range s.Index {
		merged[label] = s.Values[i]
	}

	index := make([]int, 0, len(merged))
	for label := range merged {
		index = append(index, label)
	}
	sort.Ints(index)

	values := make([]float64, len(index))
	for i, label := range index {
		values[i] = merged[label]
	}

	return &Series{Index: index, Values: values, Name: s.Name}
}

// Summary holds descriptive statistics of a series.
type Summary struct {
	Len    int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Median float64
}

// Describe computes summary statistics over the series values.
func (s *Series) Describe() (Summary, error) {
	data := stats.Float64Data(s.Values)

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, err
	}
	std, err := data.StandardDeviation()
	if err != nil {
		return Summary{}, err
	}
	minV, err := data.Min()
	if err != nil {
		return Summary{}, err
	}
	maxV, err := data.Max()
	if err != nil {
		return Summary{}, err
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Len:    len(s.Values),
		Mean:   mean,
		Std:    std,
		Min:    minV,
		Max:    maxV,
		Median: median,
	}, nil
}
