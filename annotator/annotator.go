package annotator

import (
	"github.com/katalvlaran/timeseg/annotation"
	"github.com/katalvlaran/timeseg/series"
)

// Algorithm is the base capability every annotation algorithm provides.
// Concrete algorithms additionally implement exactly one of
// PointAlgorithm or SegmentAlgorithm, which fixes their native sparse
// output shape.
type Algorithm interface {
	Task() Task
	LearningType() LearningType
	Fit(x *series.Series) error
}

// PointAlgorithm is the capability of algorithms whose native output is
// sparse points: change point and anomaly detectors. Predict reports
// points as the series' index labels.
type PointAlgorithm interface {
	Algorithm
	Predict(x *series.Series) (annotation.Points, error)
}

// SegmentAlgorithm is the capability of algorithms whose native output is
// labeled segments: segmentation tasks. Predict reports positional
// segments, one coordinate per series offset.
type SegmentAlgorithm interface {
	Algorithm
	Predict(x *series.Series) (annotation.Segments, error)
}

// Model wraps an annotation algorithm in the shared estimator lifecycle.
// Exactly one of point/segment is set, chosen at construction.
type Model struct {
	alg     Algorithm
	point   PointAlgorithm
	segment SegmentAlgorithm

	fitted   bool
	retained *series.Series
}

// New validates the algorithm's task, learning type, and capability, and
// wraps it in a Model. Combinations that cannot work — an unknown task, a
// point-native algorithm declaring the segmentation task, a
// segment-native algorithm declaring a point task — are rejected here so
// they cannot surface later as call-time surprises.
func New(alg Algorithm) (*Model, error) {
	if alg == nil {
		return nil, ErrNilAlgorithm
	}
	if err := CheckTask(alg.Task()); err != nil {
		return nil, err
	}
	if err := CheckLearningType(alg.LearningType()); err != nil {
		return nil, err
	}

	m := &Model{alg: alg}
	switch a := alg.(type) {
	case PointAlgorithm:
		if alg.Task() == TaskSegmentation {
			return nil, ErrTaskCapabilityMismatch
		}
		m.point = a
	case SegmentAlgorithm:
		if alg.Task() != TaskSegmentation {
			return nil, ErrTaskCapabilityMismatch
		}
		m.segment = a
	default:
		return nil, ErrUnsupportedAlgorithm
	}

	return m, nil
}

// Task reports the wrapped algorithm's task.
func (m *Model) Task() Task { return m.alg.Task() }

// LearningType reports the wrapped algorithm's learning type.
func (m *Model) LearningType() LearningType { return m.alg.LearningType() }

// IsFitted reports whether Fit has completed successfully.
func (m *Model) IsFitted() bool { return m.fitted }

// Fit validates x, retains a copy for later updates, fits the wrapped
// algorithm, and flips the model to the fitted state. The fitted flag is
// set last so a failed fit leaves the model unfitted.
func (m *Model) Fit(x *series.Series) error {
	if err := series.Check(x); err != nil {
		return err
	}

	m.retained = x.Copy()
	if err := m.alg.Fit(x); err != nil {
		return err
	}
	m.fitted = true

	return nil
}

// Predict returns annotations for x in the algorithm's native sparse
// shape: Points for point tasks, Segments for segmentation.
func (m *Model) Predict(x *series.Series) (annotation.Sparse, error) {
	if err := m.checkReady(x); err != nil {
		return nil, err
	}
	if m.point != nil {
		return m.point.Predict(x)
	}

	return m.segment.Predict(x)
}

// PredictPoints returns annotations for x as sparse points. Point tasks
// answer natively; segmentation answers with its segment boundaries.
func (m *Model) PredictPoints(x *series.Series) (annotation.Points, error) {
	if err := m.checkReady(x); err != nil {
		return nil, err
	}
	if m.point != nil {
		return m.point.Predict(x)
	}

	segs, err := m.segment.Predict(x)
	if err != nil {
		return nil, err
	}

	return annotation.SegmentsToChangePoints(segs)
}

// PredictSegments returns annotations for x as labeled segments.
// Segmentation answers natively; change point detection converts its
// points into the implied interval partition of [0, x.Len()). Anomaly
// detection has no segment reading — isolated outliers do not bound
// segments — so requesting one is a task mismatch.
func (m *Model) PredictSegments(x *series.Series) (annotation.Segments, error) {
	if err := m.checkReady(x); err != nil {
		return nil, err
	}
	if m.segment != nil {
		return m.segment.Predict(x)
	}
	if m.alg.Task() == TaskAnomalyDetection {
		return nil, ErrTaskMismatch
	}

	offsets, err := m.predictOffsets(x)
	if err != nil {
		return nil, err
	}

	return annotation.ChangePointsToSegments(offsets, 0, x.Len())
}

// PredictDense returns annotations for x as dense labels, one per series
// position: 0/1 for point tasks, segment labels for segmentation.
func (m *Model) PredictDense(x *series.Series) (annotation.Dense, error) {
	if err := m.checkReady(x); err != nil {
		return nil, err
	}
	if m.segment != nil {
		segs, err := m.segment.Predict(x)
		if err != nil {
			return nil, err
		}

		return annotation.SparseToDense(segs, x.Len())
	}

	offsets, err := m.predictOffsets(x)
	if err != nil {
		return nil, err
	}

	return annotation.SparseToDense(offsets, x.Len())
}

// FitPredict fits to x and immediately predicts on it, returning the
// native sparse shape.
func (m *Model) FitPredict(x *series.Series) (annotation.Sparse, error) {
	if err := m.Fit(x); err != nil {
		return nil, err
	}

	return m.Predict(x)
}

// Update merges new observations into the retained history — index-label
// union, new data winning on collision — and re-fits the wrapped
// algorithm on the combined series. Requires a prior Fit.
func (m *Model) Update(x *series.Series) error {
	if !m.fitted {
		return ErrNotFitted
	}
	if err := series.Check(x); err != nil {
		return err
	}

	m.retained = x.CombineFirst(m.retained)

	return m.alg.Fit(m.retained)
}

// UpdatePredict updates the model with x and returns annotations for x.
func (m *Model) UpdatePredict(x *series.Series) (annotation.Sparse, error) {
	if err := m.Update(x); err != nil {
		return nil, err
	}

	return m.Predict(x)
}

// checkReady is the shared predict-time guard: fitted state first, then
// input validation.
func (m *Model) checkReady(x *series.Series) error {
	if !m.fitted {
		return ErrNotFitted
	}

	return series.Check(x)
}

// predictOffsets runs the native point prediction and translates index
// labels back to series offsets for the positional converters.
func (m *Model) predictOffsets(x *series.Series) (annotation.Points, error) {
	labels, err := m.point.Predict(x)
	if err != nil {
		return nil, err
	}

	offsets := make(annotation.Points, len(labels))
	for i, label := range labels {
		pos, ok := x.Position(label)
		if !ok {
			return nil, ErrUnknownIndexLabel
		}
		offsets[i] = pos
	}

	return offsets, nil
}
