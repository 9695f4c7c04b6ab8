package annotator

import "errors"

var (
	// ErrNilAlgorithm indicates New was called with a nil algorithm.
	ErrNilAlgorithm = errors.New("annotator: algorithm must be non-nil")
	// ErrUnknownTask indicates a task value outside the closed set.
	ErrUnknownTask = errors.New("annotator: unknown annotation task")
	// ErrUnknownLearningType indicates a learning type outside the closed set.
	ErrUnknownLearningType = errors.New("annotator: unknown learning type")
	// ErrUnsupportedAlgorithm indicates an algorithm implementing neither
	// the point nor the segment capability.
	ErrUnsupportedAlgorithm = errors.New("annotator: algorithm must implement the point or segment capability")
	// ErrTaskCapabilityMismatch indicates an algorithm whose declared task
	// disagrees with its native output capability, e.g. a segmentation
	// task emitting points.
	ErrTaskCapabilityMismatch = errors.New("annotator: declared task does not match the algorithm's native output shape")
	// ErrNotFitted indicates a predict-family call before Fit.
	ErrNotFitted = errors.New("annotator: model must be fitted before predicting")
	// ErrTaskMismatch indicates an output shape that is undefined for the
	// model's task, e.g. segments requested from an anomaly detector.
	ErrTaskMismatch = errors.New("annotator: requested output shape is not defined for this task")
	// ErrUnknownIndexLabel indicates a predicted label that is absent from
	// the predicted series' index.
	ErrUnknownIndexLabel = errors.New("annotator: predicted label missing from the series index")
)
