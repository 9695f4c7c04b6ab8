package annotator

// Task is the annotation task an algorithm solves.
type Task int

const (
	// TaskChangePointDetection finds positions where the statistical
	// properties of the series change significantly.
	TaskChangePointDetection Task = iota
	// TaskAnomalyDetection finds positions that differ significantly from
	// the normal statistical properties of the series.
	TaskAnomalyDetection
	// TaskSegmentation divides the series into discrete labeled chunks;
	// the same label may recur at disconnected regions.
	TaskSegmentation
)

// String returns the human-readable task name.
func (t Task) String() string {
	switch t {
	case TaskChangePointDetection:
		return "change_point_detection"
	case TaskAnomalyDetection:
		return "anomaly_detection"
	case TaskSegmentation:
		return "segmentation"
	default:
		return "unknown"
	}
}

// CheckTask validates a task value.
func CheckTask(t Task) error {
	switch t {
	case TaskChangePointDetection, TaskAnomalyDetection, TaskSegmentation:
		return nil
	default:
		return ErrUnknownTask
	}
}

// LearningType is how an algorithm learns from data.
type LearningType int

const (
	// LearningUnsupervised algorithms learn from unlabeled data.
	LearningUnsupervised LearningType = iota
	// LearningSupervised algorithms learn from labeled data.
	LearningSupervised
)

// String returns the human-readable learning type name.
func (lt LearningType) String() string {
	switch lt {
	case LearningUnsupervised:
		return "unsupervised"
	case LearningSupervised:
		return "supervised"
	default:
		return "unknown"
	}
}

// CheckLearningType validates a learning type value.
func CheckLearningType(lt LearningType) error {
	switch lt {
	case LearningUnsupervised, LearningSupervised:
		return nil
	default:
		return ErrUnknownLearningType
	}
}
