package annotation

// Unlabeled is the dense label for positions outside any known segment.
// It only ever appears in segment-shaped output, never in point output.
const Unlabeled = -1

// Kind identifies the concrete shape behind a Sparse annotation.
type Kind int

const (
	// KindPoints marks a Points annotation: event positions.
	KindPoints Kind = iota
	// KindSegments marks a Segments annotation: labeled runs with
	// explicit inclusive start and end positions.
	KindSegments
	// KindSegmentStarts marks the legacy start-only segment shape.
	KindSegmentStarts
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoints:
		return "points"
	case KindSegments:
		return "segments"
	case KindSegmentStarts:
		return "segment-starts"
	default:
		return "unknown"
	}
}

// Sparse is the closed union of sparse annotation shapes. Conversion
// functions switch on the concrete type; implementations outside this
// package are rejected with ErrUnknownKind.
type Sparse interface {
	Kind() Kind
}

// Points is an ordered list of 0-based event positions (change points or
// anomalies). Invariant: strictly increasing, non-negative.
type Points []int

// Kind reports KindPoints.
func (Points) Kind() Kind { return KindPoints }

// Segment is one labeled run over [Start, End], bounds inclusive.
// Label must be a positive integer, except that the dense→sparse
// direction may emit Label = Unlabeled for gap runs it reconstructs.
type Segment struct {
	Label int
	Start int
	End   int
}

// Segments is an ordered list of labeled runs. A full partition of
// [0, L) has contiguous, non-overlapping segments with
// End[i]+1 == Start[i+1].
type Segments []Segment

// Kind reports KindSegments.
func (Segments) Kind() Kind { return KindSegments }

// SegmentStart is one record of the legacy start-only segment shape.
type SegmentStart struct {
	Label int
	Start int
}

// SegmentStarts is the legacy segment shape: each segment implicitly ends
// where the next one begins, and the last is filled to the dense length.
// Invariant: starts strictly increasing, labels positive.
type SegmentStarts []SegmentStart

// Kind reports KindSegmentStarts.
func (SegmentStarts) Kind() Kind { return KindSegmentStarts }

// Dense is the per-position representation: one integer label for every
// position of the annotated sequence.
type Dense []int
