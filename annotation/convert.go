package annotation

// SparseToDense converts a sparse annotation into per-position dense
// labels of the given length. A length ≤ 0 means "infer": one past the
// maximum position the sparse input references. An explicit length that
// does not cover that maximum yields ErrLengthTooSmall.
//
// Encoding per shape:
//   - Points:        0 everywhere, 1 at each event position.
//   - Segments:      each position inside a segment carries the segment's
//     label; positions outside every segment carry Unlabeled.
//   - SegmentStarts: each segment runs until the next start; the last one
//     is filled to the dense length; the prefix before the
//     first start carries Unlabeled.
//
// Sparse shapes defined outside this package are rejected with
// ErrUnknownKind.
func SparseToDense(sp Sparse, length int) (Dense, error) {
	switch v := sp.(type) {
	case Points:
		return pointsToDense(v, length)
	case Segments:
		return segmentsToDense(v, length)
	case SegmentStarts:
		return segmentStartsToDense(v, length)
	default:
		return nil, ErrUnknownKind
	}
}

// pointsToDense emits the 0/1 event encoding.
func pointsToDense(points Points, length int) (Dense, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		if length <= 0 {
			return Dense{}, nil
		}

		return make(Dense, length), nil
	}

	last := points[len(points)-1]
	if length <= 0 {
		length = last + 1
	} else if length <= last {
		return nil, ErrLengthTooSmall
	}

	dense := make(Dense, length)
	for _, p := range points {
		dense[p] = 1
	}

	return dense, nil
}

// segmentsToDense emits the labeled-run encoding via the two-pass scheme:
// mark each segment's start with +label and its end with -label, forward
// fill interiors from the most recent mark, restore every end position to
// its true positive label, then clamp leftover negatives to Unlabeled.
//
// Naive forward fill alone cannot encode where a segment ends without
// also corrupting that position during the fill; the negative end
// sentinel carries "this run closes here" through the fill pass, and the
// restore pass must run before the clamp — the order is load-bearing.
func segmentsToDense(segs Segments, length int) (Dense, error) {
	maxEnd := -1
	for _, seg := range segs {
		if seg.Label < 1 || seg.Start < 0 || seg.Start > seg.End {
			return nil, ErrInvalidSegment
		}
		if seg.End > maxEnd {
			maxEnd = seg.End
		}
	}
	if len(segs) == 0 {
		if length <= 0 {
			return Dense{}, nil
		}
		dense := make(Dense, length)
		for i := range dense {
			dense[i] = Unlabeled
		}

		return dense, nil
	}

	if length <= 0 {
		length = maxEnd + 1
	} else if length <= maxEnd {
		return nil, ErrLengthTooSmall
	}

	// Mark pass: 0 means "unset" — valid labels are ≥ 1, sentinels ≤ -1.
	dense := make(Dense, length)
	for _, seg := range segs {
		dense[seg.Start] = seg.Label
		dense[seg.End] = -seg.Label
	}

	// Forward-fill pass: a leading unlabeled prefix carries Unlabeled.
	current := Unlabeled
	for i, v := range dense {
		if v != 0 {
			current = v
			continue
		}
		dense[i] = current
	}

	// Restore pass: end positions back to their true positive labels.
	for _, seg := range segs {
		dense[seg.End] = seg.Label
	}

	// Clamp pass: any surviving negative is a gap between segments.
	for i, v := range dense {
		if v < 0 {
			dense[i] = Unlabeled
		}
	}

	return dense, nil
}

// segmentStartsToDense emits the legacy start-only encoding: each segment
// ends where the next begins, the last segment fills to the dense length.
func segmentStartsToDense(starts SegmentStarts, length int) (Dense, error) {
	for i, st := range starts {
		if st.Label < 1 || st.Start < 0 {
			return nil, ErrInvalidSegment
		}
		if i > 0 && st.Start <= starts[i-1].Start {
			return nil, ErrInvalidSegment
		}
	}
	if len(starts) == 0 {
		if length <= 0 {
			return Dense{}, nil
		}
		dense := make(Dense, length)
		for i := range dense {
			dense[i] = Unlabeled
		}

		return dense, nil
	}

	maxStart := starts[len(starts)-1].Start
	if length <= 0 {
		length = maxStart + 1
	} else if length <= maxStart {
		return nil, ErrLengthTooSmall
	}

	dense := make(Dense, length)
	for i := range dense {
		dense[i] = Unlabeled
	}
	for i, st := range starts {
		end := length
		if i+1 < len(starts) {
			end = starts[i+1].Start
		}
		for pos := st.Start; pos < end; pos++ {
			dense[pos] = st.Label
		}
	}

	return dense, nil
}

// DenseToSparse converts per-position labels back into a sparse
// annotation. The encoding is detected from the values:
//   - any 0 present → point encoding; the positions holding 1 are
//     returned as Points
//   - otherwise → segment encoding; each maximal run of a constant label
//     becomes one Segment, and runs labeled Unlabeled (gaps) are dropped
//
// Position 0 is never a boundary by itself: it opens the first run rather
// than closing a previous one. An empty input yields ErrEmptyDense.
func DenseToSparse(dense Dense) (Sparse, error) {
	if len(dense) == 0 {
		return nil, ErrEmptyDense
	}

	pointLike := false
	for _, v := range dense {
		if v == 0 {
			pointLike = true
			break
		}
	}

	if pointLike {
		points := Points{}
		for i, v := range dense {
			if v == 1 {
				points = append(points, i)
			}
		}

		return points, nil
	}

	segs := Segments{}
	runStart := 0
	for i := 1; i <= len(dense); i++ {
		if i < len(dense) && dense[i] == dense[runStart] {
			continue
		}
		if dense[runStart] != Unlabeled {
			segs = append(segs, Segment{
				Label: dense[runStart],
				Start: runStart,
				End:   i - 1,
			})
		}
		runStart = i
	}

	return segs, nil
}

// ChangePointsToSegments converts strictly increasing change points into
// a full interval segmentation of [start, end). Each half-open interval
// is materialized as a Segment with an inclusive End of one less than the
// next boundary.
//
// The region before the first change point is labeled Unlabeled unless
// start coincides with that change point; the regions after each change
// point are labeled 1, 2, 3, … in order. start after the first change
// point yields ErrStartAfterFirstPoint; end at or before the last change
// point yields ErrEndBeforeLastPoint.
func ChangePointsToSegments(points Points, start, end int) (Segments, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}

	if len(points) == 0 {
		if end <= start {
			return nil, ErrEndBeforeLastPoint
		}

		return Segments{{Label: 1, Start: start, End: end - 1}}, nil
	}

	first, last := points[0], points[len(points)-1]
	if start > first {
		return nil, ErrStartAfterFirstPoint
	}
	if end <= last {
		return nil, ErrEndBeforeLastPoint
	}

	breaks := make([]int, 0, len(points)+2)
	if start < first {
		breaks = append(breaks, start)
	}
	breaks = append(breaks, points...)
	breaks = append(breaks, end)

	segs := make(Segments, 0, len(breaks)-1)
	label := 0
	for i := 0; i+1 < len(breaks); i++ {
		seg := Segment{Start: breaks[i], End: breaks[i+1] - 1}
		if breaks[i] >= first {
			label++
			seg.Label = label
		} else {
			seg.Label = Unlabeled
		}
		segs = append(segs, seg)
	}

	return segs, nil
}

// SegmentsToChangePoints converts a segmentation back into change points:
// every position where the dense label changes, which is the start of
// every segment or gap except the implicit first one at position 0.
// Implemented by round-tripping through the dense representation and
// scanning for boundaries, so gaps between segments produce boundaries
// too.
func SegmentsToChangePoints(segs Segments) (Points, error) {
	if len(segs) == 0 {
		return Points{}, nil
	}

	dense, err := SparseToDense(segs, 0)
	if err != nil {
		return nil, err
	}

	points := Points{}
	for i := 1; i < len(dense); i++ {
		if dense[i] != dense[i-1] {
			points = append(points, i)
		}
	}

	return points, nil
}

// checkPoints enforces the Points invariant: non-negative, strictly
// increasing.
func checkPoints(points Points) error {
	for i, p := range points {
		if p < 0 {
			return ErrPointOrder
		}
		if i > 0 && p <= points[i-1] {
			return ErrPointOrder
		}
	}

	return nil
}
