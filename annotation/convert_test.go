package annotation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timeseg/annotation"
)

// TestSparseToDense_PointsExact pins the exact 0/1 boundary encoding:
// points {2,5,7} over length 10.
func TestSparseToDense_PointsExact(t *testing.T) {
	dense, err := annotation.SparseToDense(annotation.Points{2, 5, 7}, 10)
	require.NoError(t, err)

	assert.Equal(t, annotation.Dense{0, 0, 1, 0, 0, 1, 0, 1, 0, 0}, dense)
}

// TestSparseToDense_PointsInferredLength verifies the default length is
// one past the last point.
func TestSparseToDense_PointsInferredLength(t *testing.T) {
	dense, err := annotation.SparseToDense(annotation.Points{2, 5, 7}, 0)
	require.NoError(t, err)

	assert.Len(t, dense, 8)
	assert.Equal(t, annotation.Dense{0, 0, 1, 0, 0, 1, 0, 1}, dense)
}

// TestSparseToDense_PointsLengthTooSmall verifies the range guard.
func TestSparseToDense_PointsLengthTooSmall(t *testing.T) {
	_, err := annotation.SparseToDense(annotation.Points{2, 5, 7}, 7)
	assert.ErrorIs(t, err, annotation.ErrLengthTooSmall, "length equal to max point must error")

	_, err = annotation.SparseToDense(annotation.Points{2, 5, 7}, 3)
	assert.ErrorIs(t, err, annotation.ErrLengthTooSmall)
}

// TestSparseToDense_PointsOrder verifies the Points invariant is enforced.
func TestSparseToDense_PointsOrder(t *testing.T) {
	_, err := annotation.SparseToDense(annotation.Points{5, 2}, 10)
	assert.ErrorIs(t, err, annotation.ErrPointOrder)

	_, err = annotation.SparseToDense(annotation.Points{-1, 2}, 10)
	assert.ErrorIs(t, err, annotation.ErrPointOrder)

	_, err = annotation.SparseToDense(annotation.Points{2, 2}, 10)
	assert.ErrorIs(t, err, annotation.ErrPointOrder, "duplicate points must error")
}

// TestSparseToDense_SegmentsExample pins the labeled-run example:
// {label, start, end} triples (1,0,3) (2,4,5) (1,6,9).
func TestSparseToDense_SegmentsExample(t *testing.T) {
	segs := annotation.Segments{
		{Label: 1, Start: 0, End: 3},
		{Label: 2, Start: 4, End: 5},
		{Label: 1, Start: 6, End: 9},
	}

	dense, err := annotation.SparseToDense(segs, 0)
	require.NoError(t, err)

	assert.Equal(t, annotation.Dense{1, 1, 1, 1, 2, 2, 1, 1, 1, 1}, dense)
}

// TestSparseToDense_SegmentsGaps verifies the Unlabeled sentinel for a
// leading prefix, an interior gap, and a trailing gap.
func TestSparseToDense_SegmentsGaps(t *testing.T) {
	segs := annotation.Segments{
		{Label: 3, Start: 2, End: 3},
		{Label: 1, Start: 6, End: 7},
	}

	dense, err := annotation.SparseToDense(segs, 10)
	require.NoError(t, err)

	assert.Equal(t, annotation.Dense{-1, -1, 3, 3, -1, -1, 1, 1, -1, -1}, dense)
}

// TestSparseToDense_SinglePositionSegment verifies a segment with
// start == end survives the mark/restore passes with its positive label.
func TestSparseToDense_SinglePositionSegment(t *testing.T) {
	segs := annotation.Segments{{Label: 2, Start: 1, End: 1}}

	dense, err := annotation.SparseToDense(segs, 3)
	require.NoError(t, err)

	assert.Equal(t, annotation.Dense{-1, 2, -1}, dense)
}

// TestSparseToDense_SegmentErrors covers the segment validation paths.
func TestSparseToDense_SegmentErrors(t *testing.T) {
	_, err := annotation.SparseToDense(annotation.Segments{{Label: 0, Start: 0, End: 1}}, 5)
	assert.ErrorIs(t, err, annotation.ErrInvalidSegment, "label below 1 must error")

	_, err = annotation.SparseToDense(annotation.Segments{{Label: 1, Start: 3, End: 1}}, 5)
	assert.ErrorIs(t, err, annotation.ErrInvalidSegment, "start after end must error")

	_, err = annotation.SparseToDense(annotation.Segments{{Label: 1, Start: 0, End: 6}}, 5)
	assert.ErrorIs(t, err, annotation.ErrLengthTooSmall)
}

// TestSparseToDense_SegmentStarts verifies the legacy start-only shape:
// each segment ends where the next begins, the last fills to length.
func TestSparseToDense_SegmentStarts(t *testing.T) {
	starts := annotation.SegmentStarts{
		{Label: 1, Start: 2},
		{Label: 2, Start: 4},
	}

	dense, err := annotation.SparseToDense(starts, 7)
	require.NoError(t, err)

	assert.Equal(t, annotation.Dense{-1, -1, 1, 1, 2, 2, 2}, dense)
}

// TestSparseToDense_UnknownKind rejects foreign Sparse implementations.
func TestSparseToDense_UnknownKind(t *testing.T) {
	_, err := annotation.SparseToDense(foreignSparse{}, 5)
	assert.ErrorIs(t, err, annotation.ErrUnknownKind)
}

type foreignSparse struct{}

func (foreignSparse) Kind() annotation.Kind { return annotation.Kind(99) }

// TestDenseToSparse_Points verifies point decoding: any zero present
// means 0/1 encoding and only the ones are returned.
func TestDenseToSparse_Points(t *testing.T) {
	sp, err := annotation.DenseToSparse(annotation.Dense{0, 0, 1, 0, 0, 1, 0, 1, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, annotation.Points{2, 5, 7}, sp)
}

// TestDenseToSparse_Segments verifies run decoding, including that the
// very first position opens the first run instead of closing one.
func TestDenseToSparse_Segments(t *testing.T) {
	sp, err := annotation.DenseToSparse(annotation.Dense{1, 1, 1, 1, 2, 2, 1, 1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, annotation.Segments{
		{Label: 1, Start: 0, End: 3},
		{Label: 2, Start: 4, End: 5},
		{Label: 1, Start: 6, End: 9},
	}, sp)
}

// TestDenseToSparse_DropsUnlabeledRuns verifies gap runs are not emitted.
func TestDenseToSparse_DropsUnlabeledRuns(t *testing.T) {
	sp, err := annotation.DenseToSparse(annotation.Dense{-1, -1, 3, 3, -1, 1})
	require.NoError(t, err)

	assert.Equal(t, annotation.Segments{
		{Label: 3, Start: 2, End: 3},
		{Label: 1, Start: 5, End: 5},
	}, sp)
}

// TestDenseToSparse_Empty rejects empty input.
func TestDenseToSparse_Empty(t *testing.T) {
	_, err := annotation.DenseToSparse(annotation.Dense{})
	assert.ErrorIs(t, err, annotation.ErrEmptyDense)
}

// TestRoundTrip_Points verifies dense→sparse inverts sparse→dense for
// point annotations at a known length.
func TestRoundTrip_Points(t *testing.T) {
	original := annotation.Points{0, 3, 4, 9}

	dense, err := annotation.SparseToDense(original, 12)
	require.NoError(t, err)
	back, err := annotation.DenseToSparse(dense)
	require.NoError(t, err)

	assert.Equal(t, original, back)
}

// TestRoundTrip_Segments verifies a contiguous full partition survives
// the dense round trip with identical label/start/end triples.
func TestRoundTrip_Segments(t *testing.T) {
	original := annotation.Segments{
		{Label: 2, Start: 0, End: 4},
		{Label: 1, Start: 5, End: 5},
		{Label: 3, Start: 6, End: 8},
	}

	dense, err := annotation.SparseToDense(original, 0)
	require.NoError(t, err)
	back, err := annotation.DenseToSparse(dense)
	require.NoError(t, err)

	assert.Equal(t, original, back)
}

// TestRoundTrip_PointsRandom exercises the round trip across random
// strictly increasing point sets.
func TestRoundTrip_PointsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		length := 5 + rng.Intn(60)
		points := annotation.Points{}
		for pos := 0; pos < length; pos++ {
			if rng.Float64() < 0.2 {
				points = append(points, pos)
			}
		}

		dense, err := annotation.SparseToDense(points, length)
		require.NoError(t, err)
		back, err := annotation.DenseToSparse(dense)
		require.NoError(t, err)

		assert.Equal(t, points, back, "trial %d length %d", trial, length)
	}
}

// TestChangePointsToSegments_Example pins the interval example:
// points {1,2,5} over [0,7) with an unclassified leading region.
func TestChangePointsToSegments_Example(t *testing.T) {
	segs, err := annotation.ChangePointsToSegments(annotation.Points{1, 2, 5}, 0, 7)
	require.NoError(t, err)

	assert.Equal(t, annotation.Segments{
		{Label: -1, Start: 0, End: 0},
		{Label: 1, Start: 1, End: 1},
		{Label: 2, Start: 2, End: 4},
		{Label: 3, Start: 5, End: 6},
	}, segs)
}

// TestChangePointsToSegments_StartAtFirstPoint verifies no unclassified
// region is emitted when start coincides with the first change point.
func TestChangePointsToSegments_StartAtFirstPoint(t *testing.T) {
	segs, err := annotation.ChangePointsToSegments(annotation.Points{1, 2, 5}, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, annotation.Segments{
		{Label: 1, Start: 1, End: 1},
		{Label: 2, Start: 2, End: 4},
		{Label: 3, Start: 5, End: 6},
	}, segs)
}

// TestChangePointsToSegments_NoPoints verifies the degenerate case: one
// segment spanning the whole region.
func TestChangePointsToSegments_NoPoints(t *testing.T) {
	segs, err := annotation.ChangePointsToSegments(annotation.Points{}, 0, 4)
	require.NoError(t, err)

	assert.Equal(t, annotation.Segments{{Label: 1, Start: 0, End: 3}}, segs)
}

// TestChangePointsToSegments_Bounds covers both bound guards.
func TestChangePointsToSegments_Bounds(t *testing.T) {
	_, err := annotation.ChangePointsToSegments(annotation.Points{1, 5}, 2, 7)
	assert.ErrorIs(t, err, annotation.ErrStartAfterFirstPoint)

	_, err = annotation.ChangePointsToSegments(annotation.Points{1, 5}, 0, 5)
	assert.ErrorIs(t, err, annotation.ErrEndBeforeLastPoint)
}

// TestSegmentsToChangePoints verifies boundary extraction drops the
// implicit first boundary at position 0 and reports gap boundaries.
func TestSegmentsToChangePoints(t *testing.T) {
	segs := annotation.Segments{
		{Label: 1, Start: 0, End: 3},
		{Label: 2, Start: 4, End: 5},
		{Label: 1, Start: 6, End: 9},
	}

	points, err := annotation.SegmentsToChangePoints(segs)
	require.NoError(t, err)
	assert.Equal(t, annotation.Points{4, 6}, points)

	gappy := annotation.Segments{
		{Label: 1, Start: 0, End: 2},
		{Label: 2, Start: 5, End: 7},
	}
	points, err = annotation.SegmentsToChangePoints(gappy)
	require.NoError(t, err)
	assert.Equal(t, annotation.Points{3, 5}, points, "gap edges are boundaries too")
}

// TestSegmentsToChangePoints_Empty verifies an empty segmentation yields
// no change points.
func TestSegmentsToChangePoints_Empty(t *testing.T) {
	points, err := annotation.SegmentsToChangePoints(annotation.Segments{})
	require.NoError(t, err)
	assert.Empty(t, points)
}

// TestConvert_NoArgumentMutation verifies inputs are never written to.
func TestConvert_NoArgumentMutation(t *testing.T) {
	points := annotation.Points{2, 5}
	_, err := annotation.SparseToDense(points, 10)
	require.NoError(t, err)
	assert.Equal(t, annotation.Points{2, 5}, points)

	dense := annotation.Dense{1, 1, 2}
	_, err = annotation.DenseToSparse(dense)
	require.NoError(t, err)
	assert.Equal(t, annotation.Dense{1, 1, 2}, dense)
}
