package annotation

import "errors"

var (
	// ErrLengthTooSmall indicates the requested dense length does not cover
	// the maximum position referenced by the sparse input.
	ErrLengthTooSmall = errors.New("annotation: length must exceed the maximum referenced position")
	// ErrUnknownKind indicates a Sparse value of a shape this package does
	// not define.
	ErrUnknownKind = errors.New("annotation: unknown sparse annotation kind")
	// ErrPointOrder indicates points are not strictly increasing or contain
	// a negative position.
	ErrPointOrder = errors.New("annotation: points must be non-negative and strictly increasing")
	// ErrInvalidSegment indicates a segment with a non-positive label,
	// a negative start, or start after end.
	ErrInvalidSegment = errors.New("annotation: segment must have a positive label and start ≤ end")
	// ErrStartAfterFirstPoint indicates ChangePointsToSegments was called
	// with a start bound after the first change point.
	ErrStartAfterFirstPoint = errors.New("annotation: start must not exceed the first change point")
	// ErrEndBeforeLastPoint indicates ChangePointsToSegments was called
	// with an end bound at or before the last change point.
	ErrEndBeforeLastPoint = errors.New("annotation: end must exceed the last change point")
	// ErrEmptyDense indicates DenseToSparse received no labels.
	ErrEmptyDense = errors.New("annotation: dense labels must be non-empty")
)
