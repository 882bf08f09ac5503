package platform

import "errors"

var (
	// ErrUnexpectedShape indicates a response decoded without error but lacks
	// a field the operation requires.
	ErrUnexpectedShape = errors.New("unexpected response shape")

	// ErrInvalidVideoID indicates an outline video id is not an integer.
	ErrInvalidVideoID = errors.New("invalid video id")

	// ErrMalformedProgress indicates the embedded progress document could not be decoded.
	ErrMalformedProgress = errors.New("malformed video progress payload")
)
