package instance

import "errors"

var (
	// ErrBadHeader indicates that the leading city count is missing, not an
	// integer, negative or too large.
	ErrBadHeader = errors.New("instance: bad header")

	// ErrMissingData indicates that the stream ended before N×N values were read.
	ErrMissingData = errors.New("instance: missing data")

	// ErrBadValue indicates a token that does not parse as a real number.
	ErrBadValue = errors.New("instance: bad value")

	// ErrNegativeDistance indicates a distance below zero.
	ErrNegativeDistance = errors.New("instance: negative distance")

	// ErrNonFinite indicates a NaN or ±Inf distance.
	ErrNonFinite = errors.New("instance: non-finite distance")

	// ErrTrailingData indicates tokens after the last matrix value.
	ErrTrailingData = errors.New("instance: trailing data")

	// ErrBadPoints indicates invalid generator arguments.
	ErrBadPoints = errors.New("instance: bad generator arguments")
)
