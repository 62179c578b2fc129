package raster

import "errors"

// Precondition failures reported by the pipeline. Every operation that
// returns one of these performs no partial work: the caller either gets a
// complete new raster or an error, never both. Callers match with
// errors.Is.
var (
	// ErrEmptyInput is returned when an operation that reduces a list of
	// rasters is called with no sources.
	ErrEmptyInput = errors.New("empty input")

	// ErrShapeMismatch is returned when sources of differing dimensions are
	// passed to an operation that requires a uniform shape.
	ErrShapeMismatch = errors.New("raster shape mismatch")

	// ErrInvalidParameter is returned for out-of-domain numeric parameters,
	// such as a negative brightness factor or non-positive zoom bounds.
	ErrInvalidParameter = errors.New("invalid parameter")
)
