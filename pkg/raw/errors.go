package raw

import "errors"

// The pipeline fails in one of two ways; both are fatal for the frame
// and neither is worth retrying, since the same inputs give the same
// failure. Out-of-range arithmetic is never an error, it is clipped.
var(
	// ErrConfiguration covers calibration that can't describe a real
	// sensor, e.g. a saturation level at or below the black level.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnsupportedCFA is a configuration error for any color filter
	// array that isn't RGGB.
	ErrUnsupportedCFA = errors.New("unsupported CFA pattern")

	// ErrPrecondition covers inputs that are the wrong shape, e.g. a
	// short linearization curve, or an odd sized mosaic.
	ErrPrecondition = errors.New("precondition violated")
)
