// Sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w as
// "<Method>: <detail>: <sentinel>".

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates a size parameter below the constructor minimum.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor passed to BuildPoints.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped sentinel with the constructor name.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// validateMin ensures got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewPoints, "parameter must be ≥ %d, got %d", min, got)
	}
	return nil
}
