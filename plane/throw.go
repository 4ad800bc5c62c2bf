package plane

import "github.com/pkg/errors"

// Threading errors through every predicate and the sort comparators would add
// a lot of noise for a condition that can only come from bad input. Instead,
// we panic with a GeometryError, and the public API recovers to convert to an
// error.

// GeometryError marks a panic raised on purpose by this package. Any other
// panic, runtime errors included, is not one and passes through
// HandlePanicRecover untouched.
type GeometryError struct {
	error
}

func (e GeometryError) Unwrap() error {
	return e.error
}

// ErrInvalidPoint is the cause of every error produced by a NaN or infinite
// coordinate.
var ErrInvalidPoint = errors.New("invalid point")

// Panic with a GeometryError wrapping cause.
func throw(cause error, format string, args ...interface{}) {
	panic(GeometryError{errors.Wrapf(cause, format, args...)})
}

// HandlePanicRecover turns a recovered GeometryError into the error it
// carries, and re-panics with anything else.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError.error
		}
		panic(r)
	}
	return nil
}

func mustBeValid(p Point, what string) {
	if !p.IsValid() {
		throw(ErrInvalidPoint, "%s %v", what, p)
	}
}
