package plane

import "github.com/sirupsen/logrus"

// Ordering selects how AngularOrder sorts points around the pivot.
type Ordering int

const (
	// OrderUnsignedAngle keys each point by the unsigned angle between it and
	// the upward direction from the pivot, measured with arccos, then by
	// distance. This is the default.
	OrderUnsignedAngle Ordering = iota
	// OrderSignedAngle keys each point by its clockwise angle from the upward
	// direction, measured with atan2 over the full circle, then by distance.
	// The last run of points collinear with the pivot is reversed so the
	// closing edge does not double back over them.
	OrderSignedAngle
)

func (o Ordering) String() string {
	switch o {
	case OrderUnsignedAngle:
		return "unsigned"
	case OrderSignedAngle:
		return "signed"
	}
	return "unknown"
}

// Option configures polygon construction and ordering.
type Option func(*options)

type options struct {
	ordering Ordering
	logger   *logrus.Entry
}

func defaultOptions() options {
	return options{
		ordering: OrderUnsignedAngle,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// log returns the configured logger, falling back to the package logger at
// call time so SetLogger takes effect for polygons built earlier.
func (o *options) log() *logrus.Entry {
	if o.logger != nil {
		return o.logger
	}
	return logrus.NewEntry(Logger())
}

func WithOrdering(ordering Ordering) Option {
	return func(o *options) {
		o.ordering = ordering
	}
}

// WithLogger overrides the package logger for a single polygon.
func WithLogger(entry *logrus.Entry) Option {
	return func(o *options) {
		o.logger = entry
	}
}
