package pointkernel

import (
	"log/slog"
	"math"
)

const (
	// DefaultRadius is the kernel radius used when none is configured.
	DefaultRadius = 1.0

	// MaxRadius is the largest accepted radius (the float32 range, so a
	// radius always survives single-precision locators).
	MaxRadius = math.MaxFloat32

	// DefaultPowerParameter is the Shepard exponent p used when none is configured.
	DefaultPowerParameter = 2.0

	// MinPowerParameter and MaxPowerParameter bound the Shepard exponent.
	MinPowerParameter = 0.001
	MaxPowerParameter = 100.0

	// DefaultSharpness is the Gaussian sharpness used when none is configured.
	DefaultSharpness = 2.0

	// MinSharpness and MaxSharpness bound the Gaussian sharpness.
	MinSharpness = 1.0
	MaxSharpness = 100.0

	// DefaultNumberOfPoints is the N-closest footprint size used when none is configured.
	DefaultNumberOfPoints = 8

	// DefaultCoincidenceTolerance is the distance at or below which a query
	// point is considered to lie on a basis point.
	DefaultCoincidenceTolerance = 1e-12
)

type options struct {
	radius               float64
	powerParameter       float64
	sharpness            float64
	footprint            Footprint
	numberOfPoints       int
	coincidenceTolerance float64
	logger               *Logger
	metricsCollector     MetricsCollector
}

func defaultOptions() options {
	return options{
		radius:               DefaultRadius,
		powerParameter:       DefaultPowerParameter,
		sharpness:            DefaultSharpness,
		footprint:            FootprintRadius,
		numberOfPoints:       DefaultNumberOfPoints,
		coincidenceTolerance: DefaultCoincidenceTolerance,
	}
}

// Option configures kernel construction.
//
// Options that do not apply to a kernel variant are ignored by it (for
// example WithPowerParameter on a Gaussian kernel). Numeric options go
// through the same clamping as the corresponding setters.
type Option func(*options)

// WithRadius sets the kernel radius. Points within this radius of the query
// form the basis; if none is found the closest point is used.
func WithRadius(radius float64) Option {
	return func(o *options) {
		o.radius = radius
	}
}

// WithPowerParameter sets the Shepard exponent p.
// Values other than 2 take a slower math.Pow path.
func WithPowerParameter(p float64) Option {
	return func(o *options) {
		o.powerParameter = p
	}
}

// WithSharpness sets the Gaussian sharpness. Larger values concentrate the
// weight on the closest points.
func WithSharpness(sharpness float64) Option {
	return func(o *options) {
		o.sharpness = sharpness
	}
}

// WithFootprint selects how the basis is gathered.
func WithFootprint(f Footprint) Option {
	return func(o *options) {
		o.footprint = f
	}
}

// WithNClosest selects the N-closest footprint with n basis points.
// Convenience wrapper for WithFootprint(FootprintNClosest) plus the size.
func WithNClosest(n int) Option {
	return func(o *options) {
		o.footprint = FootprintNClosest
		o.numberOfPoints = n
	}
}

// WithCoincidenceTolerance sets the distance at or below which the query is
// treated as lying on a basis point.
func WithCoincidenceTolerance(tol float64) Option {
	return func(o *options) {
		o.coincidenceTolerance = tol
	}
}

// WithLogger configures structured logging for kernel events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := pointkernel.NewJSONLogger(slog.LevelDebug)
//	k, _ := pointkernel.NewShepard(loc, ds, pointkernel.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for kernel queries.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &pointkernel.BasicMetricsCollector{}
//	k, _ := pointkernel.NewShepard(loc, ds, pointkernel.WithMetricsCollector(metrics))
//	// ... run queries ...
//	stats := metrics.GetStats()
//	fmt.Printf("Fallbacks: %d, Avg basis: %.1f\n", stats.FallbackCount, stats.AvgBasisSize)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}
