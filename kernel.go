package pointkernel

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/hupe1980/pointkernel/locator"
)

// Kernel computes interpolation weights at a query location from a set of
// nearby sample points.
//
// A driver typically calls ComputeBasis and then ComputeWeights for each
// query point, and blends the attribute values of the basis points using the
// weights. The two calls are independent: a caller may supply its own basis
// to ComputeWeights.
//
// Both methods reuse the capacity of the slice they are given: the result is
// written into buf[:0] (grown if needed) and returned. Passing nil allocates.
// The length of the returned slice is the number of basis points or weights.
//
// Kernels keep no per-query state. Concurrent queries on one kernel are safe
// as long as its configuration is not changed at the same time and each
// goroutine uses its own buffers.
type Kernel interface {
	// ComputeBasis returns the ids of the points that contribute to the
	// interpolated value at x. An empty result means no interpolation is
	// possible at x (the dataset is empty).
	ComputeBasis(x r3.Vector, basis []uint32) []uint32

	// ComputeWeights returns one weight per basis id, in basis order. The
	// weights sum to 1. An empty result means the basis was empty or
	// referenced a point missing from the dataset.
	ComputeWeights(x r3.Vector, basis []uint32, weights []float64) []float64
}

// Compile-time checks to ensure the kernels satisfy Kernel.
var (
	_ Kernel = (*Shepard)(nil)
	_ Kernel = (*Gaussian)(nil)
	_ Kernel = (*Linear)(nil)
	_ Kernel = (*Voronoi)(nil)
)

// kernelBase holds the collaborators and the configuration shared by every
// kernel variant: basis gathering, distance evaluation and the coincident
// point shortcut.
type kernelBase struct {
	locator locator.Locator
	dataset locator.Dataset

	radius               float64
	footprint            Footprint
	numberOfPoints       int
	coincidenceTolerance float64

	logger  *Logger
	metrics MetricsCollector
}

func newKernelBase(name string, loc locator.Locator, ds locator.Dataset, o *options) (kernelBase, error) {
	if loc == nil {
		return kernelBase{}, ErrNilLocator
	}
	if ds == nil {
		return kernelBase{}, ErrNilDataset
	}

	logger := o.logger
	if logger == nil {
		logger = NoopLogger()
	}
	metrics := o.metricsCollector
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	kb := kernelBase{
		locator: loc,
		dataset: ds,
		logger:  logger.WithKernel(name),
		metrics: metrics,
	}
	kb.SetRadius(o.radius)
	kb.SetFootprint(o.footprint)
	kb.SetNumberOfPoints(o.numberOfPoints)
	kb.SetCoincidenceTolerance(o.coincidenceTolerance)

	return kb, nil
}

// SetRadius sets the kernel radius, clamped to [0, MaxRadius].
func (k *kernelBase) SetRadius(radius float64) {
	k.radius = k.clamp("radius", radius, 0, MaxRadius)
}

// Radius returns the kernel radius.
func (k *kernelBase) Radius() float64 { return k.radius }

// SetFootprint selects how the basis is gathered. Unknown values select
// FootprintRadius.
func (k *kernelBase) SetFootprint(f Footprint) {
	if f != FootprintNClosest {
		f = FootprintRadius
	}
	k.footprint = f
}

// Footprint returns the basis footprint.
func (k *kernelBase) Footprint() Footprint { return k.footprint }

// SetNumberOfPoints sets the basis size of the N-closest footprint, clamped
// to [1, math.MaxInt32].
func (k *kernelBase) SetNumberOfPoints(n int) {
	k.numberOfPoints = int(k.clamp("numberOfPoints", float64(n), 1, math.MaxInt32))
}

// NumberOfPoints returns the basis size of the N-closest footprint.
func (k *kernelBase) NumberOfPoints() int { return k.numberOfPoints }

// SetCoincidenceTolerance sets the distance at or below which the query is
// treated as lying on a basis point, clamped to [0, MaxRadius].
func (k *kernelBase) SetCoincidenceTolerance(tol float64) {
	k.coincidenceTolerance = k.clamp("coincidenceTolerance", tol, 0, MaxRadius)
}

// CoincidenceTolerance returns the coincident point tolerance.
func (k *kernelBase) CoincidenceTolerance() float64 { return k.coincidenceTolerance }

// Validate checks that every basis id exists in the dataset. It returns an
// *ErrUnknownPoint for the first id that does not.
func (k *kernelBase) Validate(basis []uint32) error {
	for _, id := range basis {
		if _, ok := k.dataset.Point(id); !ok {
			return &ErrUnknownPoint{ID: id, NumberOfPoints: k.dataset.NumberOfPoints()}
		}
	}
	return nil
}

// clamp restricts v to [lo, hi]. NaN maps to lo.
func (k *kernelBase) clamp(param string, v, lo, hi float64) float64 {
	applied := v
	switch {
	case math.IsNaN(v) || v < lo:
		applied = lo
	case v > hi:
		applied = hi
	}
	if applied != v {
		k.logger.LogClamp(param, v, applied)
	}
	return applied
}

// computeBasis gathers the basis according to the footprint.
func (k *kernelBase) computeBasis(x r3.Vector, basis []uint32) []uint32 {
	basis = basis[:0]

	if k.footprint == FootprintNClosest {
		basis = k.locator.FindClosestNPoints(k.numberOfPoints, x, basis)
		if len(basis) == 0 {
			k.logger.LogEmptyNeighborhood(x)
		}
		k.metrics.RecordBasis(len(basis), false)
		return basis
	}

	basis = k.locator.FindPointsWithinRadius(k.radius, x, basis)
	if len(basis) > 0 {
		k.metrics.RecordBasis(len(basis), false)
		return basis
	}

	return k.closestBasis(x, basis, true)
}

// closestBasis sets the basis to the single closest point, or leaves it
// empty when the locator holds no points.
func (k *kernelBase) closestBasis(x r3.Vector, basis []uint32, fallback bool) []uint32 {
	basis = basis[:0]

	id, ok := k.locator.FindClosestPoint(x)
	if !ok {
		k.logger.LogEmptyNeighborhood(x)
		k.metrics.RecordBasis(0, false)
		return basis
	}

	if fallback {
		k.logger.LogFallback(x, k.radius, id)
	}
	k.metrics.RecordBasis(1, fallback)

	return append(basis, id)
}

// squaredDistances resizes weights to len(basis) and fills it with the
// squared distance from x to each basis point. It returns an empty slice if
// the basis is empty or references a point missing from the dataset.
func (k *kernelBase) squaredDistances(x r3.Vector, basis []uint32, weights []float64) []float64 {
	weights = resize(weights, len(basis))
	for i, id := range basis {
		p, ok := k.dataset.Point(id)
		if !ok {
			k.logger.LogUnknownPoint(id, k.dataset.NumberOfPoints())
			return weights[:0]
		}
		weights[i] = x.Sub(p).Norm2()
	}
	return weights
}

// rescaledDistances overwrites d2 with the squared distances from x to the
// basis points divided by the square of the largest coordinate difference.
// Ratios between the entries are kept, and none overflows as long as the
// coordinate differences are finite. The basis must already be validated.
func (k *kernelBase) rescaledDistances(x r3.Vector, basis []uint32, d2 []float64) []float64 {
	var scale float64
	for _, id := range basis {
		p, _ := k.dataset.Point(id)
		d := x.Sub(p).Abs()
		scale = max(scale, d.X, d.Y, d.Z)
	}
	if scale == 0 || math.IsInf(scale, 1) {
		return d2
	}

	for i, id := range basis {
		p, _ := k.dataset.Point(id)
		d := x.Sub(p)
		d2[i] = r3.Vector{X: d.X / scale, Y: d.Y / scale, Z: d.Z / scale}.Norm2()
	}
	return d2
}

// coincident returns the index of the first squared distance within the
// coincidence tolerance, or -1.
func (k *kernelBase) coincident(d2 []float64) int {
	tol2 := k.coincidenceTolerance * k.coincidenceTolerance
	for i, d := range d2 {
		if d <= tol2 {
			return i
		}
	}
	return -1
}

// done records a ComputeWeights result and returns it.
func (k *kernelBase) done(weights []float64, coincident bool) []float64 {
	k.metrics.RecordWeights(len(weights), coincident)
	return weights
}

// selectOne gives all weight to the basis point at idx.
func selectOne(weights []float64, idx int) []float64 {
	for i := range weights {
		weights[i] = 0
	}
	weights[idx] = 1
	return weights
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}
