package pointkernel

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/pointkernel/locator"
)

// Gaussian is a kernel whose weights fall off as exp(-(s*r/R)^2), where r is
// the distance to the query, R the kernel radius and s the sharpness. The
// weights are normalized to sum to 1.
//
// It shares the coincident point shortcut of Shepard. A zero radius gives all
// weight to the closest basis point.
type Gaussian struct {
	kernelBase
	sharpness float64
}

// NewGaussian creates a Gaussian kernel that gathers its basis from loc and
// reads point coordinates from ds.
func NewGaussian(loc locator.Locator, ds locator.Dataset, opts ...Option) (*Gaussian, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	kb, err := newKernelBase("gaussian", loc, ds, &o)
	if err != nil {
		return nil, err
	}

	g := &Gaussian{kernelBase: kb}
	g.SetSharpness(o.sharpness)

	return g, nil
}

// SetSharpness sets the sharpness, clamped to [MinSharpness, MaxSharpness].
func (g *Gaussian) SetSharpness(sharpness float64) {
	g.sharpness = g.clamp("sharpness", sharpness, MinSharpness, MaxSharpness)
}

// Sharpness returns the sharpness.
func (g *Gaussian) Sharpness() float64 { return g.sharpness }

// ComputeBasis implements Kernel.
func (g *Gaussian) ComputeBasis(x r3.Vector, basis []uint32) []uint32 {
	return g.computeBasis(x, basis)
}

// ComputeWeights implements Kernel.
func (g *Gaussian) ComputeWeights(x r3.Vector, basis []uint32, weights []float64) []float64 {
	weights = g.squaredDistances(x, basis, weights)
	if len(weights) == 0 {
		return g.done(weights, false)
	}

	if i := g.coincident(weights); i >= 0 {
		return g.done(selectOne(weights, i), true)
	}

	f := g.sharpness / g.radius
	f2 := f * f
	if math.IsInf(f2, 1) {
		return g.done(selectOne(weights, floats.MinIdx(weights)), false)
	}

	// Shifting every exponent by the closest distance leaves the normalized
	// result unchanged and keeps the largest term at exactly 1.
	minD2 := floats.Min(weights)
	if math.IsInf(minD2, 1) {
		// Every basis point lies beyond the float64 range; the closest one
		// dominates the exponent by far.
		weights = g.rescaledDistances(x, basis, weights)
		return g.done(selectOne(weights, floats.MinIdx(weights)), false)
	}
	for i, d2 := range weights {
		weights[i] = math.Exp(-(d2 - minD2) * f2)
	}

	floats.Scale(1/floats.Sum(weights), weights)

	return g.done(weights, false)
}
