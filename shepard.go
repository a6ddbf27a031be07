package pointkernel

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/pointkernel/locator"
)

// Shepard is an inverse distance weighting kernel. A basis point at distance
// r from the query receives weight 1/r^p, where p is the power parameter, and
// the weights are normalized to sum to 1.
//
// If the query lies on a basis point (within the coincidence tolerance),
// that point receives weight 1 and every other point 0, so interpolation
// reproduces sample values exactly. When several basis points coincide with
// the query the first one in basis order wins.
type Shepard struct {
	kernelBase
	powerParameter float64
}

// NewShepard creates a Shepard kernel that gathers its basis from loc and
// reads point coordinates from ds.
func NewShepard(loc locator.Locator, ds locator.Dataset, opts ...Option) (*Shepard, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	kb, err := newKernelBase("shepard", loc, ds, &o)
	if err != nil {
		return nil, err
	}

	s := &Shepard{kernelBase: kb}
	s.SetPowerParameter(o.powerParameter)

	return s, nil
}

// SetPowerParameter sets the exponent p, clamped to
// [MinPowerParameter, MaxPowerParameter].
func (s *Shepard) SetPowerParameter(p float64) {
	s.powerParameter = s.clamp("powerParameter", p, MinPowerParameter, MaxPowerParameter)
}

// PowerParameter returns the exponent p.
func (s *Shepard) PowerParameter() float64 { return s.powerParameter }

// ComputeBasis implements Kernel. With the radius footprint it returns every
// point within the radius of x, or the single closest point if there is none.
func (s *Shepard) ComputeBasis(x r3.Vector, basis []uint32) []uint32 {
	return s.computeBasis(x, basis)
}

// ComputeWeights implements Kernel.
func (s *Shepard) ComputeWeights(x r3.Vector, basis []uint32, weights []float64) []float64 {
	weights = s.squaredDistances(x, basis, weights)
	if len(weights) == 0 {
		return s.done(weights, false)
	}

	if i := s.coincident(weights); i >= 0 {
		return s.done(selectOne(weights, i), true)
	}

	// Squared distances beyond the float64 range would turn the ratios
	// below into Inf/Inf.
	if math.IsInf(floats.Max(weights), 1) {
		weights = s.rescaledDistances(x, basis, weights)
	}

	// Weights are taken relative to the closest point, (rmin/r)^p, which
	// leaves the normalized result unchanged and keeps every term in (0, 1].
	minD2 := floats.Min(weights)
	if minD2 == 0 {
		return s.done(selectOne(weights, floats.MinIdx(weights)), false)
	}
	if s.powerParameter == 2 {
		for i, d2 := range weights {
			weights[i] = minD2 / d2
		}
	} else {
		half := s.powerParameter / 2
		for i, d2 := range weights {
			weights[i] = math.Pow(minD2/d2, half)
		}
	}

	floats.Scale(1/floats.Sum(weights), weights)

	return s.done(weights, false)
}
