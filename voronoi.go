package pointkernel

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/pointkernel/locator"
)

// Voronoi is a nearest-neighbor kernel: the query takes the value of the
// closest point, i.e. of the Voronoi cell it falls in.
//
// Radius, footprint and coincidence settings have no effect on it.
type Voronoi struct {
	kernelBase
}

// NewVoronoi creates a Voronoi kernel that finds the closest point with loc
// and reads point coordinates from ds.
func NewVoronoi(loc locator.Locator, ds locator.Dataset, opts ...Option) (*Voronoi, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	kb, err := newKernelBase("voronoi", loc, ds, &o)
	if err != nil {
		return nil, err
	}

	return &Voronoi{kernelBase: kb}, nil
}

// ComputeBasis implements Kernel. The basis is the single closest point.
func (v *Voronoi) ComputeBasis(x r3.Vector, basis []uint32) []uint32 {
	return v.closestBasis(x, basis, false)
}

// ComputeWeights implements Kernel. The basis point closest to x receives
// weight 1 (the first one on ties) and every other point 0.
func (v *Voronoi) ComputeWeights(x r3.Vector, basis []uint32, weights []float64) []float64 {
	weights = v.squaredDistances(x, basis, weights)
	if len(weights) == 0 {
		return v.done(weights, false)
	}

	i := floats.MinIdx(weights)
	coincident := weights[i] == 0
	return v.done(selectOne(weights, i), coincident)
}
