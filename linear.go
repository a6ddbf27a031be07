package pointkernel

import (
	"github.com/golang/geo/r3"

	"github.com/hupe1980/pointkernel/locator"
)

// Linear is a kernel that weights every basis point equally, so the
// interpolated value is the plain average of the basis.
type Linear struct {
	kernelBase
}

// NewLinear creates a Linear kernel that gathers its basis from loc and
// reads point coordinates from ds.
func NewLinear(loc locator.Locator, ds locator.Dataset, opts ...Option) (*Linear, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	kb, err := newKernelBase("linear", loc, ds, &o)
	if err != nil {
		return nil, err
	}

	return &Linear{kernelBase: kb}, nil
}

// ComputeBasis implements Kernel.
func (l *Linear) ComputeBasis(x r3.Vector, basis []uint32) []uint32 {
	return l.computeBasis(x, basis)
}

// ComputeWeights implements Kernel.
func (l *Linear) ComputeWeights(x r3.Vector, basis []uint32, weights []float64) []float64 {
	weights = l.squaredDistances(x, basis, weights)
	if len(weights) == 0 {
		return l.done(weights, false)
	}

	w := 1 / float64(len(weights))
	for i := range weights {
		weights[i] = w
	}

	return l.done(weights, false)
}
