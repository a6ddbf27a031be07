package pointkernel

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/pointkernel/locator"
	"github.com/hupe1980/pointkernel/testutil"
)

func TestGaussian(t *testing.T) {
	ds := locator.Points{{X: 0.5}, {Y: 1}, {Z: 2}, {X: 0.3, Y: 0.4}}
	loc, err := locator.NewFlat(ds)
	require.NoError(t, err)

	t.Run("Weights", func(t *testing.T) {
		g, err := NewGaussian(loc, ds)
		require.NoError(t, err)
		assert.Equal(t, DefaultSharpness, g.Sharpness())

		// f^2 = (2/1)^2 = 4; relative terms exp(-4*(1-0.25)) = e^-3.
		e3 := math.Exp(-3)
		weights := g.ComputeWeights(r3.Vector{}, []uint32{0, 1}, nil)
		require.Len(t, weights, 2)
		assert.InDelta(t, 1/(1+e3), weights[0], 1e-12)
		assert.InDelta(t, e3/(1+e3), weights[1], 1e-12)
	})

	t.Run("EqualDistances", func(t *testing.T) {
		g, err := NewGaussian(loc, ds, WithRadius(3), WithSharpness(5))
		require.NoError(t, err)

		weights := g.ComputeWeights(r3.Vector{}, []uint32{0, 3}, nil)
		assert.InDeltaSlice(t, []float64{0.5, 0.5}, weights, 1e-12)
	})

	t.Run("SharperConcentrates", func(t *testing.T) {
		g, err := NewGaussian(loc, ds)
		require.NoError(t, err)

		basis := []uint32{2, 0, 1}
		prev := 0.0
		for _, s := range []float64{1, 2, 4, 8} {
			g.SetSharpness(s)
			weights := g.ComputeWeights(r3.Vector{}, basis, nil)
			assert.InDelta(t, 1.0, floats.Sum(weights), 1e-12)
			assert.Greater(t, weights[1], prev, "sharpness=%v", s)
			prev = weights[1]
		}
	})

	t.Run("ZeroRadius", func(t *testing.T) {
		g, err := NewGaussian(loc, ds, WithRadius(0))
		require.NoError(t, err)

		weights := g.ComputeWeights(r3.Vector{}, []uint32{2, 1, 0}, nil)
		assert.Equal(t, []float64{0, 0, 1}, weights)
	})

	t.Run("Coincident", func(t *testing.T) {
		g, err := NewGaussian(loc, ds)
		require.NoError(t, err)

		weights := g.ComputeWeights(r3.Vector{Y: 1}, []uint32{0, 1, 2}, nil)
		assert.Equal(t, []float64{0, 1, 0}, weights)
	})

	t.Run("FarFromBasis", func(t *testing.T) {
		// exp(-r^2 f^2) underflows for every point; the shifted form does not.
		g, err := NewGaussian(loc, ds, WithRadius(0.01), WithSharpness(MaxSharpness))
		require.NoError(t, err)

		weights := g.ComputeWeights(r3.Vector{X: 100}, []uint32{0, 1}, nil)
		require.Len(t, weights, 2)
		assert.InDelta(t, 1.0, floats.Sum(weights), 1e-12)
		assert.InDelta(t, 1.0, weights[0], 1e-12)
	})

	t.Run("HugeCoordinates", func(t *testing.T) {
		far := locator.Points{{X: 3e200}, {Y: 2e200}, {Z: -5e200}}
		g, err := NewGaussian(loc, far)
		require.NoError(t, err)

		weights := g.ComputeWeights(r3.Vector{}, []uint32{0, 1, 2}, nil)
		assert.Equal(t, []float64{0, 1, 0}, weights)
	})

	t.Run("SharpnessClamp", func(t *testing.T) {
		g, err := NewGaussian(loc, ds, WithSharpness(0))
		require.NoError(t, err)
		assert.Equal(t, MinSharpness, g.Sharpness())

		g.SetSharpness(1e6)
		assert.Equal(t, MaxSharpness, g.Sharpness())

		g.SetSharpness(math.NaN())
		assert.Equal(t, MinSharpness, g.Sharpness())
	})

	t.Run("UnknownPoint", func(t *testing.T) {
		g, err := NewGaussian(loc, ds)
		require.NoError(t, err)
		assert.Empty(t, g.ComputeWeights(r3.Vector{}, []uint32{0, 10}, nil))
	})
}

func TestLinear(t *testing.T) {
	ds := line(6)
	loc, err := locator.NewFlat(ds)
	require.NoError(t, err)

	l, err := NewLinear(loc, ds, WithRadius(1))
	require.NoError(t, err)

	t.Run("Uniform", func(t *testing.T) {
		basis := l.ComputeBasis(r3.Vector{X: 2}, nil)
		require.Equal(t, []uint32{1, 2, 3}, basis)

		weights := l.ComputeWeights(r3.Vector{X: 2}, basis, nil)
		assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, weights, 1e-15)
	})

	t.Run("Fallback", func(t *testing.T) {
		x := r3.Vector{X: 20}
		basis := l.ComputeBasis(x, nil)
		require.Equal(t, []uint32{5}, basis)
		assert.Equal(t, []float64{1}, l.ComputeWeights(x, basis, nil))
	})

	t.Run("NClosest", func(t *testing.T) {
		l.SetFootprint(FootprintNClosest)
		l.SetNumberOfPoints(4)
		defer l.SetFootprint(FootprintRadius)

		basis := l.ComputeBasis(r3.Vector{X: 0.2}, nil)
		assert.Equal(t, []uint32{0, 1, 2, 3}, basis)
		assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.25, 0.25}, l.ComputeWeights(r3.Vector{}, basis, nil), 1e-15)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, l.ComputeWeights(r3.Vector{}, nil, nil))
		assert.Empty(t, l.ComputeWeights(r3.Vector{}, []uint32{6}, nil))
	})
}

func TestVoronoi(t *testing.T) {
	ds := locator.Points{{X: 0}, {X: 1}, {X: 2}, {X: 1}}
	loc, err := locator.NewKDTree(ds)
	require.NoError(t, err)

	v, err := NewVoronoi(loc, ds, WithRadius(50), WithNClosest(3))
	require.NoError(t, err)

	t.Run("BasisIsClosestPoint", func(t *testing.T) {
		assert.Equal(t, []uint32{2}, v.ComputeBasis(r3.Vector{X: 1.8}, nil))
		assert.Equal(t, []uint32{0}, v.ComputeBasis(r3.Vector{X: -7, Y: 3}, []uint32{4, 4, 4}))
	})

	t.Run("Weights", func(t *testing.T) {
		weights := v.ComputeWeights(r3.Vector{X: 1.8}, []uint32{0, 1, 2}, nil)
		assert.Equal(t, []float64{0, 0, 1}, weights)
	})

	t.Run("FirstWinsOnTies", func(t *testing.T) {
		weights := v.ComputeWeights(r3.Vector{X: 1.2}, []uint32{0, 3, 1}, nil)
		assert.Equal(t, []float64{0, 1, 0}, weights)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, v.ComputeWeights(r3.Vector{}, nil, nil))
		assert.Empty(t, v.ComputeWeights(r3.Vector{}, []uint32{1, 9}, nil))

		empty := locator.Points{}
		el, err := locator.NewKDTree(empty)
		require.NoError(t, err)
		ev, err := NewVoronoi(el, empty)
		require.NoError(t, err)
		assert.Empty(t, ev.ComputeBasis(r3.Vector{}, nil))
	})
}

func TestKernelsOnRandomCloud(t *testing.T) {
	rng := testutil.NewRNG(2024)
	ds := locator.Points(rng.GaussianPoints(400, r3.Vector{X: 5, Y: 5, Z: 5}, 2))
	loc, err := locator.NewKDTree(ds)
	require.NoError(t, err)

	kernels := map[string]Kernel{}
	s, err := NewShepard(loc, ds, WithRadius(0.8))
	require.NoError(t, err)
	kernels["Shepard"] = s
	g, err := NewGaussian(loc, ds, WithRadius(0.8))
	require.NoError(t, err)
	kernels["Gaussian"] = g
	l, err := NewLinear(loc, ds, WithNClosest(6))
	require.NoError(t, err)
	kernels["Linear"] = l
	v, err := NewVoronoi(loc, ds)
	require.NoError(t, err)
	kernels["Voronoi"] = v

	queries := rng.UniformPoints(40, 10)

	for name, k := range kernels {
		t.Run(name, func(t *testing.T) {
			var (
				basis   []uint32
				weights []float64
			)
			for _, q := range queries {
				basis = k.ComputeBasis(q, basis)
				require.NotEmpty(t, basis)

				weights = k.ComputeWeights(q, basis, weights)
				require.Len(t, weights, len(basis))
				assert.InDelta(t, 1.0, floats.Sum(weights), 1e-9)
				for _, w := range weights {
					assert.GreaterOrEqual(t, w, 0.0)
					assert.LessOrEqual(t, w, 1+1e-12)
				}
			}
		})
	}
}
