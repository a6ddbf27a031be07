// Package pointkernel provides interpolation kernels for resampling
// scattered point data.
//
// A kernel answers two questions for a query location x: which sample points
// contribute to the value at x (the basis), and with what weight. A driver
// then blends the attribute values of the basis points with those weights,
// for example to resample a point cloud attribute onto a regular grid.
//
// # Quick Start
//
//	ds := locator.Points(samples)
//	loc, _ := locator.NewKDTree(ds)
//	k, _ := pointkernel.NewShepard(loc, ds,
//	    pointkernel.WithRadius(0.5),
//	    pointkernel.WithPowerParameter(2),
//	)
//
//	var basis []uint32
//	var weights []float64
//	for _, x := range grid {
//	    basis = k.ComputeBasis(x, basis)
//	    weights = k.ComputeWeights(x, basis, weights)
//	    if len(weights) == 0 {
//	        continue // nothing to interpolate from
//	    }
//	    var v float64
//	    for i, id := range basis {
//	        v += weights[i] * values[id]
//	    }
//	    // ...
//	}
//
// Buffers passed to ComputeBasis and ComputeWeights are reused, so a loop
// like the one above allocates only while the buffers grow.
//
// # Kernels
//
//   - Shepard: inverse distance weighting, 1/r^p (p defaults to 2)
//   - Gaussian: exp(-(s*r/R)^2) with sharpness s and radius R
//   - Linear: equal weights over the basis
//   - Voronoi: the closest point takes all the weight
//
// Shepard, Gaussian and Linear gather their basis either from a radius
// (falling back to the closest point when the radius is empty) or from the
// N closest points; see Footprint.
//
// # Configuration
//
// Kernels are configured with functional options at construction time and
// with setters afterwards. Out-of-range values are clamped rather than
// rejected, so a kernel is always in a valid state. Setters must not be
// called while queries are running on other goroutines.
//
// # Observability
//
// WithLogger attaches an slog-based Logger that reports fallbacks, empty
// neighborhoods and clamped settings at debug level. WithMetricsCollector
// attaches a MetricsCollector that is called after every query.
package pointkernel
