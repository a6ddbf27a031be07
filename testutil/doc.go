// Package testutil provides testing utilities for pointkernel.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point clouds and query grids,
// and for computing exact neighborhoods to check locators against.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, 10)          // uniform in [0, 10)^3
//	pts := rng.GaussianPoints(1000, center, 2)  // normal around center
//
// # Query Grids
//
//	grid := testutil.Grid(origin, 0.5, 10)      // 10x10x10 nodes, x fastest
//
// # Exact Neighborhoods (Ground Truth)
//
//	ids := testutil.ExactWithinRadius(pts, x, radius)
//	ids := testutil.ExactClosestN(pts, x, n)
package testutil
