package testutil

import (
	"cmp"
	"math/rand"
	"slices"
	"sync"

	"github.com/golang/geo/r3"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

func (r *RNG) uniformLocked(extent float64) r3.Vector {
	return r3.Vector{
		X: r.rand.Float64() * extent,
		Y: r.rand.Float64() * extent,
		Z: r.rand.Float64() * extent,
	}
}

// UniformPoints generates num points with coordinates in [0, extent).
func (r *RNG) UniformPoints(num int, extent float64) []r3.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]r3.Vector, num)
	for i := range num {
		pts[i] = r.uniformLocked(extent)
	}

	return pts
}

// GaussianPoints generates num points normally distributed around center
// with standard deviation sigma on every axis.
func (r *RNG) GaussianPoints(num int, center r3.Vector, sigma float64) []r3.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]r3.Vector, num)
	for i := range num {
		pts[i] = r3.Vector{
			X: center.X + r.rand.NormFloat64()*sigma,
			Y: center.Y + r.rand.NormFloat64()*sigma,
			Z: center.Z + r.rand.NormFloat64()*sigma,
		}
	}

	return pts
}

// Grid returns the n*n*n nodes of a regular grid starting at origin with the
// given spacing, x varying fastest.
func Grid(origin r3.Vector, spacing float64, n int) []r3.Vector {
	pts := make([]r3.Vector, 0, n*n*n)
	for k := range n {
		for j := range n {
			for i := range n {
				pts = append(pts, origin.Add(r3.Vector{
					X: float64(i) * spacing,
					Y: float64(j) * spacing,
					Z: float64(k) * spacing,
				}))
			}
		}
	}
	return pts
}

// ExactWithinRadius returns, in ascending id order, the ids of all points
// whose distance to x is at most radius.
func ExactWithinRadius(pts []r3.Vector, x r3.Vector, radius float64) []uint32 {
	ids := []uint32{}
	for i, p := range pts {
		if x.Distance(p) <= radius {
			ids = append(ids, uint32(i))
		}
	}
	return ids
}

// ExactClosestN returns the ids of the n points closest to x ordered by
// distance, lower ids first among equal distances.
func ExactClosestN(pts []r3.Vector, x r3.Vector, n int) []uint32 {
	ids := make([]uint32, len(pts))
	for i := range pts {
		ids[i] = uint32(i)
	}

	slices.SortStableFunc(ids, func(a, b uint32) int {
		return cmp.Compare(x.Sub(pts[a]).Norm2(), x.Sub(pts[b]).Norm2())
	})

	return ids[:min(n, len(ids))]
}
