// Package locator provides the point-location collaborators consumed by
// interpolation kernels: a Dataset of 3D point coordinates and Locators that
// answer radius, closest-point and N-closest queries over it.
//
// Two locators are provided. Flat scans every candidate point and is exact
// and allocation-light for small sets; KDTree builds a gonum k-d tree once and
// answers queries in logarithmic time. Both can be restricted to a subset of
// point ids with a roaring bitmap mask.
package locator

import (
	"errors"

	"github.com/golang/geo/r3"
)

var (
	// ErrNilDataset is returned when a locator is constructed without a dataset.
	ErrNilDataset = errors.New("locator: dataset is nil")
)

// Dataset provides read access to point coordinates by id.
// Ids are dense in [0, NumberOfPoints()).
type Dataset interface {
	// NumberOfPoints returns the number of points in the dataset.
	NumberOfPoints() int

	// Point returns the coordinates of the point with the given id.
	// ok is false if the id is out of range.
	Point(id uint32) (p r3.Vector, ok bool)
}

// Locator answers spatial queries over a Dataset.
//
// All methods append into ids[:0] and return the result so callers can reuse
// buffers across queries; passing nil allocates.
type Locator interface {
	// FindPointsWithinRadius returns every point whose distance to x is at
	// most radius.
	FindPointsWithinRadius(radius float64, x r3.Vector, ids []uint32) []uint32

	// FindClosestPoint returns the point closest to x. ok is false if the
	// locator holds no points.
	FindClosestPoint(x r3.Vector) (id uint32, ok bool)

	// FindClosestNPoints returns up to n points closest to x, ordered from
	// closest to farthest.
	FindClosestNPoints(n int, x r3.Vector, ids []uint32) []uint32
}

// Compile-time checks to ensure the locators satisfy Locator.
var (
	_ Locator = (*Flat)(nil)
	_ Locator = (*KDTree)(nil)
	_ Dataset = Points(nil)
)

// Points is an in-memory Dataset backed by a slice of coordinates.
type Points []r3.Vector

// NumberOfPoints implements Dataset.
func (p Points) NumberOfPoints() int { return len(p) }

// Point implements Dataset.
func (p Points) Point(id uint32) (r3.Vector, bool) {
	if int64(id) >= int64(len(p)) {
		return r3.Vector{}, false
	}
	return p[id], true
}
