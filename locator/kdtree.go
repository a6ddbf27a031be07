package locator

import (
	"cmp"
	"slices"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// KDTree is a locator backed by a gonum k-d tree.
//
// Coordinates are copied when the tree is built; later changes to the
// dataset are not observed. Queries are safe for concurrent use.
type KDTree struct {
	tree  *kdtree.Tree
	count int
}

// NewKDTree builds a k-d tree over the candidate points of ds.
func NewKDTree(ds Dataset, optFns ...func(o *Options)) (*KDTree, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	pts := make(kdPoints, 0, ds.NumberOfPoints())
	candidates(ds, opts.Mask, func(id uint32) {
		if p, ok := ds.Point(id); ok {
			pts = append(pts, kdPoint{Vector: p, id: id})
		}
	})

	t := &KDTree{count: len(pts)}
	if len(pts) > 0 {
		t.tree = kdtree.New(pts, false)
	}

	return t, nil
}

func (*KDTree) Name() string { return "KDTree" }

// Len returns the number of points held by the tree.
func (t *KDTree) Len() int { return t.count }

// FindPointsWithinRadius implements Locator. Ids are ordered from closest to
// farthest.
func (t *KDTree) FindPointsWithinRadius(radius float64, x r3.Vector, ids []uint32) []uint32 {
	ids = ids[:0]
	if t.tree == nil || radius < 0 {
		return ids
	}

	keeper := kdtree.NewDistKeeper(radius * radius)
	t.tree.NearestSet(keeper, kdPoint{Vector: x})

	return appendSorted(ids, keeper.Heap)
}

// FindClosestPoint implements Locator.
func (t *KDTree) FindClosestPoint(x r3.Vector) (uint32, bool) {
	if t.tree == nil {
		return 0, false
	}

	c, _ := t.tree.Nearest(kdPoint{Vector: x})
	if c == nil {
		return 0, false
	}

	return c.(kdPoint).id, true
}

// FindClosestNPoints implements Locator.
func (t *KDTree) FindClosestNPoints(n int, x r3.Vector, ids []uint32) []uint32 {
	ids = ids[:0]
	n = min(n, t.count)
	if t.tree == nil || n <= 0 {
		return ids
	}

	keeper := kdtree.NewNKeeper(n)
	t.tree.NearestSet(keeper, kdPoint{Vector: x})

	return appendSorted(ids, keeper.Heap)
}

// appendSorted appends the ids held in h ordered by distance, skipping the
// keeper sentinel.
func appendSorted(ids []uint32, h kdtree.Heap) []uint32 {
	found := make([]kdtree.ComparableDist, 0, len(h))
	for _, c := range h {
		if c.Comparable == nil {
			continue
		}
		found = append(found, c)
	}

	slices.SortFunc(found, func(a, b kdtree.ComparableDist) int {
		if c := cmp.Compare(a.Dist, b.Dist); c != 0 {
			return c
		}
		return cmp.Compare(a.Comparable.(kdPoint).id, b.Comparable.(kdPoint).id)
	})

	for _, c := range found {
		ids = append(ids, c.Comparable.(kdPoint).id)
	}

	return ids
}

// kdPoint is a tree entry: a coordinate tagged with its dataset id.
type kdPoint struct {
	r3.Vector
	id uint32
}

// Compare implements the kdtree.Comparable interface.
func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	switch d {
	case 0:
		return p.X - q.X
	case 1:
		return p.Y - q.Y
	case 2:
		return p.Z - q.Z
	default:
		panic("illegal dimension")
	}
}

// Dims implements the kdtree.Comparable interface.
func (p kdPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance, as the tree's pruning
// compares it against squared plane offsets.
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	return p.Vector.Sub(c.(kdPoint).Vector).Norm2()
}

// kdPoints satisfies kdtree.Interface.
type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p kdPoints) Len() int                              { return len(p) }
func (p kdPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// Pivot implements the kdtree.Interface method.
func (p kdPoints) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(plane{kdPoints: p, Dim: d}, kdtree.MedianOfMedians(plane{kdPoints: p, Dim: d}))
}

// plane implements kdtree.SortSlicer along a single dimension.
type plane struct {
	kdPoints
	kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.kdPoints[i].X < p.kdPoints[j].X
	case 1:
		return p.kdPoints[i].Y < p.kdPoints[j].Y
	case 2:
		return p.kdPoints[i].Z < p.kdPoints[j].Z
	default:
		panic("illegal dimension")
	}
}

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	return plane{kdPoints: p.kdPoints[start:end], Dim: p.Dim}
}

func (p plane) Swap(i, j int) {
	p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i]
}
