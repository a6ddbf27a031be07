package locator

import (
	"github.com/golang/geo/r3"

	"github.com/hupe1980/pointkernel/internal/queue"
)

// Flat is a brute-force locator. Every query scans all candidate points, so
// results are exact and always reflect the current dataset contents.
//
// Flat is safe for concurrent queries as long as the dataset and mask are
// not mutated.
type Flat struct {
	dataset Dataset
	opts    Options
}

// NewFlat creates a brute-force locator over ds.
func NewFlat(ds Dataset, optFns ...func(o *Options)) (*Flat, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Flat{
		dataset: ds,
		opts:    opts,
	}, nil
}

func (*Flat) Name() string { return "Flat" }

// FindPointsWithinRadius implements Locator. Ids are returned in ascending
// order.
func (f *Flat) FindPointsWithinRadius(radius float64, x r3.Vector, ids []uint32) []uint32 {
	ids = ids[:0]
	if radius < 0 {
		return ids
	}
	r2 := radius * radius

	candidates(f.dataset, f.opts.Mask, func(id uint32) {
		p, ok := f.dataset.Point(id)
		if !ok {
			return
		}
		if x.Sub(p).Norm2() <= r2 {
			ids = append(ids, id)
		}
	})

	return ids
}

// FindClosestPoint implements Locator. The lowest id wins ties.
func (f *Flat) FindClosestPoint(x r3.Vector) (uint32, bool) {
	var (
		best  uint32
		bestD float64
		found bool
	)

	candidates(f.dataset, f.opts.Mask, func(id uint32) {
		p, ok := f.dataset.Point(id)
		if !ok {
			return
		}
		d := x.Sub(p).Norm2()
		if !found || d < bestD {
			best, bestD, found = id, d, true
		}
	})

	return best, found
}

// FindClosestNPoints implements Locator. Among equidistant points the lower
// ids are kept.
func (f *Flat) FindClosestNPoints(n int, x r3.Vector, ids []uint32) []uint32 {
	ids = ids[:0]
	n = min(n, candidateCount(f.dataset, f.opts.Mask))
	if n <= 0 {
		return ids
	}

	pq := queue.NewMax(n)
	candidates(f.dataset, f.opts.Mask, func(id uint32) {
		p, ok := f.dataset.Point(id)
		if !ok {
			return
		}
		pq.Keep(queue.Item{ID: id, Dist: x.Sub(p).Norm2()}, n)
	})

	return pq.DrainAscending(ids)
}
