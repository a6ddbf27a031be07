package locator

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Options contains configuration options shared by the locators.
type Options struct {
	// Mask restricts the locator to the point ids it contains. Ids outside
	// the dataset are ignored. A nil mask means every point is a candidate.
	//
	// The locator reads the mask during queries, so it must not be mutated
	// while the locator is in use.
	Mask *roaring.Bitmap
}

// DefaultOptions contains the default configuration options for the locators.
var DefaultOptions = Options{
	Mask: nil,
}

// WithMask restricts the locator to the ids set in mask.
func WithMask(mask *roaring.Bitmap) func(o *Options) {
	return func(o *Options) {
		o.Mask = mask
	}
}

// candidates calls fn for every point id the locator may return, in
// ascending id order.
func candidates(ds Dataset, mask *roaring.Bitmap, fn func(id uint32)) {
	n := ds.NumberOfPoints()
	if mask == nil {
		for i := 0; i < n; i++ {
			fn(uint32(i))
		}
		return
	}

	it := mask.Iterator()
	for it.HasNext() {
		id := it.Next()
		if int64(id) >= int64(n) {
			return
		}
		fn(id)
	}
}

// candidateCount returns the number of point ids candidates visits.
func candidateCount(ds Dataset, mask *roaring.Bitmap) int {
	n := ds.NumberOfPoints()
	if mask == nil || n == 0 {
		return n
	}
	return int(mask.Rank(uint32(n - 1)))
}
