// Package queue provides a value-based priority queue used to select the
// closest points of a neighborhood.
package queue

// Item is a point identifier paired with its (squared) distance to the query.
type Item struct {
	ID   uint32
	Dist float64
}

// PriorityQueue is a max heap of Items ordered by distance, so the farthest
// kept item is always on top.
type PriorityQueue struct {
	items []Item
}

// NewMax initializes a new priority queue with maximum priority.
func NewMax(capacity int) *PriorityQueue {
	return &PriorityQueue{
		items: make([]Item, 0, capacity),
	}
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) PushItem(item Item) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PopItem removes and returns the farthest item while maintaining the heap invariant.
func (pq *PriorityQueue) PopItem() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// Keep offers item to the heap bounded to limit elements. Once the heap is
// full, item replaces the current farthest element only if it is strictly
// closer, so earlier items win ties.
func (pq *PriorityQueue) Keep(item Item, limit int) {
	if limit <= 0 {
		return
	}
	if len(pq.items) < limit {
		pq.PushItem(item)
		return
	}
	if item.Dist < pq.items[0].Dist {
		pq.items[0] = item
		pq.siftDown(0)
	}
}

// DrainAscending empties the queue and appends its IDs to dst ordered from
// closest to farthest.
func (pq *PriorityQueue) DrainAscending(dst []uint32) []uint32 {
	n := len(pq.items)
	start := len(dst)
	dst = append(dst, make([]uint32, n)...)
	for i := n - 1; i >= 0; i-- {
		item, _ := pq.PopItem()
		dst[start+i] = item.ID
	}
	return dst
}

func (pq *PriorityQueue) less(i, j int) bool {
	return pq.items[i].Dist > pq.items[j].Dist
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
