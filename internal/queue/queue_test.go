package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue(t *testing.T) {
	t.Run("FarthestOnTop", func(t *testing.T) {
		pq := NewMax(4)
		for _, it := range []Item{{ID: 1, Dist: 3}, {ID: 2, Dist: 1}, {ID: 3, Dist: 2}, {ID: 4, Dist: 5}} {
			pq.PushItem(it)
		}

		var popped []uint32
		for {
			item, ok := pq.PopItem()
			if !ok {
				break
			}
			popped = append(popped, item.ID)
		}
		assert.Equal(t, []uint32{4, 1, 3, 2}, popped)
	})

	t.Run("Empty", func(t *testing.T) {
		pq := NewMax(0)
		_, ok := pq.PopItem()
		assert.False(t, ok)
		assert.Empty(t, pq.DrainAscending(nil))
	})
}

func TestKeep(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		items    []Item
		expected []uint32
	}{
		{"UnderLimit", 5, []Item{{ID: 0, Dist: 2}, {ID: 1, Dist: 1}}, []uint32{1, 0}},
		{"Bounded", 2, []Item{{ID: 0, Dist: 4}, {ID: 1, Dist: 1}, {ID: 2, Dist: 3}, {ID: 3, Dist: 2}}, []uint32{1, 3}},
		{"EarlierWinsTie", 1, []Item{{ID: 4, Dist: 1}, {ID: 5, Dist: 1}}, []uint32{4}},
		{"ZeroLimit", 0, []Item{{ID: 0, Dist: 1}}, []uint32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := NewMax(tt.limit)
			for _, it := range tt.items {
				pq.Keep(it, tt.limit)
			}
			assert.Equal(t, tt.expected, pq.DrainAscending([]uint32{}))
		})
	}
}

func TestDrainAscendingAppends(t *testing.T) {
	pq := NewMax(2)
	pq.Keep(Item{ID: 9, Dist: 2}, 2)
	pq.Keep(Item{ID: 8, Dist: 1}, 2)

	out := pq.DrainAscending([]uint32{42})
	assert.Equal(t, []uint32{42, 8, 9}, out)

	_, ok := pq.PopItem()
	require.False(t, ok, "drained queue is empty")
}
