package sortz

import "container/heap"

// window is the bounded priority buffer shared by WindowSorter and
// SortBuffer. Comparators follow the cmp.Compare convention; the item
// comparing greatest sits at the root, so Pop always removes the
// current maximum. Push and Pop are O(log n) in the current length.
type window[T any] struct {
	inner innerHeap[T]
}

func newWindow[T any](capacity int, compare func(a, b T) int) *window[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &window[T]{
		inner: innerHeap[T]{
			data:    make([]T, 0, capacity),
			compare: compare,
		},
	}
}

// Push inserts an item into the window.
func (w *window[T]) Push(item T) {
	heap.Push(&w.inner, item)
}

// Pop removes and returns the greatest item, or false when empty.
func (w *window[T]) Pop() (T, bool) {
	if w.inner.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&w.inner).(T), true
}

// Len reports how many items are currently buffered.
func (w *window[T]) Len() int {
	return w.inner.Len()
}

// innerHeap adapts a comparator-ordered slice to heap.Interface.
type innerHeap[T any] struct {
	data    []T
	compare func(a, b T) int
}

func (h *innerHeap[T]) Len() int { return len(h.data) }

func (h *innerHeap[T]) Less(i, j int) bool {
	return h.compare(h.data[i], h.data[j]) > 0
}

func (h *innerHeap[T]) Swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *innerHeap[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

func (h *innerHeap[T]) Pop() any {
	old := h.data
	n := len(old)
	item := old[n-1]

	// avoid holding a reference in the shrunk slice
	var zero T
	old[n-1] = zero

	h.data = old[:n-1]
	return item
}
