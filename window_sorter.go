package sortz

import (
	"cmp"
	"iter"
	"math"
)

// WindowSorter re-orders a pull-based sequence within a sliding window.
// It keeps up to windowSize items buffered in a priority heap and emits
// the greatest buffered item on every pull, refilling from the source
// as items are consumed.
type WindowSorter[T any] struct {
	source     Iterator[T]
	window     *window[T]
	windowSize int
}

// NewWindowSorter creates a sorter over the natural order of T,
// emitting the greatest buffered item first. Use Reversed with
// NewWindowSorterFunc to emit smallest-first instead.
//
// The window size bounds both memory and how far re-ordering reaches:
// a pair already in sorted order is never inverted, and a late-arriving
// item is sorted against the up to windowSize-1 items buffered with
// it. Any non-negative size is accepted; 0 and 1 leave the
// input order unchanged, and a size of at least the input length sorts
// the whole sequence.
//
// When to use:
//   - Un-scrambling event streams whose timestamps are almost ordered
//   - Re-ordering log lines merged from buffered writers
//   - Smoothing out-of-order arrivals without buffering the full stream
//
// Example:
//
//	// Sensor readings arrive at most 16 positions out of order.
//	src := sortz.FromChannel(ctx, readings)
//	sorter := sortz.NewWindowSorterFunc(src, 16, sortz.Reversed(cmp.Compare[int64]))
//
//	for {
//		r, ok := sorter.Next()
//		if !ok {
//			break
//		}
//		store(r) // ascending timestamp order
//	}
//
// Parameters:
//   - source: the iterator to re-order; owned exclusively by the sorter
//   - windowSize: maximum number of items buffered at once
//
// Returns a new WindowSorter pulling from source.
func NewWindowSorter[T cmp.Ordered](source Iterator[T], windowSize int) *WindowSorter[T] {
	return NewWindowSorterFunc(source, windowSize, cmp.Compare[T])
}

// NewWindowSorterFunc creates a sorter over an arbitrary total order.
// The comparator follows the cmp.Compare convention: negative when a
// orders before b, zero when equal, positive when a orders after b.
// The item comparing greatest is emitted first.
func NewWindowSorterFunc[T any](source Iterator[T], windowSize int, compare func(a, b T) int) *WindowSorter[T] {
	return &WindowSorter[T]{
		source:     source,
		window:     newWindow(windowSize, compare),
		windowSize: windowSize,
	}
}

// Next produces the next item of the re-ordered sequence. It polls the
// source until the window holds windowSize items or the source reports
// exhaustion, then removes and returns the greatest buffered item.
// Once Next has returned false it returns false forever.
//
// Next runs synchronously on the caller's goroutine; if the source
// blocks, Next blocks.
func (w *WindowSorter[T]) Next() (T, bool) {
	if w.windowSize == 0 {
		// Degenerate window: nothing can be buffered, pass through.
		return w.source.Next()
	}

	for w.window.Len() < w.windowSize {
		item, ok := w.source.Next()
		if !ok {
			break
		}
		w.window.Push(item)
	}

	return w.window.Pop()
}

// SizeHint reports bounds on how many items Next will still yield: the
// source's remaining bounds, when it provides any, plus the items
// currently buffered in the window. A source without hints contributes
// a zero lower bound and an unknown upper bound. Advisory only.
func (w *WindowSorter[T]) SizeHint() (lower, upper int, bounded bool) {
	buffered := w.window.Len()
	if h, ok := w.source.(SizeHinter); ok {
		lo, hi, b := h.SizeHint()
		if b {
			return saturatingAdd(lo, buffered), saturatingAdd(hi, buffered), true
		}
		return saturatingAdd(lo, buffered), 0, false
	}
	return buffered, 0, false
}

// All returns the remaining re-ordered sequence as an iter.Seq for use
// with range-over-func. Stopping the range early leaves buffered items
// in the window; they are discarded with the sorter.
func (w *WindowSorter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := w.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// WindowSort adapts any iter.Seq into a window-sorted iter.Seq using
// the natural order of T, greatest-first. This is the fluent
// composition form of NewWindowSorter for range-over-func pipelines.
//
// Example:
//
//	for v := range sortz.WindowSort(slices.Values(data), 8) {
//		fmt.Println(v)
//	}
func WindowSort[T cmp.Ordered](seq iter.Seq[T], windowSize int) iter.Seq[T] {
	return WindowSortFunc(seq, windowSize, cmp.Compare[T])
}

// WindowSortFunc is WindowSort with an arbitrary total order.
func WindowSortFunc[T any](seq iter.Seq[T], windowSize int, compare func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		src := FromSeq(seq)
		defer src.Stop()

		sorter := NewWindowSorterFunc[T](src, windowSize, compare)
		for {
			item, ok := sorter.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Reversed flips a comparator, turning the greatest-first default into
// smallest-first. It is the comparator form of an order-reversing
// wrapper type.
func Reversed[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
