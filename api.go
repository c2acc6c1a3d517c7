// Package sortz provides a bounded-memory streaming sort for sequences
// that are almost sorted but too large, or too risky, to buffer whole.
//
// The core abstraction is the WindowSorter, which pulls items from an
// Iterator while keeping at most windowSize of them buffered in a
// priority heap. Each call to Next tops the window up from the source
// and then emits the greatest buffered item, so items are re-ordered
// locally without the memory cost of a full sort.
//
// Basic usage:
//
//	src := sortz.FromSlice([]int{4, 2, 3, 1})
//	sorter := sortz.NewWindowSorter(src, 2)
//
//	for {
//		item, ok := sorter.Next()
//		if !ok {
//			break
//		}
//		fmt.Println(item) // 4, 3, 2, 1
//	}
//
// The transformation is a permutation: every input item is emitted
// exactly once. A pair already in sorted order is never inverted, and
// a late-arriving item is sorted against the items it is buffered
// with, so it can overtake at most windowSize-1 items ahead of it. A
// window at least as large as the input therefore produces a fully
// sorted sequence, while a small window un-scrambles mostly-sorted
// data in O(windowSize) memory.
//
// The package also provides:
//   - WindowSort and WindowSortFunc, iter.Seq adapters for fluent
//     composition with Go 1.23 range-over-func sequences
//   - SortBuffer, a channel processor applying the same transform to
//     streaming pipelines, with an optional time-based flush
//   - FromSlice, FromSeq and FromChannel source adapters
package sortz

// Iterator is the pull-based source contract consumed by WindowSorter.
// Next returns the next item and true, or the zero value and false once
// the source is exhausted. Exhaustion is sticky: after Next has
// returned false it must never return an item again. WindowSorter
// relies on this and does not re-check; a source that violates it can
// leave more than windowSize items buffered.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SizeHinter is an optional capability of an Iterator: bounds on how
// many items remain. The lower bound is always valid; the upper bound
// is meaningful only when bounded is true. Hints are advisory, used for
// capacity pre-allocation, never for correctness.
type SizeHinter interface {
	SizeHint() (lower, upper int, bounded bool)
}
