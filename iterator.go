package sortz

import (
	"context"
	"iter"
)

// SliceIterator yields the items of a slice in order. It reports exact
// size hints, so downstream consumers can pre-allocate.
type SliceIterator[T any] struct {
	items []T
	pos   int
}

// FromSlice creates an Iterator over the given slice. The slice is not
// copied; callers must not mutate it while iterating.
func FromSlice[T any](items []T) *SliceIterator[T] {
	return &SliceIterator[T]{items: items}
}

func (s *SliceIterator[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	item := s.items[s.pos]
	s.pos++
	return item, true
}

// SizeHint reports the exact number of items remaining.
func (s *SliceIterator[T]) SizeHint() (lower, upper int, bounded bool) {
	remaining := len(s.items) - s.pos
	return remaining, remaining, true
}

// SeqIterator adapts a Go 1.23 push sequence to the pull-based
// Iterator contract via iter.Pull.
type SeqIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq creates an Iterator over an iter.Seq. Callers that stop
// consuming before exhaustion should call Stop to release the
// underlying sequence; draining to exhaustion releases it implicitly.
func FromSeq[T any](seq iter.Seq[T]) *SeqIterator[T] {
	next, stop := iter.Pull(seq)
	return &SeqIterator[T]{next: next, stop: stop}
}

func (s *SeqIterator[T]) Next() (T, bool) {
	return s.next()
}

// Stop releases the underlying sequence. Subsequent calls to Next
// report exhaustion.
func (s *SeqIterator[T]) Stop() {
	s.stop()
}

// ChannelIterator adapts a receive channel to the Iterator contract.
// Next blocks until an item arrives, the channel closes, or the context
// is canceled. Close and cancellation both count as exhaustion, and
// exhaustion is sticky even if the channel still holds items after the
// context was canceled.
type ChannelIterator[T any] struct {
	ctx  context.Context
	ch   <-chan T
	done bool
}

// FromChannel creates an Iterator over a channel. The context bounds
// how long Next may block; it does not close the channel.
func FromChannel[T any](ctx context.Context, ch <-chan T) *ChannelIterator[T] {
	return &ChannelIterator[T]{ctx: ctx, ch: ch}
}

func (c *ChannelIterator[T]) Next() (T, bool) {
	var zero T
	if c.done {
		return zero, false
	}

	select {
	case item, ok := <-c.ch:
		if !ok {
			c.done = true
			return zero, false
		}
		return item, true
	case <-c.ctx.Done():
		c.done = true
		return zero, false
	}
}

// Collect drains an Iterator into a slice, pre-allocating from its
// size hint when the source provides one.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	if h, ok := it.(SizeHinter); ok {
		lower, _, _ := h.SizeHint()
		out = make([]T, 0, lower)
	}
	for {
		item, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}
