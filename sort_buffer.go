package sortz

import (
	"cmp"
	"context"
	"time"
)

// SortBufferConfig configures the SortBuffer processor.
type SortBufferConfig struct {
	// Size is the maximum number of items buffered in the window.
	// 0 disables buffering and passes items through unchanged.
	Size int

	// MaxWait is the maximum time to hold a partial window when the
	// producer stalls. If set, the current maximum is emitted after
	// this duration even though the window is not full, trading strict
	// window ordering for bounded latency. 0 means wait indefinitely.
	MaxWait time.Duration
}

// SortBuffer re-orders a channel stream within a sliding window. It
// buffers up to Size items in a priority heap, emits the greatest
// buffered item whenever the window is full, and drains the remainder
// in order when the input closes.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type SortBuffer[T any] struct {
	config  SortBufferConfig
	name    string
	clock   Clock
	compare func(a, b T) int
}

// NewSortBuffer creates a processor that sorts items within a sliding
// window using the natural order of T, greatest-first. The window size
// bounds both memory and how far re-ordering reaches: a late-arriving
// item is sorted against the items buffered with it. Every item passes
// through exactly once.
//
// When to use:
//   - Re-ordering almost-sorted event streams inside a pipeline
//   - Bounding the memory cost of sorting unbounded streams
//   - Absorbing small arrival-order jitter before ordered consumers
//
// Example:
//
//	// Re-order events that arrive at most 64 positions early or late.
//	sorter := sortz.NewSortBufferFunc(sortz.SortBufferConfig{
//		Size: 64,
//	}, sortz.RealClock, sortz.Reversed(cmp.Compare[int64]))
//
//	ordered := sorter.Process(ctx, events)
//	for e := range ordered {
//		handle(e) // ascending order within the window bound
//	}
//
//	// Cap latency when the producer can stall mid-window.
//	bounded := sortz.NewSortBuffer[int](sortz.SortBufferConfig{
//		Size:    64,
//		MaxWait: time.Second,
//	}, sortz.RealClock)
//
// Parameters:
//   - config: Window size and optional stall flush
//   - clock: Clock interface for time operations
//
// Returns a new SortBuffer processor.
func NewSortBuffer[T cmp.Ordered](config SortBufferConfig, clock Clock) *SortBuffer[T] {
	return NewSortBufferFunc[T](config, clock, cmp.Compare[T])
}

// NewSortBufferFunc is NewSortBuffer with an arbitrary total order.
// The comparator follows the cmp.Compare convention; the item comparing
// greatest is emitted first.
func NewSortBufferFunc[T any](config SortBufferConfig, clock Clock, compare func(a, b T) int) *SortBuffer[T] {
	return &SortBuffer[T]{
		config:  config,
		name:    "sort-buffer",
		clock:   clock,
		compare: compare,
	}
}

func (s *SortBuffer[T]) Process(ctx context.Context, in <-chan T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		if s.config.Size <= 0 {
			s.passThrough(ctx, in, out)
			return
		}

		win := newWindow(s.config.Size, s.compare)

		var timer Timer
		var timerC <-chan time.Time
		if s.config.MaxWait > 0 {
			timer = s.clock.NewTimer(s.config.MaxWait)
			timer.Stop()
			timerC = timer.C()
		}

		for {
			select {
			case <-ctx.Done():
				return

			case item, ok := <-in:
				if !ok {
					for {
						top, ok := win.Pop()
						if !ok {
							return
						}
						select {
						case out <- top:
						case <-ctx.Done():
							return
						}
					}
				}

				win.Push(item)

				if win.Len() < s.config.Size {
					if timer != nil {
						timer.Reset(s.config.MaxWait)
					}
					continue
				}

				if timer != nil {
					timer.Stop()
				}
				top, _ := win.Pop()
				select {
				case out <- top:
				case <-ctx.Done():
					return
				}
				if timer != nil && win.Len() > 0 {
					timer.Reset(s.config.MaxWait)
				}

			case <-timerC:
				top, ok := win.Pop()
				if !ok {
					continue
				}
				select {
				case out <- top:
				case <-ctx.Done():
					return
				}
				if win.Len() > 0 {
					timer.Reset(s.config.MaxWait)
				}
			}
		}
	}()

	return out
}

func (s *SortBuffer[T]) passThrough(ctx context.Context, in <-chan T, out chan<- T) {
	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-in:
			if !ok {
				return
			}
			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *SortBuffer[T]) Name() string {
	return s.name
}
