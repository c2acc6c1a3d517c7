package sortz

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestSortBuffer_Name(t *testing.T) {
	buffer := NewSortBuffer[int](SortBufferConfig{Size: 2}, RealClock)
	if buffer.Name() != "sort-buffer" {
		t.Errorf("expected name 'sort-buffer', got %q", buffer.Name())
	}
}

func TestSortBuffer(t *testing.T) {
	buffer := NewSortBuffer[int](SortBufferConfig{Size: 2}, RealClock)
	ctx := context.Background()

	in := make(chan int, 4)
	for _, v := range []int{4, 2, 3, 1} {
		in <- v
	}
	close(in)

	out := buffer.Process(ctx, in)

	var got []int
	for v := range out {
		got = append(got, v)
	}

	want := []int{4, 3, 2, 1}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortBufferDrainsOnClose(t *testing.T) {
	buffer := NewSortBuffer[int](SortBufferConfig{Size: 10}, RealClock)
	ctx := context.Background()

	in := make(chan int, 4)
	for _, v := range []int{2, 3, 4, 1} {
		in <- v
	}
	close(in)

	out := buffer.Process(ctx, in)

	var got []int
	for v := range out {
		got = append(got, v)
	}

	// Window never fills, so everything is emitted by the close drain,
	// fully sorted.
	want := []int{4, 3, 2, 1}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortBufferReversed(t *testing.T) {
	buffer := NewSortBufferFunc(SortBufferConfig{Size: 2}, RealClock, Reversed(cmp.Compare[int]))
	ctx := context.Background()

	in := make(chan int, 4)
	for _, v := range []int{1, 4, 2, 3} {
		in <- v
	}
	close(in)

	out := buffer.Process(ctx, in)

	var got []int
	for v := range out {
		got = append(got, v)
	}

	want := []int{1, 2, 3, 4}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortBufferZeroSizePassThrough(t *testing.T) {
	buffer := NewSortBuffer[int](SortBufferConfig{}, RealClock)
	ctx := context.Background()

	in := make(chan int, 4)
	for _, v := range []int{4, 2, 3, 1} {
		in <- v
	}
	close(in)

	out := buffer.Process(ctx, in)

	var got []int
	for v := range out {
		got = append(got, v)
	}

	want := []int{4, 2, 3, 1}
	if !slices.Equal(got, want) {
		t.Errorf("expected pass-through %v, got %v", want, got)
	}
}

func TestSortBufferContextCancel(t *testing.T) {
	buffer := NewSortBuffer[int](SortBufferConfig{Size: 4}, RealClock)
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan int)
	out := buffer.Process(ctx, in)

	in <- 1
	in <- 2
	cancel()

	// Buffered items are discarded, the output just closes.
	for range out {
	}
}

func TestSortBufferMaxWaitFlush(t *testing.T) {
	clock := clockz.NewFakeClock()
	buffer := NewSortBuffer[int](SortBufferConfig{
		Size:    3,
		MaxWait: 100 * time.Millisecond,
	}, clock)
	ctx := context.Background()

	in := make(chan int)
	out := buffer.Process(ctx, in)

	in <- 1
	in <- 2

	// Nothing emitted while the window is partial and the timer has
	// not fired.
	select {
	case v := <-out:
		t.Errorf("unexpected item before MaxWait: %d", v)
	case <-time.After(10 * time.Millisecond):
	}

	clock.Advance(100 * time.Millisecond)
	clock.BlockUntilReady()

	if v := <-out; v != 2 {
		t.Errorf("expected flushed maximum 2, got %d", v)
	}

	close(in)

	if v := <-out; v != 1 {
		t.Errorf("expected drained 1, got %d", v)
	}

	if _, ok := <-out; ok {
		t.Error("expected output channel to be closed")
	}
}

func TestSortBufferMaxWaitStillSortsFullWindows(t *testing.T) {
	clock := clockz.NewFakeClock()
	buffer := NewSortBuffer[int](SortBufferConfig{
		Size:    2,
		MaxWait: time.Second,
	}, clock)
	ctx := context.Background()

	in := make(chan int, 4)
	for _, v := range []int{3, 4, 2, 1} {
		in <- v
	}
	close(in)

	out := buffer.Process(ctx, in)

	var got []int
	for v := range out {
		got = append(got, v)
	}

	want := []int{4, 3, 2, 1}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// Example demonstrates re-ordering a stream inside a channel pipeline.
func ExampleSortBuffer() {
	ctx := context.Background()

	buffer := NewSortBuffer[int](SortBufferConfig{Size: 2}, RealClock)

	in := make(chan int, 4)
	for _, v := range []int{4, 2, 3, 1} {
		in <- v
	}
	close(in)

	for v := range buffer.Process(ctx, in) {
		fmt.Println(v)
	}

	// Output:
	// 4
	// 3
	// 2
	// 1
}
