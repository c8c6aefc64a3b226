package notify

import (
	"sync"
	"sync/atomic"
)

// UnboundedQueue[T] represents an unbounded thread-safe FIFO queue
// fed through Push and drained from the Out channel
type UnboundedQueue[T any] struct {
	Out <-chan T // Receive-only channel for consumers

	input  chan T
	output chan T
	wg     sync.WaitGroup
	mu     sync.Mutex // guards closed and sends on input
	closed bool
	size   atomic.Int64
}

// NewUnboundedQueue creates a new unbounded queue and starts its manager goroutine
func NewUnboundedQueue[T any]() *UnboundedQueue[T] {
	input := make(chan T, 100)  // Buffer size is just for performance
	output := make(chan T, 100) // Buffer size is just for performance

	q := &UnboundedQueue[T]{
		Out:    output,
		input:  input,
		output: output,
	}

	q.wg.Add(1)
	go q.manage()

	return q
}

// manage moves items from input to output. Once input is closed, the remaining
// items are still delivered before output is closed.
func (q *UnboundedQueue[T]) manage() {
	defer q.wg.Done()
	defer close(q.output)

	items := make([]T, 0)
	input := q.input

	for {
		if input == nil && len(items) == 0 {
			return
		}

		var out chan T
		var first T
		if len(items) > 0 {
			out = q.output
			first = items[0]
		}

		select {
		case item, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			items = append(items, item)
			q.setSize(len(items))

		case out <- first:
			items = items[1:]
			q.setSize(len(items))
		}
	}
}

func (q *UnboundedQueue[T]) setSize(n int) {
	q.size.Store(int64(n))
}

// Push enqueues an item unless the queue is closed.
func (q *UnboundedQueue[T]) Push(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.input <- item
	return true
}

// Size returns the approximate number of elements in the queue
func (q *UnboundedQueue[T]) Size() int {
	return int(q.size.Load()) + len(q.input) + len(q.output)
}

// Close stops accepting items. Items already queued stay readable from Out until it is closed.
func (q *UnboundedQueue[T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.input)
	q.mu.Unlock()
}

// Wait blocks until the queue has handed out every item and closed Out.
func (q *UnboundedQueue[T]) Wait() {
	q.wg.Wait()
}
