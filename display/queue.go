package display

import "sync"

// Queue is an unbounded FIFO shared between a producer subsystem and a
// consumer loop. Pop blocks until an item arrives or the queue is aborted;
// after Abort every blocked and future Pop returns immediately with ok
// false, so shutdown never strands a consumer.
type Queue[T any] struct {
	mu      sync.Mutex
	cond    *sync.Cond
	items   []T
	aborted bool
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends an item and wakes one waiter. Items pushed after Abort are
// dropped.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.aborted {
		return
	}
	q.items = append(q.items, item)
	q.cond.Signal()
}

// Pop removes and returns the oldest item, blocking while the queue is
// empty. Returns ok false once the queue has been aborted.
func (q *Queue[T]) Pop() (item T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.aborted {
			return item, false
		}
		q.cond.Wait()
	}

	item = q.items[0]
	q.items = q.items[1:]
	return item, true
}

// TryPop removes and returns the oldest item without blocking.
func (q *Queue[T]) TryPop() (item T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return item, false
	}
	item = q.items[0]
	q.items = q.items[1:]
	return item, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Abort drains the queue and releases every blocked consumer. One-way.
func (q *Queue[T]) Abort() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.aborted = true
	q.items = nil
	q.cond.Broadcast()
}

// Aborted reports whether Abort has been called.
func (q *Queue[T]) Aborted() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.aborted
}
