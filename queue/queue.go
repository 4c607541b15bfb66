// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package queue

import (
	"sync"

	"github.com/gammazero/deque"
)

// Queue is an unbounded FIFO queue which is safe for any number of concurrent
// producers. Items are handed out in insertion order, equal values are kept
// as distinct entries.
type Queue[T any] struct {
	mu    sync.Mutex
	items *deque.Deque[T]
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		items: deque.New[T](),
	}
}

// lazyInit makes the zero value usable. Callers must hold the lock.
func (q *Queue[T]) lazyInit() {
	if q.items == nil {
		q.items = deque.New[T]()
	}
}

// Enqueue appends the given item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.lazyInit()
	q.items.PushBack(item)
}

// Dequeue removes and returns the oldest item. The returned bool is false
// when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items == nil || q.items.Len() == 0 {
		var temp T
		return temp, false
	}

	return q.items.PopFront(), true
}

// Peek returns the oldest item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items == nil || q.items.Len() == 0 {
		var temp T
		return temp, false
	}

	return q.items.Front(), true
}

// Len returns the number of pending items at the time of the call.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items == nil {
		return 0
	}

	return q.items.Len()
}

// IsEmpty reports whether the queue was empty at the time of the call. The
// answer may be stale as soon as it is returned.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear discards every item currently in the queue and returns how many were
// discarded. Items enqueued afterwards are unaffected.
func (q *Queue[T]) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items == nil {
		return 0
	}

	discarded := q.items.Len()
	q.items.Clear()

	return discarded
}

// Snapshot returns a copy of the pending items in FIFO order.
func (q *Queue[T]) Snapshot() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items == nil {
		return []T{}
	}

	result := make([]T, q.items.Len())
	for i := range result {
		result[i] = q.items.At(i)
	}

	return result
}
