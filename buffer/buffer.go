// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package buffer

import (
	"iter"
	"sync"

	"github.com/gammazero/deque"
)

// Buffer is an unbounded, append-ordered collection which is safe for
// concurrent use. Readers iterate over snapshots so they never observe a
// partially applied append.
type Buffer[T any] struct {
	mu    sync.RWMutex
	items *deque.Deque[T]
}

// New returns an empty Buffer.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{
		items: deque.New[T](),
	}
}

// Append adds the given item after every item appended before it.
func (b *Buffer[T]) Append(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.items == nil {
		b.items = deque.New[T]()
	}

	b.items.PushBack(item)
}

// Len returns the number of buffered items.
func (b *Buffer[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.items == nil {
		return 0
	}

	return b.items.Len()
}

// At returns the item at the given position, counting from the oldest.
func (b *Buffer[T]) At(i int) (T, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.items == nil || i < 0 || i >= b.items.Len() {
		var temp T
		return temp, false
	}

	return b.items.At(i), true
}

// Snapshot copies the items buffered at the time of the call, oldest first.
func (b *Buffer[T]) Snapshot() []T {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.items == nil {
		return []T{}
	}

	result := make([]T, b.items.Len())
	for i := range result {
		result[i] = b.items.At(i)
	}

	return result
}

// All returns a sequence over the items buffered at the moment All is
// called. Items appended afterwards are never yielded by this sequence, and
// ranging over it more than once yields the same items every time. Calling
// All again takes a fresh snapshot.
func (b *Buffer[T]) All() iter.Seq[T] {
	snapshot := b.Snapshot()

	return func(yield func(T) bool) {
		for _, item := range snapshot {
			if !yield(item) {
				return
			}
		}
	}
}

// Clear removes every buffered item and returns how many were removed.
func (b *Buffer[T]) Clear() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.items == nil {
		return 0
	}

	removed := b.items.Len()
	b.items.Clear()

	return removed
}
