// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_FIFO(t *testing.T) {
	q := New[string]()

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("a")

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"a", "b", "a"}, q.Snapshot())

	for _, expected := range []string{"a", "b", "a"} {
		v, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, expected, v)
	}

	v, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.True(t, q.IsEmpty())
}

func TestQueue_ZeroValue(t *testing.T) {
	var q Queue[int]

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Clear())
	assert.Empty(t, q.Snapshot())

	_, ok := q.Peek()
	assert.False(t, ok)

	q.Enqueue(7)

	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestQueue_Peek(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	v, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, q.Len(), "Peek must not remove the item")
}

func TestQueue_Clear(t *testing.T) {
	q := New[int]()
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}

	assert.Equal(t, 5, q.Clear())
	assert.True(t, q.IsEmpty())

	q.Enqueue(42)

	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 42, v, "Items enqueued after Clear should survive")
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	const producers = 50
	const perProducer = 20

	q := New[int]()

	var wg sync.WaitGroup
	wg.Add(producers)

	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()

			for i := 0; i < perProducer; i++ {
				q.Enqueue(p*perProducer + i)
			}
		}(p)
	}

	wg.Wait()

	assert.Equal(t, producers*perProducer, q.Len())

	seen := make(map[int]int)
	lastPerProducer := make(map[int]int)
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}

		seen[v]++

		producer := v / perProducer
		if last, ok := lastPerProducer[producer]; ok {
			assert.Less(t, last, v, "Relative order of a single producer must be kept")
		}

		lastPerProducer[producer] = v
	}

	assert.Equal(t, producers*perProducer, len(seen))
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}
