// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package processor

import "sync/atomic"

// Stats is a point-in-time view of what a processor has done so far.
type Stats struct {
	// Enqueued is the number of items accepted by Enqueue.
	Enqueued uint64
	// Processed is the number of items transformed and appended to the output buffer.
	Processed uint64
	// Failed is the number of items whose transform returned an error or panicked.
	Failed uint64
	// Discarded is the number of pending items dropped by Stop without being transformed.
	Discarded uint64
	// Ticks is the number of timer-driven drains started.
	Ticks uint64
}

type counters struct {
	enqueued  atomic.Uint64
	processed atomic.Uint64
	failed    atomic.Uint64
	discarded atomic.Uint64
	ticks     atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Enqueued:  c.enqueued.Load(),
		Processed: c.processed.Load(),
		Failed:    c.failed.Load(),
		Discarded: c.discarded.Load(),
		Ticks:     c.ticks.Load(),
	}
}
