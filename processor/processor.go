// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

// Package processor defers the processing of items to a single background
// goroutine. Producers enqueue items without blocking, and on every tick of a
// periodic timer the queue is drained to exhaustion: each item is transformed
// and the result is appended to an output buffer that consumers can read at
// any time.
package processor

import (
	"context"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jamestrandung/go-background/async"
	"github.com/jamestrandung/go-background/buffer"
	"github.com/jamestrandung/go-background/queue"
	"github.com/jamestrandung/go-background/repeat"

	"github.com/twinj/uuid"
	"golang.org/x/time/rate"
)

// State is the lifecycle state of a processor.
type State int32

const (
	// Stopped means no background activity. The queue remains usable.
	Stopped State = iota
	// Running means a periodic timer is draining the queue.
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Processor accumulates items of type D and transforms them into items of type
// O in the background, one tick of its timer at a time.
//
// A processor starts Stopped. Once started, it MUST be stopped with Stop,
// Shutdown or Abort before being discarded, otherwise its timer goroutine
// keeps running.
type Processor[D any, O any] interface {
	// Start arms the timer, the first drain happening right away. Starting a
	// running processor returns ErrAlreadyRunning and leaves it untouched.
	Start() error
	// Stop cancels the timer and waits for an in-flight drain to return. When
	// finish is true, pending items are then drained on the calling goroutine.
	// In both cases, whatever is still queued afterwards is discarded.
	// On a stopped processor, Stop(true) only flushes the queue and
	// Stop(false) does nothing.
	Stop(finish bool)
	// Shutdown is Stop(true).
	Shutdown()
	// Abort is Stop(false).
	Abort()
	// Process drains the queue on the calling goroutine, regardless of the
	// current state. It returns early when ctx is done.
	Process(ctx context.Context)

	// Enqueue adds an item to the back of the queue. It never fails.
	Enqueue(item D)
	// Size returns the number of pending items.
	Size() int
	// IsEmpty reports whether no item is pending. The answer may be stale.
	IsEmpty() bool
	// Peek returns the oldest pending item without removing it.
	Peek() (D, bool)
	// Pending returns a copy of the pending items, oldest first.
	Pending() []D

	// Outputs returns a sequence over the outputs buffered at the time of the call.
	Outputs() iter.Seq[O]
	// OutputBuffer returns the output buffer itself. Consumers may read,
	// append to or clear it.
	OutputBuffer() *buffer.Buffer[O]

	// State returns the current lifecycle state.
	State() State
	// IsRunning is State() == Running.
	IsRunning() bool
	// Interval returns the time between two timer-driven drains.
	Interval() time.Duration
	// ID returns the unique identifier assigned at construction.
	ID() string
	// Stats returns counters describing the work done so far.
	Stats() Stats
}

type processor[D any, O any] struct {
	*processorConfigs
	id        string
	transform Transformer[D, O]
	limiter   *rate.Limiter
	input     *queue.Queue[D]
	output    *buffer.Buffer[O]
	counters  counters

	lifecycle sync.Mutex       // Serializes Start and Stop
	drainLock sync.Mutex       // Held by whichever drain is in flight
	state     atomic.Int32     // Holds a State
	ticker    async.SilentTask // Owned by the Running state, nil when Stopped
}

// New returns a stopped processor which transforms items using the given transform.
func New[D any, O any](transform Transformer[D, O], options ...ProcessorOption) Processor[D, O] {
	configs := defaultConfigs()
	for _, o := range options {
		o(configs)
	}

	id := uuid.NewV4().String()
	configs.logger = withPrefix(configs.logger, "processor "+id+": ")

	p := &processor[D, O]{
		processorConfigs: configs,
		id:               id,
		transform:        transform,
		input:            queue.New[D](),
		output:           buffer.New[O](),
	}

	if configs.limit != rate.Inf {
		p.limiter = rate.NewLimiter(configs.limit, configs.burst)
	}

	return p
}

func (p *processor[D, O]) Start() error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	if p.ticker != nil {
		return ErrAlreadyRunning
	}

	p.ticker = repeat.Every(p.interval, p.tick).Execute(context.Background())
	p.state.Store(int32(Running))

	p.logger.Info("started, interval %s", p.interval)

	return nil
}

func (p *processor[D, O]) Stop(finish bool) {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	ticker := p.ticker
	if ticker == nil {
		// Nothing to tear down, only a flush is honoured
		if finish {
			p.flush()
		}

		return
	}

	p.ticker = nil

	// Cancel then join so that the final flush never races a tick
	ticker.Cancel()
	ticker.Wait()

	if finish {
		p.flush()
	}

	if discarded := p.input.Clear(); discarded > 0 {
		p.counters.discarded.Add(uint64(discarded))
		p.logger.Warn("discarded %d pending items", discarded)
	}

	p.state.Store(int32(Stopped))
	p.logger.Info("stopped")
}

func (p *processor[D, O]) Shutdown() {
	p.Stop(true)
}

func (p *processor[D, O]) Abort() {
	p.Stop(false)
}

func (p *processor[D, O]) Process(ctx context.Context) {
	p.drain(ctx)
}

func (p *processor[D, O]) Enqueue(item D) {
	p.input.Enqueue(item)
	p.counters.enqueued.Add(1)
}

func (p *processor[D, O]) Size() int {
	return p.input.Len()
}

func (p *processor[D, O]) IsEmpty() bool {
	return p.input.IsEmpty()
}

func (p *processor[D, O]) Peek() (D, bool) {
	return p.input.Peek()
}

func (p *processor[D, O]) Pending() []D {
	return p.input.Snapshot()
}

func (p *processor[D, O]) Outputs() iter.Seq[O] {
	return p.output.All()
}

func (p *processor[D, O]) OutputBuffer() *buffer.Buffer[O] {
	return p.output
}

func (p *processor[D, O]) State() State {
	return State(p.state.Load())
}

func (p *processor[D, O]) IsRunning() bool {
	return p.State() == Running
}

func (p *processor[D, O]) Interval() time.Duration {
	return p.interval
}

func (p *processor[D, O]) ID() string {
	return p.id
}

func (p *processor[D, O]) Stats() Stats {
	return p.counters.snapshot()
}

func (p *processor[D, O]) flush() {
	drained := p.drain(context.Background())
	p.logger.Debug("flushed %d pending items", drained)
}

// tick is run by the timer goroutine. It never returns an error so that the
// timer only ends when cancelled by Stop.
func (p *processor[D, O]) tick(ctx context.Context) error {
	p.counters.ticks.Add(1)
	p.drain(ctx)

	return nil
}
