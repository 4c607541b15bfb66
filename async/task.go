// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package async

import (
	"context"
	"sync"
	"sync/atomic"
)

// State represents the lifecycle state of a task.
type State int32

const (
	IsCreated State = iota
	IsRunning
	IsCompleted
	IsCancelled
)

func (s State) String() string {
	switch s {
	case IsCreated:
		return "created"
	case IsRunning:
		return "running"
	case IsCompleted:
		return "completed"
	case IsCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// SilentWork is the unit of work executed by a SilentTask.
type SilentWork func(ctx context.Context) error

// SilentTask is a background job that produces no result other than an error.
type SilentTask interface {
	// Execute starts this task in a new goroutine and returns immediately.
	Execute(ctx context.Context) SilentTask
	// ExecuteSync runs this task on the calling goroutine and returns once it
	// has completed. If the task was already started, it waits instead.
	ExecuteSync(ctx context.Context) SilentTask
	// Wait blocks until this task has completed or was cancelled before starting.
	Wait()
	// Cancel cancels the context given to a running task, or prevents a task
	// that has not started yet from ever running.
	Cancel()
	// State returns the current state of this task.
	State() State
	// Error waits for this task to complete and returns its error.
	Error() error
}

type silentTask struct {
	state      int32
	action     SilentWork
	cancelled  chan struct{}
	cancelOnce sync.Once
	done       chan struct{}
	err        error
}

// NewSilentTask creates a task which runs the given action once executed.
func NewSilentTask(action SilentWork) SilentTask {
	return &silentTask{
		action:    action,
		cancelled: make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// NewSilentTasks creates one task per given action.
func NewSilentTasks(actions ...SilentWork) []SilentTask {
	tasks := make([]SilentTask, len(actions))
	for i, action := range actions {
		tasks[i] = NewSilentTask(action)
	}

	return tasks
}

func (t *silentTask) Execute(ctx context.Context) SilentTask {
	if t.changeState(IsCreated, IsRunning) {
		go t.run(ctx)
	}

	return t
}

func (t *silentTask) ExecuteSync(ctx context.Context) SilentTask {
	if t.changeState(IsCreated, IsRunning) {
		t.run(ctx)
		return t
	}

	t.Wait()
	return t
}

func (t *silentTask) Wait() {
	<-t.done
}

func (t *silentTask) Cancel() {
	t.cancelOnce.Do(
		func() {
			close(t.cancelled)
		},
	)

	// A task that never started completes right away
	if t.changeState(IsCreated, IsCancelled) {
		t.err = context.Canceled
		close(t.done)
	}
}

func (t *silentTask) State() State {
	return State(atomic.LoadInt32(&t.state))
}

func (t *silentTask) Error() error {
	t.Wait()
	return t.err
}

func (t *silentTask) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-t.cancelled:
			cancel()
		case <-ctx.Done():
		}
	}()

	err := t.action(ctx)

	finalState := IsCompleted
	select {
	case <-t.cancelled:
		finalState = IsCancelled
	default:
	}

	t.err = err
	atomic.StoreInt32(&t.state, int32(finalState))
	close(t.done)
}

func (t *silentTask) changeState(from, to State) bool {
	return atomic.CompareAndSwapInt32(&t.state, int32(from), int32(to))
}
