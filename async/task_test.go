// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSilentTask_Execute(t *testing.T) {
	var counter int32

	task := NewSilentTask(
		func(context.Context) error {
			atomic.AddInt32(&counter, 1)
			return nil
		},
	)

	assert.Equal(t, IsCreated, task.State())

	task.Execute(context.Background())
	// Executing twice is a no-op
	task.Execute(context.Background())

	assert.Nil(t, task.Error())
	assert.Equal(t, IsCompleted, task.State())
	assert.Equal(t, int32(1), atomic.LoadInt32(&counter))
}

func TestSilentTask_ExecuteSync(t *testing.T) {
	errTest := errors.New("test")

	task := NewSilentTask(
		func(context.Context) error {
			return errTest
		},
	)

	task.ExecuteSync(context.Background())

	assert.Equal(t, IsCompleted, task.State())
	assert.Equal(t, errTest, task.Error())
}

func TestSilentTask_Cancel(t *testing.T) {
	scenarios := []struct {
		desc string
		test func(t *testing.T)
	}{
		{
			desc: "cancel before execute",
			test: func(t *testing.T) {
				var ran int32
				task := NewSilentTask(
					func(context.Context) error {
						atomic.StoreInt32(&ran, 1)
						return nil
					},
				)

				task.Cancel()
				task.Execute(context.Background())

				assert.Equal(t, context.Canceled, task.Error())
				assert.Equal(t, IsCancelled, task.State())
				assert.Equal(t, int32(0), atomic.LoadInt32(&ran))
			},
		},
		{
			desc: "cancel while running",
			test: func(t *testing.T) {
				started := make(chan struct{})
				task := NewSilentTask(
					func(ctx context.Context) error {
						close(started)
						<-ctx.Done()
						return ctx.Err()
					},
				)

				task.Execute(context.Background())
				<-started

				task.Cancel()
				task.Cancel()

				assert.Equal(t, context.Canceled, task.Error())
				assert.Equal(t, IsCancelled, task.State())
			},
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.desc, sc.test)
	}
}

func TestForkJoinFailFast(t *testing.T) {
	errTest := errors.New("test")

	tasks := NewSilentTasks(
		func(context.Context) error {
			return errTest
		},
		func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
				return nil
			}
		},
	)

	err := ForkJoinFailFast(context.Background(), tasks)

	assert.Equal(t, errTest, err)
	assert.Equal(t, context.Canceled, tasks[1].Error(), "The slow task should observe cancellation")
}

func TestSilentTask_CancelBeforeExecute(t *testing.T) {
	work := func(ctx context.Context) error {
		return nil
	}

	tasks := NewSilentTasks(work, work)
	for _, task := range tasks {
		task.Cancel()
		task.Wait()
	}

	for _, task := range tasks {
		assert.Equal(t, IsCancelled, task.State())
	}
}
