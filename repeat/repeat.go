// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package repeat

import (
	"context"
	"time"

	"github.com/jamestrandung/go-background/async"

	"github.com/pkg/errors"
)

// ErrActionPanicked is the cause of the error returned by a repeating task
// whose action panicked.
var ErrActionPanicked = errors.New("panic repeating task")

// Repeat executes the given action asynchronously on a pre-determined interval, the
// first execution happening one interval after the output task is executed. The
// repeating process can be stopped by cancelling the output task. All errors and
// panics must be handled inside the action if callers want the process to continue.
// Otherwise, the repeat will stop.
func Repeat(interval time.Duration, action async.SilentWork) async.SilentTask {
	return repeat(interval, false, action)
}

// Every is like Repeat but executes the action immediately once the output task
// is executed, then on every interval.
//
// Executions never overlap. When one takes longer than the interval, the next
// execution starts as soon as it returns and the ticks missed in between are
// dropped rather than queued up.
func Every(interval time.Duration, action async.SilentWork) async.SilentTask {
	return repeat(interval, true, action)
}

func repeat(interval time.Duration, immediate bool, action async.SilentWork) async.SilentTask {
	safeAction := func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Wrapf(ErrActionPanicked, "%v", r)
			}
		}()

		return action(ctx)
	}

	return async.NewSilentTask(
		func(ctx context.Context) error {
			if immediate {
				if err := ctx.Err(); err != nil {
					return err
				}

				if err := safeAction(ctx); err != nil {
					return err
				}
			}

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return ctx.Err()

				case <-ticker.C:
					// Prefer stopping when both cases are ready
					if ctx.Err() != nil {
						return ctx.Err()
					}

					if err := safeAction(ctx); err != nil {
						return err
					}
				}
			}
		},
	)
}
