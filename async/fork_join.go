// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForkJoinFailFast runs the given tasks in parallel and returns as soon as
// one of them fails, or once ALL have completed successfully. The context
// given to the remaining tasks is cancelled on the first failure.
//
// Note: task cannot be nil
func ForkJoinFailFast[T SilentTask](ctx context.Context, tasks []T) error {
	g, groupCtx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		g.Go(
			func() error {
				return t.ExecuteSync(groupCtx).Error()
			},
		)
	}

	return g.Wait()
}
