// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package processor

import (
	"context"

	"github.com/pkg/errors"
)

// drain transforms pending items until the queue is observed empty or ctx is
// done, and returns how many items were taken off the queue. An item is only
// dequeued once it is certain to be transformed, so stopping early never
// loses anything.
func (p *processor[D, O]) drain(ctx context.Context) int {
	p.drainLock.Lock()
	defer p.drainLock.Unlock()

	drained := 0
	for ctx.Err() == nil {
		if p.limiter != nil && !p.input.IsEmpty() {
			if err := p.limiter.Wait(ctx); err != nil {
				break
			}
		}

		item, ok := p.input.Dequeue()
		if !ok {
			break
		}

		p.processOne(context.WithoutCancel(ctx), item)
		drained++
	}

	return drained
}

func (p *processor[D, O]) processOne(ctx context.Context, item D) {
	out, err := p.safeTransform(ctx, item)
	if err != nil {
		p.counters.failed.Add(1)
		p.report(
			&TransformError{
				Item: item,
				Err:  err,
			},
		)

		return
	}

	p.output.Append(out)
	p.counters.processed.Add(1)
}

func (p *processor[D, O]) safeTransform(ctx context.Context, item D) (out O, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrTransformPanicked, "%v", r)
		}
	}()

	return p.transform.Transform(ctx, item)
}

func (p *processor[D, O]) report(err error) {
	p.logger.Error("%v", err)

	if p.errorHandler == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("error handler panicked: %v", r)
		}
	}()

	p.errorHandler(err)
}
