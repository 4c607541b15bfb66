// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package processor

import "context"

// Transformer converts one input item into one output item. It is called on
// the drain goroutine, one item at a time, and must not block indefinitely.
// The given context is never cancelled by the processor.
//
//go:generate mockery --name Transformer --case underscore --inpackage
type Transformer[D any, O any] interface {
	Transform(ctx context.Context, item D) (O, error)
}

// TransformFunc adapts an ordinary function to the Transformer interface.
type TransformFunc[D any, O any] func(ctx context.Context, item D) (O, error)

// Transform calls fn(ctx, item).
func (fn TransformFunc[D, O]) Transform(ctx context.Context, item D) (O, error) {
	return fn(ctx, item)
}

// Infallible adapts a function which cannot fail to the Transformer interface.
func Infallible[D any, O any](fn func(D) O) Transformer[D, O] {
	return TransformFunc[D, O](
		func(_ context.Context, item D) (O, error) {
			return fn(item), nil
		},
	)
}
