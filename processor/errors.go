// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package processor

import (
	"errors"
)

var (
	ErrAlreadyRunning    = errors.New("processor is already running")
	ErrTransformPanicked = errors.New("transform panicked")
	ErrInvalidConfig     = errors.New("invalid processor config")
)

// ErrorHandler receives failures which happen on the background goroutine and
// therefore cannot be returned to the caller. It is called synchronously by
// the drain loop, so it should return quickly.
type ErrorHandler func(err error)

// TransformError is reported when transforming a single item fails or panics.
// The item is skipped and draining carries on with the next one.
type TransformError struct {
	// Item is the input which could not be transformed.
	Item any
	// Err is the error returned by the transform, or an error wrapping
	// ErrTransformPanicked when it panicked.
	Err error
}

// Error implements error.
func (e *TransformError) Error() string {
	return "failed to transform item: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TransformError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error, for github.com/pkg/errors.
func (e *TransformError) Cause() error {
	return e.Err
}
