// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package processor

import (
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is used when no positive interval is configured.
const DefaultInterval = 5 * time.Second

type processorConfigs struct {
	interval     time.Duration
	limit        rate.Limit
	burst        int
	errorHandler ErrorHandler
	logger       Logger
}

func defaultConfigs() *processorConfigs {
	return &processorConfigs{
		interval: DefaultInterval,
		limit:    rate.Inf,
		logger:   NoOpLogger{},
	}
}

// ProcessorOption customizes a processor at construction time.
type ProcessorOption func(*processorConfigs)

// WithInterval sets the time between two timer-driven drains. Non-positive
// values are ignored.
func WithInterval(interval time.Duration) ProcessorOption {
	return func(c *processorConfigs) {
		if interval > 0 {
			c.interval = interval
		}
	}
}

// WithRateLimit paces the drain loop so that at most limit items are
// transformed per second, with bursts of up to burst items. Items are only
// taken off the queue once the limiter allows it.
func WithRateLimit(limit rate.Limit, burst int) ProcessorOption {
	return func(c *processorConfigs) {
		if burst < 1 {
			burst = 1
		}

		c.limit = limit
		c.burst = burst
	}
}

// WithErrorHandler registers a callback receiving every *TransformError.
func WithErrorHandler(handler ErrorHandler) ProcessorOption {
	return func(c *processorConfigs) {
		c.errorHandler = handler
	}
}

// WithLogger sets the logger. A nil logger restores the default NoOpLogger.
func WithLogger(logger Logger) ProcessorOption {
	return func(c *processorConfigs) {
		if logger == nil {
			logger = NoOpLogger{}
		}

		c.logger = logger
	}
}
