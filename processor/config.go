// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

package processor

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// Config is the file representation of the processor options, e.g.
//
//	interval: 250ms
//	rate_limit: 100
//	burst: 10
//	log_level: info
type Config struct {
	// Interval between two timer-driven drains. Zero means DefaultInterval.
	Interval time.Duration `yaml:"interval"`
	// RateLimit is the maximum number of items transformed per second. Zero
	// means unlimited.
	RateLimit float64 `yaml:"rate_limit"`
	// Burst is the number of items which may be transformed back to back
	// under RateLimit. Defaults to 1.
	Burst int `yaml:"burst"`
	// LogLevel, when set, makes the processor log to stdout and stderr from
	// that level up. Empty means no logging.
	LogLevel string `yaml:"log_level"`
}

// ParseConfig decodes and validates a YAML config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal processor config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads the YAML config at the given path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read processor config %s", path)
	}

	return ParseConfig(data)
}

// Validate rejects negative values.
func (c Config) Validate() error {
	if c.Interval < 0 {
		return errors.Wrapf(ErrInvalidConfig, "interval must not be negative, got %s", c.Interval)
	}

	if c.RateLimit < 0 {
		return errors.Wrapf(ErrInvalidConfig, "rate_limit must not be negative, got %v", c.RateLimit)
	}

	if c.Burst < 0 {
		return errors.Wrapf(ErrInvalidConfig, "burst must not be negative, got %d", c.Burst)
	}

	if c.LogLevel != "" {
		if _, err := ParseLogLevel(c.LogLevel); err != nil {
			return err
		}
	}

	return nil
}

// Options converts this config into processor options.
func (c Config) Options() []ProcessorOption {
	options := []ProcessorOption{
		WithInterval(c.Interval),
	}

	if c.RateLimit > 0 {
		options = append(options, WithRateLimit(rate.Limit(c.RateLimit), c.Burst))
	}

	if level, err := ParseLogLevel(c.LogLevel); err == nil {
		options = append(options, WithLogger(NewStdLogger(level)))
	}

	return options
}
