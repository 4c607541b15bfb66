// Copyright (c) 2022 James Tran Dung, All rights reserved.
// Use of this source code is governed by an MIT-style license that can be found in the LICENSE file

// The leveled logger below was adapted from github.com/MasterOfBinary/gobatch (batch/logger.go).

package processor

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var logLevelNames = map[LogLevel]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}

	return "UNKNOWN"
}

// ParseLogLevel parses a level name such as "info" or "WARN".
func ParseLogLevel(name string) (LogLevel, error) {
	for level, levelName := range logLevelNames {
		if strings.EqualFold(name, levelName) {
			return level, nil
		}
	}

	return LogLevelDebug, errors.Wrapf(ErrInvalidConfig, "unknown log level %q", name)
}

// Logger receives lifecycle and failure messages from a processor. Messages
// are formatted with fmt.Sprintf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoOpLogger discards everything. It is the default logger.
type NoOpLogger struct{}

func (NoOpLogger) Debug(format string, args ...interface{}) {}

func (NoOpLogger) Info(format string, args ...interface{}) {}

func (NoOpLogger) Warn(format string, args ...interface{}) {}

func (NoOpLogger) Error(format string, args ...interface{}) {}

// StdLogger writes through standard library loggers, Debug and Info to Out
// and Warn and Error to Err. Every line is tagged with its level.
type StdLogger struct {
	MinLevel LogLevel
	Out      *log.Logger
	Err      *log.Logger
}

// NewStdLogger returns a StdLogger writing to stdout and stderr.
func NewStdLogger(minLevel LogLevel) *StdLogger {
	return &StdLogger{
		MinLevel: minLevel,
		Out:      log.New(os.Stdout, "", log.LstdFlags),
		Err:      log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (s *StdLogger) write(level LogLevel, format string, args ...interface{}) {
	if level < s.MinLevel {
		return
	}

	target := s.Err
	if level < LogLevelWarn {
		target = s.Out
	}

	target.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (s *StdLogger) Debug(format string, args ...interface{}) {
	s.write(LogLevelDebug, format, args...)
}

func (s *StdLogger) Info(format string, args ...interface{}) {
	s.write(LogLevelInfo, format, args...)
}

func (s *StdLogger) Warn(format string, args ...interface{}) {
	s.write(LogLevelWarn, format, args...)
}

func (s *StdLogger) Error(format string, args ...interface{}) {
	s.write(LogLevelError, format, args...)
}

// prefixedLogger tags every message with a fixed prefix, e.g. the processor ID.
type prefixedLogger struct {
	Logger
	prefix string
}

func withPrefix(logger Logger, prefix string) Logger {
	if _, ok := logger.(NoOpLogger); ok {
		return logger
	}

	return prefixedLogger{
		Logger: logger,
		prefix: prefix,
	}
}

func (l prefixedLogger) Debug(format string, args ...interface{}) {
	l.Logger.Debug(l.prefix+format, args...)
}

func (l prefixedLogger) Info(format string, args ...interface{}) {
	l.Logger.Info(l.prefix+format, args...)
}

func (l prefixedLogger) Warn(format string, args ...interface{}) {
	l.Logger.Warn(l.prefix+format, args...)
}

func (l prefixedLogger) Error(format string, args ...interface{}) {
	l.Logger.Error(l.prefix+format, args...)
}
