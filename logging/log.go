// Copyright 2015 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Changes from original
// - No more use of kingpin
// - No more Error Log writer
// - Extracted output setting from NewLogger
// - Source fields carry the package-relative function name
// - Added support for WithFields and WithOperation
// - Fatal and Panic entry points removed; callers return errors
// - Levels print and parse by name

/*
Example --
To log to the base logger
Base().Info("ledger committed")

To log the evaluation of one operation
logger = NewLogger()
logger.WithOperation(protocol.TransferOp, 0).Debug("fee prepared")
*/

package logging

import (
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yoyow-org/go-yoyow/protocol"
)

// Level refers to the log logging level
type Level uint32

const (
	// Panic is the highest severity. Nothing in this module logs at it;
	// it exists so that levels line up with logrus.
	Panic Level = iota
	// Fatal is reserved like Panic.
	Fatal
	// Error Level level. Used for errors that should definitely be noted.
	Error
	// Warn Level level. Transactions rolled back, stores closed uncleanly.
	Warn
	// Info Level level. Ledger lifecycle: genesis, commits.
	Info
	// Debug Level level. One entry per evaluated operation.
	Debug
)

// String returns the lower-case level name.
func (lvl Level) String() string {
	return logrus.Level(lvl).String()
}

// ParseLevel maps a level name such as "warn" to a Level.
func ParseLevel(name string) (Level, error) {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return 0, err
	}
	if lvl > logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}
	return Level(lvl), nil
}

var (
	baseLogger Logger
	once       sync.Once
)

// Init needs to be called to ensure our logging has been initialized
func Init() {
	once.Do(func() {
		// stderr, warnings and above, until a command reads its config
		baseLogger = NewLogger()
		baseLogger.SetLevel(Warn)
	})
}

func init() {
	Init()
}

// Fields maps logrus fields
type Fields = logrus.Fields

// Logger is the interface for loggers.
type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})

	Info(...interface{})
	Infof(string, ...interface{})

	Warn(...interface{})
	Warnf(string, ...interface{})

	Error(...interface{})
	Errorf(string, ...interface{})

	// With adds one key-value to every entry of the returned Logger.
	With(key string, value interface{}) Logger

	// WithFields adds several key-values at once.
	WithFields(Fields) Logger

	// WithOperation tags entries with an operation's kind and its position
	// in the enclosing transaction.
	WithOperation(op protocol.OpType, index int) Logger

	SetLevel(Level)
	IsLevelEnabled(Level) bool
	SetOutput(io.Writer)
	SetJSONFormatter()
}

type logger struct {
	entry *logrus.Entry
}

func (l logger) With(key string, value interface{}) Logger {
	return logger{l.entry.WithField(key, value)}
}

func (l logger) WithFields(fields Fields) Logger {
	return logger{l.entry.WithFields(fields)}
}

func (l logger) WithOperation(op protocol.OpType, index int) Logger {
	return logger{l.entry.WithFields(logrus.Fields{"op": string(op), "index": index})}
}

func (l logger) Debug(args ...interface{}) {
	if l.IsLevelEnabled(Debug) {
		l.source().Debug(args...)
	}
}

func (l logger) Debugf(format string, args ...interface{}) {
	if l.IsLevelEnabled(Debug) {
		l.source().Debugf(format, args...)
	}
}

func (l logger) Info(args ...interface{}) {
	l.source().Info(args...)
}

func (l logger) Infof(format string, args ...interface{}) {
	l.source().Infof(format, args...)
}

func (l logger) Warn(args ...interface{}) {
	l.source().Warn(args...)
}

func (l logger) Warnf(format string, args ...interface{}) {
	l.source().Warnf(format, args...)
}

func (l logger) Error(args ...interface{}) {
	l.source().Error(args...)
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.source().Errorf(format, args...)
}

func (l logger) SetLevel(lvl Level) {
	l.entry.Logger.SetLevel(logrus.Level(lvl))
}

func (l logger) IsLevelEnabled(lvl Level) bool {
	return l.entry.Logger.IsLevelEnabled(logrus.Level(lvl))
}

func (l logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

func (l logger) SetJSONFormatter() {
	l.entry.Logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000000Z07:00"})
}

// modulePrefix is trimmed from function names in source fields.
const modulePrefix = "github.com/yoyow-org/go-yoyow/"

// source adds the caller's file, line and function. It must be called
// directly from a logger method so that the caller is two frames up.
func (l logger) source() *logrus.Entry {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return l.entry
	}
	fields := logrus.Fields{
		"file": file[strings.LastIndex(file, "/")+1:],
		"line": line,
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		fields["function"] = strings.TrimPrefix(fn.Name(), modulePrefix)
	}
	return l.entry.WithFields(fields)
}

// Base returns the process-wide Logger.
func Base() Logger {
	return baseLogger
}

// NewLogger returns a Logger writing text to stderr at Info level.
func NewLogger() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{TimestampFormat: "2006-01-02T15:04:05.000000 -0700", FullTimestamp: true})
	return logger{logrus.NewEntry(l)}
}
