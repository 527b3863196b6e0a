// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-yoyow
//
// go-yoyow is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-yoyow is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-yoyow.  If not, see <https://www.gnu.org/licenses/>.

// Package serr provides errors that carry key/value attributes alongside
// their message, so callers can report the offending values without
// parsing strings.
package serr

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/exp/slog"
)

// Error is a structured error.
type Error struct {
	Msg     string
	Attrs   map[string]any
	Wrapped error
}

// New creates a new structured error object using the supplied message and
// key/value pairs. Keys must be strings.
func New(msg string, pairs ...any) *Error {
	attrs := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs[pairs[i].(string)] = pairs[i+1]
	}
	return &Error{Msg: msg, Attrs: attrs}
}

// Wrap creates a structured error around err, keeping its message.
func Wrap(err error, pairs ...any) *Error {
	e := New(err.Error(), pairs...)
	e.Wrapped = err
	return e
}

// Error returns the message followed by the attributes in key order, in
// slog text form.
func (e *Error) Error() string {
	if len(e.Attrs) == 0 {
		return e.Msg
	}
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, e.Attrs[k])
	}

	var buf strings.Builder
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.New(h).Info("", args...)
	attrs := strings.TrimSpace(buf.String())
	if e.Msg == "" {
		return attrs
	}
	return e.Msg + ": " + attrs
}

// Attr returns the attribute stored under key anywhere in err's chain.
func Attr(err error, key string) (any, bool) {
	var se *Error
	for err != nil {
		if !errors.As(err, &se) {
			return nil, false
		}
		if v, ok := se.Attrs[key]; ok {
			return v, true
		}
		err = se.Wrapped
	}
	return nil, false
}

// Unwrap returns the inner error, if it exists.
func (e *Error) Unwrap() error {
	return e.Wrapped
}
