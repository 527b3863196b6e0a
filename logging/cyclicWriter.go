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

package logging

import (
	"fmt"
	"os"

	"github.com/algorand/go-deadlock"
)

// CyclicFileWriter is an io.Writer over a log file that never grows past
// a size limit. When the next write would cross the limit the live file
// is renamed to the archive path, replacing any earlier archive, and a
// fresh live file is started.
type CyclicFileWriter struct {
	mu        deadlock.Mutex
	writer    *os.File
	liveLog   string
	archive   string
	nextWrite uint64
	limit     uint64
}

// MakeCyclicFileWriter opens liveLogFilePath for appending.
func MakeCyclicFileWriter(liveLogFilePath string, archiveFilePath string, sizeLimitBytes uint64) (*CyclicFileWriter, error) {
	cyclic := &CyclicFileWriter{liveLog: liveLogFilePath, archive: archiveFilePath, limit: sizeLimitBytes}

	if fi, err := os.Stat(liveLogFilePath); err == nil {
		cyclic.nextWrite = uint64(fi.Size())
	}
	writer, err := os.OpenFile(liveLogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("CyclicFileWriter: cannot open log file: %w", err)
	}
	cyclic.writer = writer
	return cyclic, nil
}

// Write appends p, archiving the live file first if p does not fit.
func (cyclic *CyclicFileWriter) Write(p []byte) (n int, err error) {
	cyclic.mu.Lock()
	defer cyclic.mu.Unlock()

	if cyclic.writer == nil {
		return 0, os.ErrClosed
	}
	if uint64(len(p)) > cyclic.limit {
		return 0, fmt.Errorf("CyclicFileWriter: entry of %d bytes exceeds the %d byte limit", len(p), cyclic.limit)
	}
	if cyclic.nextWrite+uint64(len(p)) > cyclic.limit {
		if err = cyclic.rotate(); err != nil {
			return 0, err
		}
	}
	n, err = cyclic.writer.Write(p)
	cyclic.nextWrite += uint64(n)
	return
}

func (cyclic *CyclicFileWriter) rotate() error {
	cyclic.writer.Close()
	cyclic.writer = nil
	if err := os.Rename(cyclic.liveLog, cyclic.archive); err != nil {
		return fmt.Errorf("CyclicFileWriter: cannot archive full log: %w", err)
	}
	w, err := os.OpenFile(cyclic.liveLog, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("CyclicFileWriter: cannot open log file: %w", err)
	}
	cyclic.writer = w
	cyclic.nextWrite = 0
	return nil
}

// Close closes the live file. Later writes fail.
func (cyclic *CyclicFileWriter) Close() error {
	cyclic.mu.Lock()
	defer cyclic.mu.Unlock()

	if cyclic.writer == nil {
		return nil
	}
	err := cyclic.writer.Close()
	cyclic.writer = nil
	return err
}
