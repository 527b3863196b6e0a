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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yoyow-org/go-yoyow/test/partitiontest"
)

func TestCyclicWrite(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	dir := t.TempDir()
	live := filepath.Join(dir, "live.log")
	archive := filepath.Join(dir, "archive.log")

	const space = 1024
	w, err := MakeCyclicFileWriter(live, archive, space)
	require.NoError(t, err)
	defer w.Close()

	first := bytes.Repeat([]byte{'A'}, space)
	n, err := w.Write(first)
	require.NoError(t, err)
	require.Equal(t, space, n)

	n, err = w.Write([]byte{'B'})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	liveData, err := os.ReadFile(live)
	require.NoError(t, err)
	require.Equal(t, []byte{'B'}, liveData)

	oldData, err := os.ReadFile(archive)
	require.NoError(t, err)
	require.Equal(t, first, oldData)

	_, err = w.Write(bytes.Repeat([]byte{'C'}, space+1))
	require.Error(t, err)
}

func TestCyclicWriteResumesExistingFile(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	dir := t.TempDir()
	live := filepath.Join(dir, "live.log")
	require.NoError(t, os.WriteFile(live, []byte("0123456789"), 0600))

	w, err := MakeCyclicFileWriter(live, filepath.Join(dir, "archive.log"), 12)
	require.NoError(t, err)
	_, err = w.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// ten existing bytes plus three new ones cross the limit
	liveData, err := os.ReadFile(live)
	require.NoError(t, err)
	require.Equal(t, "abc", string(liveData))

	_, err = w.Write([]byte("x"))
	require.ErrorIs(t, err, os.ErrClosed)
}

func TestLoggerToCyclicFile(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	dir := t.TempDir()
	w, err := MakeCyclicFileWriter(filepath.Join(dir, "node.log"), filepath.Join(dir, "node.archive.log"), 1<<20)
	require.NoError(t, err)
	defer w.Close()

	l := NewLogger()
	l.SetOutput(w)
	l.SetLevel(Info)
	l.With("op", "transfer").Info("fee prepared")

	data, err := os.ReadFile(filepath.Join(dir, "node.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "fee prepared")
	require.Contains(t, string(data), "op=transfer")
}
