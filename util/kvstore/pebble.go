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

package kvstore

import (
	"errors"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/bloom"
	"github.com/cockroachdb/pebble/vfs"
)

func init() {
	kvImpls["pebble"] = pebbleDBFactory{}
}

type pebbleDBFactory struct{}

func (pebbleDBFactory) New(dbdir string, inMem bool) (KVStore, error) {
	return NewPebbleDB(dbdir, inMem)
}

// PebbleDB implements KVstore
type PebbleDB struct {
	Pdb *pebble.DB
	wo  *pebble.WriteOptions
}

// NewPebbleDB opens a PebbleDB in the specified directory. With inMem the
// files live in a memory filesystem and vanish on Close.
func NewPebbleDB(dbdir string, inMem bool) (*PebbleDB, error) {
	cache := pebble.NewCache(64 << 20)
	defer cache.Unref()
	opts := &pebble.Options{
		Cache:                       cache,
		L0CompactionThreshold:       2,
		L0StopWritesThreshold:       1000,
		LBaseMaxBytes:               64 << 20, // 64 MB
		Levels:                      make([]pebble.LevelOptions, 7),
		MaxConcurrentCompactions:    func() int { return 1 },
		MemTableSize:                16 << 20, // 16 MB
		MemTableStopWritesThreshold: 4,
	}
	for i := 0; i < len(opts.Levels); i++ {
		l := &opts.Levels[i]
		l.BlockSize = 32 << 10 // 32 KB
		l.FilterPolicy = bloom.FilterPolicy(10)
		l.FilterType = pebble.TableFilter
		if i > 0 {
			l.TargetFileSize = opts.Levels[i-1].TargetFileSize * 2
		}
		l.EnsureDefaults()
	}
	opts.Levels[6].FilterPolicy = nil
	if inMem {
		opts.FS = vfs.NewMem()
	}
	db, err := pebble.Open(dbdir+".pebbledb", opts)
	if err != nil {
		return nil, err
	}
	wo := &pebble.WriteOptions{Sync: !inMem}
	return &PebbleDB{Pdb: db, wo: wo}, nil
}

// Close closes the database
func (db *PebbleDB) Close() error { return db.Pdb.Close() }

// Get a key
func (db *PebbleDB) Get(key []byte) ([]byte, error) {
	v, closer, err := db.Pdb.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	ret := make([]byte, len(v))
	copy(ret, v)
	closer.Close()
	return ret, nil
}

// Set a key to value
func (db *PebbleDB) Set(key, value []byte) error { return db.Pdb.Set(key, value, db.wo) }

// Delete a key
func (db *PebbleDB) Delete(key []byte) error { return db.Pdb.Delete(key, db.wo) }

// pebbleBatch is a batch of writes using the pebble.Batch API
type pebbleBatch struct {
	wb *pebble.Batch
	wo *pebble.WriteOptions
}

// NewBatch creates a batch writer
func (db *PebbleDB) NewBatch() BatchWriter { return &pebbleBatch{wb: db.Pdb.NewBatch(), wo: db.wo} }

func (b *pebbleBatch) Set(key, value []byte) error { return b.wb.Set(key, value, b.wo) }
func (b *pebbleBatch) Delete(key []byte) error     { return b.wb.Delete(key, b.wo) }
func (b *pebbleBatch) Cancel()                     { b.wb.Close() }

func (b *pebbleBatch) Commit() error {
	defer b.wb.Close()
	return b.wb.Commit(b.wo)
}

type pebbleIterator struct {
	iter *pebble.Iterator
}

// NewIterator scans a range: start and end are optional (set to nil/empty otherwise)
func (db *PebbleDB) NewIterator(start, end []byte) Iterator {
	iter := db.Pdb.NewIter(&pebble.IterOptions{
		LowerBound: start,
		UpperBound: end,
	})
	iter.First()
	return &pebbleIterator{iter: iter}
}

func (i *pebbleIterator) Next()       { i.iter.Next() }
func (i *pebbleIterator) Valid() bool { return i.iter.Valid() }
func (i *pebbleIterator) Close()      { i.iter.Close() }

func (i *pebbleIterator) Key() []byte {
	k := i.iter.Key()
	ret := make([]byte, len(k))
	copy(ret, k)
	return ret
}

func (i *pebbleIterator) Value() ([]byte, error) {
	v := i.iter.Value()
	ret := make([]byte, len(v))
	copy(ret, v)
	return ret, nil
}
