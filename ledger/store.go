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

package ledger

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
	"github.com/yoyow-org/go-yoyow/protocol"
	"github.com/yoyow-org/go-yoyow/util/kvstore"
)

// Key prefixes of the ledger store. Object keys are the prefix followed
// by the big-endian id.
var (
	accountPrefix = []byte("a/")
	statsPrefix   = []byte("s/")
	assetPrefix   = []byte("t/")
	dynamicPrefix = []byte("d/")
	fbaPrefix     = []byte("f/")

	protoKey       = []byte("m/proto")
	nextAssetIDKey = []byte("m/nextasset")
)

func objectKey(prefix []byte, id uint64) []byte {
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], id)
	return key
}

// store is the committed ledger state, msgpack-encoded in a KVStore.
type store struct {
	kv   kvstore.KVStore
	next basics.AssetID
}

func openStore(kv kvstore.KVStore) (*store, error) {
	s := &store{kv: kv}
	raw, err := kv.Get(nextAssetIDKey)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		if len(raw) != 8 {
			return nil, fmt.Errorf("corrupt next asset id record of %d bytes", len(raw))
		}
		s.next = basics.AssetID(binary.BigEndian.Uint64(raw))
	}
	return s, nil
}

// get decodes the value under key into objptr and reports whether it
// exists.
func (s *store) get(key []byte, objptr interface{}) (bool, error) {
	raw, err := s.kv.Get(key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := protocol.Decode(raw, objptr); err != nil {
		return false, fmt.Errorf("decoding %q: %w", key, err)
	}
	return true, nil
}

func (s *store) lookupAccount(uid basics.AccountUID) (a ledgercore.Account, ok bool, err error) {
	ok, err = s.get(objectKey(accountPrefix, uint64(uid)), &a)
	return
}

func (s *store) lookupStats(uid basics.AccountUID) (st ledgercore.AccountStatistics, ok bool, err error) {
	ok, err = s.get(objectKey(statsPrefix, uint64(uid)), &st)
	return
}

func (s *store) lookupAsset(id basics.AssetID) (a ledgercore.Asset, ok bool, err error) {
	ok, err = s.get(objectKey(assetPrefix, uint64(id)), &a)
	return
}

func (s *store) lookupDynamic(id basics.AssetID) (d ledgercore.AssetDynamicData, ok bool, err error) {
	ok, err = s.get(objectKey(dynamicPrefix, uint64(id)), &d)
	return
}

func (s *store) lookupFBA(id uint64) (f ledgercore.FBAAccumulator, ok bool, err error) {
	ok, err = s.get(objectKey(fbaPrefix, id), &f)
	return
}

func (s *store) nextAssetID() basics.AssetID {
	return s.next
}

// consensusVersion returns the protocol the store was initialized with,
// or "" for an empty store.
func (s *store) consensusVersion() (protocol.ConsensusVersion, error) {
	raw, err := s.kv.Get(protoKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return protocol.ConsensusVersion(raw), nil
}

// commit writes delta atomically.
func (s *store) commit(delta ledgercore.StateDelta, proto protocol.ConsensusVersion) error {
	batch := s.kv.NewBatch()
	put := func(key []byte, obj interface{}) error {
		return batch.Set(key, protocol.Encode(obj))
	}
	var err error
	for uid, a := range delta.Accounts {
		if err = put(objectKey(accountPrefix, uint64(uid)), a); err != nil {
			break
		}
	}
	for uid, st := range delta.Stats {
		if err != nil {
			break
		}
		err = put(objectKey(statsPrefix, uint64(uid)), st)
	}
	for id, a := range delta.Assets {
		if err != nil {
			break
		}
		err = put(objectKey(assetPrefix, uint64(id)), a)
	}
	for id, d := range delta.Dynamic {
		if err != nil {
			break
		}
		err = put(objectKey(dynamicPrefix, uint64(id)), d)
	}
	for id, f := range delta.FBA {
		if err != nil {
			break
		}
		err = put(objectKey(fbaPrefix, id), f)
	}
	if err == nil {
		var next [8]byte
		binary.BigEndian.PutUint64(next[:], uint64(delta.NextAssetID))
		err = batch.Set(nextAssetIDKey, next[:])
	}
	if err == nil && proto != "" {
		err = batch.Set(protoKey, []byte(proto))
	}
	if err != nil {
		batch.Cancel()
		return err
	}
	if err := batch.Commit(); err != nil {
		return err
	}
	s.next = delta.NextAssetID
	return nil
}

// accounts lists every stored account uid in order.
func (s *store) accounts() ([]basics.AccountUID, error) {
	it := s.kv.NewIterator(accountPrefix, kvstore.PrefixEnd(accountPrefix))
	defer it.Close()
	var uids []basics.AccountUID
	for ; it.Valid(); it.Next() {
		key := it.Key()
		if len(key) != len(accountPrefix)+8 {
			return nil, fmt.Errorf("malformed account key %q", key)
		}
		uids = append(uids, basics.AccountUID(binary.BigEndian.Uint64(key[len(accountPrefix):])))
	}
	return uids, nil
}

func (s *store) close() error {
	return s.kv.Close()
}
