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
	"fmt"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/ledger/eval"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
)

// roundCowParent is the state a roundCowState reads through to.
type roundCowParent interface {
	lookupAccount(uid basics.AccountUID) (ledgercore.Account, bool, error)
	lookupStats(uid basics.AccountUID) (ledgercore.AccountStatistics, bool, error)
	lookupAsset(id basics.AssetID) (ledgercore.Asset, bool, error)
	lookupDynamic(id basics.AssetID) (ledgercore.AssetDynamicData, bool, error)
	lookupFBA(id uint64) (ledgercore.FBAAccumulator, bool, error)
	nextAssetID() basics.AssetID
}

// roundCowState is a copy-on-write layer over a parent state. Writes go
// to mods and become visible in the parent only on commitToParent.
type roundCowState struct {
	lookupParent roundCowParent
	commitParent *roundCowState
	proto        config.ConsensusParams
	mods         ledgercore.StateDelta
}

var _ eval.Ledger = (*roundCowState)(nil)

func makeRoundCowState(b roundCowParent, proto config.ConsensusParams) *roundCowState {
	return &roundCowState{
		lookupParent: b,
		proto:        proto,
		mods:         ledgercore.MakeStateDelta(b.nextAssetID()),
	}
}

func (cb *roundCowState) child() *roundCowState {
	return &roundCowState{
		lookupParent: cb,
		commitParent: cb,
		proto:        cb.proto,
		mods:         ledgercore.MakeStateDelta(cb.mods.NextAssetID),
	}
}

func (cb *roundCowState) commitToParent() {
	cb.commitParent.mods.Merge(cb.mods)
	cb.mods = ledgercore.MakeStateDelta(cb.mods.NextAssetID)
}

func (cb *roundCowState) deltas() ledgercore.StateDelta {
	return cb.mods
}

func (cb *roundCowState) lookupAccount(uid basics.AccountUID) (ledgercore.Account, bool, error) {
	if a, ok := cb.mods.Accounts[uid]; ok {
		return a, true, nil
	}
	return cb.lookupParent.lookupAccount(uid)
}

func (cb *roundCowState) lookupStats(uid basics.AccountUID) (ledgercore.AccountStatistics, bool, error) {
	if s, ok := cb.mods.Stats[uid]; ok {
		return s, true, nil
	}
	return cb.lookupParent.lookupStats(uid)
}

func (cb *roundCowState) lookupAsset(id basics.AssetID) (ledgercore.Asset, bool, error) {
	if a, ok := cb.mods.Assets[id]; ok {
		return a, true, nil
	}
	return cb.lookupParent.lookupAsset(id)
}

func (cb *roundCowState) lookupDynamic(id basics.AssetID) (ledgercore.AssetDynamicData, bool, error) {
	if d, ok := cb.mods.Dynamic[id]; ok {
		return d, true, nil
	}
	return cb.lookupParent.lookupDynamic(id)
}

func (cb *roundCowState) lookupFBA(id uint64) (ledgercore.FBAAccumulator, bool, error) {
	if f, ok := cb.mods.FBA[id]; ok {
		return f, true, nil
	}
	return cb.lookupParent.lookupFBA(id)
}

func (cb *roundCowState) nextAssetID() basics.AssetID {
	return cb.mods.NextAssetID
}

// ConsensusParams implements eval.Ledger
func (cb *roundCowState) ConsensusParams() config.ConsensusParams {
	return cb.proto
}

// GetAccount implements eval.Ledger. The balances map is copied so that
// callers cannot reach into a parent's state.
func (cb *roundCowState) GetAccount(uid basics.AccountUID) (ledgercore.Account, bool, error) {
	a, ok, err := cb.lookupAccount(uid)
	return a.Clone(), ok, err
}

// GetAccountStatistics implements eval.Ledger
func (cb *roundCowState) GetAccountStatistics(uid basics.AccountUID) (ledgercore.AccountStatistics, bool, error) {
	return cb.lookupStats(uid)
}

// GetAsset implements eval.Ledger
func (cb *roundCowState) GetAsset(id basics.AssetID) (ledgercore.Asset, bool, error) {
	return cb.lookupAsset(id)
}

// GetAssetDynamicData implements eval.Ledger
func (cb *roundCowState) GetAssetDynamicData(id basics.AssetID) (ledgercore.AssetDynamicData, bool, error) {
	return cb.lookupDynamic(id)
}

// GetFBAAccumulator implements eval.Ledger
func (cb *roundCowState) GetFBAAccumulator(id uint64) (ledgercore.FBAAccumulator, bool, error) {
	return cb.lookupFBA(id)
}

// PutAccount implements eval.Ledger
func (cb *roundCowState) PutAccount(a ledgercore.Account) error {
	cb.mods.Accounts[a.UID] = a.Clone()
	return nil
}

// PutAccountStatistics implements eval.Ledger
func (cb *roundCowState) PutAccountStatistics(s ledgercore.AccountStatistics) error {
	cb.mods.Stats[s.Owner] = s
	return nil
}

// PutAsset implements eval.Ledger. Creating the asset with the next free
// id advances the counter.
func (cb *roundCowState) PutAsset(a ledgercore.Asset) error {
	if a.ID > cb.mods.NextAssetID {
		return fmt.Errorf("asset id %v skips ahead of next id %v", a.ID, cb.mods.NextAssetID)
	}
	if a.ID == cb.mods.NextAssetID {
		cb.mods.NextAssetID++
	}
	cb.mods.Assets[a.ID] = a
	return nil
}

// PutAssetDynamicData implements eval.Ledger
func (cb *roundCowState) PutAssetDynamicData(d ledgercore.AssetDynamicData) error {
	cb.mods.Dynamic[d.ID] = d
	return nil
}

// PutFBAAccumulator implements eval.Ledger
func (cb *roundCowState) PutFBAAccumulator(f ledgercore.FBAAccumulator) error {
	cb.mods.FBA[f.ID] = f
	return nil
}

// AddBalance implements eval.Ledger
func (cb *roundCowState) AddBalance(uid basics.AccountUID, amt basics.Asset) error {
	acct, ok, err := cb.GetAccount(uid)
	if err != nil {
		return err
	}
	if !ok {
		return ledgercore.ObjectNotFoundError{Kind: "account", ID: basics.AccountObjectID(uid)}
	}
	sum, overflowed := basics.OAdd(acct.Balance(amt.AssetID), amt.Amount)
	if overflowed {
		return fmt.Errorf("balance of %v in account %v overflows", amt.AssetID, uid)
	}
	if acct.Balances == nil {
		acct.Balances = make(map[basics.AssetID]basics.Amount)
	}
	acct.Balances[amt.AssetID] = sum
	return cb.PutAccount(acct)
}

// SubBalance implements eval.Ledger
func (cb *roundCowState) SubBalance(uid basics.AccountUID, amt basics.Asset) error {
	acct, ok, err := cb.GetAccount(uid)
	if err != nil {
		return err
	}
	if !ok {
		return ledgercore.ObjectNotFoundError{Kind: "account", ID: basics.AccountObjectID(uid)}
	}
	have := acct.Balance(amt.AssetID)
	if have < amt.Amount {
		a, ok, err := cb.GetAsset(amt.AssetID)
		if err != nil {
			return err
		}
		if !ok {
			return ledgercore.ObjectNotFoundError{Kind: "asset", ID: basics.AssetObjectID(amt.AssetID)}
		}
		return a.BalanceShortfall(uid, amt.Amount, have)
	}
	if amt.Amount == 0 {
		return nil
	}
	acct.Balances[amt.AssetID] = have - amt.Amount
	return cb.PutAccount(acct)
}

// NextAssetID implements eval.Ledger
func (cb *roundCowState) NextAssetID() basics.AssetID {
	return cb.mods.NextAssetID
}
