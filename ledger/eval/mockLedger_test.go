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

package eval

import (
	"fmt"
	"maps"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
	"github.com/yoyow-org/go-yoyow/protocol"
)

// mockLedger is an in-memory Ledger. Its maps hold values, so Get never
// hands out anything a caller could mutate in place.
type mockLedger struct {
	params config.ConsensusParams

	accounts map[basics.AccountUID]ledgercore.Account
	stats    map[basics.AccountUID]ledgercore.AccountStatistics
	assets   map[basics.AssetID]ledgercore.Asset
	dyn      map[basics.AssetID]ledgercore.AssetDynamicData
	fba      map[uint64]ledgercore.FBAAccumulator

	// writes counts every Put/AddBalance/SubBalance call.
	writes int
}

func makeMockLedger(params config.ConsensusParams) *mockLedger {
	ml := &mockLedger{
		params:   params,
		accounts: map[basics.AccountUID]ledgercore.Account{},
		stats:    map[basics.AccountUID]ledgercore.AccountStatistics{},
		assets:   map[basics.AssetID]ledgercore.Asset{},
		dyn:      map[basics.AssetID]ledgercore.AssetDynamicData{},
		fba:      map[uint64]ledgercore.FBAAccumulator{},
	}
	ml.assets[basics.CoreAssetID] = ledgercore.Asset{ID: basics.CoreAssetID, Symbol: "YOYO", Precision: basics.CorePrecision}
	ml.dyn[basics.CoreAssetID] = ledgercore.AssetDynamicData{ID: basics.CoreAssetID}
	return ml
}

// testParams is a schedule with round numbers: scale 1, no size fees.
func testParams() config.ConsensusParams {
	params := config.Consensus[protocol.ConsensusCurrentVersion]
	params.Fees = config.FeeSchedule{
		Scale: config.Percent100,
		Parameters: map[protocol.OpType]config.FeeParameters{
			protocol.TransferOp:         {Fee: 10, MinRealFee: 10},
			protocol.AccountCreateOp:    {Fee: 100, MinRealFee: 50},
			protocol.AssetCreateOp:      {Fee: 500},
			protocol.AssetIssueOp:       {Fee: 20},
			protocol.AssetFundFeePoolOp: {Fee: 10},
			protocol.CsafLeaseOp:        {Fee: 10, MinRealFee: 5},
			protocol.TransferToBlindOp:  {Fee: 50},
		},
	}
	params.CashbackVestingThreshold = 40
	return params
}

func (ml *mockLedger) addAccount(uid basics.AccountUID, balance, prepaid, csaf basics.Amount) {
	ml.accounts[uid] = ledgercore.Account{UID: uid, Name: fmt.Sprintf("acct%d", uid), Balances: map[basics.AssetID]basics.Amount{basics.CoreAssetID: balance}}
	ml.stats[uid] = ledgercore.AccountStatistics{Owner: uid, Prepaid: prepaid, Csaf: csaf}
}

func (ml *mockLedger) addAsset(a ledgercore.Asset, pool basics.Amount) {
	ml.assets[a.ID] = a
	ml.dyn[a.ID] = ledgercore.AssetDynamicData{ID: a.ID, FeePool: pool}
}

func (ml *mockLedger) setBalance(uid basics.AccountUID, id basics.AssetID, amt basics.Amount) {
	acct := ml.accounts[uid].Clone()
	acct.Balances[id] = amt
	ml.accounts[uid] = acct
}

// snapshot deep-copies the ledger for before/after comparisons.
func (ml *mockLedger) snapshot() *mockLedger {
	cp := *ml
	cp.accounts = make(map[basics.AccountUID]ledgercore.Account, len(ml.accounts))
	for k, v := range ml.accounts {
		cp.accounts[k] = v.Clone()
	}
	cp.stats = maps.Clone(ml.stats)
	cp.assets = maps.Clone(ml.assets)
	cp.dyn = maps.Clone(ml.dyn)
	cp.fba = maps.Clone(ml.fba)
	return &cp
}

func (ml *mockLedger) ConsensusParams() config.ConsensusParams { return ml.params }

func (ml *mockLedger) GetAccount(uid basics.AccountUID) (ledgercore.Account, bool, error) {
	a, ok := ml.accounts[uid]
	return a.Clone(), ok, nil
}

func (ml *mockLedger) GetAccountStatistics(uid basics.AccountUID) (ledgercore.AccountStatistics, bool, error) {
	s, ok := ml.stats[uid]
	return s, ok, nil
}

func (ml *mockLedger) GetAsset(id basics.AssetID) (ledgercore.Asset, bool, error) {
	a, ok := ml.assets[id]
	return a, ok, nil
}

func (ml *mockLedger) GetAssetDynamicData(id basics.AssetID) (ledgercore.AssetDynamicData, bool, error) {
	d, ok := ml.dyn[id]
	return d, ok, nil
}

func (ml *mockLedger) GetFBAAccumulator(id uint64) (ledgercore.FBAAccumulator, bool, error) {
	f, ok := ml.fba[id]
	return f, ok, nil
}

func (ml *mockLedger) PutAccount(a ledgercore.Account) error {
	ml.writes++
	ml.accounts[a.UID] = a.Clone()
	return nil
}

func (ml *mockLedger) PutAccountStatistics(s ledgercore.AccountStatistics) error {
	ml.writes++
	ml.stats[s.Owner] = s
	return nil
}

func (ml *mockLedger) PutAsset(a ledgercore.Asset) error {
	ml.writes++
	ml.assets[a.ID] = a
	return nil
}

func (ml *mockLedger) PutAssetDynamicData(d ledgercore.AssetDynamicData) error {
	ml.writes++
	ml.dyn[d.ID] = d
	return nil
}

func (ml *mockLedger) PutFBAAccumulator(f ledgercore.FBAAccumulator) error {
	ml.writes++
	ml.fba[f.ID] = f
	return nil
}

func (ml *mockLedger) AddBalance(uid basics.AccountUID, amt basics.Asset) error {
	ml.writes++
	acct, ok := ml.accounts[uid]
	if !ok {
		return fmt.Errorf("no account %v", uid)
	}
	acct = acct.Clone()
	if acct.Balances == nil {
		acct.Balances = map[basics.AssetID]basics.Amount{}
	}
	acct.Balances[amt.AssetID] += amt.Amount
	ml.accounts[uid] = acct
	return nil
}

func (ml *mockLedger) SubBalance(uid basics.AccountUID, amt basics.Asset) error {
	ml.writes++
	acct, ok := ml.accounts[uid]
	if !ok {
		return fmt.Errorf("no account %v", uid)
	}
	if acct.Balance(amt.AssetID) < amt.Amount {
		return fmt.Errorf("account %v: balance %d < %d", uid, acct.Balance(amt.AssetID), amt.Amount)
	}
	acct = acct.Clone()
	acct.Balances[amt.AssetID] -= amt.Amount
	ml.accounts[uid] = acct
	return nil
}

func (ml *mockLedger) NextAssetID() basics.AssetID {
	var next basics.AssetID
	for id := range ml.assets {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
