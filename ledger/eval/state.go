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
	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/data/transactions"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
	"github.com/yoyow-org/go-yoyow/logging"
)

// Ledger is the object store evaluation reads and mutates.
// After a call to PutX (or AddBalance/SubBalance), future calls to GetX
// reflect the update.
type Ledger interface {
	ConsensusParams() config.ConsensusParams

	// GetX returns the object, whether it exists, and a non-nil error
	// only when the lookup itself is impossible.
	GetAccount(uid basics.AccountUID) (ledgercore.Account, bool, error)
	GetAccountStatistics(uid basics.AccountUID) (ledgercore.AccountStatistics, bool, error)
	GetAsset(id basics.AssetID) (ledgercore.Asset, bool, error)
	GetAssetDynamicData(id basics.AssetID) (ledgercore.AssetDynamicData, bool, error)
	GetFBAAccumulator(id uint64) (ledgercore.FBAAccumulator, bool, error)

	PutAccount(ledgercore.Account) error
	PutAccountStatistics(ledgercore.AccountStatistics) error
	PutAsset(ledgercore.Asset) error
	PutAssetDynamicData(ledgercore.AssetDynamicData) error
	PutFBAAccumulator(ledgercore.FBAAccumulator) error

	// AddBalance and SubBalance adjust a spendable balance. SubBalance
	// fails rather than underflow.
	AddBalance(uid basics.AccountUID, amt basics.Asset) error
	SubBalance(uid basics.AccountUID, amt basics.Asset) error

	// NextAssetID is the id the next created asset receives.
	NextAssetID() basics.AssetID
}

// TransactionState is threaded through the evaluation of every operation
// of one transaction.
type TransactionState struct {
	Ledger Ledger

	// SkipFeeScheduleCheck disables the required fee pair check. Only
	// trusted internal callers set it.
	SkipFeeScheduleCheck bool

	// FeeSourceOrder is the draw order for fees without explicit
	// options. Empty means DefaultFeeSourceOrder.
	FeeSourceOrder []config.FeeSource

	// OperationResults has one entry per operation applied so far.
	// Relative ids index into it.
	OperationResults []transactions.OperationResult

	Log logging.Logger
}

// DefaultFeeSourceOrder draws csaf first, then prepaid, then balance.
var DefaultFeeSourceOrder = []config.FeeSource{config.FeeSourceCsaf, config.FeeSourcePrepaid, config.FeeSourceBalance}

// MakeTransactionState returns a state for one transaction against l.
func MakeTransactionState(l Ledger) *TransactionState {
	return &TransactionState{Ledger: l}
}

func (ts *TransactionState) log() logging.Logger {
	if ts.Log == nil {
		return logging.Base()
	}
	return ts.Log
}

func (ts *TransactionState) feeSourceOrder() []config.FeeSource {
	if len(ts.FeeSourceOrder) == 0 {
		return DefaultFeeSourceOrder
	}
	return ts.FeeSourceOrder
}

// GetRelativeID resolves id against the objects created so far in the
// transaction. Non-relative ids are returned unchanged.
func (ts *TransactionState) GetRelativeID(id basics.ObjectID) (basics.ObjectID, error) {
	if !id.IsRelative() {
		return id, nil
	}
	if id.Instance >= uint64(len(ts.OperationResults)) {
		return basics.ObjectID{}, ledgercore.RelativeIDError{ID: id, Created: len(ts.OperationResults)}
	}
	res := ts.OperationResults[id.Instance]
	if !res.HasObject() {
		return basics.ObjectID{}, ledgercore.RelativeIDError{ID: id, Created: len(ts.OperationResults)}
	}
	return res.NewObject, nil
}
