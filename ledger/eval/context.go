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
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
	"github.com/yoyow-org/go-yoyow/logging"
)

// FeeContext records how the fee of one operation was sourced. All
// amounts except FeeFromAccount are core units, and
// FromBalance+FromPrepaid+FromCsaf == TotalFeePaid.
type FeeContext struct {
	// FeeFromAccount is deducted from the payer's balance after DoApply,
	// in the asset the fee was declared in.
	FeeFromAccount basics.Asset

	CoreFeePaid  basics.Amount
	TotalFeePaid basics.Amount
	FromBalance  basics.Amount
	FromPrepaid  basics.Amount
	FromCsaf     basics.Amount
}

// Context is the state of one operation's evaluation. Handlers receive
// it by pointer and must not retain it after the call returns.
type Context struct {
	State *TransactionState
	Fee   FeeContext

	// Required is set once the fee pair has been computed.
	Required *FeePair

	// Snapshots of the fee payer and fee asset taken by PrepareFee. They
	// are not written back; settlement re-reads through the ledger.
	Payer       ledgercore.Account
	PayerStats  ledgercore.AccountStatistics
	FeeAsset    ledgercore.Asset
	FeeAssetDyn ledgercore.AssetDynamicData

	payerResolved bool
}

func newContext(state *TransactionState) *Context {
	return &Context{State: state}
}

// Ledger is shorthand for c.State.Ledger.
func (c *Context) Ledger() Ledger {
	return c.State.Ledger
}

// Params returns the consensus parameters in effect.
func (c *Context) Params() config.ConsensusParams {
	return c.State.Ledger.ConsensusParams()
}

// Log returns the logger of the transaction.
func (c *Context) Log() logging.Logger {
	return c.State.log()
}

// GetRelativeID resolves id against the current transaction.
func (c *Context) GetRelativeID(id basics.ObjectID) (basics.ObjectID, error) {
	return c.State.GetRelativeID(id)
}

// Account looks up an account, failing if it does not exist.
func (c *Context) Account(uid basics.AccountUID) (ledgercore.Account, error) {
	acct, ok, err := c.Ledger().GetAccount(uid)
	if err != nil {
		return ledgercore.Account{}, err
	}
	if !ok {
		return ledgercore.Account{}, ledgercore.ObjectNotFoundError{Kind: "account", ID: basics.AccountObjectID(uid)}
	}
	return acct, nil
}

// AccountStatistics looks up an account's statistics, failing if they do
// not exist.
func (c *Context) AccountStatistics(uid basics.AccountUID) (ledgercore.AccountStatistics, error) {
	st, ok, err := c.Ledger().GetAccountStatistics(uid)
	if err != nil {
		return ledgercore.AccountStatistics{}, err
	}
	if !ok {
		return ledgercore.AccountStatistics{}, ledgercore.ObjectNotFoundError{
			Kind: "account statistics",
			ID:   basics.ObjectID{Space: basics.ImplementationSpace, Type: basics.AccountStatisticsObjectType, Instance: uint64(uid)},
		}
	}
	return st, nil
}

// Asset looks up an asset, failing if it does not exist.
func (c *Context) Asset(id basics.AssetID) (ledgercore.Asset, error) {
	a, ok, err := c.Ledger().GetAsset(id)
	if err != nil {
		return ledgercore.Asset{}, err
	}
	if !ok {
		return ledgercore.Asset{}, ledgercore.ObjectNotFoundError{Kind: "asset", ID: basics.AssetObjectID(id)}
	}
	return a, nil
}

// AssetDynamicData looks up an asset's dynamic data, failing if it does
// not exist.
func (c *Context) AssetDynamicData(id basics.AssetID) (ledgercore.AssetDynamicData, error) {
	d, ok, err := c.Ledger().GetAssetDynamicData(id)
	if err != nil {
		return ledgercore.AssetDynamicData{}, err
	}
	if !ok {
		return ledgercore.AssetDynamicData{}, ledgercore.ObjectNotFoundError{
			Kind: "asset dynamic data",
			ID:   basics.ObjectID{Space: basics.ImplementationSpace, Type: basics.AssetDynamicDataObjectType, Instance: uint64(id)},
		}
	}
	return d, nil
}

// ResolveAsset resolves a possibly relative asset reference.
func (c *Context) ResolveAsset(ref basics.ObjectID) (ledgercore.Asset, error) {
	id, err := c.GetRelativeID(ref)
	if err != nil {
		return ledgercore.Asset{}, err
	}
	aid, ok := id.AsAssetID()
	if !ok {
		return ledgercore.Asset{}, ledgercore.ObjectNotFoundError{Kind: "asset", ID: id}
	}
	return c.Asset(aid)
}

// Spendable is the payer's balance of id left once the fee is deducted.
// For any other account it is the plain balance.
func (c *Context) Spendable(uid basics.AccountUID, id basics.AssetID) (basics.Amount, error) {
	acct, err := c.Account(uid)
	if err != nil {
		return 0, err
	}
	bal := acct.Balance(id)
	if c.payerResolved && uid == c.Payer.UID && id == c.Fee.FeeFromAccount.AssetID {
		bal = basics.SubSaturate(bal, c.Fee.FeeFromAccount.Amount)
	}
	return bal, nil
}
