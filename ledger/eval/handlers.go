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
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/data/transactions"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
	"github.com/yoyow-org/go-yoyow/serr"
)

// requireSpendable fails unless uid can spend amt after its fee.
func requireSpendable(ctx *Context, uid basics.AccountUID, amt basics.Asset) error {
	have, err := ctx.Spendable(uid, amt.AssetID)
	if err != nil {
		return err
	}
	if have < amt.Amount {
		a, err := ctx.Asset(amt.AssetID)
		if err != nil {
			return err
		}
		return a.BalanceShortfall(uid, amt.Amount, have)
	}
	return nil
}

func updateStats(ctx *Context, uid basics.AccountUID, f func(*ledgercore.AccountStatistics) error) error {
	st, err := ctx.AccountStatistics(uid)
	if err != nil {
		return err
	}
	if err := f(&st); err != nil {
		return err
	}
	return ctx.Ledger().PutAccountStatistics(st)
}

func updateDynamicData(ctx *Context, id basics.AssetID, f func(*ledgercore.AssetDynamicData) error) error {
	dyn, err := ctx.AssetDynamicData(id)
	if err != nil {
		return err
	}
	if err := f(&dyn); err != nil {
		return err
	}
	return ctx.Ledger().PutAssetDynamicData(dyn)
}

func addAmount(dst *basics.Amount, amt basics.Amount, what string) error {
	sum, overflowed := basics.OAdd(*dst, amt)
	if overflowed {
		return serr.New("amount overflows", "counter", what, "have", *dst, "add", amt)
	}
	*dst = sum
	return nil
}

type transferHandler struct{}

func (transferHandler) DoEvaluate(ctx *Context, op *transactions.TransferOp) error {
	if _, err := ctx.Asset(op.Amount.AssetID); err != nil {
		return err
	}
	if _, err := ctx.Account(op.To); err != nil {
		return err
	}
	if op.ToPrepaid {
		if _, err := ctx.AccountStatistics(op.To); err != nil {
			return err
		}
	}
	if op.FromPrepaid {
		have := basics.SubSaturate(ctx.PayerStats.Prepaid, ctx.Fee.FromPrepaid)
		if have < op.Amount.Amount {
			return ledgercore.CoreShortfall(op.From, "prepaid", op.Amount.Amount, have)
		}
		return nil
	}
	return requireSpendable(ctx, op.From, op.Amount)
}

func (transferHandler) DoApply(ctx *Context, op *transactions.TransferOp) (transactions.OperationResult, error) {
	var err error
	if op.FromPrepaid {
		err = updateStats(ctx, op.From, func(st *ledgercore.AccountStatistics) error {
			if st.Prepaid < op.Amount.Amount {
				return serr.New("prepaid underflow", "account", op.From, "prepaid", st.Prepaid, "amount", op.Amount.Amount)
			}
			st.Prepaid -= op.Amount.Amount
			return nil
		})
	} else {
		err = ctx.Ledger().SubBalance(op.From, op.Amount)
	}
	if err != nil {
		return transactions.OperationResult{}, err
	}

	if op.ToPrepaid {
		err = updateStats(ctx, op.To, func(st *ledgercore.AccountStatistics) error {
			return addAmount(&st.Prepaid, op.Amount.Amount, "prepaid")
		})
	} else {
		err = ctx.Ledger().AddBalance(op.To, op.Amount)
	}
	return transactions.OperationResult{Amount: op.Amount}, err
}

type accountCreateHandler struct{}

func (accountCreateHandler) DoEvaluate(ctx *Context, op *transactions.AccountCreateOp) error {
	_, exists, err := ctx.Ledger().GetAccount(op.UID)
	if err != nil {
		return err
	}
	if exists {
		return serr.New("account already exists", "uid", op.UID)
	}
	return nil
}

func (accountCreateHandler) DoApply(ctx *Context, op *transactions.AccountCreateOp) (transactions.OperationResult, error) {
	acct := ledgercore.Account{UID: op.UID, Name: op.Name, Registrar: op.Registrar}
	if err := ctx.Ledger().PutAccount(acct); err != nil {
		return transactions.OperationResult{}, err
	}
	if err := ctx.Ledger().PutAccountStatistics(ledgercore.AccountStatistics{Owner: op.UID}); err != nil {
		return transactions.OperationResult{}, err
	}
	return transactions.OperationResult{NewObject: basics.AccountObjectID(op.UID)}, nil
}

type assetCreateHandler struct{}

func (assetCreateHandler) DoEvaluate(ctx *Context, op *transactions.AssetCreateOp) error {
	// the exchange rate must be usable for fees as soon as the asset exists
	if err := op.ExchangeRate(ctx.Ledger().NextAssetID()).Validate(); err != nil {
		return serr.Wrap(err, "symbol", op.Symbol)
	}
	return nil
}

func (assetCreateHandler) DoApply(ctx *Context, op *transactions.AssetCreateOp) (transactions.OperationResult, error) {
	id := ctx.Ledger().NextAssetID()
	asset := ledgercore.Asset{
		ID:               id,
		Symbol:           op.Symbol,
		Precision:        op.Precision,
		Issuer:           op.Issuer,
		MaxSupply:        op.MaxSupply,
		CoreExchangeRate: op.ExchangeRate(id),
	}
	if err := ctx.Ledger().PutAsset(asset); err != nil {
		return transactions.OperationResult{}, err
	}
	if err := ctx.Ledger().PutAssetDynamicData(ledgercore.AssetDynamicData{ID: id}); err != nil {
		return transactions.OperationResult{}, err
	}
	return transactions.OperationResult{NewObject: basics.AssetObjectID(id)}, nil
}

type assetIssueHandler struct{}

func (assetIssueHandler) DoEvaluate(ctx *Context, op *transactions.AssetIssueOp) error {
	asset, err := ctx.ResolveAsset(op.Asset)
	if err != nil {
		return err
	}
	if asset.Issuer != op.Issuer {
		return serr.New("only the issuer may issue an asset", "asset", asset.Symbol, "issuer", asset.Issuer, "account", op.Issuer)
	}
	dyn, err := ctx.AssetDynamicData(asset.ID)
	if err != nil {
		return err
	}
	supply, overflowed := basics.OAdd(dyn.CurrentSupply, op.Amount)
	if overflowed || supply > asset.MaxSupply {
		return serr.New("issue exceeds max supply", "asset", asset.Symbol, "supply", dyn.CurrentSupply, "amount", op.Amount, "max", asset.MaxSupply)
	}
	_, err = ctx.Account(op.IssueTo)
	return err
}

func (assetIssueHandler) DoApply(ctx *Context, op *transactions.AssetIssueOp) (transactions.OperationResult, error) {
	asset, err := ctx.ResolveAsset(op.Asset)
	if err != nil {
		return transactions.OperationResult{}, err
	}
	err = updateDynamicData(ctx, asset.ID, func(dyn *ledgercore.AssetDynamicData) error {
		return addAmount(&dyn.CurrentSupply, op.Amount, "current supply")
	})
	if err != nil {
		return transactions.OperationResult{}, err
	}
	issued := basics.Asset{Amount: op.Amount, AssetID: asset.ID}
	return transactions.OperationResult{Amount: issued}, ctx.Ledger().AddBalance(op.IssueTo, issued)
}

type fundFeePoolHandler struct{}

func (fundFeePoolHandler) DoEvaluate(ctx *Context, op *transactions.AssetFundFeePoolOp) error {
	asset, err := ctx.ResolveAsset(op.Asset)
	if err != nil {
		return err
	}
	if asset.ID.IsCore() {
		return serr.New("core asset has no fee pool")
	}
	return requireSpendable(ctx, op.From, basics.CoreAsset(op.Amount))
}

func (fundFeePoolHandler) DoApply(ctx *Context, op *transactions.AssetFundFeePoolOp) (transactions.OperationResult, error) {
	asset, err := ctx.ResolveAsset(op.Asset)
	if err != nil {
		return transactions.OperationResult{}, err
	}
	if err := ctx.Ledger().SubBalance(op.From, basics.CoreAsset(op.Amount)); err != nil {
		return transactions.OperationResult{}, err
	}
	err = updateDynamicData(ctx, asset.ID, func(dyn *ledgercore.AssetDynamicData) error {
		return addAmount(&dyn.FeePool, op.Amount, "fee pool")
	})
	return transactions.OperationResult{Amount: basics.CoreAsset(op.Amount)}, err
}

type csafLeaseHandler struct{}

func (csafLeaseHandler) DoEvaluate(ctx *Context, op *transactions.CsafLeaseOp) error {
	if _, err := ctx.AccountStatistics(op.To); err != nil {
		return err
	}
	have := basics.SubSaturate(ctx.PayerStats.Csaf, ctx.Fee.FromCsaf)
	if have < op.Amount {
		return ledgercore.CoreShortfall(op.From, "csaf", op.Amount, have)
	}
	return nil
}

func (csafLeaseHandler) DoApply(ctx *Context, op *transactions.CsafLeaseOp) (transactions.OperationResult, error) {
	err := updateStats(ctx, op.From, func(st *ledgercore.AccountStatistics) error {
		if st.Csaf < op.Amount {
			return serr.New("csaf underflow", "account", op.From, "csaf", st.Csaf, "amount", op.Amount)
		}
		st.Csaf -= op.Amount
		return nil
	})
	if err != nil {
		return transactions.OperationResult{}, err
	}
	err = updateStats(ctx, op.To, func(st *ledgercore.AccountStatistics) error {
		return addAmount(&st.Csaf, op.Amount, "csaf")
	})
	return transactions.OperationResult{Amount: basics.CoreAsset(op.Amount)}, err
}

// transferToBlindHandler sends its fee to the blind-transfer accumulator.
type transferToBlindHandler struct{}

func (transferToBlindHandler) PayFee(ctx *Context) error {
	return ctx.PayFBAFee(transactions.BlindFBAID)
}

func (transferToBlindHandler) DoEvaluate(ctx *Context, op *transactions.TransferToBlindOp) error {
	if _, err := ctx.Asset(op.Amount.AssetID); err != nil {
		return err
	}
	return requireSpendable(ctx, op.From, op.Amount)
}

func (transferToBlindHandler) DoApply(ctx *Context, op *transactions.TransferToBlindOp) (transactions.OperationResult, error) {
	if err := ctx.Ledger().SubBalance(op.From, op.Amount); err != nil {
		return transactions.OperationResult{}, err
	}
	err := updateDynamicData(ctx, op.Amount.AssetID, func(dyn *ledgercore.AssetDynamicData) error {
		return addAmount(&dyn.ConfidentialSupply, op.Amount.Amount, "confidential supply")
	})
	return transactions.OperationResult{Amount: op.Amount}, err
}
