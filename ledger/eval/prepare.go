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
	"errors"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/data/transactions"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
)

// ErrPayerNotResolved is returned by PrepareFeeAmount when no earlier
// PrepareFee call resolved the payer.
var ErrPayerNotResolved = errors.New("fee payer not resolved")

// PrepareFee resolves the fee payer and reserves fee against it. Nothing
// is written to the ledger.
func (c *Context) PrepareFee(payer basics.AccountUID, fee transactions.FeeType) error {
	if err := c.resolvePayer(payer); err != nil {
		return err
	}
	return c.prepareFeeAmount(fee, nil)
}

// PrepareFeeWithPair is PrepareFee for callers that already computed the
// required fee pair. Csaf is then held back so that, where balance and
// prepaid allow, the real part of the fee is met.
func (c *Context) PrepareFeeWithPair(payer basics.AccountUID, fee transactions.FeeType, pair FeePair) error {
	if err := c.resolvePayer(payer); err != nil {
		return err
	}
	c.Required = &pair
	return c.prepareFeeAmount(fee, &pair)
}

// PrepareFeeAmount reserves fee against the payer resolved by an earlier
// PrepareFee call.
func (c *Context) PrepareFeeAmount(fee transactions.FeeType) error {
	if !c.payerResolved {
		return ErrPayerNotResolved
	}
	return c.prepareFeeAmount(fee, c.Required)
}

func (c *Context) resolvePayer(uid basics.AccountUID) error {
	acct, err := c.Account(uid)
	if err != nil {
		return err
	}
	st, err := c.AccountStatistics(uid)
	if err != nil {
		return err
	}
	c.Payer, c.PayerStats, c.payerResolved = acct, st, true
	return nil
}

func (c *Context) prepareFeeAmount(fee transactions.FeeType, pair *FeePair) error {
	asset, err := c.Asset(fee.Total.AssetID)
	if err != nil {
		return err
	}
	dyn, err := c.AssetDynamicData(fee.Total.AssetID)
	if err != nil {
		return err
	}
	c.FeeAsset, c.FeeAssetDyn = asset, dyn
	c.Fee = FeeContext{}

	switch {
	case fee.Options != nil:
		return c.prepareWithOptions(fee)
	case fee.Total.AssetID.IsCore():
		return c.allocate(fee.Total.Amount, pair)
	default:
		return c.prepareConverted(fee)
	}
}

// prepareWithOptions takes each source's share exactly as declared.
func (c *Context) prepareWithOptions(fee transactions.FeeType) error {
	opts := *fee.Options
	if !fee.Total.AssetID.IsCore() {
		return ledgercore.FeeOptionsError{Msg: "options require a core fee"}
	}
	sum, ok := opts.Sum()
	if !ok || sum != fee.Total.Amount {
		return ledgercore.FeeOptionsError{Msg: "options do not add up to the fee total"}
	}
	avail := c.available()
	for _, part := range []struct {
		src  config.FeeSource
		want basics.Amount
	}{
		{config.FeeSourceBalance, opts.FromBalance},
		{config.FeeSourcePrepaid, opts.FromPrepaid},
		{config.FeeSourceCsaf, opts.FromCsaf},
	} {
		if part.want > avail[part.src] {
			return ledgercore.CoreShortfall(c.Payer.UID, string(part.src), part.want, avail[part.src])
		}
	}
	c.Fee = FeeContext{
		FeeFromAccount: basics.CoreAsset(opts.FromBalance),
		CoreFeePaid:    fee.Total.Amount,
		TotalFeePaid:   fee.Total.Amount,
		FromBalance:    opts.FromBalance,
		FromPrepaid:    opts.FromPrepaid,
		FromCsaf:       opts.FromCsaf,
	}
	return nil
}

// prepareConverted prices a non-core fee through the asset's exchange
// pool. The whole fee comes from the payer's balance of that asset.
func (c *Context) prepareConverted(fee transactions.FeeType) error {
	bal := c.Payer.Balance(fee.Total.AssetID)
	if bal < fee.Total.Amount {
		return c.FeeAsset.BalanceShortfall(c.Payer.UID, fee.Total.Amount, bal)
	}
	core, err := ledgercore.QuoteToCore(c.FeeAsset, fee.Total.Amount)
	if err != nil {
		return err
	}
	if c.FeeAssetDyn.FeePool < core {
		return ledgercore.CoreShortfall(c.FeeAsset.Issuer, "fee pool of "+c.FeeAsset.Symbol, core, c.FeeAssetDyn.FeePool)
	}
	c.Fee = FeeContext{
		FeeFromAccount: fee.Total,
		CoreFeePaid:    core,
		TotalFeePaid:   core,
		FromBalance:    core,
	}
	return nil
}

func (c *Context) available() map[config.FeeSource]basics.Amount {
	return map[config.FeeSource]basics.Amount{
		config.FeeSourceBalance: c.Payer.Balance(basics.CoreAssetID),
		config.FeeSourcePrepaid: c.PayerStats.Prepaid,
		config.FeeSourceCsaf:    c.PayerStats.Csaf,
	}
}

// allocate draws a core fee from the payer's sources in the configured
// order. With a known fee pair csaf is first capped at the non-real part
// of the fee; if that leaves the fee unfunded the uncapped draw is used
// and the real-fee check reports the shortfall.
func (c *Context) allocate(amount basics.Amount, pair *FeePair) error {
	avail := c.available()
	if pair != nil {
		capped := basics.Min(avail[config.FeeSourceCsaf], basics.SubSaturate(amount, pair.Real))
		if c.draw(amount, avail, capped) {
			return nil
		}
	}
	if c.draw(amount, avail, avail[config.FeeSourceCsaf]) {
		return nil
	}
	var ot basics.OverflowTracker
	total := ot.Add(ot.Add(avail[config.FeeSourceBalance], avail[config.FeeSourcePrepaid]), avail[config.FeeSourceCsaf])
	if ot.Overflowed {
		total = ^basics.Amount(0)
	}
	return ledgercore.CoreShortfall(c.Payer.UID, "balance, prepaid and csaf", amount, total)
}

// draw fills c.Fee greedily and reports whether amount was covered.
func (c *Context) draw(amount basics.Amount, avail map[config.FeeSource]basics.Amount, csafCap basics.Amount) bool {
	var f FeeContext
	remaining := amount
	for _, src := range c.State.feeSourceOrder() {
		have := avail[src]
		if src == config.FeeSourceCsaf {
			have = basics.Min(have, csafCap)
		}
		take := basics.Min(have, remaining)
		remaining -= take
		switch src {
		case config.FeeSourceBalance:
			f.FromBalance = take
		case config.FeeSourcePrepaid:
			f.FromPrepaid = take
		case config.FeeSourceCsaf:
			f.FromCsaf = take
		}
	}
	if remaining != 0 {
		return false
	}
	f.TotalFeePaid = amount
	f.CoreFeePaid = amount
	f.FeeFromAccount = basics.CoreAsset(f.FromBalance)
	c.Fee = f
	return true
}
