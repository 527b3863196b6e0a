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

	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
)

// ConvertFee executes the exchange priced by PrepareFee: the core amount
// leaves the asset's fee pool and the paid asset amount joins it. Core
// fees need no conversion.
func (c *Context) ConvertFee() error {
	if c.Fee.FeeFromAccount.AssetID.IsCore() {
		return nil
	}
	dyn, err := c.AssetDynamicData(c.Fee.FeeFromAccount.AssetID)
	if err != nil {
		return err
	}
	if err := dyn.Exchange(c.Fee.FeeFromAccount.Amount, c.Fee.CoreFeePaid); err != nil {
		return err
	}
	return c.Ledger().PutAssetDynamicData(dyn)
}

// PayFee credits the core fee to the payer's pending fees. Fees above
// the cashback vesting threshold go to PendingFees, others vest through
// PendingVestedFees.
func (c *Context) PayFee() error {
	st, err := c.AccountStatistics(c.Payer.UID)
	if err != nil {
		return err
	}
	var ot basics.OverflowTracker
	if uint64(c.Fee.CoreFeePaid) > c.Params().CashbackVestingThreshold {
		st.PendingFees = ot.Add(st.PendingFees, c.Fee.CoreFeePaid)
	} else {
		st.PendingVestedFees = ot.Add(st.PendingVestedFees, c.Fee.CoreFeePaid)
	}
	if ot.Overflowed {
		return fmt.Errorf("pending fees of account %v overflow", c.Payer.UID)
	}
	return c.Ledger().PutAccountStatistics(st)
}

// PayFBAFee credits the core fee to fee-back accumulator id instead of
// the payer. An accumulator that does not exist or has no designated
// asset falls back to PayFee.
func (c *Context) PayFBAFee(id uint64) error {
	fba, ok, err := c.Ledger().GetFBAAccumulator(id)
	if err != nil {
		return err
	}
	if !ok || !fba.IsConfigured() {
		return c.PayFee()
	}
	sum, overflowed := basics.OAdd(fba.AccumulatedFBAFees, c.Fee.CoreFeePaid)
	if overflowed {
		return fmt.Errorf("fba accumulator %d overflows", id)
	}
	fba.AccumulatedFBAFees = sum
	return c.Ledger().PutFBAAccumulator(fba)
}

// ProcessFeeOptions consumes the prepaid and csaf shares of the fee.
func (c *Context) ProcessFeeOptions() error {
	if c.Fee.FromPrepaid == 0 && c.Fee.FromCsaf == 0 {
		return nil
	}
	st, err := c.AccountStatistics(c.Payer.UID)
	if err != nil {
		return err
	}
	if st.Prepaid < c.Fee.FromPrepaid {
		return ledgercore.CoreShortfall(c.Payer.UID, "prepaid", c.Fee.FromPrepaid, st.Prepaid)
	}
	if st.Csaf < c.Fee.FromCsaf {
		return ledgercore.CoreShortfall(c.Payer.UID, "csaf", c.Fee.FromCsaf, st.Csaf)
	}
	st.Prepaid -= c.Fee.FromPrepaid
	st.Csaf -= c.Fee.FromCsaf
	return c.Ledger().PutAccountStatistics(st)
}

// deductFee takes FeeFromAccount out of the payer's balance.
func (c *Context) deductFee() error {
	if c.Fee.FeeFromAccount.Amount == 0 {
		return nil
	}
	return c.Ledger().SubBalance(c.Payer.UID, c.Fee.FeeFromAccount)
}
