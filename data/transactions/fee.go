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

package transactions

import (
	"fmt"

	"github.com/yoyow-org/go-yoyow/data/basics"
)

// FeeType is the fee a submitter attaches to an operation.
//
// Without Options the ledger draws Total from the payer's funding sources
// in its configured order. With Options the submitter states exactly how
// much comes from each source; the parts must add up to Total. Options
// are only meaningful for fees paid in the core asset.
type FeeType struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Total   basics.Asset `codec:"total"`
	Options *FeeOptions  `codec:"options"`
}

// FeeOptions splits a core fee across funding sources.
type FeeOptions struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	FromBalance basics.Amount `codec:"from_balance"`
	FromPrepaid basics.Amount `codec:"from_prepaid"`
	FromCsaf    basics.Amount `codec:"from_csaf"`
}

// Sum adds up the three parts. ok is false on overflow.
func (o FeeOptions) Sum() (sum basics.Amount, ok bool) {
	var ot basics.OverflowTracker
	sum = ot.Add(ot.Add(o.FromBalance, o.FromPrepaid), o.FromCsaf)
	return sum, !ot.Overflowed
}

// CoreFee is a fee of a core amount with no explicit options.
func CoreFee(a basics.Amount) FeeType {
	return FeeType{Total: basics.CoreAsset(a)}
}

// AssetFee is a fee paid in a non-core asset.
func AssetFee(a basics.Amount, id basics.AssetID) FeeType {
	return FeeType{Total: basics.Asset{Amount: a, AssetID: id}}
}

// FeeWithOptions is a core fee split explicitly across sources.
func FeeWithOptions(fromBalance, fromPrepaid, fromCsaf basics.Amount) FeeType {
	opts := &FeeOptions{FromBalance: fromBalance, FromPrepaid: fromPrepaid, FromCsaf: fromCsaf}
	sum, _ := opts.Sum()
	return FeeType{Total: basics.CoreAsset(sum), Options: opts}
}

// WellFormed checks that options, if any, are consistent with Total.
func (f FeeType) WellFormed() error {
	if f.Options == nil {
		return nil
	}
	if !f.Total.AssetID.IsCore() {
		return fmt.Errorf("fee options given for non-core fee asset %v", f.Total.AssetID)
	}
	sum, ok := f.Options.Sum()
	if !ok || sum != f.Total.Amount {
		return fmt.Errorf("fee options sum to %d, fee total is %d", sum, f.Total.Amount)
	}
	return nil
}
