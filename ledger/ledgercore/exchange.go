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

package ledgercore

import (
	"fmt"

	"github.com/yoyow-org/go-yoyow/data/basics"
)

// QuoteToCore prices amt, denominated in asset, in core units at the
// asset's exchange rate, rounding down.
func QuoteToCore(asset Asset, amt basics.Amount) (basics.Amount, error) {
	if asset.ID.IsCore() {
		return amt, nil
	}
	core, err := asset.CoreExchangeRate.Convert(basics.Asset{Amount: amt, AssetID: asset.ID})
	if err != nil {
		return 0, fmt.Errorf("asset %s: %w", asset.Symbol, err)
	}
	if !core.AssetID.IsCore() {
		return 0, fmt.Errorf("asset %s: exchange rate is not against core", asset.Symbol)
	}
	return core.Amount, nil
}

// Exchange moves core out of the fee pool in return for paid units of
// the asset. The quote must come from QuoteToCore.
func (d *AssetDynamicData) Exchange(paid, core basics.Amount) error {
	if d.FeePool < core {
		return fmt.Errorf("asset %v fee pool holds %d, need %d", d.ID, d.FeePool, core)
	}
	accumulated, overflowed := basics.OAdd(d.AccumulatedFees, paid)
	if overflowed {
		return fmt.Errorf("asset %v accumulated fees overflow", d.ID)
	}
	d.FeePool -= core
	d.AccumulatedFees = accumulated
	return nil
}
