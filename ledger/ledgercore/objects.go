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
	"maps"

	"github.com/yoyow-org/go-yoyow/data/basics"
)

// Account is a registered account and its spendable balances.
type Account struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	UID       basics.AccountUID                `codec:"uid"`
	Name      string                           `codec:"name"`
	Registrar basics.AccountUID                `codec:"reg"`
	Balances  map[basics.AssetID]basics.Amount `codec:"bal"`
}

// Balance returns the spendable balance of asset id.
func (a Account) Balance(id basics.AssetID) basics.Amount {
	return a.Balances[id]
}

// Clone returns a copy that shares no map with a.
func (a Account) Clone() Account {
	a.Balances = maps.Clone(a.Balances)
	return a
}

// AccountStatistics holds the fee related counters of an account.
type AccountStatistics struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Owner basics.AccountUID `codec:"owner"`

	// Prepaid and Csaf are core credits usable for fees.
	Prepaid basics.Amount `codec:"prepaid"`
	Csaf    basics.Amount `codec:"csaf"`

	PendingFees       basics.Amount `codec:"pf"`
	PendingVestedFees basics.Amount `codec:"pvf"`
}

// Asset is the static description of an asset.
type Asset struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	ID        basics.AssetID    `codec:"id"`
	Symbol    string            `codec:"sym"`
	Precision uint8             `codec:"prec"`
	Issuer    basics.AccountUID `codec:"issuer"`
	MaxSupply basics.Amount     `codec:"max"`

	// CoreExchangeRate prices the asset against core. Its Base is in this
	// asset and its Quote in core. Unset for the core asset.
	CoreExchangeRate basics.Price `codec:"cer"`
}

// AssetDynamicData holds the counters of an asset that change with every
// operation touching it. FeePool and AccumulatedFees form the asset's
// exchange pool: the core side and the asset side.
type AssetDynamicData struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	ID                 basics.AssetID `codec:"id"`
	CurrentSupply      basics.Amount  `codec:"supply"`
	ConfidentialSupply basics.Amount  `codec:"csupply"`
	AccumulatedFees    basics.Amount  `codec:"afees"`
	FeePool            basics.Amount  `codec:"pool"`
}

// FBAAccumulator collects the fees of operations whose fee funds a shared
// pool instead of the payer.
type FBAAccumulator struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	ID                 uint64          `codec:"id"`
	DesignatedAsset    *basics.AssetID `codec:"asset"`
	AccumulatedFBAFees basics.Amount   `codec:"fees"`
}

// IsConfigured reports whether fees may be routed to the accumulator.
func (f FBAAccumulator) IsConfigured() bool {
	return f.DesignatedAsset != nil
}
