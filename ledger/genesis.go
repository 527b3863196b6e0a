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
	"os"

	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
	"github.com/yoyow-org/go-yoyow/protocol"
)

// CoreSymbol is the symbol of the core asset created at genesis.
const CoreSymbol = "YOYO"

// Genesis is the initial state of a ledger.
type Genesis struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Proto    protocol.ConsensusVersion `codec:"proto"`
	Accounts []GenesisAccount          `codec:"accounts"`
	// Assets get ids 1, 2, ... in order; id 0 is the core asset.
	Assets []GenesisAsset `codec:"assets"`
	FBA    []GenesisFBA   `codec:"fba"`
}

// GenesisAccount is an account present at genesis.
type GenesisAccount struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	UID     basics.AccountUID `codec:"uid"`
	Name    string            `codec:"name"`
	Balance basics.Amount     `codec:"balance"`
	Prepaid basics.Amount     `codec:"prepaid"`
	Csaf    basics.Amount     `codec:"csaf"`

	// Holdings of user issued assets.
	Holdings []basics.Asset `codec:"holdings"`
}

// GenesisAsset is a user issued asset present at genesis.
type GenesisAsset struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Symbol    string            `codec:"symbol"`
	Precision uint8             `codec:"precision"`
	Issuer    basics.AccountUID `codec:"issuer"`
	MaxSupply basics.Amount     `codec:"max_supply"`
	RateAsset basics.Amount     `codec:"rate_asset"`
	RateCore  basics.Amount     `codec:"rate_core"`
	FeePool   basics.Amount     `codec:"fee_pool"`
}

// GenesisFBA is a fee-back accumulator present at genesis. An empty
// DesignatedAsset leaves it unconfigured.
type GenesisFBA struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	ID              uint64          `codec:"id"`
	DesignatedAsset *basics.AssetID `codec:"designated_asset"`
}

// LoadGenesisFromFile reads a JSON genesis file.
func LoadGenesisFromFile(filename string) (Genesis, error) {
	var g Genesis
	data, err := os.ReadFile(filename)
	if err != nil {
		return g, err
	}
	err = protocol.DecodeJSON(data, &g)
	return g, err
}

// delta builds the state the genesis describes.
func (g Genesis) delta() (ledgercore.StateDelta, error) {
	delta := ledgercore.MakeStateDelta(0)

	delta.Assets[basics.CoreAssetID] = ledgercore.Asset{ID: basics.CoreAssetID, Symbol: CoreSymbol, Precision: basics.CorePrecision}
	delta.Dynamic[basics.CoreAssetID] = ledgercore.AssetDynamicData{ID: basics.CoreAssetID}
	delta.NextAssetID = 1

	for _, ga := range g.Assets {
		id := delta.NextAssetID
		asset := ledgercore.Asset{
			ID:        id,
			Symbol:    ga.Symbol,
			Precision: ga.Precision,
			Issuer:    ga.Issuer,
			MaxSupply: ga.MaxSupply,
			CoreExchangeRate: basics.Price{
				Base:  basics.Asset{Amount: ga.RateAsset, AssetID: id},
				Quote: basics.CoreAsset(ga.RateCore),
			},
		}
		if err := asset.CoreExchangeRate.Validate(); err != nil {
			return delta, fmt.Errorf("genesis asset %s: %w", ga.Symbol, err)
		}
		delta.Assets[id] = asset
		delta.Dynamic[id] = ledgercore.AssetDynamicData{ID: id, FeePool: ga.FeePool}
		delta.NextAssetID++
	}

	for _, ga := range g.Accounts {
		if _, dup := delta.Accounts[ga.UID]; dup {
			return delta, fmt.Errorf("genesis account %v listed twice", ga.UID)
		}
		acct := ledgercore.Account{UID: ga.UID, Name: ga.Name, Balances: make(map[basics.AssetID]basics.Amount)}
		holdings := append([]basics.Asset{basics.CoreAsset(ga.Balance)}, ga.Holdings...)
		for _, h := range holdings {
			dyn, ok := delta.Dynamic[h.AssetID]
			if !ok {
				return delta, fmt.Errorf("genesis account %v holds unknown asset %v", ga.UID, h.AssetID)
			}
			var ot basics.OverflowTracker
			dyn.CurrentSupply = ot.Add(dyn.CurrentSupply, h.Amount)
			acct.Balances[h.AssetID] = ot.Add(acct.Balances[h.AssetID], h.Amount)
			if ot.Overflowed {
				return delta, fmt.Errorf("genesis supply of asset %v overflows", h.AssetID)
			}
			delta.Dynamic[h.AssetID] = dyn
		}
		delta.Accounts[ga.UID] = acct
		delta.Stats[ga.UID] = ledgercore.AccountStatistics{Owner: ga.UID, Prepaid: ga.Prepaid, Csaf: ga.Csaf}
	}

	for _, gf := range g.FBA {
		delta.FBA[gf.ID] = ledgercore.FBAAccumulator{ID: gf.ID, DesignatedAsset: gf.DesignatedAsset}
	}
	return delta, nil
}
