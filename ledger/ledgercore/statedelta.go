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
	"github.com/yoyow-org/go-yoyow/data/basics"
)

// StateDelta is the set of objects written since some base state. Every
// entry holds the full new value of the object.
type StateDelta struct {
	Accounts map[basics.AccountUID]Account
	Stats    map[basics.AccountUID]AccountStatistics
	Assets   map[basics.AssetID]Asset
	Dynamic  map[basics.AssetID]AssetDynamicData
	FBA      map[uint64]FBAAccumulator

	// NextAssetID is the id the next created asset receives.
	NextAssetID basics.AssetID
}

// MakeStateDelta returns an empty delta on top of a state whose next
// asset id is nextAssetID.
func MakeStateDelta(nextAssetID basics.AssetID) StateDelta {
	return StateDelta{
		Accounts:    make(map[basics.AccountUID]Account),
		Stats:       make(map[basics.AccountUID]AccountStatistics),
		Assets:      make(map[basics.AssetID]Asset),
		Dynamic:     make(map[basics.AssetID]AssetDynamicData),
		FBA:         make(map[uint64]FBAAccumulator),
		NextAssetID: nextAssetID,
	}
}

// Merge writes every entry of child over sd.
func (sd *StateDelta) Merge(child StateDelta) {
	for k, v := range child.Accounts {
		sd.Accounts[k] = v
	}
	for k, v := range child.Stats {
		sd.Stats[k] = v
	}
	for k, v := range child.Assets {
		sd.Assets[k] = v
	}
	for k, v := range child.Dynamic {
		sd.Dynamic[k] = v
	}
	for k, v := range child.FBA {
		sd.FBA[k] = v
	}
	sd.NextAssetID = child.NextAssetID
}

// Len is the number of objects in the delta.
func (sd StateDelta) Len() int {
	return len(sd.Accounts) + len(sd.Stats) + len(sd.Assets) + len(sd.Dynamic) + len(sd.FBA)
}
