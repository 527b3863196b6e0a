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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/protocol"
	"github.com/yoyow-org/go-yoyow/test/partitiontest"
)

func TestGenesisDelta(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	delta, err := testGenesis().delta()
	require.NoError(t, err)
	require.Equal(t, basics.AssetID(2), delta.NextAssetID)
	require.Equal(t, basics.Amount(400), delta.Dynamic[1].CurrentSupply)
	require.Equal(t, basics.AssetID(1), delta.Assets[1].CoreExchangeRate.Base.AssetID)
	require.Len(t, delta.Accounts, 4)
	require.Contains(t, delta.FBA, uint64(0))
}

func TestGenesisRejects(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	g := testGenesis()
	g.Accounts = append(g.Accounts, GenesisAccount{UID: 2})
	_, err := g.delta()
	require.ErrorContains(t, err, "listed twice")

	g = testGenesis()
	g.Accounts[0].Holdings = []basics.Asset{{Amount: 1, AssetID: 5}}
	_, err = g.delta()
	require.ErrorContains(t, err, "unknown asset")

	g = testGenesis()
	g.Assets[0].RateCore = 0
	_, err = g.delta()
	require.Error(t, err)
}

func TestLoadGenesisFromFile(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(path, protocol.EncodeJSON(testGenesis()), 0600))

	g, err := LoadGenesisFromFile(path)
	require.NoError(t, err)
	require.Equal(t, testGenesis(), g)
}
