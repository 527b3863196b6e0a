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

package basics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yoyow-org/go-yoyow/test/partitiontest"
)

func TestOverflowTracker(t *testing.T) {
	partitiontest.PartitionTest(t)

	var ot OverflowTracker
	require.Equal(t, Amount(7), ot.Add(3, 4))
	require.False(t, ot.Overflowed)

	ot.Add(math.MaxUint64, 1)
	require.True(t, ot.Overflowed)

	// the flag sticks once set
	require.Equal(t, Amount(2), ot.Add(1, 1))
	require.True(t, ot.Overflowed)
}

func TestMuldiv(t *testing.T) {
	partitiontest.PartitionTest(t)

	res, overflowed := Muldiv(Amount(10), Amount(1), 2)
	require.False(t, overflowed)
	require.Equal(t, Amount(5), res)

	// a*b exceeds 64 bits but the quotient does not
	res, overflowed = Muldiv(Amount(math.MaxUint64), Amount(4), 8)
	require.False(t, overflowed)
	require.Equal(t, Amount(math.MaxUint64/2), res)

	_, overflowed = Muldiv(Amount(math.MaxUint64), Amount(2), 1)
	require.True(t, overflowed)
}

func TestSubSaturate(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, Amount(0), SubSaturate(Amount(3), Amount(5)))
	require.Equal(t, Amount(2), SubSaturate(Amount(5), Amount(3)))
	require.Equal(t, Amount(3), Min(Amount(3), Amount(5)))
}

func TestPriceConvert(t *testing.T) {
	partitiontest.PartitionTest(t)

	rate := Price{
		Base:  Asset{Amount: 2, AssetID: 7},
		Quote: CoreAsset(1),
	}
	core, err := rate.Convert(Asset{Amount: 10, AssetID: 7})
	require.NoError(t, err)
	require.Equal(t, CoreAsset(5), core)

	back, err := rate.Convert(CoreAsset(5))
	require.NoError(t, err)
	require.Equal(t, Asset{Amount: 10, AssetID: 7}, back)

	// rounds down
	core, err = rate.Convert(Asset{Amount: 11, AssetID: 7})
	require.NoError(t, err)
	require.Equal(t, CoreAsset(5), core)

	_, err = rate.Convert(Asset{Amount: 1, AssetID: 8})
	require.Error(t, err)

	_, err = Price{Base: CoreAsset(1), Quote: CoreAsset(1)}.Convert(CoreAsset(1))
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestFormatAmount(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, "1.50000", FormatAmount(150000, 5))
	require.Equal(t, "0.00010", FormatAmount(10, 5))
	require.Equal(t, "42", FormatAmount(42, 0))
	require.Equal(t, "0.5", FormatAmount(5, 1))
}

func TestObjectID(t *testing.T) {
	partitiontest.PartitionTest(t)

	rel := RelativeID(2)
	require.True(t, rel.IsRelative())
	_, ok := rel.AsAssetID()
	require.False(t, ok)

	aid, ok := AssetObjectID(9).AsAssetID()
	require.True(t, ok)
	require.Equal(t, AssetID(9), aid)
	require.Equal(t, "1.2.9", AssetObjectID(9).String())
	require.False(t, AccountObjectID(5).IsRelative())
}
