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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/data/transactions"
	"github.com/yoyow-org/go-yoyow/protocol"
	"github.com/yoyow-org/go-yoyow/test/partitiontest"
)

func TestCalculateFeePair(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	params := testParams()
	pair, err := CalculateFeePair(params, &transactions.TransferOp{})
	require.NoError(t, err)
	require.Equal(t, FeePair{Total: 10, Real: 10}, pair)

	pair, err = CalculateFeePair(params, &transactions.CsafLeaseOp{})
	require.NoError(t, err)
	require.Equal(t, FeePair{Total: 10, Real: 5}, pair)

	// percent floor wins over a smaller absolute floor
	params.Fees.Parameters[protocol.CsafLeaseOp] = config.FeeParameters{Fee: 1000, MinRealFee: 5, MinRealFeePercent: 2500}
	pair, err = CalculateFeePair(params, &transactions.CsafLeaseOp{})
	require.NoError(t, err)
	require.Equal(t, FeePair{Total: 1000, Real: 250}, pair)

	// real is capped at total
	params.Fees.Parameters[protocol.CsafLeaseOp] = config.FeeParameters{Fee: 3, MinRealFee: 5}
	pair, err = CalculateFeePair(params, &transactions.CsafLeaseOp{})
	require.NoError(t, err)
	require.Equal(t, FeePair{Total: 3, Real: 3}, pair)

	params.Fees.Scale = 3 * config.Percent100 / 2
	total, err := CalculateFee(params, &transactions.AssetIssueOp{})
	require.NoError(t, err)
	require.Equal(t, basics.Amount(30), total)

	delete(params.Fees.Parameters, protocol.AssetIssueOp)
	_, err = CalculateFee(params, &transactions.AssetIssueOp{})
	require.ErrorIs(t, err, config.ErrNoFeeParameters(protocol.AssetIssueOp))
}

func TestCalculateFeePairConsensusVersions(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	op := &transactions.TransferOp{Memo: make([]byte, 1024)}

	v1, err := CalculateFeePair(config.Consensus[protocol.ConsensusV1], op)
	require.NoError(t, err)
	require.Equal(t, FeePair{Total: 2000, Real: 0}, v1)

	v2, err := CalculateFeePair(config.Consensus[protocol.ConsensusV2], op)
	require.NoError(t, err)
	require.Equal(t, FeePair{Total: 4000, Real: 800}, v2)
}

func TestCalculateFeeSaturates(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	params := testParams()
	params.Fees.Parameters[protocol.AssetIssueOp] = config.FeeParameters{Fee: ^uint64(0), MinRealFeePercent: config.Percent100}
	params.Fees.Scale = 2 * config.Percent100
	pair, err := CalculateFeePair(params, &transactions.AssetIssueOp{})
	require.NoError(t, err)
	require.Equal(t, ^basics.Amount(0), pair.Total)
	require.Equal(t, pair.Total, pair.Real)
}
