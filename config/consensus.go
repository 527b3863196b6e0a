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

package config

import (
	"github.com/yoyow-org/go-yoyow/protocol"
)

// ConsensusParams specifies settings that might vary based on the
// particular version of the consensus protocol.
type ConsensusParams struct {
	// Fees charged per operation kind.
	Fees FeeSchedule

	// A fee strictly greater than this goes to PendingFees, anything at
	// or below it vests through PendingVestedFees.
	CashbackVestingThreshold uint64

	MinAssetSymbolLength int
	MaxAssetSymbolLength int
	MaxAccountNameLength int

	// Transfers with a longer memo are malformed.
	MaxMemoBytes int
}

// ConsensusProtocols defines a set of supported protocol versions and their
// corresponding parameters.
type ConsensusProtocols map[protocol.ConsensusVersion]ConsensusParams

// Consensus tracks the protocol-level settings for different versions of the
// consensus protocol.
var Consensus ConsensusProtocols

func init() {
	Consensus = make(ConsensusProtocols)
	initConsensusProtocols()
}

func initConsensusProtocols() {
	v1 := ConsensusParams{
		Fees: FeeSchedule{
			Scale: Percent100,
			Parameters: map[protocol.OpType]FeeParameters{
				protocol.TransferOp:         {Fee: 1000, PricePerKByte: 1000, MinRealFee: 0, MinRealFeePercent: 0},
				protocol.AccountCreateOp:    {Fee: 100000, PricePerKByte: 1000, Premium: 900000, MinRealFee: 10000, MinRealFeePercent: 0},
				protocol.AssetCreateOp:      {Fee: 500000, PricePerKByte: 1000, Premium: 4500000, MinRealFee: 50000, MinRealFeePercent: 0},
				protocol.AssetIssueOp:       {Fee: 2000, PricePerKByte: 1000},
				protocol.AssetFundFeePoolOp: {Fee: 1000},
				protocol.CsafLeaseOp:        {Fee: 1000, MinRealFeePercent: 5000},
				protocol.TransferToBlindOp:  {Fee: 5000, PricePerKByte: 1000, MinRealFee: 1000},
			},
		},
		CashbackVestingThreshold: 10000,
		MinAssetSymbolLength:     3,
		MaxAssetSymbolLength:     16,
		MaxAccountNameLength:     63,
		MaxMemoBytes:             2048,
	}
	Consensus[protocol.ConsensusV1] = v1

	// v2 doubles the fee scale and requires part of every transfer fee to
	// be real.
	v2 := v1
	v2.Fees = v1.Fees.DeepCopy()
	v2.Fees.Scale = 2 * Percent100
	tp := v2.Fees.Parameters[protocol.TransferOp]
	tp.MinRealFeePercent = 2000
	v2.Fees.Parameters[protocol.TransferOp] = tp
	Consensus[protocol.ConsensusV2] = v2

	// future is a sandbox for schedule changes and is never activated on
	// a real network.
	vFuture := v2
	vFuture.Fees = v2.Fees.DeepCopy()
	Consensus[protocol.ConsensusFuture] = vFuture
}
