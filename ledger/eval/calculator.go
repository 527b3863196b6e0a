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
	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/data/transactions"
)

// FeePair is the fee an operation must pay. Real is the part that must
// come from balance or prepaid; Real <= Total.
type FeePair struct {
	Total basics.Amount
	Real  basics.Amount
}

// CalculateFeePair computes the required fee pair of op from the fee
// schedule of params.
func CalculateFeePair(params config.ConsensusParams, op transactions.Operation) (FeePair, error) {
	p, err := params.Fees.Lookup(op.Type())
	if err != nil {
		return FeePair{}, err
	}
	total := scale(op.CalculateFee(p), params.Fees.Scale)

	minReal := basics.Amount(p.MinRealFee)
	if p.MinRealFeePercent > 0 {
		pct, overflowed := basics.Muldiv(total, uint64(p.MinRealFeePercent), config.Percent100)
		if overflowed {
			pct = total
		}
		if pct > minReal {
			minReal = pct
		}
	}
	return FeePair{Total: total, Real: basics.Min(minReal, total)}, nil
}

// CalculateFee computes only the total required fee of op.
func CalculateFee(params config.ConsensusParams, op transactions.Operation) (basics.Amount, error) {
	pair, err := CalculateFeePair(params, op)
	return pair.Total, err
}

func scale(fee basics.Amount, s uint32) basics.Amount {
	res, overflowed := basics.Muldiv(fee, uint64(s), config.Percent100)
	if overflowed {
		return ^basics.Amount(0)
	}
	return res
}
