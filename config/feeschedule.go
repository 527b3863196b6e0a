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
	"fmt"
	"maps"

	"github.com/yoyow-org/go-yoyow/protocol"
)

// Percent100 is 100% expressed in the units of FeeSchedule.Scale and
// FeeParameters.MinRealFeePercent.
const Percent100 = 10000

// FeeParameters are the base fee parameters of one operation kind. How they
// combine is up to the operation kind; the common shape is
// Fee + PricePerKByte*size/1024, plus Premium when the operation claims a
// short name.
type FeeParameters struct {
	Fee           uint64 `json:"fee"`
	PricePerKByte uint64 `json:"price_per_kbyte"`
	Premium       uint64 `json:"premium"`

	// The real (non-csaf) part of a fee is at least
	// max(MinRealFee, total*MinRealFeePercent/Percent100), capped at total.
	MinRealFee        uint64 `json:"min_real_fee"`
	MinRealFeePercent uint32 `json:"min_real_fee_percent"`
}

// FeeSchedule maps every operation kind to its FeeParameters. Scale
// multiplies every computed fee, in units of Percent100.
type FeeSchedule struct {
	Scale      uint32                            `json:"scale"`
	Parameters map[protocol.OpType]FeeParameters `json:"parameters"`
}

// ErrNoFeeParameters is returned for an operation kind missing from the
// schedule.
type ErrNoFeeParameters protocol.OpType

// Error satisfies builtin interface `error`
func (err ErrNoFeeParameters) Error() string {
	return fmt.Sprintf("fee schedule has no parameters for operation %s", string(err))
}

// Lookup returns the parameters for op.
func (fs FeeSchedule) Lookup(op protocol.OpType) (FeeParameters, error) {
	p, ok := fs.Parameters[op]
	if !ok {
		return FeeParameters{}, ErrNoFeeParameters(op)
	}
	return p, nil
}

// DeepCopy returns a schedule that shares no map with fs.
func (fs FeeSchedule) DeepCopy() FeeSchedule {
	return FeeSchedule{Scale: fs.Scale, Parameters: maps.Clone(fs.Parameters)}
}
