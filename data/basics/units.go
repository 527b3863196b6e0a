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
	"fmt"
	"strconv"
	"strings"
)

// Amount is a quantity of some asset in its smallest indivisible unit.
type Amount uint64

// AccountUID identifies an account. Account uids are chosen at
// registration time and never reused.
type AccountUID uint64

// AssetID identifies an asset. CoreAssetID is the ledger's native asset.
type AssetID uint64

// CoreAssetID is the native asset every fee is ultimately settled in.
const CoreAssetID AssetID = 0

// CorePrecision is the number of decimal places core amounts are
// displayed with.
const CorePrecision uint8 = 5

// IsCore reports whether id refers to the native asset.
func (id AssetID) IsCore() bool {
	return id == CoreAssetID
}

// String implements fmt.Stringer
func (uid AccountUID) String() string {
	return strconv.FormatUint(uint64(uid), 10)
}

// String implements fmt.Stringer
func (id AssetID) String() string {
	return "asset#" + strconv.FormatUint(uint64(id), 10)
}

// FormatAmount renders a in units of 10^-precision, e.g. 150000 with
// precision 5 is "1.50000".
func FormatAmount(a Amount, precision uint8) string {
	if precision == 0 {
		return strconv.FormatUint(uint64(a), 10)
	}
	var scale uint64 = 1
	for i := uint8(0); i < precision; i++ {
		scale *= 10
	}
	whole := uint64(a) / scale
	frac := uint64(a) % scale
	s := strconv.FormatUint(frac, 10)
	return fmt.Sprintf("%d.%s%s", whole, strings.Repeat("0", int(precision)-len(s)), s)
}
