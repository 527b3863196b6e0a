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

package protocol

// OpType is the runtime tag of an operation kind.
type OpType string

// Operation kinds known to this protocol.
const (
	UnknownOp          OpType = "unknown"
	TransferOp         OpType = "transfer"
	AccountCreateOp    OpType = "account_create"
	AssetCreateOp      OpType = "asset_create"
	AssetIssueOp       OpType = "asset_issue"
	AssetFundFeePoolOp OpType = "asset_fund_fee_pool"
	CsafLeaseOp        OpType = "csaf_lease"
	TransferToBlindOp  OpType = "transfer_to_blind"
)

// OpTypes lists every operation kind in a stable order.
var OpTypes = []OpType{
	TransferOp,
	AccountCreateOp,
	AssetCreateOp,
	AssetIssueOp,
	AssetFundFeePoolOp,
	CsafLeaseOp,
	TransferToBlindOp,
}

// Known reports whether t is one of OpTypes.
func (t OpType) Known() bool {
	for _, k := range OpTypes {
		if k == t {
			return true
		}
	}
	return false
}
