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

package transactions

import (
	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/protocol"
)

// Operation is one step of a transaction. The set of implementations is
// closed: every kind is listed in Visitor, so a new kind cannot be added
// without every Visitor (the evaluator dispatch table among them) handling
// it.
type Operation interface {
	// Type is the runtime tag of the operation kind.
	Type() protocol.OpType

	// FeePayer is the account charged for this operation.
	FeePayer() basics.AccountUID

	// DeclaredFee is the fee the submitter attached.
	DeclaredFee() FeeType

	// CalculateFee applies the kind's own scaling (size, premiums) to its
	// base fee parameters. The schedule's global Scale is applied by the
	// caller.
	CalculateFee(p config.FeeParameters) basics.Amount

	// WellFormed checks everything about the operation that does not
	// depend on ledger state.
	WellFormed(params config.ConsensusParams) error

	// Visit calls the Visitor method matching the concrete kind.
	Visit(v Visitor) error

	isOperation()
}

// Visitor has one method per operation kind.
type Visitor interface {
	Transfer(*TransferOp) error
	AccountCreate(*AccountCreateOp) error
	AssetCreate(*AssetCreateOp) error
	AssetIssue(*AssetIssueOp) error
	AssetFundFeePool(*AssetFundFeePoolOp) error
	CsafLease(*CsafLeaseOp) error
	TransferToBlind(*TransferToBlindOp) error
}

// OperationResult is what an applied operation reports back. Operations
// that create an object set NewObject, which later operations in the
// same transaction can reference through a relative id.
type OperationResult struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	NewObject basics.ObjectID `codec:"obj"`
	Amount    basics.Asset    `codec:"amt"`
}

// HasObject reports whether the operation created an object.
func (r OperationResult) HasObject() bool {
	return !r.NewObject.IsZero()
}

// dataFee charges pricePerKByte for every 1024 bytes of size, pro rata.
func dataFee(size int, pricePerKByte uint64) uint64 {
	fee, overflowed := basics.Muldiv(uint64(size), pricePerKByte, 1024)
	if overflowed {
		return ^uint64(0)
	}
	return fee
}

// sumFee adds fee components, saturating.
func sumFee(parts ...uint64) basics.Amount {
	var total uint64
	for _, p := range parts {
		total = basics.AddSaturate(total, p)
	}
	return basics.Amount(total)
}
