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
	"fmt"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/protocol"
)

// shortNameLength is the length below which account names and asset
// symbols carry the premium fee.
const shortNameLength = 5

// AccountCreateOp registers a new account. The registrar pays the fee.
type AccountCreateOp struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Fee       FeeType           `codec:"fee"`
	Registrar basics.AccountUID `codec:"reg"`
	UID       basics.AccountUID `codec:"uid"`
	Name      string            `codec:"name"`
}

// Type implements Operation
func (op *AccountCreateOp) Type() protocol.OpType { return protocol.AccountCreateOp }

// FeePayer implements Operation
func (op *AccountCreateOp) FeePayer() basics.AccountUID { return op.Registrar }

// DeclaredFee implements Operation
func (op *AccountCreateOp) DeclaredFee() FeeType { return op.Fee }

// CalculateFee charges the base fee, the name by size, and the premium
// for short names.
func (op *AccountCreateOp) CalculateFee(p config.FeeParameters) basics.Amount {
	fee := sumFee(p.Fee, dataFee(len(op.Name), p.PricePerKByte))
	if len(op.Name) < shortNameLength {
		fee = sumFee(uint64(fee), p.Premium)
	}
	return fee
}

// WellFormed implements Operation
func (op *AccountCreateOp) WellFormed(params config.ConsensusParams) error {
	if err := op.Fee.WellFormed(); err != nil {
		return err
	}
	if op.Name == "" || len(op.Name) > params.MaxAccountNameLength {
		return fmt.Errorf("account name %q must be 1 to %d bytes", op.Name, params.MaxAccountNameLength)
	}
	if op.UID == op.Registrar {
		return fmt.Errorf("account %v cannot register itself", op.UID)
	}
	return nil
}

// Visit implements Operation
func (op *AccountCreateOp) Visit(v Visitor) error { return v.AccountCreate(op) }

func (*AccountCreateOp) isOperation() {}

// CsafLeaseOp hands csaf credit from one account to another.
type CsafLeaseOp struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Fee    FeeType           `codec:"fee"`
	From   basics.AccountUID `codec:"from"`
	To     basics.AccountUID `codec:"to"`
	Amount basics.Amount     `codec:"amt"`
}

// Type implements Operation
func (op *CsafLeaseOp) Type() protocol.OpType { return protocol.CsafLeaseOp }

// FeePayer implements Operation
func (op *CsafLeaseOp) FeePayer() basics.AccountUID { return op.From }

// DeclaredFee implements Operation
func (op *CsafLeaseOp) DeclaredFee() FeeType { return op.Fee }

// CalculateFee implements Operation
func (op *CsafLeaseOp) CalculateFee(p config.FeeParameters) basics.Amount {
	return basics.Amount(p.Fee)
}

// WellFormed implements Operation
func (op *CsafLeaseOp) WellFormed(params config.ConsensusParams) error {
	if err := op.Fee.WellFormed(); err != nil {
		return err
	}
	if op.From == op.To {
		return fmt.Errorf("csaf lease from %v to itself", op.From)
	}
	if op.Amount == 0 {
		return fmt.Errorf("csaf lease of zero amount")
	}
	return nil
}

// Visit implements Operation
func (op *CsafLeaseOp) Visit(v Visitor) error { return v.CsafLease(op) }

func (*CsafLeaseOp) isOperation() {}
