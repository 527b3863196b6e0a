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

// TransferOp moves an amount from one account to another. Core amounts
// may be taken from, or credited to, prepaid credit instead of the
// spendable balance.
type TransferOp struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Fee         FeeType           `codec:"fee"`
	From        basics.AccountUID `codec:"from"`
	To          basics.AccountUID `codec:"to"`
	Amount      basics.Asset      `codec:"amt"`
	FromPrepaid bool              `codec:"fpp"`
	ToPrepaid   bool              `codec:"tpp"`
	Memo        []byte            `codec:"memo"`
}

// Type implements Operation
func (op *TransferOp) Type() protocol.OpType { return protocol.TransferOp }

// FeePayer implements Operation
func (op *TransferOp) FeePayer() basics.AccountUID { return op.From }

// DeclaredFee implements Operation
func (op *TransferOp) DeclaredFee() FeeType { return op.Fee }

// CalculateFee charges the base fee plus the memo by size.
func (op *TransferOp) CalculateFee(p config.FeeParameters) basics.Amount {
	return sumFee(p.Fee, dataFee(len(op.Memo), p.PricePerKByte))
}

// WellFormed implements Operation
func (op *TransferOp) WellFormed(params config.ConsensusParams) error {
	if err := op.Fee.WellFormed(); err != nil {
		return err
	}
	if op.From == op.To {
		return fmt.Errorf("transfer from %v to itself", op.From)
	}
	if op.Amount.Amount == 0 {
		return fmt.Errorf("transfer of zero amount")
	}
	if (op.FromPrepaid || op.ToPrepaid) && !op.Amount.AssetID.IsCore() {
		return fmt.Errorf("prepaid transfer of non-core asset %v", op.Amount.AssetID)
	}
	if len(op.Memo) > params.MaxMemoBytes {
		return fmt.Errorf("memo too long: %d > %d", len(op.Memo), params.MaxMemoBytes)
	}
	return nil
}

// Visit implements Operation
func (op *TransferOp) Visit(v Visitor) error { return v.Transfer(op) }

func (*TransferOp) isOperation() {}
