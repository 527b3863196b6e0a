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

// BlindFBAID is the fee accumulator that collects fees of blind
// transfers.
const BlindFBAID uint64 = 0

// BlindOutput is one commitment created by a blind transfer.
type BlindOutput struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Commitment []byte `codec:"c"`
	Owner      []byte `codec:"o"`
}

// TransferToBlindOp moves public balance into confidential supply. Its
// fee funds the blind-transfer accumulator instead of the payer's
// pending fees.
type TransferToBlindOp struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Fee     FeeType           `codec:"fee"`
	From    basics.AccountUID `codec:"from"`
	Amount  basics.Asset      `codec:"amt"`
	Outputs []BlindOutput     `codec:"outs"`
}

// Type implements Operation
func (op *TransferToBlindOp) Type() protocol.OpType { return protocol.TransferToBlindOp }

// FeePayer implements Operation
func (op *TransferToBlindOp) FeePayer() basics.AccountUID { return op.From }

// DeclaredFee implements Operation
func (op *TransferToBlindOp) DeclaredFee() FeeType { return op.Fee }

// CalculateFee charges the base fee per output plus the outputs by size.
func (op *TransferToBlindOp) CalculateFee(p config.FeeParameters) basics.Amount {
	size := 0
	for _, out := range op.Outputs {
		size += len(out.Commitment) + len(out.Owner)
	}
	n := uint64(len(op.Outputs))
	if n == 0 {
		n = 1
	}
	base, overflowed := basics.OMul(p.Fee, n)
	if overflowed {
		base = ^uint64(0)
	}
	return sumFee(base, dataFee(size, p.PricePerKByte))
}

// WellFormed implements Operation
func (op *TransferToBlindOp) WellFormed(params config.ConsensusParams) error {
	if err := op.Fee.WellFormed(); err != nil {
		return err
	}
	if op.Amount.Amount == 0 {
		return fmt.Errorf("blind transfer of zero amount")
	}
	if len(op.Outputs) == 0 {
		return fmt.Errorf("blind transfer has no outputs")
	}
	for i, out := range op.Outputs {
		if len(out.Commitment) == 0 {
			return fmt.Errorf("blind output %d has no commitment", i)
		}
	}
	return nil
}

// Visit implements Operation
func (op *TransferToBlindOp) Visit(v Visitor) error { return v.TransferToBlind(op) }

func (*TransferToBlindOp) isOperation() {}
