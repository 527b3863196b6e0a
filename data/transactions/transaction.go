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
	"errors"
	"fmt"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/protocol"
)

// ErrEmptyTransaction is returned for a transaction with no operations.
var ErrEmptyTransaction = errors.New("transaction has no operations")

// ErrDanglingRelativeID is returned for a relative id that does not name
// an earlier object-creating operation of the same transaction.
var ErrDanglingRelativeID = errors.New("relative id does not name an earlier object-creating operation")

// OpEnvelope carries one operation on the wire. Exactly the field
// matching Type is set.
type OpEnvelope struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Type protocol.OpType `codec:"type"`

	Transfer         *TransferOp         `codec:"xfer"`
	AccountCreate    *AccountCreateOp    `codec:"acct"`
	AssetCreate      *AssetCreateOp      `codec:"acfg"`
	AssetIssue       *AssetIssueOp       `codec:"aiss"`
	AssetFundFeePool *AssetFundFeePoolOp `codec:"afnd"`
	CsafLease        *CsafLeaseOp        `codec:"csaf"`
	TransferToBlind  *TransferToBlindOp  `codec:"blnd"`
}

// Wrap puts op into an envelope.
func Wrap(op Operation) OpEnvelope {
	var w wrapper
	// wrapper never fails
	_ = op.Visit(&w)
	return w.env
}

// Operation returns the operation the envelope carries.
func (e OpEnvelope) Operation() (Operation, error) {
	var op Operation
	switch e.Type {
	case protocol.TransferOp:
		if e.Transfer != nil {
			op = e.Transfer
		}
	case protocol.AccountCreateOp:
		if e.AccountCreate != nil {
			op = e.AccountCreate
		}
	case protocol.AssetCreateOp:
		if e.AssetCreate != nil {
			op = e.AssetCreate
		}
	case protocol.AssetIssueOp:
		if e.AssetIssue != nil {
			op = e.AssetIssue
		}
	case protocol.AssetFundFeePoolOp:
		if e.AssetFundFeePool != nil {
			op = e.AssetFundFeePool
		}
	case protocol.CsafLeaseOp:
		if e.CsafLease != nil {
			op = e.CsafLease
		}
	case protocol.TransferToBlindOp:
		if e.TransferToBlind != nil {
			op = e.TransferToBlind
		}
	default:
		return nil, fmt.Errorf("unknown operation type %q", e.Type)
	}
	if op == nil {
		return nil, fmt.Errorf("envelope of type %q has no body", e.Type)
	}
	return op, nil
}

type wrapper struct {
	env OpEnvelope
}

var _ Visitor = (*wrapper)(nil)

func (w *wrapper) Transfer(op *TransferOp) error {
	w.env = OpEnvelope{Type: op.Type(), Transfer: op}
	return nil
}

func (w *wrapper) AccountCreate(op *AccountCreateOp) error {
	w.env = OpEnvelope{Type: op.Type(), AccountCreate: op}
	return nil
}

func (w *wrapper) AssetCreate(op *AssetCreateOp) error {
	w.env = OpEnvelope{Type: op.Type(), AssetCreate: op}
	return nil
}

func (w *wrapper) AssetIssue(op *AssetIssueOp) error {
	w.env = OpEnvelope{Type: op.Type(), AssetIssue: op}
	return nil
}

func (w *wrapper) AssetFundFeePool(op *AssetFundFeePoolOp) error {
	w.env = OpEnvelope{Type: op.Type(), AssetFundFeePool: op}
	return nil
}

func (w *wrapper) CsafLease(op *CsafLeaseOp) error {
	w.env = OpEnvelope{Type: op.Type(), CsafLease: op}
	return nil
}

func (w *wrapper) TransferToBlind(op *TransferToBlindOp) error {
	w.env = OpEnvelope{Type: op.Type(), TransferToBlind: op}
	return nil
}

// Transaction is an ordered list of operations applied atomically.
type Transaction struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Ops []OpEnvelope `codec:"ops"`
}

// MakeTransaction wraps ops into a Transaction.
func MakeTransaction(ops ...Operation) Transaction {
	txn := Transaction{Ops: make([]OpEnvelope, len(ops))}
	for i, op := range ops {
		txn.Ops[i] = Wrap(op)
	}
	return txn
}

// Operations unwraps every envelope.
func (tx Transaction) Operations() ([]Operation, error) {
	if len(tx.Ops) == 0 {
		return nil, ErrEmptyTransaction
	}
	ops := make([]Operation, len(tx.Ops))
	for i, env := range tx.Ops {
		op, err := env.Operation()
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		ops[i] = op
	}
	return ops, nil
}

// WellFormed checks every operation independently of ledger state. A
// relative id must name an earlier operation of tx that creates an
// object; this also rejects an object reference left at its zero value
// unless operation 0 creates something.
func (tx Transaction) WellFormed(params config.ConsensusParams) error {
	ops, err := tx.Operations()
	if err != nil {
		return err
	}
	for i, op := range ops {
		if err := op.WellFormed(params); err != nil {
			return fmt.Errorf("operation %d (%s): %w", i, op.Type(), err)
		}
		r, ok := op.(objectReferrer)
		if !ok {
			continue
		}
		for _, ref := range r.references() {
			if ref.IsRelative() && (ref.Instance >= uint64(i) || !createsObject(ops[ref.Instance])) {
				return fmt.Errorf("operation %d (%s): %w: %v", i, op.Type(), ErrDanglingRelativeID, ref)
			}
		}
	}
	return nil
}

// objectReferrer is implemented by operations that name existing
// objects, possibly through relative ids.
type objectReferrer interface {
	references() []basics.ObjectID
}

// createsObject reports whether op's result carries a new object id.
func createsObject(op Operation) bool {
	switch op.(type) {
	case *AccountCreateOp, *AssetCreateOp:
		return true
	}
	return false
}
