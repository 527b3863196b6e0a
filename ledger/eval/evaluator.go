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
	"github.com/yoyow-org/go-yoyow/data/transactions"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
	"github.com/yoyow-org/go-yoyow/logging"
)

// Handler is the logic of one operation kind. The fee protocol around it
// is run by the evaluator and is the same for every kind.
//
// DoEvaluate checks op against ledger state and must not mutate it.
// Structural checks belong in op.WellFormed and are not repeated here.
// DoApply mutates the ledger. It runs after the fee was converted and
// paid, and before it is deducted from the payer.
type Handler[O transactions.Operation] interface {
	DoEvaluate(ctx *Context, op O) error
	DoApply(ctx *Context, op O) (transactions.OperationResult, error)
}

// FeeRouter is implemented by handlers whose fee is not credited to the
// payer's pending fees.
type FeeRouter interface {
	PayFee(ctx *Context) error
}

// evaluator runs the fee protocol around one handler.
type evaluator[O transactions.Operation] struct {
	handler Handler[O]
}

// evaluate prepares the fee, checks it against the required fee pair,
// then runs the handler's own checks.
func (e evaluator[O]) evaluate(ctx *Context, op O) error {
	fee := op.DeclaredFee()
	if ctx.State.SkipFeeScheduleCheck {
		if err := ctx.PrepareFee(op.FeePayer(), fee); err != nil {
			return err
		}
	} else {
		pair, err := CalculateFeePair(ctx.Params(), op)
		if err != nil {
			return err
		}
		if err := ctx.PrepareFeeWithPair(op.FeePayer(), fee, pair); err != nil {
			return err
		}
		if ctx.Fee.TotalFeePaid < pair.Total {
			return ledgercore.InsufficientFeeError{
				Reason:   ledgercore.FeeTotal,
				Required: pair.Total,
				Provided: ctx.Fee.TotalFeePaid,
			}
		}
		if paidReal := ctx.Fee.FromBalance + ctx.Fee.FromPrepaid; paidReal < pair.Real {
			return ledgercore.InsufficientFeeError{
				Reason:      ledgercore.FeeReal,
				Required:    pair.Real,
				Provided:    paidReal,
				FromBalance: ctx.Fee.FromBalance,
				FromPrepaid: ctx.Fee.FromPrepaid,
			}
		}
	}
	if err := e.handler.DoEvaluate(ctx, op); err != nil {
		return ledgercore.OperationError{Op: op.Type(), Phase: ledgercore.PhaseEvaluate, Err: err}
	}
	return nil
}

// apply settles the fee around the handler's mutation. It must follow a
// successful evaluate on the same ctx.
func (e evaluator[O]) apply(ctx *Context, op O) (transactions.OperationResult, error) {
	if err := ctx.ConvertFee(); err != nil {
		return transactions.OperationResult{}, err
	}
	var err error
	if router, ok := e.handler.(FeeRouter); ok {
		err = router.PayFee(ctx)
	} else {
		err = ctx.PayFee()
	}
	if err != nil {
		return transactions.OperationResult{}, err
	}
	res, err := e.handler.DoApply(ctx, op)
	if err != nil {
		return transactions.OperationResult{}, ledgercore.OperationError{Op: op.Type(), Phase: ledgercore.PhaseApply, Err: err}
	}
	if err := ctx.deductFee(); err != nil {
		return transactions.OperationResult{}, err
	}
	if err := ctx.ProcessFeeOptions(); err != nil {
		return transactions.OperationResult{}, err
	}
	return res, nil
}

// startEvaluate is the entry point for one operation.
func (e evaluator[O]) startEvaluate(ctx *Context, op O, apply bool) (transactions.OperationResult, error) {
	if err := e.evaluate(ctx, op); err != nil {
		return transactions.OperationResult{}, err
	}
	ctx.Log().WithOperation(op.Type(), len(ctx.State.OperationResults)).WithFields(logging.Fields{
		"payer":        op.FeePayer(),
		"core_fee":     ctx.Fee.CoreFeePaid,
		"from_balance": ctx.Fee.FromBalance,
		"from_prepaid": ctx.Fee.FromPrepaid,
		"from_csaf":    ctx.Fee.FromCsaf,
		"apply":        apply,
	}).Debug("operation evaluated")
	if !apply {
		return transactions.OperationResult{}, nil
	}
	return e.apply(ctx, op)
}
