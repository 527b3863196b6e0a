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
	"errors"
	"fmt"

	"github.com/yoyow-org/go-yoyow/data/transactions"
	"github.com/yoyow-org/go-yoyow/util/metrics"
)

// Handlers binds every operation kind to its handler. Build it with
// MakeHandlers, which takes one argument per kind, so that adding a kind
// breaks every call site until it supplies a handler.
type Handlers struct {
	transfer         Handler[*transactions.TransferOp]
	accountCreate    Handler[*transactions.AccountCreateOp]
	assetCreate      Handler[*transactions.AssetCreateOp]
	assetIssue       Handler[*transactions.AssetIssueOp]
	assetFundFeePool Handler[*transactions.AssetFundFeePoolOp]
	csafLease        Handler[*transactions.CsafLeaseOp]
	transferToBlind  Handler[*transactions.TransferToBlindOp]
}

// MakeHandlers binds one handler per operation kind.
func MakeHandlers(
	transfer Handler[*transactions.TransferOp],
	accountCreate Handler[*transactions.AccountCreateOp],
	assetCreate Handler[*transactions.AssetCreateOp],
	assetIssue Handler[*transactions.AssetIssueOp],
	assetFundFeePool Handler[*transactions.AssetFundFeePoolOp],
	csafLease Handler[*transactions.CsafLeaseOp],
	transferToBlind Handler[*transactions.TransferToBlindOp],
) Handlers {
	return Handlers{
		transfer:         transfer,
		accountCreate:    accountCreate,
		assetCreate:      assetCreate,
		assetIssue:       assetIssue,
		assetFundFeePool: assetFundFeePool,
		csafLease:        csafLease,
		transferToBlind:  transferToBlind,
	}
}

// DefaultHandlers returns the handlers of the built-in operation kinds.
func DefaultHandlers() Handlers {
	return MakeHandlers(
		transferHandler{},
		accountCreateHandler{},
		assetCreateHandler{},
		assetIssueHandler{},
		fundFeePoolHandler{},
		csafLeaseHandler{},
		transferToBlindHandler{},
	)
}

// errMissingHandler is returned by NewTable when a nil handler was bound.
var errMissingHandler = errors.New("no handler registered")

// Outcome is what Table.Evaluate reports for one operation.
type Outcome struct {
	Result transactions.OperationResult
	Fee    FeeContext

	// Required is nil when the fee schedule check was skipped.
	Required *FeePair
}

// Table dispatches operations to their handlers. It is immutable after
// NewTable and safe for concurrent use; the ledger it evaluates against
// is not.
type Table struct {
	handlers Handlers

	evaluated      *metrics.Counter
	rejected       *metrics.Counter
	feesCollected  *metrics.Counter
	feeConversions *metrics.Counter
}

// NewTable builds a dispatch table. No handler in h may be nil.
func NewTable(h Handlers) (*Table, error) {
	for name, set := range map[string]bool{
		"transfer":            h.transfer != nil,
		"account_create":      h.accountCreate != nil,
		"asset_create":        h.assetCreate != nil,
		"asset_issue":         h.assetIssue != nil,
		"asset_fund_fee_pool": h.assetFundFeePool != nil,
		"csaf_lease":          h.csafLease != nil,
		"transfer_to_blind":   h.transferToBlind != nil,
	} {
		if !set {
			return nil, fmt.Errorf("%w for %s", errMissingHandler, name)
		}
	}
	return &Table{
		handlers:       h,
		evaluated:      metrics.MakeCounter(metrics.OpsEvaluatedTotal, "op"),
		rejected:       metrics.MakeCounter(metrics.OpsRejectedTotal, "op"),
		feesCollected:  metrics.MakeCounter(metrics.FeesCollectedTotal),
		feeConversions: metrics.MakeCounter(metrics.FeeConversionsTotal),
	}, nil
}

// DefaultTable is the table of the built-in handlers.
func DefaultTable() *Table {
	t, err := NewTable(DefaultHandlers())
	if err != nil {
		panic(err)
	}
	return t
}

// Evaluate runs op against state. With apply false nothing is written to
// the ledger. Results of applied operations are not recorded in state;
// that is up to the caller, which knows whether the whole transaction
// succeeded.
func (t *Table) Evaluate(state *TransactionState, op transactions.Operation, apply bool) (Outcome, error) {
	d := dispatcher{table: t, ctx: newContext(state), apply: apply}
	err := op.Visit(&d)
	labels := map[string]string{"op": string(op.Type())}
	if err != nil {
		t.rejected.Inc(labels)
		return Outcome{}, err
	}
	t.evaluated.Inc(labels)
	if apply {
		t.feesCollected.AddUint64(uint64(d.ctx.Fee.CoreFeePaid), nil)
		if !d.ctx.Fee.FeeFromAccount.AssetID.IsCore() {
			t.feeConversions.Inc(nil)
		}
	}
	return Outcome{Result: d.result, Fee: d.ctx.Fee, Required: d.ctx.Required}, nil
}

// dispatcher is the per-call visitor selecting the handler for op.
type dispatcher struct {
	table  *Table
	ctx    *Context
	apply  bool
	result transactions.OperationResult
}

var _ transactions.Visitor = (*dispatcher)(nil)

func run[O transactions.Operation](d *dispatcher, h Handler[O], op O) error {
	res, err := evaluator[O]{handler: h}.startEvaluate(d.ctx, op, d.apply)
	d.result = res
	return err
}

func (d *dispatcher) Transfer(op *transactions.TransferOp) error {
	return run(d, d.table.handlers.transfer, op)
}

func (d *dispatcher) AccountCreate(op *transactions.AccountCreateOp) error {
	return run(d, d.table.handlers.accountCreate, op)
}

func (d *dispatcher) AssetCreate(op *transactions.AssetCreateOp) error {
	return run(d, d.table.handlers.assetCreate, op)
}

func (d *dispatcher) AssetIssue(op *transactions.AssetIssueOp) error {
	return run(d, d.table.handlers.assetIssue, op)
}

func (d *dispatcher) AssetFundFeePool(op *transactions.AssetFundFeePoolOp) error {
	return run(d, d.table.handlers.assetFundFeePool, op)
}

func (d *dispatcher) CsafLease(op *transactions.CsafLeaseOp) error {
	return run(d, d.table.handlers.csafLease, op)
}

func (d *dispatcher) TransferToBlind(op *transactions.TransferToBlindOp) error {
	return run(d, d.table.handlers.transferToBlind, op)
}
