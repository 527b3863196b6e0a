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

package ledger

import (
	"errors"
	"fmt"

	"github.com/algorand/go-deadlock"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/data/transactions"
	"github.com/yoyow-org/go-yoyow/ledger/eval"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
	"github.com/yoyow-org/go-yoyow/logging"
	"github.com/yoyow-org/go-yoyow/protocol"
	"github.com/yoyow-org/go-yoyow/util/kvstore"
)

// ErrNoGenesis is returned when opening an empty store without a genesis.
var ErrNoGenesis = errors.New("ledger store is empty and no genesis was given")

// Ledger applies transactions one at a time on top of the committed
// store. Applied transactions accumulate in memory until Commit.
type Ledger struct {
	// mu serializes every evaluation against the shared state.
	mu deadlock.Mutex

	store   *store
	pending *roundCowState

	proto    protocol.ConsensusVersion
	params   config.ConsensusParams
	table    *eval.Table
	feeOrder []config.FeeSource

	log     logging.Logger
	metrics metricsTracker
}

// Options adjust how a transaction is evaluated.
type Options struct {
	// SkipFeeScheduleCheck is for trusted internal callers only.
	SkipFeeScheduleCheck bool

	// DryRun evaluates and applies on a scratch copy that is discarded.
	DryRun bool
}

// OpenLedger opens the ledger store in dir, initializing it from genesis
// if it is empty. genesis may be nil for an existing store.
func OpenLedger(log logging.Logger, dir string, genesis *Genesis, cfg config.Local) (*Ledger, error) {
	feeOrder, err := cfg.FeeSourcePolicy()
	if err != nil {
		return nil, err
	}
	kv, err := kvstore.NewKVStore(cfg.StorageEngine, dir, cfg.LedgerInMemory)
	if err != nil {
		return nil, fmt.Errorf("OpenLedger: %w", err)
	}
	s, err := openStore(kv)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("OpenLedger: %w", err)
	}

	l := &Ledger{
		store:    s,
		table:    eval.DefaultTable(),
		feeOrder: feeOrder,
		log:      log,
	}
	defer func() {
		if err != nil {
			l.Close()
		}
	}()

	l.proto, err = s.consensusVersion()
	if err != nil {
		return nil, err
	}
	if l.proto == "" {
		if genesis == nil {
			err = ErrNoGenesis
			return nil, err
		}
		if err = l.initGenesis(*genesis); err != nil {
			return nil, err
		}
	}

	params, ok := config.Consensus[l.proto]
	if !ok {
		err = fmt.Errorf("OpenLedger: unknown consensus version %q", l.proto)
		return nil, err
	}
	l.params = params
	l.pending = makeRoundCowState(l.store, l.params)
	if cfg.EnableMetrics {
		l.metrics.init()
	}
	return l, nil
}

func (l *Ledger) initGenesis(g Genesis) error {
	proto := g.Proto
	if proto == "" {
		proto = protocol.ConsensusCurrentVersion
	}
	if _, ok := config.Consensus[proto]; !ok {
		return fmt.Errorf("genesis: unknown consensus version %q", proto)
	}
	delta, err := g.delta()
	if err != nil {
		return err
	}
	if err := l.store.commit(delta, proto); err != nil {
		return err
	}
	l.proto = proto
	l.log.Infof("ledger initialized from genesis: %d accounts, %d assets, protocol %s", len(g.Accounts), len(g.Assets)+1, proto)
	return nil
}

// Close releases the store. Pending state that was not committed is lost.
func (l *Ledger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.metrics.close()
	if l.store != nil {
		if err := l.store.close(); err != nil {
			l.log.Warnf("closing ledger store: %v", err)
		}
		l.store = nil
	}
}

// ConsensusVersion is the protocol the ledger was created with.
func (l *Ledger) ConsensusVersion() protocol.ConsensusVersion {
	return l.proto
}

// Transaction evaluates and applies every operation of txn, or none.
func (l *Ledger) Transaction(txn transactions.Transaction) ([]eval.Outcome, error) {
	return l.TransactionWithOptions(txn, Options{})
}

// TestTransaction runs txn like Transaction and throws the result away.
func (l *Ledger) TestTransaction(txn transactions.Transaction) ([]eval.Outcome, error) {
	return l.TransactionWithOptions(txn, Options{DryRun: true})
}

// TransactionWithOptions evaluates and applies txn on a child of the
// pending state, committing the child only if every operation succeeds.
func (l *Ledger) TransactionWithOptions(txn transactions.Transaction, opts Options) ([]eval.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	outs, err := l.transaction(txn, opts)
	if !opts.DryRun {
		l.metrics.transaction(err == nil)
	}
	return outs, err
}

func (l *Ledger) transaction(txn transactions.Transaction, opts Options) ([]eval.Outcome, error) {
	if err := txn.WellFormed(l.params); err != nil {
		return nil, err
	}
	ops, err := txn.Operations()
	if err != nil {
		return nil, err
	}

	cow := l.pending.child()
	state := l.transactionState(cow, opts.SkipFeeScheduleCheck)
	outs := make([]eval.Outcome, 0, len(ops))
	for i, op := range ops {
		out, err := l.table.Evaluate(state, op, true)
		if err != nil {
			var oe ledgercore.OperationError
			if errors.As(err, &oe) && oe.Phase == ledgercore.PhaseApply {
				l.log.WithOperation(op.Type(), i).Warnf("apply failed, rolling back transaction: %v", err)
			}
			return nil, fmt.Errorf("operation %d (%s): %w", i, op.Type(), err)
		}
		state.OperationResults = append(state.OperationResults, out.Result)
		outs = append(outs, out)
	}
	if !opts.DryRun {
		cow.commitToParent()
	}
	return outs, nil
}

func (l *Ledger) transactionState(cow *roundCowState, skip bool) *eval.TransactionState {
	state := eval.MakeTransactionState(cow)
	state.SkipFeeScheduleCheck = skip
	state.FeeSourceOrder = l.feeOrder
	state.Log = l.log
	return state
}

// EvaluateOperation validates op on its own without applying it.
func (l *Ledger) EvaluateOperation(op transactions.Operation) (eval.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := op.WellFormed(l.params); err != nil {
		return eval.Outcome{}, err
	}
	return l.table.Evaluate(l.transactionState(l.pending.child(), false), op, false)
}

// EstimateFee returns the fee pair op would be charged.
func (l *Ledger) EstimateFee(op transactions.Operation) (eval.FeePair, error) {
	return eval.CalculateFeePair(l.params, op)
}

// Commit flushes the pending state to the store.
func (l *Ledger) Commit() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delta := l.pending.deltas()
	if err := l.store.commit(delta, ""); err != nil {
		return err
	}
	l.log.Infof("ledger committed %d objects", delta.Len())
	l.pending = makeRoundCowState(l.store, l.params)
	l.metrics.commit()
	return nil
}

// Account returns an account and its statistics, including pending
// state.
func (l *Ledger) Account(uid basics.AccountUID) (ledgercore.Account, ledgercore.AccountStatistics, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok, err := l.pending.GetAccount(uid)
	if err != nil {
		return ledgercore.Account{}, ledgercore.AccountStatistics{}, err
	}
	if !ok {
		return ledgercore.Account{}, ledgercore.AccountStatistics{}, ledgercore.ObjectNotFoundError{Kind: "account", ID: basics.AccountObjectID(uid)}
	}
	st, _, err := l.pending.GetAccountStatistics(uid)
	return acct, st, err
}

// Asset returns an asset and its dynamic data, including pending state.
func (l *Ledger) Asset(id basics.AssetID) (ledgercore.Asset, ledgercore.AssetDynamicData, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok, err := l.pending.GetAsset(id)
	if err != nil {
		return ledgercore.Asset{}, ledgercore.AssetDynamicData{}, err
	}
	if !ok {
		return ledgercore.Asset{}, ledgercore.AssetDynamicData{}, ledgercore.ObjectNotFoundError{Kind: "asset", ID: basics.AssetObjectID(id)}
	}
	d, _, err := l.pending.GetAssetDynamicData(id)
	return a, d, err
}

// FBAAccumulator returns a fee-back accumulator, including pending state.
func (l *Ledger) FBAAccumulator(id uint64) (ledgercore.FBAAccumulator, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending.GetFBAAccumulator(id)
}

// CommittedAccounts lists the uids of every account in the store.
func (l *Ledger) CommittedAccounts() ([]basics.AccountUID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.accounts()
}
