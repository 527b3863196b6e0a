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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/data/transactions"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
	"github.com/yoyow-org/go-yoyow/logging"
	"github.com/yoyow-org/go-yoyow/protocol"
	"github.com/yoyow-org/go-yoyow/test/partitiontest"
)

func testGenesis() Genesis {
	return Genesis{
		Proto: protocol.ConsensusV1,
		Accounts: []GenesisAccount{
			{UID: 1, Name: "alice", Balance: 1_000_000},
			{UID: 2, Name: "bob", Balance: 5_000},
			{UID: 3, Name: "carol", Balance: 1_000, Prepaid: 300, Csaf: 200},
			{UID: 9, Name: "issuer", Holdings: []basics.Asset{{Amount: 400, AssetID: 1}}},
		},
		Assets: []GenesisAsset{
			{Symbol: "GOLD", Precision: 2, Issuer: 9, MaxSupply: 1000, RateAsset: 2, RateCore: 1, FeePool: 10_000},
		},
		FBA: []GenesisFBA{{ID: transactions.BlindFBAID}},
	}
}

func testLocal(inMem bool) config.Local {
	cfg := config.GetDefaultLocal()
	cfg.LedgerInMemory = inMem
	cfg.EnableMetrics = false
	return cfg
}

func openTestLedger(t *testing.T, g Genesis) *Ledger {
	t.Helper()
	l, err := OpenLedger(logging.TestingLog(t), filepath.Join(t.TempDir(), "ledger"), &g, testLocal(true))
	require.NoError(t, err)
	t.Cleanup(l.Close)
	return l
}

func coreBalance(t *testing.T, l *Ledger, uid basics.AccountUID) basics.Amount {
	t.Helper()
	acct, _, err := l.Account(uid)
	require.NoError(t, err)
	return acct.Balance(basics.CoreAssetID)
}

func transfer(from, to basics.AccountUID, amt basics.Amount, fee transactions.FeeType) *transactions.TransferOp {
	return &transactions.TransferOp{Fee: fee, From: from, To: to, Amount: basics.CoreAsset(amt)}
}

func TestLedgerGenesis(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	require.Equal(t, protocol.ConsensusV1, l.ConsensusVersion())

	acct, st, err := l.Account(3)
	require.NoError(t, err)
	require.Equal(t, "carol", acct.Name)
	require.Equal(t, basics.Amount(1_000), acct.Balance(basics.CoreAssetID))
	require.Equal(t, basics.Amount(300), st.Prepaid)
	require.Equal(t, basics.Amount(200), st.Csaf)

	core, coreDyn, err := l.Asset(basics.CoreAssetID)
	require.NoError(t, err)
	require.Equal(t, CoreSymbol, core.Symbol)
	require.Equal(t, basics.Amount(1_006_000), coreDyn.CurrentSupply)

	gold, goldDyn, err := l.Asset(1)
	require.NoError(t, err)
	require.Equal(t, "GOLD", gold.Symbol)
	require.Equal(t, basics.Amount(400), goldDyn.CurrentSupply)
	require.Equal(t, basics.Amount(10_000), goldDyn.FeePool)

	fba, ok, err := l.FBAAccumulator(transactions.BlindFBAID)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, fba.IsConfigured())

	uids, err := l.CommittedAccounts()
	require.NoError(t, err)
	require.Equal(t, []basics.AccountUID{1, 2, 3, 9}, uids)

	_, _, err = l.Account(77)
	require.ErrorAs(t, err, &ledgercore.ObjectNotFoundError{})
}

func TestOpenLedgerWithoutGenesis(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	_, err := OpenLedger(logging.TestingLog(t), filepath.Join(t.TempDir(), "ledger"), nil, testLocal(true))
	require.ErrorIs(t, err, ErrNoGenesis)
}

func TestOpenLedgerUnknownProtocol(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	g := testGenesis()
	g.Proto = "no-such-protocol"
	_, err := OpenLedger(logging.TestingLog(t), filepath.Join(t.TempDir(), "ledger"), &g, testLocal(true))
	require.ErrorContains(t, err, "unknown consensus version")
}

func TestLedgerTransaction(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	outs, err := l.Transaction(transactions.MakeTransaction(transfer(1, 2, 500, transactions.CoreFee(1000))))
	require.NoError(t, err)
	require.Len(t, outs, 1)
	require.Equal(t, basics.Amount(1000), outs[0].Fee.CoreFeePaid)

	require.Equal(t, basics.Amount(1_000_000-500-1000), coreBalance(t, l, 1))
	require.Equal(t, basics.Amount(5_500), coreBalance(t, l, 2))

	_, st, err := l.Account(1)
	require.NoError(t, err)
	require.Equal(t, basics.Amount(1000), st.PendingVestedFees)
}

func TestLedgerTransactionRollsBack(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	txn := transactions.MakeTransaction(
		transfer(1, 2, 500, transactions.CoreFee(1000)),
		// bob cannot afford this one
		transfer(2, 1, 50_000, transactions.CoreFee(1000)),
	)
	_, err := l.Transaction(txn)
	require.Error(t, err)
	require.ErrorContains(t, err, "operation 1")

	require.Equal(t, basics.Amount(1_000_000), coreBalance(t, l, 1))
	require.Equal(t, basics.Amount(5_000), coreBalance(t, l, 2))
	_, st, err := l.Account(1)
	require.NoError(t, err)
	require.Zero(t, st.PendingVestedFees)
}

func TestLedgerRejectsInsufficientFee(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	_, err := l.Transaction(transactions.MakeTransaction(transfer(1, 2, 500, transactions.CoreFee(999))))
	var fe ledgercore.InsufficientFeeError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, ledgercore.FeeTotal, fe.Reason)

	// trusted callers may bypass the schedule
	_, err = l.TransactionWithOptions(transactions.MakeTransaction(transfer(1, 2, 500, transactions.CoreFee(1))), Options{SkipFeeScheduleCheck: true})
	require.NoError(t, err)
	require.Equal(t, basics.Amount(1_000_000-500-1), coreBalance(t, l, 1))
}

func TestLedgerRejectsMalformedTransaction(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	_, err := l.Transaction(transactions.Transaction{})
	require.ErrorIs(t, err, transactions.ErrEmptyTransaction)

	_, err = l.Transaction(transactions.MakeTransaction(transfer(1, 1, 500, transactions.CoreFee(1000))))
	require.Error(t, err)
}

func TestLedgerDryRun(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	outs, err := l.TestTransaction(transactions.MakeTransaction(transfer(1, 2, 500, transactions.CoreFee(1000))))
	require.NoError(t, err)
	require.Len(t, outs, 1)
	require.Equal(t, basics.Amount(1_000_000), coreBalance(t, l, 1))
	require.Equal(t, basics.Amount(5_000), coreBalance(t, l, 2))
}

func TestLedgerEvaluateOperation(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	op := transfer(3, 2, 500, transactions.FeeWithOptions(500, 300, 200))
	out, err := l.EvaluateOperation(op)
	require.NoError(t, err)
	require.Equal(t, basics.Amount(300), out.Fee.FromPrepaid)
	require.Equal(t, basics.Amount(200), out.Fee.FromCsaf)

	require.Equal(t, basics.Amount(1_000), coreBalance(t, l, 3))
	_, st, err := l.Account(3)
	require.NoError(t, err)
	require.Equal(t, basics.Amount(300), st.Prepaid)
}

func TestLedgerEstimateFee(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	pair, err := l.EstimateFee(&transactions.AssetCreateOp{Issuer: 1, Symbol: "SLV", MaxSupply: 1, RateAsset: 1, RateCore: 1})
	require.NoError(t, err)
	// 500000 base, 4500000 premium for a short symbol, 2 for the symbol bytes
	require.Equal(t, basics.Amount(5_000_002), pair.Total)
	require.Equal(t, basics.Amount(50_000), pair.Real)
}

func TestLedgerRelativeIDs(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	create := &transactions.AssetCreateOp{Issuer: 1, Symbol: "SILVER", Precision: 3, MaxSupply: 10_000, RateAsset: 5, RateCore: 1}
	pair, err := l.EstimateFee(create)
	require.NoError(t, err)
	create.Fee = transactions.CoreFee(pair.Total)

	issue := &transactions.AssetIssueOp{Fee: transactions.CoreFee(2000), Issuer: 1, Asset: basics.RelativeID(0), Amount: 700, IssueTo: 2}
	outs, err := l.Transaction(transactions.MakeTransaction(create, issue))
	require.NoError(t, err)
	require.Equal(t, basics.AssetObjectID(2), outs[0].Result.NewObject)

	silver, dyn, err := l.Asset(2)
	require.NoError(t, err)
	require.Equal(t, "SILVER", silver.Symbol)
	require.Equal(t, basics.Amount(700), dyn.CurrentSupply)

	bob, _, err := l.Account(2)
	require.NoError(t, err)
	require.Equal(t, basics.Amount(700), bob.Balance(2))

	// a relative id must point at an earlier operation that created something
	bad := &transactions.AssetIssueOp{Fee: transactions.CoreFee(2000), Issuer: 1, Asset: basics.RelativeID(3), Amount: 1, IssueTo: 2}
	_, err = l.Transaction(transactions.MakeTransaction(bad))
	require.ErrorIs(t, err, transactions.ErrDanglingRelativeID)

	// evaluated alone it has no transaction to resolve against
	_, err = l.EvaluateOperation(bad)
	require.ErrorAs(t, err, &ledgercore.RelativeIDError{})
}

func TestLedgerAssetFee(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	l := openTestLedger(t, testGenesis())
	// 2000 GOLD quotes to 1000 core at 2:1
	op := transfer(9, 2, 0, transactions.AssetFee(2000, 1))
	op.Amount = basics.Asset{Amount: 100, AssetID: 1}
	_, err := l.Transaction(transactions.MakeTransaction(op))
	require.Error(t, err, "issuer holds only 400 GOLD")

	op.Fee = transactions.AssetFee(200, 1)
	_, err = l.TransactionWithOptions(transactions.MakeTransaction(op), Options{SkipFeeScheduleCheck: true})
	require.NoError(t, err)

	_, dyn, err := l.Asset(1)
	require.NoError(t, err)
	require.Equal(t, basics.Amount(10_000-100), dyn.FeePool)
	require.Equal(t, basics.Amount(200), dyn.AccumulatedFees)

	issuer, _, err := l.Account(9)
	require.NoError(t, err)
	require.Equal(t, basics.Amount(400-100-200), issuer.Balance(1))
}

func TestLedgerCommitAndReopen(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "ledger")
	g := testGenesis()
	l, err := OpenLedger(logging.TestingLog(t), dir, &g, testLocal(false))
	require.NoError(t, err)

	_, err = l.Transaction(transactions.MakeTransaction(transfer(1, 2, 500, transactions.CoreFee(1000))))
	require.NoError(t, err)
	require.NoError(t, l.Commit())

	// applied but never committed
	_, err = l.Transaction(transactions.MakeTransaction(transfer(1, 2, 1, transactions.CoreFee(1000))))
	require.NoError(t, err)
	l.Close()

	l, err = OpenLedger(logging.TestingLog(t), dir, nil, testLocal(false))
	require.NoError(t, err)
	defer l.Close()
	require.Equal(t, protocol.ConsensusV1, l.ConsensusVersion())
	require.Equal(t, basics.Amount(1_000_000-500-1000), coreBalance(t, l, 1))
	require.Equal(t, basics.Amount(5_500), coreBalance(t, l, 2))
}
