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

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/data/transactions"
	"github.com/yoyow-org/go-yoyow/ledger"
	"github.com/yoyow-org/go-yoyow/ledger/eval"
	"github.com/yoyow-org/go-yoyow/protocol"
)

var (
	genesisFile  string
	dryRun       bool
	skipFeeCheck bool
)

func init() {
	initCmd.Flags().StringVarP(&genesisFile, "genesis", "g", "", "Genesis JSON file")
	initCmd.MarkFlagRequired("genesis")

	applyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Evaluate and apply on a scratch copy, leaving the ledger unchanged")
	applyCmd.Flags().BoolVar(&skipFeeCheck, "skip-fee-check", false, "Do not compare declared fees against the fee schedule")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a ledger from a genesis file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		dir := resolveDataDir()
		g, err := ledger.LoadGenesisFromFile(genesisFile)
		if err != nil {
			reportErrorf(errorReadGenesis, genesisFile, err)
		}

		l, err := openLedger(dir, nil)
		if err == nil {
			reportInfof(infoGenesisDiscarded)
		} else if errors.Is(err, ledger.ErrNoGenesis) {
			l, err = openLedger(dir, &g)
		}
		if err != nil {
			reportErrorf(errorOpenLedger, err)
		}
		defer l.Close()
		reportInfof(infoInitialized, dir, l.ConsensusVersion())
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply [transaction file]",
	Short: "Apply a JSON transaction to the ledger and commit it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		l := mustOpenLedger()
		defer l.Close()

		opts := ledger.Options{SkipFeeScheduleCheck: skipFeeCheck, DryRun: dryRun}
		outs, err := applyTransactionFile(l, args[0], opts)
		if err != nil {
			l.Close()
			reportErrorf(errorApply, err)
		}
		printJSON(outs)
		if dryRun {
			reportInfof(infoDryRun, len(outs))
			return
		}
		if err := l.Commit(); err != nil {
			l.Close()
			reportErrorf(errorCommit, err)
		}
		reportInfof(infoApplied, len(outs))
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate [transaction file]",
	Short: "Print the fee schedule's required fee for every operation of a transaction",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		l := mustOpenLedger()
		defer l.Close()

		est, err := estimateTransactionFile(l, args[0])
		if err != nil {
			l.Close()
			reportErrorf(errorReadInput, args[0], err)
		}
		printJSON(est)
	},
}

// feeEstimate is one line of estimate output.
type feeEstimate struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Op    protocol.OpType `codec:"op"`
	Total basics.Amount   `codec:"total"`
	Real  basics.Amount   `codec:"real"`
}

func readTransaction(path string) (transactions.Transaction, error) {
	var txn transactions.Transaction
	data, err := os.ReadFile(path)
	if err != nil {
		return txn, err
	}
	err = protocol.DecodeJSON(data, &txn)
	return txn, err
}

func applyTransactionFile(l *ledger.Ledger, path string, opts ledger.Options) ([]eval.Outcome, error) {
	txn, err := readTransaction(path)
	if err != nil {
		return nil, err
	}
	return l.TransactionWithOptions(txn, opts)
}

func estimateTransactionFile(l *ledger.Ledger, path string) ([]feeEstimate, error) {
	txn, err := readTransaction(path)
	if err != nil {
		return nil, err
	}
	ops, err := txn.Operations()
	if err != nil {
		return nil, err
	}
	est := make([]feeEstimate, 0, len(ops))
	for _, op := range ops {
		pair, err := l.EstimateFee(op)
		if err != nil {
			return nil, err
		}
		est = append(est, feeEstimate{Op: op.Type(), Total: pair.Total, Real: pair.Real})
	}
	return est, nil
}
