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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/protocol"
	"github.com/yoyow-org/go-yoyow/test/partitiontest"
)

func sampleOps() []Operation {
	return []Operation{
		&TransferOp{Fee: CoreFee(1000), From: 1, To: 2, Amount: basics.CoreAsset(5), Memo: []byte("hi")},
		&AccountCreateOp{Fee: CoreFee(100000), Registrar: 1, UID: 30, Name: "carol"},
		&AssetCreateOp{Fee: CoreFee(500000), Issuer: 1, Symbol: "GOLD", MaxSupply: 1000, RateAsset: 2, RateCore: 1},
		&AssetIssueOp{Fee: CoreFee(2000), Issuer: 1, Asset: basics.RelativeID(2), Amount: 10, IssueTo: 2},
		&AssetFundFeePoolOp{Fee: CoreFee(1000), From: 1, Asset: basics.AssetObjectID(1), Amount: 10},
		&CsafLeaseOp{Fee: FeeWithOptions(500, 0, 500), From: 1, To: 2, Amount: 10},
		&TransferToBlindOp{Fee: CoreFee(5000), From: 1, Amount: basics.CoreAsset(10), Outputs: []BlindOutput{{Commitment: []byte{1, 2, 3}}}},
	}
}

func TestEnvelopeCoversEveryKind(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	seen := make(map[protocol.OpType]bool)
	for _, op := range sampleOps() {
		env := Wrap(op)
		require.Equal(t, op.Type(), env.Type)
		back, err := env.Operation()
		require.NoError(t, err)
		require.Same(t, op, back)
		seen[op.Type()] = true
	}
	for _, typ := range protocol.OpTypes {
		require.True(t, seen[typ], "no sample for %s", typ)
	}
}

func TestEnvelopeErrors(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	_, err := OpEnvelope{Type: "nonsense"}.Operation()
	require.ErrorContains(t, err, "unknown operation type")

	_, err = OpEnvelope{Type: protocol.TransferOp}.Operation()
	require.ErrorContains(t, err, "has no body")

	_, err = Transaction{}.Operations()
	require.ErrorIs(t, err, ErrEmptyTransaction)
}

func TestTransactionEncoding(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	txn := MakeTransaction(sampleOps()...)

	var fromMsgp Transaction
	require.NoError(t, protocol.Decode(protocol.Encode(txn), &fromMsgp))
	require.Equal(t, txn, fromMsgp)

	var fromJSON Transaction
	require.NoError(t, protocol.DecodeJSON(protocol.EncodeJSON(txn), &fromJSON))
	ops, err := fromJSON.Operations()
	require.NoError(t, err)
	require.Len(t, ops, len(txn.Ops))
	require.Equal(t, basics.RelativeID(2), ops[3].(*AssetIssueOp).Asset)
}

func TestCalculateFee(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	p := config.FeeParameters{Fee: 1000, PricePerKByte: 2048, Premium: 7}

	xfer := &TransferOp{Memo: make([]byte, 512)}
	require.Equal(t, basics.Amount(1000+1024), xfer.CalculateFee(p))

	long := &AccountCreateOp{Name: "abcdefgh"}
	short := &AccountCreateOp{Name: "abcd"}
	require.Equal(t, basics.Amount(1000+16), long.CalculateFee(p))
	require.Equal(t, basics.Amount(1000+8+7), short.CalculateFee(p))

	blind := &TransferToBlindOp{Outputs: []BlindOutput{{Commitment: make([]byte, 256)}, {Commitment: make([]byte, 256)}}}
	require.Equal(t, basics.Amount(2*1000+1024), blind.CalculateFee(p))

	huge := config.FeeParameters{Fee: ^uint64(0), PricePerKByte: ^uint64(0)}
	require.Equal(t, basics.Amount(^uint64(0)), xfer.CalculateFee(huge))
}

func TestWellFormed(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	params := config.Consensus[protocol.ConsensusCurrentVersion]
	require.NoError(t, MakeTransaction(sampleOps()...).WellFormed(params))

	bad := []Operation{
		&TransferOp{From: 1, To: 1, Amount: basics.CoreAsset(1)},
		&TransferOp{From: 1, To: 2},
		&TransferOp{From: 1, To: 2, Amount: basics.Asset{Amount: 1, AssetID: 3}, FromPrepaid: true},
		&TransferOp{From: 1, To: 2, Amount: basics.CoreAsset(1), Memo: make([]byte, params.MaxMemoBytes+1)},
		&TransferOp{From: 1, To: 2, Amount: basics.CoreAsset(1), Fee: FeeType{Total: basics.CoreAsset(5), Options: &FeeOptions{FromBalance: 4}}},
		&TransferOp{From: 1, To: 2, Amount: basics.CoreAsset(1), Fee: FeeType{Total: basics.Asset{Amount: 5, AssetID: 1}, Options: &FeeOptions{FromBalance: 5}}},
		&AccountCreateOp{Registrar: 1, UID: 2},
		&AccountCreateOp{Registrar: 2, UID: 2, Name: "bob"},
		&AssetCreateOp{Issuer: 1, Symbol: "AB", MaxSupply: 1, RateAsset: 1, RateCore: 1},
		&AssetCreateOp{Issuer: 1, Symbol: "gold", MaxSupply: 1, RateAsset: 1, RateCore: 1},
		&AssetCreateOp{Issuer: 1, Symbol: "GOLD", MaxSupply: 1},
		&AssetIssueOp{Issuer: 1, Asset: basics.AccountObjectID(1), Amount: 1},
		&AssetFundFeePoolOp{From: 1, Asset: basics.AssetObjectID(basics.CoreAssetID), Amount: 1},
		&CsafLeaseOp{From: 1, To: 2},
		&TransferToBlindOp{From: 1, Amount: basics.CoreAsset(1)},
		&TransferToBlindOp{From: 1, Amount: basics.CoreAsset(1), Outputs: []BlindOutput{{}}},
	}
	for i, op := range bad {
		require.Error(t, op.WellFormed(params), "case %d (%s)", i, op.Type())
	}
}

func TestRelativeReferences(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	params := config.Consensus[protocol.ConsensusCurrentVersion]
	create := &AssetCreateOp{Fee: CoreFee(500000), Issuer: 1, Symbol: "GOLD", MaxSupply: 1000, RateAsset: 2, RateCore: 1}
	xfer := &TransferOp{Fee: CoreFee(1000), From: 1, To: 2, Amount: basics.CoreAsset(5)}

	// Asset left unset is RelativeID(0)
	unset := &AssetIssueOp{Fee: CoreFee(2000), Issuer: 1, Amount: 10, IssueTo: 2}
	require.True(t, unset.Asset.IsZero())
	require.ErrorIs(t, MakeTransaction(unset).WellFormed(params), ErrDanglingRelativeID)
	require.ErrorIs(t, MakeTransaction(xfer, unset).WellFormed(params), ErrDanglingRelativeID)
	require.NoError(t, MakeTransaction(create, unset).WellFormed(params))

	fund := &AssetFundFeePoolOp{Fee: CoreFee(1000), From: 1, Asset: basics.RelativeID(1), Amount: 10}
	require.ErrorIs(t, MakeTransaction(create, fund).WellFormed(params), ErrDanglingRelativeID, "points at itself")
	require.NoError(t, MakeTransaction(xfer, create, fund).WellFormed(params))

	// an op on its own still passes its intrinsic check
	require.NoError(t, unset.WellFormed(params))
}

func TestFeeOptions(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	f := FeeWithOptions(1, 2, 3)
	require.Equal(t, basics.CoreAsset(6), f.Total)
	require.NoError(t, f.WellFormed())

	_, ok := FeeOptions{FromBalance: ^basics.Amount(0), FromCsaf: 1}.Sum()
	require.False(t, ok)
}
