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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yoyow-org/go-yoyow/protocol"
	"github.com/yoyow-org/go-yoyow/test/partitiontest"
)

func TestDefaultFeeSourcePolicy(t *testing.T) {
	partitiontest.PartitionTest(t)

	order, err := GetDefaultLocal().FeeSourcePolicy()
	require.NoError(t, err)
	require.Equal(t, []FeeSource{FeeSourceCsaf, FeeSourcePrepaid, FeeSourceBalance}, order)
}

func TestFeeSourcePolicyRejectsBadOrders(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, bad := range [][]string{
		nil,
		{"csaf", "prepaid"},
		{"csaf", "csaf", "balance"},
		{"csaf", "prepaid", "vesting"},
		{"csaf", "prepaid", "balance", "balance"},
	} {
		cfg := GetDefaultLocal()
		cfg.FeeSourceOrder = bad
		_, err := cfg.FeeSourcePolicy()
		require.ErrorIs(t, err, ErrInvalidFeeSourceOrder, "%v", bad)
	}
}

func TestLoadConfigFromDisk(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()

	// no file: defaults plus the open error
	c, err := LoadConfigFromDisk(dir)
	require.Error(t, err)
	require.Equal(t, GetDefaultLocal(), c)

	cfg := GetDefaultLocal()
	cfg.FeeSourceOrder = []string{"balance", "prepaid", "csaf"}
	cfg.LedgerInMemory = true
	require.NoError(t, cfg.SaveToDisk(dir))

	c, err = LoadConfigFromDisk(dir)
	require.NoError(t, err)
	require.Equal(t, cfg, c)

	// partial file keeps defaults for missing keys
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{"EnableMetrics": false}`), 0600))
	c, err = LoadConfigFromDisk(dir)
	require.NoError(t, err)
	require.False(t, c.EnableMetrics)
	require.Equal(t, GetDefaultLocal().FeeSourceOrder, c.FeeSourceOrder)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{"FeeSourceOrder": ["csaf"]}`), 0600))
	_, err = LoadConfigFromDisk(dir)
	require.ErrorIs(t, err, ErrInvalidFeeSourceOrder)
}

func TestConsensusFeeSchedules(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, v := range []protocol.ConsensusVersion{protocol.ConsensusV1, protocol.ConsensusV2, protocol.ConsensusFuture} {
		params, ok := Consensus[v]
		require.True(t, ok, v)
		for _, op := range protocol.OpTypes {
			_, err := params.Fees.Lookup(op)
			require.NoError(t, err, "%s missing %s", v, op)
		}
	}

	_, err := Consensus[protocol.ConsensusV1].Fees.Lookup(protocol.UnknownOp)
	require.ErrorAs(t, err, new(ErrNoFeeParameters))

	// v2 must not alias v1's parameter map
	v1 := Consensus[protocol.ConsensusV1].Fees.Parameters[protocol.TransferOp]
	v2 := Consensus[protocol.ConsensusV2].Fees.Parameters[protocol.TransferOp]
	require.NotEqual(t, v1.MinRealFeePercent, v2.MinRealFeePercent)
	require.Equal(t, uint32(Percent100), Consensus[protocol.ConsensusV1].Fees.Scale)
}

func TestFormatVersion(t *testing.T) {
	partitiontest.PartitionTest(t)

	v := GetCurrentVersion()
	require.Equal(t, VersionMajor, v.Major)
	require.Equal(t, VersionMinor, v.Minor)
	require.Contains(t, FormatVersionAndLicense(), v.String())
	require.False(t, DeadlockDetectionEnabled())
}
