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

package serr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yoyow-org/go-yoyow/test/partitiontest"
)

func TestErrorMessage(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, "plain", New("plain").Error())

	err := New("insufficient balance", "need", 5, "have", 3)
	require.Equal(t, "insufficient balance: have=3 need=5", err.Error())

	require.Equal(t, "a=1", New("", "a", 1).Error())
}

func TestAttrThroughWrapping(t *testing.T) {
	partitiontest.PartitionTest(t)

	base := errors.New("boom")
	inner := Wrap(base, "account", uint64(7))
	outer := fmt.Errorf("evaluate: %w", inner)

	v, ok := Attr(outer, "account")
	require.True(t, ok)
	require.Equal(t, uint64(7), v)

	_, ok = Attr(outer, "missing")
	require.False(t, ok)
	require.ErrorIs(t, outer, base)

	_, ok = Attr(base, "account")
	require.False(t, ok)
}
