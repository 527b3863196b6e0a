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
	"github.com/yoyow-org/go-yoyow/util/metrics"
)

type metricsTracker struct {
	ledgerTransactionsTotal *metrics.Counter
	ledgerRejectedTotal     *metrics.Counter
	ledgerCommitsTotal      *metrics.Counter
}

func (mt *metricsTracker) init() {
	mt.ledgerTransactionsTotal = metrics.MakeCounter(metrics.LedgerTransactionsTotal)
	mt.ledgerRejectedTotal = metrics.MakeCounter(metrics.LedgerTransactionsRejectedTotal)
	mt.ledgerCommitsTotal = metrics.MakeCounter(metrics.LedgerCommitsTotal)
}

func (mt *metricsTracker) close() {
	if mt.ledgerTransactionsTotal != nil {
		mt.ledgerTransactionsTotal.Deregister(nil)
		mt.ledgerTransactionsTotal = nil
	}
	if mt.ledgerRejectedTotal != nil {
		mt.ledgerRejectedTotal.Deregister(nil)
		mt.ledgerRejectedTotal = nil
	}
	if mt.ledgerCommitsTotal != nil {
		mt.ledgerCommitsTotal.Deregister(nil)
		mt.ledgerCommitsTotal = nil
	}
}

func (mt *metricsTracker) transaction(ok bool) {
	if mt.ledgerTransactionsTotal == nil {
		return
	}
	if ok {
		mt.ledgerTransactionsTotal.Inc(nil)
	} else {
		mt.ledgerRejectedTotal.Inc(nil)
	}
}

func (mt *metricsTracker) commit() {
	if mt.ledgerCommitsTotal != nil {
		mt.ledgerCommitsTotal.Inc(nil)
	}
}
