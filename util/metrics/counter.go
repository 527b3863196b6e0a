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

package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricName describes the name and description of a single metric
type MetricName struct {
	Name        string
	Description string
}

var (
	// OpsEvaluatedTotal counts operations that passed evaluation, by operation kind
	OpsEvaluatedTotal = MetricName{Name: "yoyow_ops_evaluated_total", Description: "Total number of operations that passed evaluation"}
	// OpsRejectedTotal counts operations that failed evaluation or apply, by operation kind
	OpsRejectedTotal = MetricName{Name: "yoyow_ops_rejected_total", Description: "Total number of operations rejected during evaluation or apply"}
	// FeesCollectedTotal sums core_fee_paid over applied operations
	FeesCollectedTotal = MetricName{Name: "yoyow_fees_collected_total", Description: "Total core units collected as fees"}
	// FeeConversionsTotal counts fees converted through an asset exchange pool
	FeeConversionsTotal = MetricName{Name: "yoyow_fee_conversions_total", Description: "Total number of fees converted to core through an exchange pool"}
	// LedgerTransactionsTotal counts transactions applied to the ledger
	LedgerTransactionsTotal = MetricName{Name: "yoyow_ledger_transactions_total", Description: "Total number of transactions applied"}
	// LedgerTransactionsRejectedTotal counts transactions rolled back
	LedgerTransactionsRejectedTotal = MetricName{Name: "yoyow_ledger_transactions_rejected_total", Description: "Total number of transactions rejected and rolled back"}
	// LedgerCommitsTotal counts flushes of pending state to the store
	LedgerCommitsTotal = MetricName{Name: "yoyow_ledger_commits_total", Description: "Total number of ledger commits"}
)

var defaultRegistry = prometheus.NewRegistry()

// DefaultRegistry is where MakeCounter registers new counters.
func DefaultRegistry() *prometheus.Registry {
	return defaultRegistry
}

// Counter represent a single counter variable, optionally split by labels.
type Counter struct {
	name string
	vec  *prometheus.CounterVec
	keys []string
}

// MakeCounter create a new counter with the provided name and description.
// labelKeys fixes the label set every Inc/AddUint64 call must supply.
func MakeCounter(metric MetricName, labelKeys ...string) *Counter {
	keys := append([]string(nil), labelKeys...)
	sort.Strings(keys)
	c := &Counter{
		name: metric.Name,
		vec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metric.Name,
			Help: metric.Description,
		}, keys),
		keys: keys,
	}
	c.Register(nil)
	return c
}

// Register registers the counter with the default/specific registry.
// Registering the same metric name twice keeps the first registration.
func (counter *Counter) Register(reg *prometheus.Registry) {
	if reg == nil {
		reg = defaultRegistry
	}
	if err := reg.Register(counter.vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if vec, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				counter.vec = vec
			}
		}
	}
}

// Deregister deregisters the counter with the default/specific registry
func (counter *Counter) Deregister(reg *prometheus.Registry) {
	if reg == nil {
		reg = defaultRegistry
	}
	reg.Unregister(counter.vec)
}

// Inc increases counter by 1
func (counter *Counter) Inc(labels map[string]string) {
	counter.AddUint64(1, labels)
}

// AddUint64 increases counter by x
func (counter *Counter) AddUint64(x uint64, labels map[string]string) {
	c, err := counter.vec.GetMetricWith(counter.labels(labels))
	if err != nil {
		return
	}
	c.Add(float64(x))
}

// GetUint64ValueForLabels returns the value of the counter for the given labels or 0 if it's not found.
func (counter *Counter) GetUint64ValueForLabels(labels map[string]string) uint64 {
	families, err := defaultRegistry.Gather()
	if err != nil {
		return 0
	}
	want := counter.labels(labels)
	for _, f := range families {
		if f.GetName() != counter.name {
			continue
		}
		for _, m := range f.GetMetric() {
			match := true
			for _, lp := range m.GetLabel() {
				if want[lp.GetName()] != lp.GetValue() {
					match = false
					break
				}
			}
			if match {
				return uint64(m.GetCounter().GetValue())
			}
		}
	}
	return 0
}

// GetUint64Value returns the value of an unlabelled counter.
func (counter *Counter) GetUint64Value() uint64 {
	return counter.GetUint64ValueForLabels(nil)
}

func (counter *Counter) labels(labels map[string]string) prometheus.Labels {
	out := make(prometheus.Labels, len(counter.keys))
	for _, k := range counter.keys {
		out[k] = labels[k]
	}
	return out
}

// String lists the counter's name and label keys.
func (counter *Counter) String() string {
	return counter.name + "{" + strings.Join(counter.keys, ",") + "}"
}
