// Copyright 2026 The Symbol Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package metrics exposes the interning table's counters as Prometheus
// metrics. The collector reads a snapshot on every scrape; it starts no
// goroutines and registers nothing itself.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/symkit/symbol"
)

// Collector implements prometheus.Collector over the process-wide table.
type Collector struct {
	entries *prometheus.Desc
	bytes   *prometheus.Desc
	hits    *prometheus.Desc
	misses  *prometheus.Desc
}

// NewCollector creates a collector for the process-wide table. Register it
// with the application's registry:
//
//	prometheus.MustRegister(metrics.NewCollector())
func NewCollector() *Collector {
	return &Collector{
		entries: prometheus.NewDesc(
			"symbol_table_entries",
			"Number of distinct interned strings.",
			nil, nil,
		),
		bytes: prometheus.NewDesc(
			"symbol_table_bytes",
			"Total content size of all interned strings in bytes.",
			nil, nil,
		),
		hits: prometheus.NewDesc(
			"symbol_table_hits_total",
			"Intern calls resolved to an existing entry.",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			"symbol_table_misses_total",
			"Intern calls that created a new entry.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.bytes
	ch <- c.hits
	ch <- c.misses
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := symbol.TableStats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(st.Entries))
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.GaugeValue, float64(st.Bytes))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(st.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(st.Misses))
}
