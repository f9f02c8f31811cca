// Copyright 2026 The Symbol Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package strtab implements the process-wide string table backing the
// symbol package.
//
// The table stores each distinct string content exactly once, as an
// immutable Entry that lives for the remainder of the process. Entries are
// never removed, moved, or reused, so a pointer to an Entry is a stable
// identity for its content: two lookups of equal content always return the
// same pointer.
package strtab

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Entry is one canonical interned string. Entries are created by a Table
// and never mutated afterwards.
type Entry struct {
	str string
	sum uint64
}

// String returns the entry's content.
func (e *Entry) String() string { return e.str }

// Len returns the content length in bytes.
func (e *Entry) Len() int { return len(e.str) }

// Sum64 returns the xxhash fingerprint of the content, computed once at
// insertion. Unlike the entry's address, the fingerprint is stable across
// processes.
func (e *Entry) Sum64() uint64 { return e.sum }

// Table deduplicates string contents. All methods are safe for concurrent
// use. The zero Table is not usable; construct with New.
type Table struct {
	mu      sync.RWMutex
	entries map[string]*Entry

	// bytes is guarded by mu; hits and misses are atomic so the read-lock
	// fast path stays read-only.
	bytes  int64
	hits   atomic.Int64
	misses atomic.Int64
}

// Stats is a point-in-time snapshot of table counters.
type Stats struct {
	// Entries is the number of distinct interned strings.
	Entries int
	// Bytes is the total content size of all entries.
	Bytes int64
	// Hits counts intern calls resolved to an existing entry.
	Hits int64
	// Misses counts intern calls that created a new entry.
	Misses int64
}

// New creates an empty table.
func New() *Table {
	return &Table{entries: make(map[string]*Entry, 64)}
}

var global = sync.OnceValue(New)

// Global returns the process-wide table, initializing it on first use.
func Global() *Table { return global() }

// Intern returns the canonical entry for s, creating it if absent.
func (t *Table) Intern(s string) *Entry {
	t.mu.RLock()
	e, ok := t.entries[s]
	t.mu.RUnlock()
	if ok {
		t.hits.Add(1)
		return e
	}

	t.mu.Lock()
	// Double-check after acquiring the write lock (another goroutine might
	// have interned it).
	if e, ok := t.entries[s]; ok {
		t.mu.Unlock()
		t.hits.Add(1)
		return e
	}

	// Clone so that interning a substring does not pin the backing array of
	// a larger string in memory.
	owned := strings.Clone(s)
	e = &Entry{str: owned, sum: xxhash.Sum64String(owned)}
	t.entries[owned] = e
	t.bytes += int64(len(owned))
	t.mu.Unlock()

	t.misses.Add(1)
	return e
}

// InternBytes returns the canonical entry for the content of b. The probe
// uses the map's string(b) key conversion, so a hit performs no allocation.
func (t *Table) InternBytes(b []byte) *Entry {
	t.mu.RLock()
	e, ok := t.entries[string(b)]
	t.mu.RUnlock()
	if ok {
		t.hits.Add(1)
		return e
	}
	return t.Intern(string(b))
}

// Len returns the number of distinct entries.
func (t *Table) Len() int {
	t.mu.RLock()
	n := len(t.entries)
	t.mu.RUnlock()
	return n
}

// Stats returns a snapshot of the table counters.
func (t *Table) Stats() Stats {
	t.mu.RLock()
	st := Stats{Entries: len(t.entries), Bytes: t.bytes}
	t.mu.RUnlock()
	st.Hits = t.hits.Load()
	st.Misses = t.misses.Load()
	return st
}
