// Copyright 2026 The Symbol Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package symbol provides process-wide string interning.
//
// Interning maps repeated string contents to a single canonical entry and
// hands out a small, copyable handle (Symbol) in its place. Because equal
// content always resolves to the same entry, comparing two Symbols with ==
// is a single pointer comparison, and using a Symbol as a map key hashes
// one word instead of the string content. This makes Symbols a good fit for
// identifiers: names, tags, and enum-like labels that recur many times.
//
// Interned strings are never released. The table grows monotonically for
// the lifetime of the process, which is the intended trade for
// bounded-cardinality identifier sets. Do not intern high-cardinality or
// attacker-controlled input through this package; use the bounded
// subpackage for that.
package symbol

import (
	"strconv"
	"strings"

	"github.com/symkit/symbol/internal/strtab"
)

// A Symbol is a handle to one interned string. Symbols are immutable, cheap
// to copy, and safe for concurrent use without synchronization.
//
// Two Symbols compare equal with == exactly when they were interned from
// equal content: the table stores each content once, so content equality
// and handle equality coincide. Symbols are comparable and can be used
// directly as map keys.
//
// The zero Symbol is a safe empty handle: its text is "". It is not the
// same handle as Default(), which routes the empty string through the
// interning path.
type Symbol struct {
	e *strtab.Entry
}

// Intern returns the Symbol for s, creating the canonical entry if this is
// the first time the content is seen. Intern never fails.
func Intern(s string) Symbol {
	return Symbol{e: strtab.Global().Intern(s)}
}

// InternBytes returns the Symbol for the content of b. It avoids the
// string conversion when the content is already interned.
func InternBytes(b []byte) Symbol {
	return Symbol{e: strtab.Global().InternBytes(b)}
}

// Default returns the Symbol for the empty string. The empty string
// participates in deduplication like any other content, so
// Default() == Intern("").
func Default() Symbol {
	return Intern("")
}

// String returns the interned text. The returned string is valid for the
// remainder of the process and shared by every Symbol with equal content.
func (s Symbol) String() string {
	if s.e == nil {
		return ""
	}
	return s.e.String()
}

// Len returns the length of the text in bytes.
func (s Symbol) Len() int {
	if s.e == nil {
		return 0
	}
	return s.e.Len()
}

// IsZero reports whether s is the zero Symbol, i.e. was never interned.
func (s Symbol) IsZero() bool {
	return s.e == nil
}

// Sum64 returns a 64-bit xxhash fingerprint of the text. Unlike handle
// identity, the fingerprint is stable across processes. The zero Symbol
// reports 0.
func (s Symbol) Sum64() uint64 {
	if s.e == nil {
		return 0
	}
	return s.e.Sum64()
}

// Compare orders Symbols lexicographically by content. Equal handles
// short-circuit to 0 without touching the content.
func (s Symbol) Compare(o Symbol) int {
	if s.e == o.e {
		return 0
	}
	return strings.Compare(s.String(), o.String())
}

// GoString implements fmt.GoStringer so %#v prints a literal that
// reconstructs the Symbol.
func (s Symbol) GoString() string {
	return "symbol.Intern(" + strconv.Quote(s.String()) + ")"
}

// Stats is a snapshot of the process-wide table counters.
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

// TableStats returns a snapshot of the process-wide table counters.
func TableStats() Stats {
	st := strtab.Global().Stats()
	return Stats{Entries: st.Entries, Bytes: st.Bytes, Hits: st.Hits, Misses: st.Misses}
}
