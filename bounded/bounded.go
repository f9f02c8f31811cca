// Copyright 2026 The Symbol Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package bounded provides a best-effort string deduplicator with a fixed
// capacity, for input whose cardinality is unbounded or attacker-controlled
// and therefore must not reach the process-wide table.
//
// Unlike the symbol package, entries here are evictable, so no identity
// guarantee is made: the interner returns plain strings, not handles, and
// two calls with equal content may return distinct (but equal) strings once
// the content has been evicted.
package bounded

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Interner deduplicates strings through a fixed-size LRU cache. It is safe
// for concurrent use.
type Interner struct {
	cache *lru.Cache[string, string]
}

// New creates an interner retaining at most size strings. size must be
// positive.
func New(size int) (*Interner, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("bounded: %w", err)
	}
	return &Interner{cache: c}, nil
}

// Intern returns the cached canonical string for s, caching s itself if
// absent. The result always equals s in content.
func (i *Interner) Intern(s string) string {
	if prev, ok, _ := i.cache.PeekOrAdd(s, s); ok {
		return prev
	}
	return s
}

// Len returns the number of currently cached strings.
func (i *Interner) Len() int {
	return i.cache.Len()
}
