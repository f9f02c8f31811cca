// Copyright 2026 The Symbol Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package symbol

import "encoding/json"

// The encoded form of a Symbol is exactly its text. Decoding re-interns
// through the normal lookup-or-insert path, so values arriving from
// external data are deduplicated against the same table as in-process
// construction, and decode(encode(x)) == x within a process.
//
// Decoding fails only when the host format cannot supply a string at the
// expected position; interning itself cannot fail.

// MarshalText implements encoding.TextMarshaler.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by re-interning the
// text. This also makes Symbol usable as a JSON object key.
func (s *Symbol) UnmarshalText(b []byte) error {
	*s = InternBytes(b)
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the Symbol as a plain
// JSON string.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler. A non-string value at this
// position yields the json package's own error, untouched.
func (s *Symbol) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Intern(v)
	return nil
}
