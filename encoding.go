// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ptime

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// canonical returns t in a form that Parse accepts and that retains all
// of its fields other than IsDST.
func (t Tm) canonical() string {
	var out strings.Builder
	fmt.Fprintf(&out, "%04d-%02d-%02dT%02d:%02d:%02d", t.Year, int(t.Month)+1, t.Day, t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		fmt.Fprintf(&out, ".%09d", t.Nanosecond)
	}
	if t.UTCOffset == 0 {
		out.WriteByte('Z')
		return out.String()
	}
	sign, off := '+', t.UTCOffset
	if off < 0 {
		sign, off = '-', -off
	}
	fmt.Fprintf(&out, "%c%02d:%02d", sign, off/3600, off%3600/60)
	return out.String()
}

// MarshalText implements encoding.TextMarshaler.
func (t Tm) MarshalText() ([]byte, error) {
	return []byte(t.canonical()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tm) UnmarshalText(text []byte) error {
	tm, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = tm
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Tm) MarshalYAML() (any, error) {
	return t.canonical(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Any of the formats accepted
// by Parse may be used.
func (t *Tm) UnmarshalYAML(node *yaml.Node) error {
	tm, err := Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = tm
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (tod TimeOfDay) MarshalYAML() (any, error) {
	return tod.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (tod *TimeOfDay) UnmarshalYAML(node *yaml.Node) error {
	return tod.Parse(node.Value)
}
