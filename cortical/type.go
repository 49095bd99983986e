// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortical

import "github.com/feagi/feagi-core-data/cdata"

// Kind discriminates among the five cortical area variants (spec.md
// §3's table).
type Kind int

const (
	KindCustom Kind = iota
	KindMemory
	KindCore
	KindInput
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "Custom"
	case KindMemory:
		return "Memory"
	case KindCore:
		return "Core"
	case KindInput:
		return "Input"
	case KindOutput:
		return "Output"
	default:
		return "Unknown"
	}
}

// Type is the canonical, structured form of a cortical identifier — a
// nested tagged variant mirroring spec.md §3's table. The six-character
// identifier (Parse/Emit) is its serialized projection; internal code
// should thread Type values, never raw strings (spec.md §9).
type Type struct {
	kind Kind

	// valid when kind == KindCustom or KindMemory: five free
	// alphanumeric characters.
	free string

	// valid when kind == KindCore: the six-byte static identifier.
	coreID string

	// valid when kind == KindInput or KindOutput.
	family   string
	grouping cdata.GroupingIndex
}

// NewCustom constructs a Custom-variant Type from five free alphanumeric
// characters.
func NewCustom(free string) (Type, error) {
	if err := validFreeChars(free); err != nil {
		return Type{}, err
	}
	return Type{kind: KindCustom, free: free}, nil
}

// NewMemory constructs a Memory-variant Type from five free alphanumeric
// characters.
func NewMemory(free string) (Type, error) {
	if err := validFreeChars(free); err != nil {
		return Type{}, err
	}
	return Type{kind: KindMemory, free: free}, nil
}

// NewCore constructs a Core-variant Type from a known six-byte static
// identifier (e.g. "___pwr").
func NewCore(id string) (Type, error) {
	if len(id) != 6 {
		return Type{}, &ParseError{Input: id, Err: ErrWrongLength}
	}
	if _, ok := current().core(id); !ok {
		return Type{}, &ParseError{Input: id, Err: ErrUnknownCoreID}
	}
	return Type{kind: KindCore, coreID: id}, nil
}

// NewSensor constructs an Input-variant Type from a three-character
// sensor family code and a grouping index.
func NewSensor(family string, grouping cdata.GroupingIndex) (Type, error) {
	if _, ok := current().sensor(family); !ok {
		return Type{}, &ParseError{Input: family, Err: ErrUnknownFamily}
	}
	return Type{kind: KindInput, family: family, grouping: grouping}, nil
}

// NewMotor constructs an Output-variant Type from a three-character
// motor family code and a grouping index.
func NewMotor(family string, grouping cdata.GroupingIndex) (Type, error) {
	if _, ok := current().motor(family); !ok {
		return Type{}, &ParseError{Input: family, Err: ErrUnknownFamily}
	}
	return Type{kind: KindOutput, family: family, grouping: grouping}, nil
}

// Kind returns the variant discriminator.
func (t Type) Kind() Kind { return t.kind }

// Free returns the five free characters of a Custom or Memory variant.
func (t Type) Free() string { return t.free }

// CoreID returns the six-byte static identifier of a Core variant.
func (t Type) CoreID() string { return t.coreID }

// Family returns the three-character family code of an Input or Output
// variant.
func (t Type) Family() string { return t.family }

// Grouping returns the grouping index of an Input or Output variant.
func (t Type) Grouping() cdata.GroupingIndex { return t.grouping }

// Equal reports whether two Type values are the fully identical variant
// and payload.
func (t Type) Equal(o Type) bool {
	return t.kind == o.kind && t.free == o.free && t.coreID == o.coreID &&
		t.family == o.family && t.grouping == o.grouping
}

func validFreeChars(s string) error {
	if len(s) != 5 {
		return &ParseError{Input: s, Err: ErrWrongLength}
	}
	for _, c := range []byte(s) {
		if !isAlnumUnderscore(c) {
			return &ParseError{Input: s, Err: ErrBadDiscriminator}
		}
	}
	return nil
}

func isAlnumUnderscore(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	default:
		return false
	}
}
