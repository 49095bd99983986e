// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortical

import "github.com/feagi/feagi-core-data/cdata"

// Parse decodes a six-ASCII-character cortical identifier into its
// canonical Type. Parsing is table-driven: dispatch on the first byte,
// then for input/output look up the three-byte family in the canonical
// catalogue. The hex pair is parsed as lowercase only; uppercase hex is
// rejected, since capitalization is significant for vision families
// (spec.md §4.1).
func Parse(id string) (Type, error) {
	if len(id) != 6 {
		return Type{}, &ParseError{Input: id, Err: ErrWrongLength}
	}
	switch id[0] {
	case 'c':
		if err := validFreeChars(id[1:]); err != nil {
			return Type{}, err
		}
		return Type{kind: KindCustom, free: id[1:]}, nil
	case 'm':
		if err := validFreeChars(id[1:]); err != nil {
			return Type{}, err
		}
		return Type{kind: KindMemory, free: id[1:]}, nil
	case '_':
		if _, ok := current().core(id); !ok {
			return Type{}, &ParseError{Input: id, Err: ErrUnknownCoreID}
		}
		return Type{kind: KindCore, coreID: id}, nil
	case 'i':
		family := id[1:4]
		if _, ok := current().sensor(family); !ok {
			return Type{}, &ParseError{Input: id, Err: ErrUnknownFamily}
		}
		grp, err := parseHexLower(id[4:6])
		if err != nil {
			return Type{}, &ParseError{Input: id, Err: ErrBadGroupingIndex}
		}
		return Type{kind: KindInput, family: family, grouping: cdata.GroupingIndex(grp)}, nil
	case 'o':
		family := id[1:4]
		if _, ok := current().motor(family); !ok {
			return Type{}, &ParseError{Input: id, Err: ErrUnknownFamily}
		}
		grp, err := parseHexLower(id[4:6])
		if err != nil {
			return Type{}, &ParseError{Input: id, Err: ErrBadGroupingIndex}
		}
		return Type{kind: KindOutput, family: family, grouping: cdata.GroupingIndex(grp)}, nil
	default:
		return Type{}, &ParseError{Input: id, Err: ErrBadDiscriminator}
	}
}

// Emit serializes a Type back to its six-character wire form. Emit is
// the exact inverse of Parse: for any t produced by a successful Parse
// or constructor, Parse(Emit(t)) == t, and for any id accepted by
// Parse, Emit(Parse(id)) == id.
func Emit(t Type) ([6]byte, error) {
	var out [6]byte
	switch t.kind {
	case KindCustom:
		if err := validFreeChars(t.free); err != nil {
			return out, err
		}
		out[0] = 'c'
		copy(out[1:], t.free)
	case KindMemory:
		if err := validFreeChars(t.free); err != nil {
			return out, err
		}
		out[0] = 'm'
		copy(out[1:], t.free)
	case KindCore:
		if len(t.coreID) != 6 {
			return out, &ParseError{Input: t.coreID, Err: ErrWrongLength}
		}
		copy(out[:], t.coreID)
	case KindInput:
		if _, ok := current().sensor(t.family); !ok {
			return out, &ParseError{Input: t.family, Err: ErrUnknownFamily}
		}
		out[0] = 'i'
		copy(out[1:4], t.family)
		hex := emitHexLower(uint8(t.grouping))
		copy(out[4:6], hex[:])
	case KindOutput:
		if _, ok := current().motor(t.family); !ok {
			return out, &ParseError{Input: t.family, Err: ErrUnknownFamily}
		}
		out[0] = 'o'
		copy(out[1:4], t.family)
		hex := emitHexLower(uint8(t.grouping))
		copy(out[4:6], hex[:])
	default:
		return out, &ParseError{Input: "", Err: ErrBadDiscriminator}
	}
	return out, nil
}

const hexDigitsLower = "0123456789abcdef"

func emitHexLower(v uint8) [2]byte {
	return [2]byte{hexDigitsLower[v>>4], hexDigitsLower[v&0x0f]}
}

func parseHexLower(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, ErrBadGroupingIndex
	}
	hi, ok := hexDigitLower(s[0])
	if !ok {
		return 0, ErrBadGroupingIndex
	}
	lo, ok := hexDigitLower(s[1])
	if !ok {
		return 0, ErrBadGroupingIndex
	}
	return hi<<4 | lo, nil
}

func hexDigitLower(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		// uppercase hex (and anything else) is explicitly rejected:
		// the vision-family casing convention depends on case being
		// significant throughout identifier parsing.
		return 0, false
	}
}
