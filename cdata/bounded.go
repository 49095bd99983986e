// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cdata holds the semantic primitives shared by every other
// package in this module: bounded floats, cortical dimensions, channel
// formats, and the distinct index types used to address a device,
// channel, or grouping within a cortical area.
package cdata

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Bounded is a float32 value constrained, at construction time, to lie
// within a closed [Lo, Hi] interval. The bounds are fixed for the
// lifetime of the value; there is no way to widen them after
// construction.
type Bounded struct {
	lo, hi float32
	val    float32
}

// NewBounded constructs a Bounded value, failing if val does not lie in
// [lo, hi] or if lo > hi.
func NewBounded(lo, hi, val float32) (Bounded, error) {
	if lo > hi {
		return Bounded{}, fmt.Errorf("cdata: invalid bounds [%g, %g]: %w", lo, hi, ErrOutOfBounds)
	}
	if val < lo || val > hi {
		return Bounded{}, fmt.Errorf("cdata: value %g outside [%g, %g]: %w", val, lo, hi, ErrOutOfBounds)
	}
	return Bounded{lo: lo, hi: hi, val: val}, nil
}

// Value returns the underlying float32.
func (b Bounded) Value() float32 { return b.val }

// Lo returns the lower bound.
func (b Bounded) Lo() float32 { return b.lo }

// Hi returns the upper bound.
func (b Bounded) Hi() float32 { return b.hi }

// Range returns Hi - Lo.
func (b Bounded) Range() float32 { return b.hi - b.lo }

// InRange reports whether val lies within this value's bounds.
func (b Bounded) InRange(val float32) bool {
	return val >= b.lo && val <= b.hi
}

// Clamp returns val clipped to this value's bounds.
func (b Bounded) Clamp(val float32) float32 {
	return math32.Max(b.lo, math32.Min(b.hi, val))
}

// WithValue returns a new Bounded sharing these bounds, with the given
// value, failing if the value is out of range.
func (b Bounded) WithValue(val float32) (Bounded, error) {
	return NewBounded(b.lo, b.hi, val)
}

// NormalizedFloat is a Bounded value whose bounds are pinned to
// [-1, +1] — the canonical carrier for encoder inputs and decoder
// outputs (spec.md §3).
type NormalizedFloat struct {
	val float32
}

// NewNormalizedFloat constructs a NormalizedFloat, failing if val does
// not lie in [-1, 1].
func NewNormalizedFloat(val float32) (NormalizedFloat, error) {
	if val < -1 || val > 1 {
		return NormalizedFloat{}, fmt.Errorf("cdata: value %g outside [-1, 1]: %w", val, ErrOutOfBounds)
	}
	return NormalizedFloat{val: val}, nil
}

// Value returns the underlying float32, always in [-1, 1].
func (n NormalizedFloat) Value() float32 { return n.val }

// Bounded projects this value onto the general Bounded type.
func (n NormalizedFloat) Bounded() Bounded {
	return Bounded{lo: -1, hi: 1, val: n.val}
}

// ClampNormalizedFloat clamps an arbitrary float32 into [-1, 1] and
// constructs a NormalizedFloat from it; it never fails.
func ClampNormalizedFloat(val float32) NormalizedFloat {
	return NormalizedFloat{val: math32.Max(-1, math32.Min(1, val))}
}
