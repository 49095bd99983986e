// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/chewxy/math32"
	"github.com/feagi/feagi-core-data/cdata"
	"github.com/feagi/feagi-core-data/neuron"
)

// Positional encodes a normalized float v in [-1, 1] as exactly one
// neuron along a 1-D axis of resolution R: index i = floor((v+1)/2*R),
// clamped to [0, R-1], with P = 1.0 (spec.md §4.4). Decoding returns the
// center of the bin the single active neuron names, guaranteeing
// |decode(encode(v)) - v| <= 1/R.
type Positional struct {
	R uint32
}

// NewPositional constructs a Positional encoder/decoder for resolution
// r, failing if r == 0.
func NewPositional(r uint32) (*Positional, error) {
	if r == 0 {
		return nil, ErrZeroResolution
	}
	return &Positional{R: r}, nil
}

// Encode returns a single-neuron Array naming v's bin along the X axis.
func (p *Positional) Encode(v cdata.NormalizedFloat) *neuron.Array {
	idx := positionalIndex(v.Value(), p.R)
	arr := neuron.NewArray(1)
	arr.Append(idx, 0, 0, 1.0)
	return arr
}

// Decode reconstructs a normalized float from an Array produced by
// Encode (or any array with at least one sample on the X axis): the
// highest-potential sample names the active bin, and the bin's center
// is returned.
func (p *Positional) Decode(arr *neuron.Array) (cdata.NormalizedFloat, error) {
	if arr.Len() == 0 {
		return cdata.NormalizedFloat{}, ErrEmptyArray
	}
	best := arr.At(0)
	for i := 1; i < arr.Len(); i++ {
		if s := arr.At(i); s.P > best.P {
			best = s
		}
	}
	return cdata.ClampNormalizedFloat(binCenter(best.X, p.R)), nil
}

// positionalIndex maps v in [-1, 1] to a bin index in [0, R-1].
func positionalIndex(v float32, r uint32) uint32 {
	norm := (v + 1) / 2 * float32(r)
	idx := int32(math32.Floor(norm))
	if idx < 0 {
		idx = 0
	}
	if idx >= int32(r) {
		idx = int32(r) - 1
	}
	return uint32(idx)
}

// binCenter returns the normalized-float value at the center of bin i
// out of r bins spanning [-1, 1].
func binCenter(i, r uint32) float32 {
	return (float32(i)+0.5)/float32(r)*2 - 1
}
