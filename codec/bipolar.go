// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/chewxy/math32"
	"github.com/feagi/feagi-core-data/cdata"
	"github.com/feagi/feagi-core-data/neuron"
)

// Bipolar splits sign and magnitude across two halves of a 1-D axis of
// resolution R (spec.md §4.4). Indices [0, R/2) encode negative values
// (magnitude increasing towards index 0), indices [R/2, R) encode
// non-negative values (magnitude increasing away from R/2). Each sign
// carries R/2 bins of width 2/R and Decode returns the bin center, so
// the reconstruction error bound is 1/R, the same as the single-axis
// Positional scheme.
type Bipolar struct {
	R    uint32
	half uint32
}

// NewBipolar constructs a Bipolar encoder/decoder for resolution r,
// which must be even and >= 2 so each half has at least one bin.
func NewBipolar(r uint32) (*Bipolar, error) {
	if r < 2 || r%2 != 0 {
		return nil, ErrZeroResolution
	}
	return &Bipolar{R: r, half: r / 2}, nil
}

// Encode returns a single-neuron Array naming v's signed bin.
func (b *Bipolar) Encode(v cdata.NormalizedFloat) *neuron.Array {
	idx := bipolarIndex(v.Value(), b.half)
	arr := neuron.NewArray(1)
	arr.Append(idx, 0, 0, 1.0)
	return arr
}

// Decode reconstructs a normalized float from an Array produced by
// Encode.
func (b *Bipolar) Decode(arr *neuron.Array) (cdata.NormalizedFloat, error) {
	if arr.Len() == 0 {
		return cdata.NormalizedFloat{}, ErrEmptyArray
	}
	best := arr.At(0)
	for i := 1; i < arr.Len(); i++ {
		if s := arr.At(i); s.P > best.P {
			best = s
		}
	}
	return cdata.ClampNormalizedFloat(bipolarCenter(best.X, b.half)), nil
}

func bipolarIndex(v float32, half uint32) uint32 {
	if v >= 0 {
		frac := v * float32(half)
		i := int32(math32.Floor(frac))
		if i < 0 {
			i = 0
		}
		if i >= int32(half) {
			i = int32(half) - 1
		}
		return half + uint32(i)
	}
	mag := -v
	frac := mag * float32(half)
	i := int32(math32.Floor(frac))
	if i < 0 {
		i = 0
	}
	if i >= int32(half) {
		i = int32(half) - 1
	}
	return half - 1 - uint32(i)
}

func bipolarCenter(idx, half uint32) float32 {
	if idx >= half {
		i := idx - half
		return (float32(i) + 0.5) / float32(half)
	}
	i := half - 1 - idx
	return -((float32(i) + 0.5) / float32(half))
}
