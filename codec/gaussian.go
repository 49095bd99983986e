// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/chewxy/math32"
	"github.com/feagi/feagi-core-data/cdata"
	"github.com/feagi/feagi-core-data/neuron"
)

// GaussianPopulation is a population-code scheme in the style of the
// teacher's popcode.OneD: rather than one active neuron, it emits a
// Gaussian bump of activation across R neurons tuned to evenly spaced
// preferred values across [-1, 1]. It is a drop-in sibling to
// Positional and Bipolar obeying the same Encode/Decode contract
// (spec.md §4.4's "additional variants extend the variant set").
type GaussianPopulation struct {
	R     uint32
	Sigma float32 // tuning width, normalized 0-1 range
	Thr   float32 // activation threshold below which a unit doesn't contribute to decode

	// MinSum is the floor on the summed activation used when averaging
	// during decode, preventing division by a near-zero denominator.
	MinSum float32
}

// NewGaussianPopulation constructs a population-code encoder/decoder
// over R units, with sensible defaults for Sigma, Thr and MinSum
// mirroring the teacher's popcode.OneD.Defaults.
func NewGaussianPopulation(r uint32) (*GaussianPopulation, error) {
	if r < 2 {
		return nil, ErrZeroResolution
	}
	return &GaussianPopulation{R: r, Sigma: 0.2, Thr: 0.1, MinSum: 0.2}, nil
}

// preferred returns the preferred tuning value of unit i out of R
// units spanning [-1, 1].
func (g *GaussianPopulation) preferred(i uint32) float32 {
	incr := 2 / float32(g.R-1)
	return -1 + incr*float32(i)
}

// Encode returns an R-neuron Array whose activations form a Gaussian
// bump centered on v.
func (g *GaussianPopulation) Encode(v cdata.NormalizedFloat) *neuron.Array {
	arr := neuron.NewArray(int(g.R))
	val := v.Value()
	for i := uint32(0); i < g.R; i++ {
		trg := g.preferred(i)
		dist := (trg - val) / (2 * g.Sigma)
		act := math32.Exp(-(dist * dist))
		arr.Append(i, 0, 0, act)
	}
	return arr
}

// Decode reconstructs a normalized float as the activation-weighted
// average of each unit's preferred tuning value, exactly as
// popcode.OneD.Decode does.
func (g *GaussianPopulation) Decode(arr *neuron.Array) (cdata.NormalizedFloat, error) {
	if arr.Len() == 0 {
		return cdata.NormalizedFloat{}, ErrEmptyArray
	}
	var avg, sum float32
	for i := 0; i < arr.Len(); i++ {
		s := arr.At(i)
		act := s.P
		if act < g.Thr {
			continue
		}
		trg := g.preferred(s.X)
		avg += trg * act
		sum += act
	}
	if sum < g.MinSum {
		sum = g.MinSum
	}
	return cdata.ClampNormalizedFloat(avg / sum), nil
}
