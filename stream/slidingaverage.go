// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import "github.com/feagi/feagi-core-data/cdata"

// SlidingAverage holds the last W inputs in a ring and emits their
// arithmetic mean. Until W inputs have arrived, it emits the mean of
// the k < W samples seen so far (spec.md §4.3, §8 property 7).
//
// Bounds propagate without an explicit clamp: since every input lies in
// [lo, hi] and the mean of values in a convex set lies in that same
// set, the emitted mean is always constructible as a Bounded with the
// same bounds as the input.
type SlidingAverage struct {
	lo, hi float32
	ring   *ring
	sum    float64
}

// NewSlidingAverage constructs a processor over bounded floats with
// bounds [lo, hi] and window length w, failing if w < 1.
func NewSlidingAverage(lo, hi float32, w int) (*SlidingAverage, error) {
	if w < 1 {
		return nil, ErrInvalidWindow
	}
	return &SlidingAverage{lo: lo, hi: hi, ring: newRing(w)}, nil
}

// Step implements Processor.
func (s *SlidingAverage) Step(in cdata.Bounded) (cdata.Bounded, error) {
	if in.Lo() != s.lo || in.Hi() != s.hi {
		return cdata.Bounded{}, ErrProcessorMismatch
	}
	evicted, didEvict := s.ring.push(in.Value())
	s.sum += float64(in.Value())
	if didEvict {
		s.sum -= float64(evicted)
	}
	mean := float32(s.sum / float64(s.ring.count))
	return cdata.NewBounded(s.lo, s.hi, mean)
}
