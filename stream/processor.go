// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import "github.com/feagi/feagi-core-data/cdata"

// Processor is a stateful per-channel filter: Step accepts one new
// sample and returns the emitted sample, which always shares the
// semantic type of the input (spec.md §4.3).
type Processor interface {
	// Step feeds one new bounded-float sample and returns the emitted
	// sample, failing with ErrProcessorMismatch if in's bounds do not
	// match this processor's configured bounds.
	Step(in cdata.Bounded) (cdata.Bounded, error)
}

// Identity emits its input unchanged. It is state-free: the zero value
// is ready to use.
type Identity struct{}

// Step implements Processor.
func (Identity) Step(in cdata.Bounded) (cdata.Bounded, error) {
	return in, nil
}
