// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"testing"

	"github.com/feagi/feagi-core-data/cdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S4: register a proximity group with grouping 0, resolution 20, 1
// channel, sliding-window length 5. Submit 0.0, 0.5, 1.0, 1.0, 1.0.
// Emitted sequence: 0.0, 0.25, 0.5, 0.625, 0.7.
func TestScenarioS4(t *testing.T) {
	proc, err := NewSlidingAverage(0, 1, 5)
	require.NoError(t, err)

	inputs := []float32{0.0, 0.5, 1.0, 1.0, 1.0}
	want := []float32{0.0, 0.25, 0.5, 0.625, 0.7}

	for i, v := range inputs {
		in, err := cdata.NewBounded(0, 1, v)
		require.NoError(t, err)
		out, err := proc.Step(in)
		require.NoError(t, err)
		assert.InDeltaf(t, want[i], out.Value(), 1e-6, "step %d", i)
	}
}

func TestSlidingWindowInvariant(t *testing.T) {
	const w = 4
	proc, err := NewSlidingAverage(-1, 1, w)
	require.NoError(t, err)

	seq := []float32{0.1, -0.2, 0.3, 0.9, -0.9, 0.0, 0.5, -1.0}
	var window []float32
	for k, v := range seq {
		in, err := cdata.NewBounded(-1, 1, v)
		require.NoError(t, err)
		out, err := proc.Step(in)
		require.NoError(t, err)

		window = append(window, v)
		if len(window) > w {
			window = window[len(window)-w:]
		}
		var sum float32
		for _, x := range window {
			sum += x
		}
		want := sum / float32(len(window))
		assert.InDeltaf(t, want, out.Value(), 1e-5, "step %d", k)
	}
}

func TestSlidingAverageRejectsInvalidWindow(t *testing.T) {
	_, err := NewSlidingAverage(0, 1, 0)
	require.Error(t, err)
}

func TestSlidingAverageProcessorMismatch(t *testing.T) {
	proc, err := NewSlidingAverage(0, 1, 3)
	require.NoError(t, err)
	other, _ := cdata.NewBounded(-5, 5, 1)
	_, err = proc.Step(other)
	require.ErrorIs(t, err, ErrProcessorMismatch)
}

func TestIdentityProcessor(t *testing.T) {
	var id Identity
	in, _ := cdata.NewBounded(-1, 1, 0.42)
	out, err := id.Step(in)
	require.NoError(t, err)
	assert.Equal(t, float32(0.42), out.Value())
}
