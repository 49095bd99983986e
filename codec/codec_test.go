// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/feagi/feagi-core-data/cdata"
)

// S5: encode 0.0 at R=20 under single-neuron positional: one sample at
// X=10, P=1.0; decode returns a value in [-0.05, 0.05].
func TestScenarioS5(t *testing.T) {
	enc, err := NewPositional(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := cdata.NewNormalizedFloat(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr := enc.Encode(v)
	if arr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", arr.Len())
	}
	s := arr.At(0)
	if s.X != 10 || s.P != 1.0 {
		t.Errorf("At(0) = %+v, want X=10 P=1.0", s)
	}
	decoded, err := enc.Decode(arr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Value() < -0.05 || decoded.Value() > 0.05 {
		t.Errorf("decoded = %g, want in [-0.05, 0.05]", decoded.Value())
	}
}

// Encoder/decoder error bound: for every normalized float v and
// resolution R, |decode(encode(v, R), R) - v| <= 1/R.
func TestPositionalErrorBound(t *testing.T) {
	resolutions := []uint32{1, 2, 5, 20, 100}
	for _, r := range resolutions {
		enc, err := NewPositional(r)
		if err != nil {
			t.Fatalf("NewPositional(%d): unexpected error: %v", r, err)
		}
		bound := 1 / float32(r)
		for i := 0; i <= 40; i++ {
			val := -1 + float32(i)*(2.0/40)
			v, _ := cdata.NewNormalizedFloat(val)
			decoded, err := enc.Decode(enc.Encode(v))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			diff := math32.Abs(decoded.Value() - val)
			if diff > bound+1e-6 {
				t.Errorf("R=%d v=%g: |decode(encode(v))-v| = %g > bound %g", r, val, diff, bound)
			}
		}
	}
}

func TestBipolarRoundTripSign(t *testing.T) {
	enc, err := NewBipolar(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []float32{-0.9, -0.1, 0, 0.1, 0.9}
	bound := 2 / float32(20)
	for _, val := range cases {
		v, _ := cdata.NewNormalizedFloat(val)
		decoded, err := enc.Decode(enc.Encode(v))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		diff := math32.Abs(decoded.Value() - val)
		if diff > bound+1e-6 {
			t.Errorf("v=%g: error %g exceeds bound %g", val, diff, bound)
		}
		if val < 0 && decoded.Value() >= 0 && val < -bound {
			t.Errorf("sign flipped for v=%g -> %g", val, decoded.Value())
		}
	}
}

func TestGaussianPopulationDecodeNearCenter(t *testing.T) {
	enc, err := NewGaussianPopulation(40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := cdata.NewNormalizedFloat(0.3)
	decoded, err := enc.Decode(enc.Encode(v))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math32.Abs(decoded.Value()-0.3) > 0.05 {
		t.Errorf("decoded = %g, want close to 0.3", decoded.Value())
	}
}

func TestDecodeEmptyArrayFails(t *testing.T) {
	enc, _ := NewPositional(10)
	empty := enc.Encode(mustNormalized(t, 0))
	empty.Compact(2) // drop everything, leaving an empty array
	if _, err := enc.Decode(empty); err != ErrEmptyArray {
		t.Errorf("expected ErrEmptyArray, got %v", err)
	}
}

func mustNormalized(t *testing.T, v float32) cdata.NormalizedFloat {
	t.Helper()
	n, err := cdata.NewNormalizedFloat(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return n
}
