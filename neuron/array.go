// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

// Array is a sparse, unordered collection of neuron samples for one
// cortical area, stored as four parallel equal-length vectors (spec.md
// §3, §9: "the four-vector representation is deliberate — cache
// locality, bulk I/O"). Absent coordinates imply zero potential.
// Iteration order is not part of the public contract.
//
// The equal-length invariant is structural: the only way to add a
// sample is Append, which grows all four slices together. There is no
// way to mutate one vector without the others from outside this
// package.
type Array struct {
	xs []uint32
	ys []uint32
	zs []uint32
	ps []float32
}

// NewArray returns an empty Array with capacity hinted by cap.
func NewArray(cap int) *Array {
	return &Array{
		xs: make([]uint32, 0, cap),
		ys: make([]uint32, 0, cap),
		zs: make([]uint32, 0, cap),
		ps: make([]float32, 0, cap),
	}
}

// Append adds one sample, keeping the four vectors the same length.
func (a *Array) Append(x, y, z uint32, p float32) {
	a.xs = append(a.xs, x)
	a.ys = append(a.ys, y)
	a.zs = append(a.zs, z)
	a.ps = append(a.ps, p)
}

// AppendSample adds one XYZP sample.
func (a *Array) AppendSample(s XYZP) {
	a.Append(s.X, s.Y, s.Z, s.P)
}

// Len returns the number of samples.
func (a *Array) Len() int { return len(a.xs) }

// At returns the i'th sample. Panics if i is out of range, matching
// slice indexing semantics — callers are expected to range 0..Len()-1.
func (a *Array) At(i int) XYZP {
	return XYZP{X: a.xs[i], Y: a.ys[i], Z: a.zs[i], P: a.ps[i]}
}

// Xs, Ys, Zs, Ps return the underlying parallel vectors, read-only by
// convention (the codec packages that construct an Array hold the only
// mutable reference). Used by bytestruct for bulk little-endian
// encoding.
func (a *Array) Xs() []uint32  { return a.xs }
func (a *Array) Ys() []uint32  { return a.ys }
func (a *Array) Zs() []uint32  { return a.zs }
func (a *Array) Ps() []float32 { return a.ps }

// Compact drops entries whose |P| is at most eps, preserving sparsity
// when an encoder would otherwise emit a dense burst of
// near-zero-potential samples.
func (a *Array) Compact(eps float32) {
	xs := a.xs[:0]
	ys := a.ys[:0]
	zs := a.zs[:0]
	ps := a.ps[:0]
	for i, p := range a.ps {
		if p > eps || p < -eps {
			xs = append(xs, a.xs[i])
			ys = append(ys, a.ys[i])
			zs = append(zs, a.zs[i])
			ps = append(ps, p)
		}
	}
	a.xs, a.ys, a.zs, a.ps = xs, ys, zs, ps
}

// Equal reports whether two arrays contain the same multiset of
// samples, ignoring order (per the "unordered" contract, spec.md §3).
func (a *Array) Equal(o *Array) bool {
	if a.Len() != o.Len() {
		return false
	}
	used := make([]bool, o.Len())
	for i := 0; i < a.Len(); i++ {
		s := a.At(i)
		found := false
		for j := 0; j < o.Len(); j++ {
			if used[j] {
				continue
			}
			if o.At(j) == s {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
