// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdata

import "fmt"

// Dims is a triple of strictly positive cortical dimensions (X, Y, Z).
// Zero on any axis is invalid at construction time.
type Dims struct {
	X, Y, Z uint32
}

// NewDims constructs a Dims, failing if any axis is zero.
func NewDims(x, y, z uint32) (Dims, error) {
	if x == 0 || y == 0 || z == 0 {
		return Dims{}, fmt.Errorf("cdata: dims (%d, %d, %d): %w", x, y, z, ErrZeroDimension)
	}
	return Dims{X: x, Y: y, Z: z}, nil
}

// Volume returns X*Y*Z.
func (d Dims) Volume() uint64 {
	return uint64(d.X) * uint64(d.Y) * uint64(d.Z)
}

// AxisFixedMask marks, per axis, whether a ChannelDims axis is fixed
// (true) or user-definable (false).
type AxisFixedMask [3]bool

// ChannelDims is a Dims annotated with an immutable per-axis fixed mask.
// Dimensions on fixed axes cannot be overridden by a caller after
// construction.
type ChannelDims struct {
	dims  Dims
	fixed AxisFixedMask
}

// NewChannelDims constructs a ChannelDims from a base Dims and a fixed
// axis mask. The mask is copied and is immutable thereafter.
func NewChannelDims(dims Dims, fixed AxisFixedMask) ChannelDims {
	return ChannelDims{dims: dims, fixed: fixed}
}

// Dims returns the current dimensions.
func (c ChannelDims) Dims() Dims { return c.dims }

// FixedMask returns the immutable fixed-axis mask.
func (c ChannelDims) FixedMask() AxisFixedMask { return c.fixed }

// Override returns a new ChannelDims with the requested axis values
// applied, failing with ErrAxisFixed if any requested axis is fixed and
// the requested value differs from the current one.
func (c ChannelDims) Override(x, y, z uint32) (ChannelDims, error) {
	next := c.dims
	req := [3]uint32{x, y, z}
	cur := [3]*uint32{&next.X, &next.Y, &next.Z}
	for axis := 0; axis < 3; axis++ {
		if req[axis] == 0 {
			continue // zero means "leave unchanged"
		}
		if c.fixed[axis] && req[axis] != *cur[axis] {
			return ChannelDims{}, fmt.Errorf("cdata: axis %d is fixed at %d, cannot set %d: %w", axis, *cur[axis], req[axis], ErrAxisFixed)
		}
		*cur[axis] = req[axis]
	}
	if next.X == 0 || next.Y == 0 || next.Z == 0 {
		return ChannelDims{}, fmt.Errorf("cdata: overridden dims (%d, %d, %d): %w", next.X, next.Y, next.Z, ErrZeroDimension)
	}
	return ChannelDims{dims: next, fixed: c.fixed}, nil
}
