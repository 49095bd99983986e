// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdata

import "errors"

// Sentinel validation errors. Wrapped with context by the constructors
// that return them; always reachable via errors.Is.
var (
	// ErrOutOfBounds is returned when a bounded value is constructed
	// with a value outside its declared range.
	ErrOutOfBounds = errors.New("cdata: value out of bounds")

	// ErrZeroDimension is returned when a Dims is constructed with a
	// zero axis.
	ErrZeroDimension = errors.New("cdata: dimension must be strictly positive")

	// ErrAxisFixed is returned when a caller attempts to override a
	// fixed axis of a ChannelDims.
	ErrAxisFixed = errors.New("cdata: axis is fixed and cannot be overridden")
)
