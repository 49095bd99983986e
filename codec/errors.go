// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codec implements the value encoders and decoders that
// translate bounded numeric samples into sparse neuron arrays and back
// (spec.md §4.4, C6).
package codec

import "errors"

var (
	// ErrZeroResolution is returned when an encoder is constructed
	// with a resolution it cannot use: 0 for Positional, odd or < 2 for
	// Bipolar, < 2 for GaussianPopulation.
	ErrZeroResolution = errors.New("codec: resolution not supported by this encoder")

	// ErrEmptyArray is returned when Decode is given a neuron array
	// with no samples.
	ErrEmptyArray = errors.New("codec: cannot decode an empty neuron array")
)
