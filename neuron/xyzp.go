// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neuron holds the sparse neuron-array representation (spec.md
// §3, C3) shared by the codec, stream, and bytestruct packages.
package neuron

// XYZP is a single neuron sample: a grid coordinate (X, Y, Z) relative
// to a cortical area's origin, and a signed potential P.
type XYZP struct {
	X, Y, Z uint32
	P       float32
}
