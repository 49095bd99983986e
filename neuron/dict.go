// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

// Dict is a mapping from cortical identifier (the six-byte wire form)
// to its Array. Keys are unique; iteration order is irrelevant. This is
// the atomic payload carried in one NeuronXYZP frame (spec.md §3).
type Dict struct {
	areas map[[6]byte]*Array
	// order preserves insertion sequence so encode() produces
	// deterministic bytes for a given sequence of Set calls, which
	// keeps golden-frame tests reproducible without affecting the
	// documented "iteration order irrelevant" contract.
	order [][6]byte
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{areas: make(map[[6]byte]*Array)}
}

// Set associates id with arr, replacing any existing array for id.
func (d *Dict) Set(id [6]byte, arr *Array) {
	if _, exists := d.areas[id]; !exists {
		d.order = append(d.order, id)
	}
	d.areas[id] = arr
}

// Get returns the array for id, and false if id is not present.
func (d *Dict) Get(id [6]byte) (*Array, bool) {
	a, ok := d.areas[id]
	return a, ok
}

// Len returns the number of cortical areas present.
func (d *Dict) Len() int { return len(d.order) }

// Areas returns the cortical identifiers present, in insertion order.
func (d *Dict) Areas() [][6]byte {
	out := make([][6]byte, len(d.order))
	copy(out, d.order)
	return out
}
