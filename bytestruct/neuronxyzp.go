// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytestruct

import (
	"encoding/binary"
	"math"

	"github.com/feagi/feagi-core-data/neuron"
)

const neuronXYZPVersion = 1

// NeuronXYZP is the sparse neuron-dictionary payload (type code 2):
// one Array per cortical area, keyed by its six-byte identifier
// (spec.md §6).
type NeuronXYZP struct {
	Dict *neuron.Dict
}

func init() {
	Register(TypeNeuronXYZP, neuronXYZPVersion, decodeNeuronXYZP)
}

func (NeuronXYZP) TypeCode() TypeCode { return TypeNeuronXYZP }

func (NeuronXYZP) PayloadVersion() uint8 { return neuronXYZPVersion }

func (n NeuronXYZP) EncodeBody() ([]byte, error) {
	areas := n.Dict.Areas()

	size := 4
	for _, id := range areas {
		arr, _ := n.Dict.Get(id)
		size += 6 + 4 + arr.Len()*(4+4+4+4)
	}

	buf := make([]byte, size)
	off := 0
	binary.LittleEndian.PutUint32(buf[off:], uint32(len(areas)))
	off += 4
	for _, id := range areas {
		arr, _ := n.Dict.Get(id)
		copy(buf[off:off+6], id[:])
		off += 6
		ni := arr.Len()
		binary.LittleEndian.PutUint32(buf[off:], uint32(ni))
		off += 4
		for _, x := range arr.Xs() {
			binary.LittleEndian.PutUint32(buf[off:], x)
			off += 4
		}
		for _, y := range arr.Ys() {
			binary.LittleEndian.PutUint32(buf[off:], y)
			off += 4
		}
		for _, z := range arr.Zs() {
			binary.LittleEndian.PutUint32(buf[off:], z)
			off += 4
		}
		for _, p := range arr.Ps() {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(p))
			off += 4
		}
	}
	return buf, nil
}

func decodeNeuronXYZP(body []byte, _ uint8) (Payload, error) {
	if len(body) < 4 {
		return nil, ErrTruncated
	}
	off := 0
	numAreas := binary.LittleEndian.Uint32(body[off:])
	off += 4

	dict := neuron.NewDict()
	for a := uint32(0); a < numAreas; a++ {
		if len(body) < off+6+4 {
			return nil, ErrTruncated
		}
		var id [6]byte
		copy(id[:], body[off:off+6])
		off += 6
		ni := binary.LittleEndian.Uint32(body[off:])
		off += 4

		need := int(ni) * (4 + 4 + 4 + 4)
		if len(body) < off+need {
			return nil, ErrTruncated
		}

		xs := make([]uint32, ni)
		for i := range xs {
			xs[i] = binary.LittleEndian.Uint32(body[off:])
			off += 4
		}
		ys := make([]uint32, ni)
		for i := range ys {
			ys[i] = binary.LittleEndian.Uint32(body[off:])
			off += 4
		}
		zs := make([]uint32, ni)
		for i := range zs {
			zs[i] = binary.LittleEndian.Uint32(body[off:])
			off += 4
		}
		arr := neuron.NewArray(int(ni))
		for i := 0; i < int(ni); i++ {
			p := math.Float32frombits(binary.LittleEndian.Uint32(body[off:]))
			off += 4
			arr.Append(xs[i], ys[i], zs[i], p)
		}
		dict.Set(id, arr)
	}
	if off != len(body) {
		return nil, ErrLengthMismatch
	}
	return NeuronXYZP{Dict: dict}, nil
}
