// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"encoding/binary"

	"github.com/feagi/feagi-core-data/bytestruct"
	"github.com/feagi/feagi-core-data/cortical"
)

const (
	imageFrameVersion          = 1
	segmentedImageFrameVersion = 1
)

func init() {
	bytestruct.Register(bytestruct.TypeImageFrame, imageFrameVersion, decodeImageFramePayload)
	bytestruct.Register(bytestruct.TypeSegmentedImageFrame, segmentedImageFrameVersion, decodeSegmentedImageFramePayload)
}

// ImageFramePayload carries one raw Frame (type code 5).
//
// Body: u32 W, u32 H, u8 format, u8 space, u8 order, [W*H*channels] pix.
type ImageFramePayload struct {
	Frame *Frame
}

func (ImageFramePayload) TypeCode() bytestruct.TypeCode { return bytestruct.TypeImageFrame }
func (ImageFramePayload) PayloadVersion() uint8          { return imageFrameVersion }

func (p ImageFramePayload) EncodeBody() ([]byte, error) {
	f := p.Frame
	buf := make([]byte, 11+len(f.Pix))
	binary.LittleEndian.PutUint32(buf[0:], uint32(f.W))
	binary.LittleEndian.PutUint32(buf[4:], uint32(f.H))
	buf[8] = byte(f.Format)
	buf[9] = byte(f.Space)
	buf[10] = byte(f.Order)
	copy(buf[11:], f.Pix)
	return buf, nil
}

func decodeImageFramePayload(body []byte, _ uint8) (bytestruct.Payload, error) {
	if len(body) < 11 {
		return nil, bytestruct.ErrTruncated
	}
	w := int(binary.LittleEndian.Uint32(body[0:]))
	h := int(binary.LittleEndian.Uint32(body[4:]))
	format := ChannelFormat(body[8])
	space := ColorSpace(body[9])
	order := MemoryOrder(body[10])
	pix := make([]byte, len(body)-11)
	copy(pix, body[11:])
	f, err := NewFrame(w, h, format, space, order, pix)
	if err != nil {
		return nil, err
	}
	return ImageFramePayload{Frame: f}, nil
}

// SegmentedImageFramePayload carries the nine-cell output of Segment,
// each sub-frame tagged with the cortical identifier it was keyed to
// (type code 6).
//
// Body: u8 numCells, repeat numCells times: [6] cortical_id,
// then an ImageFramePayload-shaped body (u32 W, u32 H, u8 format,
// u8 space, u8 order, pix bytes), length-prefixed with a u32 so the
// reader can skip to the next cell without decoding pixel data first.
type SegmentedImageFramePayload struct {
	Cells map[cortical.Type]*Frame
}

func (SegmentedImageFramePayload) TypeCode() bytestruct.TypeCode {
	return bytestruct.TypeSegmentedImageFrame
}

func (SegmentedImageFramePayload) PayloadVersion() uint8 { return segmentedImageFrameVersion }

func (p SegmentedImageFramePayload) EncodeBody() ([]byte, error) {
	type entry struct {
		id   [6]byte
		body []byte
	}
	entries := make([]entry, 0, len(p.Cells))
	for t, f := range p.Cells {
		id, err := cortical.Emit(t)
		if err != nil {
			return nil, err
		}
		body, err := (ImageFramePayload{Frame: f}).EncodeBody()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{id: id, body: body})
	}

	size := 1
	for _, e := range entries {
		size += 6 + 4 + len(e.body)
	}
	buf := make([]byte, size)
	off := 0
	buf[off] = byte(len(entries))
	off++
	for _, e := range entries {
		copy(buf[off:off+6], e.id[:])
		off += 6
		binary.LittleEndian.PutUint32(buf[off:], uint32(len(e.body)))
		off += 4
		copy(buf[off:], e.body)
		off += len(e.body)
	}
	return buf, nil
}

func decodeSegmentedImageFramePayload(body []byte, version uint8) (bytestruct.Payload, error) {
	if len(body) < 1 {
		return nil, bytestruct.ErrTruncated
	}
	numCells := int(body[0])
	off := 1
	cells := make(map[cortical.Type]*Frame, numCells)
	for i := 0; i < numCells; i++ {
		if len(body) < off+6+4 {
			return nil, bytestruct.ErrTruncated
		}
		idBytes := body[off : off+6]
		off += 6
		bodyLen := int(binary.LittleEndian.Uint32(body[off:]))
		off += 4
		if len(body) < off+bodyLen {
			return nil, bytestruct.ErrTruncated
		}
		t, err := cortical.Parse(string(idBytes))
		if err != nil {
			return nil, err
		}
		decoded, err := decodeImageFramePayload(body[off:off+bodyLen], version)
		if err != nil {
			return nil, err
		}
		cells[t] = decoded.(ImageFramePayload).Frame
		off += bodyLen
	}
	if off != len(body) {
		return nil, bytestruct.ErrLengthMismatch
	}
	return SegmentedImageFramePayload{Cells: cells}, nil
}
