// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytestruct

import "encoding/binary"

const multiFrameVersion = 1

// MultiFrame packs several complete child Byte Structure frames into
// one body (spec.md §6). A child may not itself be a MultiFrame — the
// nesting cap is exactly one level, enforced on both encode and decode
// (spec.md §9 notes this is "unverified" in the original source; this
// implementation enforces it unconditionally).
type MultiFrame struct {
	Children []Frame
}

func init() {
	Register(TypeMultiFrame, multiFrameVersion, decodeMultiFrame)
}

func (MultiFrame) TypeCode() TypeCode { return TypeMultiFrame }

func (MultiFrame) PayloadVersion() uint8 { return multiFrameVersion }

func (m MultiFrame) EncodeBody() ([]byte, error) {
	k := len(m.Children)
	if k > 255 {
		return nil, ErrLengthMismatch
	}

	encoded := make([][]byte, k)
	for i, child := range m.Children {
		if child.Payload.TypeCode() == TypeMultiFrame {
			return nil, ErrNestedTooDeep
		}
		b, err := Encode(child.Payload)
		if err != nil {
			return nil, err
		}
		encoded[i] = b
	}

	headerLen := 1 + 4*k
	size := headerLen
	for _, b := range encoded {
		size += len(b)
	}

	buf := make([]byte, size)
	buf[0] = uint8(k)
	off := 1
	childOff := uint32(headerLen)
	for _, b := range encoded {
		binary.LittleEndian.PutUint32(buf[off:], childOff)
		off += 4
		childOff += uint32(len(b))
	}
	pos := headerLen
	for _, b := range encoded {
		copy(buf[pos:], b)
		pos += len(b)
	}
	return buf, nil
}

func decodeMultiFrame(body []byte, _ uint8) (Payload, error) {
	if len(body) < 1 {
		return nil, ErrTruncated
	}
	k := int(body[0])
	headerLen := 1 + 4*k
	if len(body) < headerLen {
		return nil, ErrTruncated
	}

	offsets := make([]uint32, k)
	off := 1
	for i := 0; i < k; i++ {
		offsets[i] = binary.LittleEndian.Uint32(body[off:])
		off += 4
	}

	children := make([]Frame, k)
	for i := 0; i < k; i++ {
		start := int(offsets[i])
		end := len(body)
		if i+1 < k {
			end = int(offsets[i+1])
		}
		if start < headerLen || end > len(body) || start > end {
			return nil, ErrLengthMismatch
		}
		childType, err := PeekType(body[start:end])
		if err != nil {
			return nil, err
		}
		if childType == TypeMultiFrame {
			return nil, ErrNestedTooDeep
		}
		frame, err := Decode(body[start:end])
		if err != nil {
			return nil, err
		}
		children[i] = *frame
	}
	return MultiFrame{Children: children}, nil
}
