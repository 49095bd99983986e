// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytestruct implements the Byte Structure wire format: the
// recursive, length-prefixed, self-describing binary frame shared by
// every payload this module transmits (spec.md §4.2, §6).
package bytestruct

import "encoding/binary"

// HeaderSize is the fixed number of bytes in every Byte Structure
// header, per spec.md §6.
const HeaderSize = 7

// GlobalVersion is the only global_version byte this codec currently
// emits or accepts.
const GlobalVersion = 1

// TypeCode enumerates the stable payload type codes (spec.md §6).
type TypeCode uint8

const (
	TypeReserved            TypeCode = 0
	TypeCommandJSON         TypeCode = 1
	TypeNeuronXYZP          TypeCode = 2
	TypeMultiFrame          TypeCode = 3
	TypeAuthentication      TypeCode = 4
	TypeImageFrame          TypeCode = 5
	TypeSegmentedImageFrame TypeCode = 6
)

func (t TypeCode) String() string {
	switch t {
	case TypeReserved:
		return "Reserved"
	case TypeCommandJSON:
		return "CommandJSON"
	case TypeNeuronXYZP:
		return "NeuronXYZP"
	case TypeMultiFrame:
		return "MultiFrame"
	case TypeAuthentication:
		return "Authentication"
	case TypeImageFrame:
		return "ImageFrame"
	case TypeSegmentedImageFrame:
		return "SegmentedImageFrame"
	default:
		return "Unknown"
	}
}

// Header is the fixed 7-byte preamble of every Byte Structure frame.
type Header struct {
	GlobalVersion  uint8
	PayloadType    TypeCode
	PayloadVersion uint8
	TotalLength    uint32
}

// encodeHeader writes h into the first HeaderSize bytes of buf. buf
// must be at least HeaderSize bytes long.
func encodeHeader(buf []byte, h Header) {
	buf[0] = h.GlobalVersion
	buf[1] = uint8(h.PayloadType)
	buf[2] = h.PayloadVersion
	binary.LittleEndian.PutUint32(buf[3:7], h.TotalLength)
}

// decodeHeader reads a Header from buf, failing with ErrTruncated if
// buf is shorter than HeaderSize.
func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrTruncated
	}
	return Header{
		GlobalVersion:  buf[0],
		PayloadType:    TypeCode(buf[1]),
		PayloadVersion: buf[2],
		TotalLength:    binary.LittleEndian.Uint32(buf[3:7]),
	}, nil
}

// PeekType performs a cheap classification of an encoded frame without
// a full decode, per spec.md §4.2.
func PeekType(buf []byte) (TypeCode, error) {
	h, err := decodeHeader(buf)
	if err != nil {
		return 0, err
	}
	return h.PayloadType, nil
}
