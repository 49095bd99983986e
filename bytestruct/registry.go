// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytestruct

import "fmt"

// Payload is the capability any value must implement to be carried
// inside a Byte Structure frame; encoding is the payload's own
// EncodeBody. The registry mapping type code to (decode function, max
// version) is static and built at init() time — no
// dynamic dispatch is required once the process has started (spec.md
// §4.2, §9).
type Payload interface {
	// TypeCode identifies which payload-type slot this value occupies.
	TypeCode() TypeCode
	// PayloadVersion is the wire version this particular value was
	// built against.
	PayloadVersion() uint8
	// EncodeBody serializes the payload-specific body (everything
	// after the 7-byte header).
	EncodeBody() ([]byte, error)
}

// DecodeFunc parses a payload body (the bytes following the header)
// into a Payload, given the wire payload version found in the header.
type DecodeFunc func(body []byte, version uint8) (Payload, error)

type payloadVTable struct {
	maxVersion uint8
	decode     DecodeFunc
}

var registry [256]*payloadVTable

// Register installs the decode function for a payload type code. It is
// intended to be called from package init() functions only — the
// registry is read-only once the program reaches main(). Calling
// Register twice for the same code is a programming error and panics,
// since it can only happen at init time, never on user input.
func Register(code TypeCode, maxVersion uint8, decode DecodeFunc) {
	if registry[code] != nil {
		panic(fmt.Sprintf("bytestruct: type code %d already registered", code))
	}
	registry[code] = &payloadVTable{maxVersion: maxVersion, decode: decode}
}

// Frame is a fully decoded Byte Structure: its header plus the decoded
// Payload.
type Frame struct {
	Header  Header
	Payload Payload
}

// Encode serializes a payload into a complete Byte Structure frame:
// header followed by the payload's body. Encoding is infallible for
// well-formed inputs (spec.md §4.2); it can still fail if the payload's
// own EncodeBody rejects its content (e.g. a MultiFrame nested too
// deep).
func Encode(p Payload) ([]byte, error) {
	body, err := p.EncodeBody()
	if err != nil {
		return nil, err
	}
	total := HeaderSize + len(body)
	buf := make([]byte, total)
	encodeHeader(buf, Header{
		GlobalVersion:  GlobalVersion,
		PayloadType:    p.TypeCode(),
		PayloadVersion: p.PayloadVersion(),
		TotalLength:    uint32(total),
	})
	copy(buf[HeaderSize:], body)
	return buf, nil
}

// Decode parses a complete Byte Structure frame, dispatching to the
// payload type's registered decode function.
func Decode(buf []byte) (*Frame, error) {
	h, err := decodeHeader(buf)
	if err != nil {
		return nil, err
	}
	if h.GlobalVersion != GlobalVersion {
		return nil, ErrUnsupportedVersion
	}
	if len(buf) < int(h.TotalLength) {
		return nil, ErrTruncated
	}
	if len(buf) > int(h.TotalLength) {
		return nil, ErrLengthMismatch
	}
	vt := registry[h.PayloadType]
	if vt == nil {
		return nil, ErrUnknownType
	}
	if h.PayloadVersion > vt.maxVersion {
		return nil, ErrUnsupportedVersion
	}
	body := buf[HeaderSize:]
	payload, err := vt.decode(body, h.PayloadVersion)
	if err != nil {
		return nil, err
	}
	return &Frame{Header: h, Payload: payload}, nil
}
