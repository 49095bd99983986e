// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytestruct

import (
	"encoding/binary"
	"errors"
	"fmt"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/feagi/feagi-core-data/neuron"
)

// S3: encode a NeuronXYZP dictionary with one area "cABCDE" and two
// neurons, and check the exact wire bytes.
func TestScenarioS3(t *testing.T) {
	arr := neuron.NewArray(2)
	arr.Append(1, 2, 3, 0.5)
	arr.Append(4, 5, 6, -0.5)

	d := neuron.NewDict()
	d.Set([6]byte{'c', 'A', 'B', 'C', 'D', 'E'}, arr)

	got, err := Encode(NeuronXYZP{Dict: d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{
		0x01, 0x02, 0x01, 53, 0, 0, 0,
		0x01, 0x00, 0x00, 0x00,
		'c', 'A', 'B', 'C', 'D', 'E',
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
		0x06, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x3F,
		0x00, 0x00, 0x00, 0xBF,
	}

	if string(got) != string(want) {
		t.Errorf("encoded bytes mismatch:\n%s", diff.LineDiff(hexLines(want), hexLines(got)))
	}
	if len(got) != 53 {
		t.Fatalf("len(got) = %d, want 53", len(got))
	}
}

// hexLines renders one hex byte per line, so andreyvit/diff's
// line-oriented diff highlights exactly which byte offsets differ.
func hexLines(b []byte) string {
	s := ""
	for _, v := range b {
		s += fmt.Sprintf("%02x\n", v)
	}
	return s
}

func TestNeuronXYZPRoundTrip(t *testing.T) {
	arr := neuron.NewArray(2)
	arr.Append(10, 20, 30, 0.25)
	d := neuron.NewDict()
	d.Set([6]byte{'i', 'p', 'r', 'o', '0', '0'}, arr)

	encoded, err := Encode(NeuronXYZP{Dict: d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frame, err := Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := frame.Payload.(NeuronXYZP)
	if !ok {
		t.Fatalf("decoded payload is not NeuronXYZP: %T", frame.Payload)
	}
	gotArr, ok := got.Dict.Get([6]byte{'i', 'p', 'r', 'o', '0', '0'})
	if !ok {
		t.Fatalf("expected area to be present")
	}
	if !gotArr.Equal(arr) {
		t.Errorf("round trip mismatch")
	}
}

// Frame length coherence: header length equals len(bytes), and
// trimming any suffix byte causes decode to fail Truncated.
func TestFrameLengthCoherence(t *testing.T) {
	encoded, err := Encode(CommandJSON{JSON: `{"cmd":"noop"}`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frame, err := Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if int(frame.Header.TotalLength) != len(encoded) {
		t.Errorf("TotalLength = %d, want %d", frame.Header.TotalLength, len(encoded))
	}
	trimmed := encoded[:len(encoded)-1]
	if _, err := Decode(trimmed); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestCommandJSONBadUTF8(t *testing.T) {
	bad := []byte{0xff, 0xfe, 0xfd}
	if _, err := decodeCommandJSON(bad, commandJSONVersion); !errors.Is(err, ErrBadUTF8) {
		t.Errorf("expected ErrBadUTF8, got %v", err)
	}
}

// MultiFrame depth cap: encoding a MultiFrame containing a MultiFrame
// child fails; decoding such bytes fails with NestedTooDeep.
func TestMultiFrameDepthCapEncode(t *testing.T) {
	inner := MultiFrame{Children: []Frame{}}
	outer := MultiFrame{Children: []Frame{{Payload: inner}}}
	if _, err := Encode(outer); !errors.Is(err, ErrNestedTooDeep) {
		t.Errorf("expected ErrNestedTooDeep, got %v", err)
	}
}

func TestMultiFrameDepthCapDecode(t *testing.T) {
	// Hand-construct bytes: an outer MultiFrame whose single child
	// claims to be a MultiFrame itself (an empty one), bypassing
	// EncodeBody's check entirely so the decode-side guard is what
	// catches it.
	innerHeader := make([]byte, HeaderSize)
	innerBody := []byte{0} // K=0 children
	encodeHeader(innerHeader, Header{GlobalVersion: GlobalVersion, PayloadType: TypeMultiFrame, PayloadVersion: 1, TotalLength: uint32(HeaderSize + len(innerBody))})
	innerFrame := append(innerHeader, innerBody...)

	outerBody := make([]byte, 0, 1+4+len(innerFrame))
	outerBody = append(outerBody, 1) // K=1 child
	offBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(offBuf, uint32(1+4))
	outerBody = append(outerBody, offBuf...)
	outerBody = append(outerBody, innerFrame...)

	outerHeader := make([]byte, HeaderSize)
	encodeHeader(outerHeader, Header{GlobalVersion: GlobalVersion, PayloadType: TypeMultiFrame, PayloadVersion: 1, TotalLength: uint32(HeaderSize + len(outerBody))})
	outerFrame := append(outerHeader, outerBody...)

	if _, err := Decode(outerFrame); !errors.Is(err, ErrNestedTooDeep) {
		t.Errorf("expected ErrNestedTooDeep, got %v", err)
	}
}

// S6: a MultiFrame containing a CommandJSON and a NeuronXYZP frame
// decodes into exactly two child frames whose individual re-encodings
// equal the originals.
func TestScenarioS6(t *testing.T) {
	arr := neuron.NewArray(1)
	arr.Append(1, 1, 1, 1.0)
	d := neuron.NewDict()
	d.Set([6]byte{'c', 'A', 'B', 'C', 'D', 'E'}, arr)

	cmd := CommandJSON{JSON: `{"a":1}`}
	nxyzp := NeuronXYZP{Dict: d}

	cmdFrameBytes, _ := Encode(cmd)
	nxyzpFrameBytes, _ := Encode(nxyzp)

	cmdFrame, _ := Decode(cmdFrameBytes)
	nxyzpFrame, _ := Decode(nxyzpFrameBytes)

	mf := MultiFrame{Children: []Frame{*cmdFrame, *nxyzpFrame}}
	encoded, err := Encode(mf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotMF, ok := decoded.Payload.(MultiFrame)
	if !ok {
		t.Fatalf("decoded payload is not MultiFrame: %T", decoded.Payload)
	}
	if len(gotMF.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(gotMF.Children))
	}

	reEncodedCmd, err := Encode(gotMF.Children[0].Payload)
	if err != nil || string(reEncodedCmd) != string(cmdFrameBytes) {
		t.Errorf("re-encoded CommandJSON child mismatch")
	}
	reEncodedNxyzp, err := Encode(gotMF.Children[1].Payload)
	if err != nil || string(reEncodedNxyzp) != string(nxyzpFrameBytes) {
		t.Errorf("re-encoded NeuronXYZP child mismatch")
	}
}

func TestPeekType(t *testing.T) {
	encoded, _ := Encode(CommandJSON{JSON: "{}"})
	tc, err := PeekType(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tc != TypeCommandJSON {
		t.Errorf("PeekType() = %v, want CommandJSON", tc)
	}
}

func TestDecodeUnknownType(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encodeHeader(buf, Header{GlobalVersion: GlobalVersion, PayloadType: TypeCode(200), PayloadVersion: 1, TotalLength: HeaderSize})
	if _, err := Decode(buf); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encodeHeader(buf, Header{GlobalVersion: 2, PayloadType: TypeCommandJSON, PayloadVersion: 1, TotalLength: HeaderSize})
	if _, err := Decode(buf); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestAuthenticationRoundTrip(t *testing.T) {
	a := Authentication{Token: "super-secret-token"}
	encoded, err := Encode(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frame, err := Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := frame.Payload.(Authentication)
	if !ok || got.Token != a.Token {
		t.Errorf("round trip mismatch: %+v", frame.Payload)
	}
}
