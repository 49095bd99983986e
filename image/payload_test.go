// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"bytes"
	"testing"

	"github.com/feagi/feagi-core-data/bytestruct"
	"github.com/feagi/feagi-core-data/cdata"
)

func TestImageFramePayloadRoundTrip(t *testing.T) {
	f := solidFrame(t, 4, 3)
	encoded, err := bytestruct.Encode(ImageFramePayload{Frame: f})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frame, err := bytestruct.Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := frame.Payload.(ImageFramePayload)
	if !ok {
		t.Fatalf("payload is %T, want ImageFramePayload", frame.Payload)
	}
	if got.Frame.W != f.W || got.Frame.H != f.H {
		t.Errorf("dims = %dx%d, want %dx%d", got.Frame.W, got.Frame.H, f.W, f.H)
	}
	if !bytes.Equal(got.Frame.Pix, f.Pix) {
		t.Errorf("pix mismatch after round trip")
	}
}

func TestSegmentedImageFramePayloadRoundTrip(t *testing.T) {
	f := solidFrame(t, 9, 9)
	cells, err := Segment(f, Segmentation{CenterX: 4, CenterY: 4, CenterHalfW: 1, CenterHalfH: 1}, cdata.GroupingIndex(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	encoded, err := bytestruct.Encode(SegmentedImageFramePayload{Cells: cells})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frame, err := bytestruct.Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := frame.Payload.(SegmentedImageFramePayload)
	if !ok {
		t.Fatalf("payload is %T, want SegmentedImageFramePayload", frame.Payload)
	}
	if len(got.Cells) != len(cells) {
		t.Fatalf("len(Cells) = %d, want %d", len(got.Cells), len(cells))
	}
	for typ, want := range cells {
		have, ok := got.Cells[typ]
		if !ok {
			t.Errorf("missing cell %v after round trip", typ)
			continue
		}
		if !bytes.Equal(have.Pix, want.Pix) {
			t.Errorf("cell %v pix mismatch after round trip", typ)
		}
	}
}
