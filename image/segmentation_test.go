// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"testing"

	"github.com/feagi/feagi-core-data/cdata"
	"github.com/feagi/feagi-core-data/cortical"
)

func solidFrame(t *testing.T, w, h int) *Frame {
	t.Helper()
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = byte(i % 256)
	}
	f, err := NewFrame(w, h, R1, Linear, RowMajorInterleaved, pix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func TestSegmentProducesNineVisionCells(t *testing.T) {
	f := solidFrame(t, 9, 9)
	s := Segmentation{CenterX: 4, CenterY: 4, CenterHalfW: 1, CenterHalfH: 1}
	cells, err := Segment(f, s, cdata.GroupingIndex(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) != 9 {
		t.Fatalf("len(cells) = %d, want 9", len(cells))
	}
	for _, code := range cellFamilies {
		typ, err := cortical.NewSensor(code, cdata.GroupingIndex(0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := cells[typ]; !ok {
			t.Errorf("missing cell for family %s", code)
		}
	}
}

func TestSegmentCenterCellIsSmallerThanPeripheral(t *testing.T) {
	f := solidFrame(t, 20, 20)
	s := Segmentation{CenterX: 10, CenterY: 10, CenterHalfW: 2, CenterHalfH: 2}
	cells, err := Segment(f, s, cdata.GroupingIndex(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	center, err := cortical.NewSensor("vcc", cdata.GroupingIndex(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	topLeft, err := cortical.NewSensor("vtl", cdata.GroupingIndex(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cc := cells[center]
	tl := cells[topLeft]
	if cc.W*cc.H >= tl.W*tl.H {
		t.Errorf("center cell (%dx%d) not smaller than top-left cell (%dx%d)", cc.W, cc.H, tl.W, tl.H)
	}
}

func TestSegmentRejectsOutOfBoundsCenter(t *testing.T) {
	f := solidFrame(t, 9, 9)
	s := Segmentation{CenterX: 8, CenterY: 8, CenterHalfW: 4, CenterHalfH: 4}
	if _, err := Segment(f, s, cdata.GroupingIndex(0)); err != ErrCenterTooLarge {
		t.Errorf("expected ErrCenterTooLarge, got %v", err)
	}
}
