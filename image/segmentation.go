// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"errors"

	"github.com/feagi/feagi-core-data/cdata"
	"github.com/feagi/feagi-core-data/cortical"
)

// ErrCenterTooLarge is returned when a requested center region does not
// fit inside the source frame.
var ErrCenterTooLarge = errors.New("image: center region does not fit inside frame")

// cellFamilies lists the nine vision sensor family codes in row-major
// grid order (spec.md §4.5: "a segmentation produces a 3×3 grid of
// sub-frames; the center grid cell may have a higher target resolution
// than the peripherals").
var cellFamilies = [9]string{
	"vtl", "vtm", "vtr",
	"vml", "vcc", "vmr",
	"vbl", "vbm", "vbr",
}

// Segmentation describes the nine-cell split of a source frame: the
// pixel center of the grid, and the center cell's half-width/half-height.
// The eight peripheral cells take whatever space lies around the center
// cell, so they are equal in size only when the center cell is centered.
type Segmentation struct {
	CenterX, CenterY         int
	CenterHalfW, CenterHalfH int
}

// Segment splits f into nine sub-frames per s, keyed to the nine vision
// cortical identifiers via grouping index g. The center rectangle's
// edges extended to the frame borders cut the frame into a 3x3 grid; the
// eight peripheral cells are the pieces around the center rectangle, and
// their sizes follow from its position. The center
// cell is the CenterHalfW*2 x CenterHalfH*2 rectangle around
// (CenterX, CenterY).
func Segment(f *Frame, s Segmentation, g cdata.GroupingIndex) (map[cortical.Type]*Frame, error) {
	cx0 := s.CenterX - s.CenterHalfW
	cx1 := s.CenterX + s.CenterHalfW
	cy0 := s.CenterY - s.CenterHalfH
	cy1 := s.CenterY + s.CenterHalfH
	if cx0 < 0 || cy0 < 0 || cx1 > f.W || cy1 > f.H || cx0 >= cx1 || cy0 >= cy1 {
		return nil, ErrCenterTooLarge
	}

	colBounds := [4]int{0, cx0, cx1, f.W}
	rowBounds := [4]int{0, cy0, cy1, f.H}

	out := make(map[cortical.Type]*Frame, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			x0, x1 := colBounds[col], colBounds[col+1]
			y0, y1 := rowBounds[row], rowBounds[row+1]
			if x1 <= x0 || y1 <= y0 {
				return nil, ErrCenterTooLarge
			}
			sub, err := crop(f, x0, y0, x1, y1)
			if err != nil {
				return nil, err
			}
			t, err := cortical.NewSensor(cellFamilies[idx], g)
			if err != nil {
				return nil, err
			}
			out[t] = sub
		}
	}
	return out, nil
}

// crop copies the [x0,x1)x[y0,y1) rectangle of f into a new
// RowMajorInterleaved Frame (sub-frames are always normalized to
// interleaved layout, regardless of the source's MemoryOrder).
func crop(f *Frame, x0, y0, x1, y1 int) (*Frame, error) {
	w, h := x1-x0, y1-y0
	ch := f.Format.Channels()
	pix := make([]byte, w*h*ch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := f.At(x0+x, y0+y)
			copy(pix[(y*w+x)*ch:], src)
		}
	}
	return NewFrame(w, h, f.Format, f.Space, RowMajorInterleaved, pix)
}
