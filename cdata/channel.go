// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdata

// ChannelFormat enumerates the pixel channel layouts an image frame may
// carry.
type ChannelFormat int

const (
	R1 ChannelFormat = iota
	RG2
	RGB3
	RGBA4
)

// Channels returns the number of channels this format carries per pixel.
func (f ChannelFormat) Channels() int {
	switch f {
	case R1:
		return 1
	case RG2:
		return 2
	case RGB3:
		return 3
	case RGBA4:
		return 4
	default:
		return 0
	}
}

func (f ChannelFormat) String() string {
	switch f {
	case R1:
		return "R1"
	case RG2:
		return "RG2"
	case RGB3:
		return "RGB3"
	case RGBA4:
		return "RGBA4"
	default:
		return "Unknown"
	}
}

// ColorSpace distinguishes linear from gamma-encoded pixel values.
type ColorSpace int

const (
	Linear ColorSpace = iota
	Gamma
)

func (c ColorSpace) String() string {
	if c == Gamma {
		return "Gamma"
	}
	return "Linear"
}

// MemoryOrder enumerates the axis ordering of externally supplied raw
// pixel buffers.
type MemoryOrder int

const (
	// RowMajorInterleaved is (row, col, channel) with channels
	// interleaved per pixel — what golang.org/x/image.Image assumes.
	RowMajorInterleaved MemoryOrder = iota
	// RowMajorPlanar is (channel, row, col) — one contiguous plane per
	// channel, as commonly produced by embedded camera sensors.
	RowMajorPlanar
	// ColumnMajorInterleaved is (col, row, channel) — used by some
	// rotated-sensor feeds.
	ColumnMajorInterleaved
)

func (m MemoryOrder) String() string {
	switch m {
	case RowMajorInterleaved:
		return "RowMajorInterleaved"
	case RowMajorPlanar:
		return "RowMajorPlanar"
	case ColumnMajorInterleaved:
		return "ColumnMajorInterleaved"
	default:
		return "Unknown"
	}
}
