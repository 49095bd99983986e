// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import "github.com/feagi/feagi-core-data/cdata"

// These aliases let image code refer to the pixel-layout vocabulary
// without importing cdata at every call site; the canonical types live
// in cdata (spec.md §9: "keep the structured form canonical").
type (
	ChannelFormat = cdata.ChannelFormat
	ColorSpace    = cdata.ColorSpace
	MemoryOrder   = cdata.MemoryOrder
)

const (
	R1    = cdata.R1
	RG2   = cdata.RG2
	RGB3  = cdata.RGB3
	RGBA4 = cdata.RGBA4

	Linear = cdata.Linear
	Gamma  = cdata.Gamma

	RowMajorInterleaved    = cdata.RowMajorInterleaved
	RowMajorPlanar         = cdata.RowMajorPlanar
	ColumnMajorInterleaved = cdata.ColumnMajorInterleaved
)
