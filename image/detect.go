// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"errors"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotRawPixels is returned by DetectFrameFormat when a buffer sniffs
// as a compressed image container rather than raw pixels; the pipeline
// carries only uncompressed frames (spec.md §4.5), so this is a
// defensive pre-check, never a decompressor.
var ErrNotRawPixels = errors.New("image: buffer sniffs as a compressed format, not raw pixels")

// DetectFrameFormat sniffs buf's content type and reports whether it
// looks like a compressed image container (PNG, JPEG, WebP, ...) rather
// than the raw pixel buffers this package otherwise assumes. Callers use
// it as an optional guard before trusting caller-supplied frame
// metadata; it is never on the core encode path.
func DetectFrameFormat(buf []byte) error {
	mt := mimetype.Detect(buf)
	for t := mt; t != nil; t = t.Parent() {
		if t.Is("image/png") || t.Is("image/jpeg") || t.Is("image/webp") ||
			t.Is("image/gif") || t.Is("image/bmp") || t.Is("image/tiff") {
			return ErrNotRawPixels
		}
	}
	return nil
}
