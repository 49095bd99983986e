// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytestruct

import "errors"

// Codec error taxonomy (spec.md §7).
var (
	ErrTruncated          = errors.New("bytestruct: frame truncated")
	ErrUnknownType        = errors.New("bytestruct: unknown payload type")
	ErrUnsupportedVersion = errors.New("bytestruct: unsupported payload version")
	ErrNestedTooDeep      = errors.New("bytestruct: MultiFrame nesting exceeds one level")
	ErrLengthMismatch     = errors.New("bytestruct: header length does not match frame bytes")
	ErrBadUTF8            = errors.New("bytestruct: command body is not valid UTF-8")
)
