// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortical

import "errors"

// Sentinel errors for cortical identifier parsing (spec.md §4.1, §7).
var (
	ErrWrongLength     = errors.New("cortical: identifier must be exactly 6 bytes")
	ErrBadDiscriminator = errors.New("cortical: unrecognized discriminator byte")
	ErrUnknownFamily   = errors.New("cortical: family code not in catalogue")
	ErrBadGroupingIndex = errors.New("cortical: grouping index is not valid lowercase hex")
	ErrUnknownCoreID   = errors.New("cortical: core identifier not in catalogue")
)

// ParseError wraps one of the sentinel errors above with the offending
// input, so callers get both errors.Is-compatible classification and a
// useful message.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "cortical: parse \"" + e.Input + "\": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
