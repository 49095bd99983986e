// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import "errors"

// Lifecycle error taxonomy (spec.md §7).
var (
	ErrReregistration    = errors.New("stream: channel group already registered with different parameters")
	ErrUnknownChannel    = errors.New("stream: channel not registered")
	ErrProcessorMismatch = errors.New("stream: sample bounds do not match the processor's configured bounds")
	ErrInvalidWindow     = errors.New("stream: window length must be >= 1")

	// ErrNeverWritten is the "never-written" sentinel spec.md §4.3
	// calls for: the channel is registered, but Submit has not yet
	// been called for it.
	ErrNeverWritten = errors.New("stream: channel has no emitted sample yet")
)
