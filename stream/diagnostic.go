// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import "log"

// DiagnosticSink receives non-fatal failures that must not propagate
// past their call site — specifically, a subscriber callback that
// panics during Cache.Submit (spec.md §5, §7).
type DiagnosticSink interface {
	Report(err error)
}

// stdLogSink adapts a *log.Logger to DiagnosticSink, the module's
// default when no sink is configured, matching the teacher's own
// convention of logging non-fatal problems with the standard logger
// (econfig/io.go, emer/netsize.go) rather than silently dropping them.
type stdLogSink struct {
	l *log.Logger
}

// NewLogSink wraps l as a DiagnosticSink. A nil l uses log.Default().
func NewLogSink(l *log.Logger) DiagnosticSink {
	if l == nil {
		l = log.Default()
	}
	return stdLogSink{l: l}
}

func (s stdLogSink) Report(err error) {
	s.l.Printf("stream: subscriber callback failed: %v", err)
}
