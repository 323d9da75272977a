// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// A LimitedWriter for capturing output of child processes.
//
// Unlike io.LimitedReader's symmetrical counterpart it never fails: once the
// limit is reached further data is dropped while still being reported as
// written, so a chatty child process never blocks or dies on a broken pipe.
package lw

import (
	"io"
)

type LimitedWriter struct {
	// Apply limits to this Writer
	W io.Writer
	// Remaining number of bytes that will be passed on to W
	N uint
	// Set once any data has been dropped
	truncated bool
}

// Write implements io.Writer for *LimitedWriter.
func (s *LimitedWriter) Write(b []byte) (int, error) {
	keep := b
	if uint(len(keep)) > s.N {
		keep = keep[:s.N]
		s.truncated = true
	}
	if len(keep) == 0 {
		return len(b), nil
	}
	n, err := s.W.Write(keep)
	s.N -= uint(n)
	if err != nil {
		return n, err
	}
	return len(b), nil
}

// Truncated reports whether any written data has been dropped.
func (s *LimitedWriter) Truncated() bool {
	return s.truncated
}

// LimitWriter returns a Writer passing at most n bytes on to w.
func LimitWriter(w io.Writer, n uint) *LimitedWriter {
	return &LimitedWriter{W: w, N: n}
}
