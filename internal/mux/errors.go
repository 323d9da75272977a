// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mux

import (
	"errors"
	"fmt"
)

var (
	// ErrMuxFailed is the kind of ApplyError raised when the muxer fails.
	ErrMuxFailed = errors.New("mux failed")
	// ErrIO is the kind of ApplyError raised for temporary and output file
	// handling failures.
	ErrIO = errors.New("file operation failed")
)

// ApplyError is returned by Applier.Apply.
type ApplyError struct {
	// Requested output path
	Output string
	// Either ErrMuxFailed or ErrIO
	Kind error
	Err  error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Output, e.Kind, e.Err)
}

// Is makes errors.Is match the error kind.
func (e *ApplyError) Is(target error) bool {
	return target == e.Kind
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}
