// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"errors"
	"fmt"
)

var (
	// ErrProbeFailed is the kind of ExtractError raised when the prober fails
	// or its output cannot be decoded.
	ErrProbeFailed = errors.New("probe failed")
	// ErrNoStreams is the kind of ExtractError raised for files without video.
	ErrNoStreams = errors.New("no video stream")
)

// ExtractError is returned by Extractor.Parse.
type ExtractError struct {
	// Path of the probed file
	Path string
	// Either ErrProbeFailed or ErrNoStreams
	Kind error
	// Underlying cause, may be nil
	Err error
}

func (e *ExtractError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Err)
}

// Is makes errors.Is match the error kind.
func (e *ExtractError) Is(target error) bool {
	return target == e.Kind
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
