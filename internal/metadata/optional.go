// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metadata

import "fmt"

// Some wraps v into a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{v: &v}
}

// Optional is a metadata value that a source file may or may not assert.
//
// The value is kept behind a pointer so that an absent value is never confused
// with the zero value of T, e.g. a luminance of 0 or an enumerated value whose
// code happens to be 0.
type Optional[T any] struct {
	v *T
}

// Get returns the wrapped value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	if o.v == nil {
		var zero T
		return zero, false
	}
	return *o.v, true
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.v != nil
}

func (o Optional[T]) String() string {
	if o.v == nil {
		return "<absent>"
	}
	return fmt.Sprint(*o.v)
}
