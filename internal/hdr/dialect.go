// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hdr maps color and HDR metadata values onto the option syntax of
// downstream tools.
//
// Every enumerated value is defined by its ITU-T H.273 code point. Conversion to
// a tool's syntax is an exhaustive switch per dialect, a value the tool cannot
// express reports ok == false and must not produce any option.
package hdr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is returned for an unrecognized dialect name.
var ErrInvalidFormat = errors.New("invalid format")

// Dialect is a target syntax for metadata serialization.
type Dialect int

const (
	// Human is a labeled, human readable summary.
	Human Dialect = iota
	// X265 is the x265 encoder command line.
	X265
	// Rav1e is the rav1e encoder command line.
	Rav1e
	// Mkvmerge is the mkvmerge muxer command line.
	Mkvmerge
)

// Dialects lists all machine consumable dialects.
var Dialects = []Dialect{X265, Rav1e, Mkvmerge}

func (d Dialect) String() string {
	switch d {
	case Human:
		return "human"
	case X265:
		return "x265"
	case Rav1e:
		return "rav1e"
	case Mkvmerge:
		return "mkvmerge"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ParseDialect resolves a dialect name as given on the command line. An empty
// name selects Human.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Human, nil
	case "x265":
		return X265, nil
	case "rav1e":
		return Rav1e, nil
	case "mkvmerge":
		return Mkvmerge, nil
	}
	return Human, fmt.Errorf("%q (expected one of x265, rav1e, mkvmerge): %w", name, ErrInvalidFormat)
}

// Field identifies a single option slot of a dialect.
type Field int

const (
	FieldColorSpace Field = iota
	FieldTransfer
	FieldPrimaries
	FieldRange
	// FieldMasteringDisplay carries primaries, white point and both luminances
	// in one option.
	FieldMasteringDisplay
	FieldChromaticity
	FieldWhitePoint
	FieldMaxLuminance
	FieldMinLuminance
	// FieldContentLight carries MaxCLL and MaxFALL in one option.
	FieldContentLight
	FieldMaxCLL
	FieldMaxFALL
)

// OptionName returns the command line option a dialect uses for field.
func OptionName(f Field, d Dialect) (string, bool) {
	switch d {
	case X265:
		switch f {
		case FieldColorSpace:
			return "--colormatrix", true
		case FieldTransfer:
			return "--transfer", true
		case FieldPrimaries:
			return "--colorprim", true
		case FieldRange:
			return "--range", true
		case FieldMasteringDisplay:
			return "--master-display", true
		case FieldContentLight:
			return "--max-cll", true
		}
	case Rav1e:
		switch f {
		case FieldColorSpace:
			return "--matrix", true
		case FieldTransfer:
			return "--transfer", true
		case FieldPrimaries:
			return "--primaries", true
		case FieldRange:
			return "--range", true
		case FieldMasteringDisplay:
			return "--mastering-display", true
		case FieldContentLight:
			return "--content-light", true
		}
	case Mkvmerge:
		switch f {
		case FieldColorSpace:
			return "--colour-matrix-coefficients", true
		case FieldTransfer:
			return "--colour-transfer-characteristics", true
		case FieldPrimaries:
			return "--colour-primaries", true
		case FieldRange:
			return "--colour-range", true
		case FieldChromaticity:
			return "--chromaticity-coordinates", true
		case FieldWhitePoint:
			return "--white-colour-coordinates", true
		case FieldMaxLuminance:
			return "--max-luminance", true
		case FieldMinLuminance:
			return "--min-luminance", true
		case FieldMaxCLL:
			return "--max-content-light", true
		case FieldMaxFALL:
			return "--max-frame-light", true
		}
	}
	return "", false
}

// OptionField is the reverse of OptionName.
func OptionField(option string, d Dialect) (Field, bool) {
	for f := FieldColorSpace; f <= FieldMaxFALL; f++ {
		if name, ok := OptionName(f, d); ok && name == option {
			return f, true
		}
	}
	return 0, false
}

// lookupToken finds the value whose token in dialect d equals tok.
func lookupToken[T any](all []T, d Dialect, tok string, token func(T, Dialect) (string, bool)) (T, bool) {
	for _, v := range all {
		if t, ok := token(v, d); ok && strings.EqualFold(t, tok) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
