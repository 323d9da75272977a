// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metadata holds the codec agnostic representation of color and HDR
// metadata and its serialization into tool specific option strings.
package metadata

import (
	"fmt"
	"time"

	"github.com/evolution-gaming/hdrcopier/internal/hdr"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance used when comparing decimal metadata values.
const equalTolerance = 1e-6

// Metadata is the color and HDR metadata of the primary video stream of a file.
type Metadata struct {
	// Matrix coefficients.
	ColorSpace Optional[hdr.ColorSpace]
	Transfer   Optional[hdr.Transfer]
	Primaries  Optional[hdr.Primaries]
	Range      Optional[hdr.Range]
	// Primaries of the mastering display.
	MasteringPrimaries Optional[MasteringPrimaries]
	// Mastering display luminance in cd/m².
	MinLuminance Optional[float64]
	MaxLuminance Optional[float64]
	// Content light levels in cd/m².
	MaxCLL  Optional[int]
	MaxFALL Optional[int]
}

// IsEmpty reports whether no field is present.
func (m Metadata) IsEmpty() bool {
	return !m.ColorSpace.IsSet() &&
		!m.Transfer.IsSet() &&
		!m.Primaries.IsSet() &&
		!m.Range.IsSet() &&
		!m.MasteringPrimaries.IsSet() &&
		!m.MinLuminance.IsSet() &&
		!m.MaxLuminance.IsSet() &&
		!m.MaxCLL.IsSet() &&
		!m.MaxFALL.IsSet()
}

// Equal reports whether both carry the same fields with the same values.
// Decimal values are compared with a small absolute tolerance.
func (m Metadata) Equal(o Metadata) bool {
	return equalExact(m.ColorSpace, o.ColorSpace) &&
		equalExact(m.Transfer, o.Transfer) &&
		equalExact(m.Primaries, o.Primaries) &&
		equalExact(m.Range, o.Range) &&
		equalWith(m.MasteringPrimaries, o.MasteringPrimaries, MasteringPrimaries.Equal) &&
		equalWith(m.MinLuminance, o.MinLuminance, equalFloat) &&
		equalWith(m.MaxLuminance, o.MaxLuminance, equalFloat) &&
		equalExact(m.MaxCLL, o.MaxCLL) &&
		equalExact(m.MaxFALL, o.MaxFALL)
}

func equalExact[T comparable](a, b Optional[T]) bool {
	return equalWith(a, b, func(x, y T) bool { return x == y })
}

func equalWith[T any](a, b Optional[T], eq func(T, T) bool) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	return !aok || eq(av, bv)
}

func equalFloat(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, equalTolerance)
}

// Chromaticity is a CIE 1931 xy coordinate.
type Chromaticity struct {
	X, Y float64
}

// Equal compares coordinates with a small absolute tolerance.
func (c Chromaticity) Equal(o Chromaticity) bool {
	return equalFloat(c.X, o.X) && equalFloat(c.Y, o.Y)
}

// MasteringPrimaries are the display primaries and white point of the
// mastering display.
type MasteringPrimaries struct {
	Red, Green, Blue Chromaticity
	WhitePoint       Chromaticity
}

// Equal compares all coordinates with a small absolute tolerance.
func (p MasteringPrimaries) Equal(o MasteringPrimaries) bool {
	return p.Red.Equal(o.Red) &&
		p.Green.Equal(o.Green) &&
		p.Blue.Equal(o.Blue) &&
		p.WhitePoint.Equal(o.WhitePoint)
}

var d65 = Chromaticity{0.3127, 0.3290}

// Well known mastering displays.
var (
	DisplayBT709 = MasteringPrimaries{
		Red: Chromaticity{0.64, 0.33}, Green: Chromaticity{0.30, 0.60}, Blue: Chromaticity{0.15, 0.06},
		WhitePoint: d65,
	}

	DisplayP3 = MasteringPrimaries{
		Red: Chromaticity{0.68, 0.32}, Green: Chromaticity{0.265, 0.69}, Blue: Chromaticity{0.15, 0.06},
		WhitePoint: d65,
	}

	DisplayDCIP3 = MasteringPrimaries{
		Red: Chromaticity{0.68, 0.32}, Green: Chromaticity{0.265, 0.69}, Blue: Chromaticity{0.15, 0.06},
		WhitePoint: Chromaticity{0.314, 0.351},
	}

	DisplayBT2020 = MasteringPrimaries{
		Red: Chromaticity{0.708, 0.292}, Green: Chromaticity{0.17, 0.797}, Blue: Chromaticity{0.131, 0.046},
		WhitePoint: d65,
	}
)

// Name returns the name of a well known display or "" for custom primaries.
func (p MasteringPrimaries) Name() string {
	switch {
	case p.Equal(DisplayBT2020):
		return "BT.2020"
	case p.Equal(DisplayP3):
		return "Display P3"
	case p.Equal(DisplayDCIP3):
		return "DCI-P3"
	case p.Equal(DisplayBT709):
		return "BT.709"
	}
	return ""
}

// Chapter is a single chapter marker.
type Chapter struct {
	Start time.Duration
	Title string
}

// FormatTimestamp renders d as HH:MM:SS.mmm.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
