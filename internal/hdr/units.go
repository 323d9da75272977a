// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hdr

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// LuminancePrecision is the number of decimals kept for luminance (cd/m²).
	LuminancePrecision = 4
	// ChromaticityPrecision is the number of decimals kept for CIE 1931 xy values.
	ChromaticityPrecision = 5

	// x265 expresses chromaticity in increments of 0.00002 and luminance in
	// increments of 0.0001 cd/m².
	x265ChromaticityScale = 50000
	x265LuminanceScale    = 10000
)

// FormatLuminance renders a luminance value as a plain decimal.
func FormatLuminance(v float64) string {
	return formatDecimal(v, LuminancePrecision)
}

// FormatChromaticity renders a chromaticity coordinate as a plain decimal.
func FormatChromaticity(v float64) string {
	return formatDecimal(v, ChromaticityPrecision)
}

func formatDecimal(v float64, prec int) string {
	return strconv.FormatFloat(scalar.Round(v, prec), 'f', -1, 64)
}

// X265Chromaticity converts a chromaticity coordinate to x265 units.
func X265Chromaticity(v float64) int {
	return int(math.Round(v * x265ChromaticityScale))
}

// X265Luminance converts cd/m² to x265 units.
func X265Luminance(v float64) int {
	return int(math.Round(v * x265LuminanceScale))
}

// ChromaticityFromX265 is the inverse of X265Chromaticity.
func ChromaticityFromX265(n int) float64 {
	return float64(n) / x265ChromaticityScale
}

// LuminanceFromX265 is the inverse of X265Luminance.
func LuminanceFromX265(n int) float64 {
	return float64(n) / x265LuminanceScale
}
