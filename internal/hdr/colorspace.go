// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hdr

import "strconv"

// ColorSpace are the matrix coefficients of a video stream.
type ColorSpace uint8

const (
	ColorSpaceIdentity        ColorSpace = 0
	ColorSpaceBT709           ColorSpace = 1
	ColorSpaceUnspecified     ColorSpace = 2
	ColorSpaceFCC             ColorSpace = 4
	ColorSpaceBT470BG         ColorSpace = 5
	ColorSpaceSMPTE170M       ColorSpace = 6
	ColorSpaceSMPTE240M       ColorSpace = 7
	ColorSpaceYCgCo           ColorSpace = 8
	ColorSpaceBT2020NC        ColorSpace = 9
	ColorSpaceBT2020C         ColorSpace = 10
	ColorSpaceSMPTE2085       ColorSpace = 11
	ColorSpaceChromaDerivedNC ColorSpace = 12
	ColorSpaceChromaDerivedC  ColorSpace = 13
	ColorSpaceICtCp           ColorSpace = 14
)

// ColorSpaces lists every known ColorSpace.
var ColorSpaces = []ColorSpace{
	ColorSpaceIdentity, ColorSpaceBT709, ColorSpaceUnspecified, ColorSpaceFCC,
	ColorSpaceBT470BG, ColorSpaceSMPTE170M, ColorSpaceSMPTE240M, ColorSpaceYCgCo,
	ColorSpaceBT2020NC, ColorSpaceBT2020C, ColorSpaceSMPTE2085,
	ColorSpaceChromaDerivedNC, ColorSpaceChromaDerivedC, ColorSpaceICtCp,
}

func (c ColorSpace) String() string {
	s, _ := c.Token(Human)
	return s
}

// Token returns the representation of c in dialect d.
func (c ColorSpace) Token(d Dialect) (string, bool) {
	switch d {
	case Human:
		switch c {
		case ColorSpaceIdentity:
			return "Identity (GBR)", true
		case ColorSpaceBT709:
			return "BT.709", true
		case ColorSpaceUnspecified:
			return "Unspecified", true
		case ColorSpaceFCC:
			return "FCC 73.682", true
		case ColorSpaceBT470BG:
			return "BT.470 System B/G", true
		case ColorSpaceSMPTE170M:
			return "SMPTE 170M (BT.601)", true
		case ColorSpaceSMPTE240M:
			return "SMPTE 240M", true
		case ColorSpaceYCgCo:
			return "YCgCo", true
		case ColorSpaceBT2020NC:
			return "BT.2020 non-constant luminance", true
		case ColorSpaceBT2020C:
			return "BT.2020 constant luminance", true
		case ColorSpaceSMPTE2085:
			return "SMPTE ST 2085", true
		case ColorSpaceChromaDerivedNC:
			return "Chromaticity-derived non-constant luminance", true
		case ColorSpaceChromaDerivedC:
			return "Chromaticity-derived constant luminance", true
		case ColorSpaceICtCp:
			return "ICtCp", true
		}
	case X265:
		switch c {
		case ColorSpaceIdentity:
			return "gbr", true
		case ColorSpaceBT709:
			return "bt709", true
		case ColorSpaceUnspecified:
			return "unknown", true
		case ColorSpaceFCC:
			return "fcc", true
		case ColorSpaceBT470BG:
			return "bt470bg", true
		case ColorSpaceSMPTE170M:
			return "smpte170m", true
		case ColorSpaceSMPTE240M:
			return "smpte240m", true
		case ColorSpaceYCgCo:
			return "ycgco", true
		case ColorSpaceBT2020NC:
			return "bt2020nc", true
		case ColorSpaceBT2020C:
			return "bt2020c", true
		case ColorSpaceSMPTE2085:
			return "smpte2085", true
		case ColorSpaceChromaDerivedNC:
			return "chroma-derived-nc", true
		case ColorSpaceChromaDerivedC:
			return "chroma-derived-c", true
		case ColorSpaceICtCp:
			return "ictcp", true
		}
	case Rav1e:
		switch c {
		case ColorSpaceIdentity:
			return "Identity", true
		case ColorSpaceBT709:
			return "BT709", true
		case ColorSpaceUnspecified:
			return "Unspecified", true
		case ColorSpaceFCC:
			return "FCC", true
		case ColorSpaceBT470BG:
			return "BT470BG", true
		case ColorSpaceSMPTE170M:
			return "BT601", true
		case ColorSpaceSMPTE240M:
			return "SMPTE240", true
		case ColorSpaceYCgCo:
			return "YCgCo", true
		case ColorSpaceBT2020NC:
			return "BT2020NCL", true
		case ColorSpaceBT2020C:
			return "BT2020CL", true
		case ColorSpaceSMPTE2085:
			return "SMPTE2085", true
		case ColorSpaceChromaDerivedNC:
			return "ChromatNCL", true
		case ColorSpaceChromaDerivedC:
			return "ChromatCL", true
		case ColorSpaceICtCp:
			return "ICtCp", true
		}
	case Mkvmerge:
		switch c {
		case ColorSpaceIdentity, ColorSpaceBT709, ColorSpaceUnspecified, ColorSpaceFCC,
			ColorSpaceBT470BG, ColorSpaceSMPTE170M, ColorSpaceSMPTE240M, ColorSpaceYCgCo,
			ColorSpaceBT2020NC, ColorSpaceBT2020C, ColorSpaceSMPTE2085,
			ColorSpaceChromaDerivedNC, ColorSpaceChromaDerivedC, ColorSpaceICtCp:
			return strconv.Itoa(int(c)), true
		}
	}
	return "", false
}

// ColorSpaceFromToken is the inverse of ColorSpace.Token.
func ColorSpaceFromToken(tok string, d Dialect) (ColorSpace, bool) {
	return lookupToken(ColorSpaces, d, tok, ColorSpace.Token)
}

// ColorSpaceFromFFmpeg maps an ffmpeg/ffprobe color_space name.
func ColorSpaceFromFFmpeg(name string) (ColorSpace, bool) {
	switch name {
	case "gbr", "rgb":
		return ColorSpaceIdentity, true
	case "bt470m":
		return ColorSpaceFCC, true
	case "smpte170m", "bt601":
		return ColorSpaceSMPTE170M, true
	case "ycocg":
		return ColorSpaceYCgCo, true
	case "bt2020_ncl":
		return ColorSpaceBT2020NC, true
	case "bt2020_cl":
		return ColorSpaceBT2020C, true
	}
	// Remaining ffmpeg names are identical to x265 names.
	return ColorSpaceFromToken(name, X265)
}
