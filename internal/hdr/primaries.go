// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hdr

import "strconv"

// Primaries are the color primaries of a video stream.
type Primaries uint8

const (
	PrimariesBT709       Primaries = 1
	PrimariesUnspecified Primaries = 2
	PrimariesBT470M      Primaries = 4
	PrimariesBT470BG     Primaries = 5
	PrimariesSMPTE170M   Primaries = 6
	PrimariesSMPTE240M   Primaries = 7
	PrimariesFilm        Primaries = 8
	PrimariesBT2020      Primaries = 9
	PrimariesSMPTE428    Primaries = 10
	PrimariesSMPTE431    Primaries = 11
	PrimariesSMPTE432    Primaries = 12
	PrimariesEBU3213     Primaries = 22
)

// AllPrimaries lists every known Primaries value.
var AllPrimaries = []Primaries{
	PrimariesBT709, PrimariesUnspecified, PrimariesBT470M, PrimariesBT470BG,
	PrimariesSMPTE170M, PrimariesSMPTE240M, PrimariesFilm, PrimariesBT2020,
	PrimariesSMPTE428, PrimariesSMPTE431, PrimariesSMPTE432, PrimariesEBU3213,
}

func (p Primaries) String() string {
	s, _ := p.Token(Human)
	return s
}

// Token returns the representation of p in dialect d.
func (p Primaries) Token(d Dialect) (string, bool) {
	switch d {
	case Human:
		switch p {
		case PrimariesBT709:
			return "BT.709", true
		case PrimariesUnspecified:
			return "Unspecified", true
		case PrimariesBT470M:
			return "BT.470 System M", true
		case PrimariesBT470BG:
			return "BT.470 System B/G", true
		case PrimariesSMPTE170M:
			return "SMPTE 170M (BT.601)", true
		case PrimariesSMPTE240M:
			return "SMPTE 240M", true
		case PrimariesFilm:
			return "Generic film", true
		case PrimariesBT2020:
			return "BT.2020", true
		case PrimariesSMPTE428:
			return "SMPTE ST 428-1 (XYZ)", true
		case PrimariesSMPTE431:
			return "SMPTE RP 431-2 (DCI-P3)", true
		case PrimariesSMPTE432:
			return "SMPTE EG 432-1 (Display P3)", true
		case PrimariesEBU3213:
			return "EBU Tech 3213-E", true
		}
	case X265:
		switch p {
		case PrimariesBT709:
			return "bt709", true
		case PrimariesUnspecified:
			return "unknown", true
		case PrimariesBT470M:
			return "bt470m", true
		case PrimariesBT470BG:
			return "bt470bg", true
		case PrimariesSMPTE170M:
			return "smpte170m", true
		case PrimariesSMPTE240M:
			return "smpte240m", true
		case PrimariesFilm:
			return "film", true
		case PrimariesBT2020:
			return "bt2020", true
		case PrimariesSMPTE428:
			return "smpte428", true
		case PrimariesSMPTE431:
			return "smpte431", true
		case PrimariesSMPTE432:
			return "smpte432", true
		case PrimariesEBU3213:
			// Not accepted by x265.
			return "", false
		}
	case Rav1e:
		switch p {
		case PrimariesBT709:
			return "BT709", true
		case PrimariesUnspecified:
			return "Unspecified", true
		case PrimariesBT470M:
			return "BT470M", true
		case PrimariesBT470BG:
			return "BT470BG", true
		case PrimariesSMPTE170M:
			return "BT601", true
		case PrimariesSMPTE240M:
			return "SMPTE240", true
		case PrimariesFilm:
			return "GenericFilm", true
		case PrimariesBT2020:
			return "BT2020", true
		case PrimariesSMPTE428:
			return "XYZ", true
		case PrimariesSMPTE431:
			return "SMPTE431", true
		case PrimariesSMPTE432:
			return "SMPTE432", true
		case PrimariesEBU3213:
			return "EBU3213", true
		}
	case Mkvmerge:
		switch p {
		case PrimariesBT709, PrimariesUnspecified, PrimariesBT470M, PrimariesBT470BG,
			PrimariesSMPTE170M, PrimariesSMPTE240M, PrimariesFilm, PrimariesBT2020,
			PrimariesSMPTE428, PrimariesSMPTE431, PrimariesSMPTE432, PrimariesEBU3213:
			return strconv.Itoa(int(p)), true
		}
	}
	return "", false
}

// PrimariesFromToken is the inverse of Primaries.Token.
func PrimariesFromToken(tok string, d Dialect) (Primaries, bool) {
	return lookupToken(AllPrimaries, d, tok, Primaries.Token)
}

// PrimariesFromFFmpeg maps an ffmpeg/ffprobe color_primaries name.
func PrimariesFromFFmpeg(name string) (Primaries, bool) {
	switch name {
	case "smpte428_1", "smpte428":
		return PrimariesSMPTE428, true
	case "jedec-p22", "ebu3213":
		return PrimariesEBU3213, true
	}
	return PrimariesFromToken(name, X265)
}
