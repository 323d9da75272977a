// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hdr

import "strconv"

// Transfer is the transfer characteristics (EOTF) of a video stream.
type Transfer uint8

const (
	TransferBT709        Transfer = 1
	TransferUnspecified  Transfer = 2
	TransferBT470M       Transfer = 4
	TransferBT470BG      Transfer = 5
	TransferSMPTE170M    Transfer = 6
	TransferSMPTE240M    Transfer = 7
	TransferLinear       Transfer = 8
	TransferLog100       Transfer = 9
	TransferLog316       Transfer = 10
	TransferIEC61966_2_4 Transfer = 11
	TransferBT1361E      Transfer = 12
	TransferSRGB         Transfer = 13
	TransferBT2020_10    Transfer = 14
	TransferBT2020_12    Transfer = 15
	TransferPQ           Transfer = 16
	TransferSMPTE428     Transfer = 17
	TransferHLG          Transfer = 18
)

// Transfers lists every known Transfer.
var Transfers = []Transfer{
	TransferBT709, TransferUnspecified, TransferBT470M, TransferBT470BG,
	TransferSMPTE170M, TransferSMPTE240M, TransferLinear, TransferLog100,
	TransferLog316, TransferIEC61966_2_4, TransferBT1361E, TransferSRGB,
	TransferBT2020_10, TransferBT2020_12, TransferPQ, TransferSMPTE428, TransferHLG,
}

func (t Transfer) String() string {
	s, _ := t.Token(Human)
	return s
}

// Token returns the representation of t in dialect d.
func (t Transfer) Token(d Dialect) (string, bool) {
	switch d {
	case Human:
		switch t {
		case TransferBT709:
			return "BT.709", true
		case TransferUnspecified:
			return "Unspecified", true
		case TransferBT470M:
			return "BT.470 System M (gamma 2.2)", true
		case TransferBT470BG:
			return "BT.470 System B/G (gamma 2.8)", true
		case TransferSMPTE170M:
			return "SMPTE 170M (BT.601)", true
		case TransferSMPTE240M:
			return "SMPTE 240M", true
		case TransferLinear:
			return "Linear", true
		case TransferLog100:
			return "Logarithmic (100:1)", true
		case TransferLog316:
			return "Logarithmic (316.22777:1)", true
		case TransferIEC61966_2_4:
			return "IEC 61966-2-4 (xvYCC)", true
		case TransferBT1361E:
			return "BT.1361 extended colour gamut", true
		case TransferSRGB:
			return "IEC 61966-2-1 (sRGB)", true
		case TransferBT2020_10:
			return "BT.2020 (10-bit)", true
		case TransferBT2020_12:
			return "BT.2020 (12-bit)", true
		case TransferPQ:
			return "SMPTE ST 2084 (PQ)", true
		case TransferSMPTE428:
			return "SMPTE ST 428-1", true
		case TransferHLG:
			return "ARIB STD-B67 (HLG)", true
		}
	case X265:
		switch t {
		case TransferBT709:
			return "bt709", true
		case TransferUnspecified:
			return "unknown", true
		case TransferBT470M:
			return "bt470m", true
		case TransferBT470BG:
			return "bt470bg", true
		case TransferSMPTE170M:
			return "smpte170m", true
		case TransferSMPTE240M:
			return "smpte240m", true
		case TransferLinear:
			return "linear", true
		case TransferLog100:
			return "log100", true
		case TransferLog316:
			return "log316", true
		case TransferIEC61966_2_4:
			return "iec61966-2-4", true
		case TransferBT1361E:
			return "bt1361e", true
		case TransferSRGB:
			return "iec61966-2-1", true
		case TransferBT2020_10:
			return "bt2020-10", true
		case TransferBT2020_12:
			return "bt2020-12", true
		case TransferPQ:
			return "smpte2084", true
		case TransferSMPTE428:
			return "smpte428", true
		case TransferHLG:
			return "arib-std-b67", true
		}
	case Rav1e:
		switch t {
		case TransferBT709:
			return "BT709", true
		case TransferUnspecified:
			return "Unspecified", true
		case TransferBT470M:
			return "BT470M", true
		case TransferBT470BG:
			return "BT470BG", true
		case TransferSMPTE170M:
			return "BT601", true
		case TransferSMPTE240M:
			return "SMPTE240", true
		case TransferLinear:
			return "Linear", true
		case TransferLog100:
			return "Log100", true
		case TransferLog316:
			return "Log100Sqrt10", true
		case TransferIEC61966_2_4:
			return "IEC61966", true
		case TransferBT1361E:
			return "BT1361", true
		case TransferSRGB:
			return "SRGB", true
		case TransferBT2020_10:
			return "BT2020_10Bit", true
		case TransferBT2020_12:
			return "BT2020_12Bit", true
		case TransferPQ:
			return "SMPTE2084", true
		case TransferSMPTE428:
			return "SMPTE428", true
		case TransferHLG:
			return "HLG", true
		}
	case Mkvmerge:
		switch t {
		case TransferBT709, TransferUnspecified, TransferBT470M, TransferBT470BG,
			TransferSMPTE170M, TransferSMPTE240M, TransferLinear, TransferLog100,
			TransferLog316, TransferIEC61966_2_4, TransferBT1361E, TransferSRGB,
			TransferBT2020_10, TransferBT2020_12, TransferPQ, TransferSMPTE428, TransferHLG:
			return strconv.Itoa(int(t)), true
		}
	}
	return "", false
}

// TransferFromToken is the inverse of Transfer.Token.
func TransferFromToken(tok string, d Dialect) (Transfer, bool) {
	return lookupToken(Transfers, d, tok, Transfer.Token)
}

// TransferFromFFmpeg maps an ffmpeg/ffprobe color_transfer name.
func TransferFromFFmpeg(name string) (Transfer, bool) {
	switch name {
	case "gamma22":
		return TransferBT470M, true
	case "gamma28":
		return TransferBT470BG, true
	case "linear":
		return TransferLinear, true
	case "log", "log100":
		return TransferLog100, true
	case "log_sqrt", "log316":
		return TransferLog316, true
	case "srgb", "iec61966_2_1", "iec61966-2-1":
		return TransferSRGB, true
	case "xvycc", "iec61966_2_4", "iec61966-2-4":
		return TransferIEC61966_2_4, true
	case "bt2020_10bit", "bt2020-10":
		return TransferBT2020_10, true
	case "bt2020_12bit", "bt2020-12":
		return TransferBT2020_12, true
	case "smptest2084", "smpte2084":
		return TransferPQ, true
	case "smptest428_1", "smpte428":
		return TransferSMPTE428, true
	}
	return TransferFromToken(name, X265)
}
