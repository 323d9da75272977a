// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hdr

// Range is the quantization range of a video stream.
type Range uint8

const (
	RangeUnspecified Range = 0
	RangeLimited     Range = 1
	RangeFull        Range = 2
)

// Ranges lists every known Range.
var Ranges = []Range{RangeUnspecified, RangeLimited, RangeFull}

func (r Range) String() string {
	s, _ := r.Token(Human)
	return s
}

// Token returns the representation of r in dialect d. Encoders have no way to
// express an unspecified range.
func (r Range) Token(d Dialect) (string, bool) {
	switch d {
	case Human:
		switch r {
		case RangeUnspecified:
			return "Unspecified", true
		case RangeLimited:
			return "Limited", true
		case RangeFull:
			return "Full", true
		}
	case X265:
		switch r {
		case RangeUnspecified:
			return "", false
		case RangeLimited:
			return "limited", true
		case RangeFull:
			return "full", true
		}
	case Rav1e:
		switch r {
		case RangeUnspecified:
			return "", false
		case RangeLimited:
			return "Limited", true
		case RangeFull:
			return "Full", true
		}
	case Mkvmerge:
		switch r {
		case RangeUnspecified:
			return "0", true
		case RangeLimited:
			return "1", true
		case RangeFull:
			return "2", true
		}
	}
	return "", false
}

// RangeFromToken is the inverse of Range.Token.
func RangeFromToken(tok string, d Dialect) (Range, bool) {
	return lookupToken(Ranges, d, tok, Range.Token)
}

// RangeFromFFmpeg maps an ffmpeg/ffprobe color_range name.
func RangeFromFFmpeg(name string) (Range, bool) {
	switch name {
	case "tv", "mpeg", "limited":
		return RangeLimited, true
	case "pc", "jpeg", "full":
		return RangeFull, true
	case "unknown", "unspecified":
		return RangeUnspecified, true
	}
	return 0, false
}
