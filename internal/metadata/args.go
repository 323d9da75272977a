// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evolution-gaming/hdrcopier/internal/hdr"
)

// Args serializes m into command line arguments of dialect d.
//
// Only present fields produce arguments. Options that combine several fields
// (x265 --master-display, rav1e --content-light etc.) are produced only when all
// of their fields are present. For mkvmerge every value is prefixed with
// trackID. The Human dialect has no arguments.
func Args(m Metadata, d hdr.Dialect, trackID int) []string {
	var args []string
	add := func(f hdr.Field, value string) {
		name, ok := hdr.OptionName(f, d)
		if !ok {
			return
		}
		if d == hdr.Mkvmerge {
			value = strconv.Itoa(trackID) + ":" + value
		}
		args = append(args, name, value)
	}

	if v, ok := m.ColorSpace.Get(); ok {
		if tok, ok := v.Token(d); ok {
			add(hdr.FieldColorSpace, tok)
		}
	}
	if v, ok := m.Transfer.Get(); ok {
		if tok, ok := v.Token(d); ok {
			add(hdr.FieldTransfer, tok)
		}
	}
	if v, ok := m.Primaries.Get(); ok {
		if tok, ok := v.Token(d); ok {
			add(hdr.FieldPrimaries, tok)
		}
	}
	if v, ok := m.Range.Get(); ok {
		if tok, ok := v.Token(d); ok {
			add(hdr.FieldRange, tok)
		}
	}

	switch d {
	case hdr.X265, hdr.Rav1e:
		if md, ok := masteringDisplay(m, d); ok {
			add(hdr.FieldMasteringDisplay, md)
		}
		cll, okCLL := m.MaxCLL.Get()
		fall, okFALL := m.MaxFALL.Get()
		if okCLL && okFALL {
			add(hdr.FieldContentLight, fmt.Sprintf("%d,%d", cll, fall))
		}
	case hdr.Mkvmerge:
		if p, ok := m.MasteringPrimaries.Get(); ok {
			add(hdr.FieldChromaticity, joinChromaticities(p.Red, p.Green, p.Blue))
			add(hdr.FieldWhitePoint, joinChromaticities(p.WhitePoint))
		}
		if v, ok := m.MaxLuminance.Get(); ok {
			add(hdr.FieldMaxLuminance, hdr.FormatLuminance(v))
		}
		if v, ok := m.MinLuminance.Get(); ok {
			add(hdr.FieldMinLuminance, hdr.FormatLuminance(v))
		}
		if v, ok := m.MaxCLL.Get(); ok {
			add(hdr.FieldMaxCLL, strconv.Itoa(v))
		}
		if v, ok := m.MaxFALL.Get(); ok {
			add(hdr.FieldMaxFALL, strconv.Itoa(v))
		}
	}

	return args
}

// masteringDisplay builds the G(x,y)B(x,y)R(x,y)WP(x,y)L(max,min) string shared
// by x265 and rav1e. x265 uses integer units, rav1e plain decimals.
func masteringDisplay(m Metadata, d hdr.Dialect) (string, bool) {
	p, okP := m.MasteringPrimaries.Get()
	maxL, okMax := m.MaxLuminance.Get()
	minL, okMin := m.MinLuminance.Get()
	if !okP || !okMax || !okMin {
		return "", false
	}

	chroma := hdr.FormatChromaticity
	lum := hdr.FormatLuminance
	if d == hdr.X265 {
		chroma = func(v float64) string { return strconv.Itoa(hdr.X265Chromaticity(v)) }
		lum = func(v float64) string { return strconv.Itoa(hdr.X265Luminance(v)) }
	}

	return fmt.Sprintf("G(%s,%s)B(%s,%s)R(%s,%s)WP(%s,%s)L(%s,%s)",
		chroma(p.Green.X), chroma(p.Green.Y),
		chroma(p.Blue.X), chroma(p.Blue.Y),
		chroma(p.Red.X), chroma(p.Red.Y),
		chroma(p.WhitePoint.X), chroma(p.WhitePoint.Y),
		lum(maxL), lum(minL),
	), true
}

func joinChromaticities(cs ...Chromaticity) string {
	parts := make([]string, 0, 2*len(cs))
	for _, c := range cs {
		parts = append(parts, hdr.FormatChromaticity(c.X), hdr.FormatChromaticity(c.Y))
	}
	return strings.Join(parts, ",")
}
