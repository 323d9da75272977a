// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metadata

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/evolution-gaming/hdrcopier/internal/hdr"
	"github.com/google/shlex"
)

// ErrNotParseable is returned when a dialect has no option syntax to parse.
var ErrNotParseable = errors.New("dialect is not parseable")

// G(x,y)B(x,y)R(x,y)WP(x,y)L(max,min) as used by x265 and rav1e.
var reMasteringDisplay = regexp.MustCompile(
	`^G\(([^,]+),([^)]+)\)B\(([^,]+),([^)]+)\)R\(([^,]+),([^)]+)\)WP\(([^,]+),([^)]+)\)L\(([^,]+),([^)]+)\)$`)

// ParseArgs is the inverse of Args: it reads an option string of dialect d, as
// printed by Print, back into Metadata. Unknown options are an error.
func ParseArgs(d hdr.Dialect, s string) (Metadata, error) {
	var m Metadata
	if d == hdr.Human {
		return m, fmt.Errorf("%s: %w", d, ErrNotParseable)
	}

	args, err := shlex.Split(s)
	if err != nil {
		return m, fmt.Errorf("splitting %s options: %w", d, err)
	}
	if len(args)%2 != 0 {
		return m, fmt.Errorf("option %s without value", args[len(args)-1])
	}

	for i := 0; i < len(args); i += 2 {
		option, value := args[i], args[i+1]
		field, ok := hdr.OptionField(option, d)
		if !ok {
			return m, fmt.Errorf("unknown %s option %s", d, option)
		}
		if d == hdr.Mkvmerge {
			// Drop the track ID prefix.
			_, v, found := strings.Cut(value, ":")
			if !found {
				return m, fmt.Errorf("%s %s: missing track ID", option, value)
			}
			value = v
		}
		if err := setField(&m, d, field, value); err != nil {
			return m, fmt.Errorf("%s %s: %w", option, value, err)
		}
	}

	return m, nil
}

func setField(m *Metadata, d hdr.Dialect, f hdr.Field, value string) error {
	errUnknown := fmt.Errorf("unknown value %q", value)

	switch f {
	case hdr.FieldColorSpace:
		v, ok := hdr.ColorSpaceFromToken(value, d)
		if !ok {
			return errUnknown
		}
		m.ColorSpace = Some(v)
	case hdr.FieldTransfer:
		v, ok := hdr.TransferFromToken(value, d)
		if !ok {
			return errUnknown
		}
		m.Transfer = Some(v)
	case hdr.FieldPrimaries:
		v, ok := hdr.PrimariesFromToken(value, d)
		if !ok {
			return errUnknown
		}
		m.Primaries = Some(v)
	case hdr.FieldRange:
		v, ok := hdr.RangeFromToken(value, d)
		if !ok {
			return errUnknown
		}
		m.Range = Some(v)
	case hdr.FieldMasteringDisplay:
		return setMasteringDisplay(m, d, value)
	case hdr.FieldContentLight:
		cll, fall, found := strings.Cut(value, ",")
		if !found {
			return errUnknown
		}
		nCLL, err := strconv.Atoi(cll)
		if err != nil {
			return err
		}
		nFALL, err := strconv.Atoi(fall)
		if err != nil {
			return err
		}
		m.MaxCLL, m.MaxFALL = Some(nCLL), Some(nFALL)
	case hdr.FieldChromaticity:
		cs, err := parseFloats(value, 6)
		if err != nil {
			return err
		}
		p, _ := m.MasteringPrimaries.Get()
		p.Red = Chromaticity{cs[0], cs[1]}
		p.Green = Chromaticity{cs[2], cs[3]}
		p.Blue = Chromaticity{cs[4], cs[5]}
		m.MasteringPrimaries = Some(p)
	case hdr.FieldWhitePoint:
		cs, err := parseFloats(value, 2)
		if err != nil {
			return err
		}
		p, _ := m.MasteringPrimaries.Get()
		p.WhitePoint = Chromaticity{cs[0], cs[1]}
		m.MasteringPrimaries = Some(p)
	case hdr.FieldMaxLuminance, hdr.FieldMinLuminance:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		if f == hdr.FieldMaxLuminance {
			m.MaxLuminance = Some(v)
		} else {
			m.MinLuminance = Some(v)
		}
	case hdr.FieldMaxCLL, hdr.FieldMaxFALL:
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		if f == hdr.FieldMaxCLL {
			m.MaxCLL = Some(v)
		} else {
			m.MaxFALL = Some(v)
		}
	default:
		return fmt.Errorf("unsupported field %d", f)
	}
	return nil
}

func setMasteringDisplay(m *Metadata, d hdr.Dialect, value string) error {
	sub := reMasteringDisplay.FindStringSubmatch(value)
	if sub == nil {
		return fmt.Errorf("malformed mastering display %q", value)
	}

	chroma := func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
	lum := chroma
	if d == hdr.X265 {
		chroma = func(s string) (float64, error) {
			n, err := strconv.Atoi(s)
			return hdr.ChromaticityFromX265(n), err
		}
		lum = func(s string) (float64, error) {
			n, err := strconv.Atoi(s)
			return hdr.LuminanceFromX265(n), err
		}
	}

	var vals [10]float64
	for i, s := range sub[1:] {
		conv := chroma
		if i >= 8 {
			conv = lum
		}
		v, err := conv(s)
		if err != nil {
			return err
		}
		vals[i] = v
	}

	m.MasteringPrimaries = Some(MasteringPrimaries{
		Green:      Chromaticity{vals[0], vals[1]},
		Blue:       Chromaticity{vals[2], vals[3]},
		Red:        Chromaticity{vals[4], vals[5]},
		WhitePoint: Chromaticity{vals[6], vals[7]},
	})
	m.MaxLuminance = Some(vals[8])
	m.MinLuminance = Some(vals[9])
	return nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(parts))
	}
	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
