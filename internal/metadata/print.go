// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metadata

import (
	"fmt"
	"io"
	"strings"

	"github.com/evolution-gaming/hdrcopier/internal/hdr"
)

// Track used for mkvmerge options when printing, the first track of a file.
const printTrackID = 0

// Print writes m to w in dialect d.
//
// Human prints one labeled line per present field. Other dialects print a single
// line holding the options, quoted for a POSIX shell.
func Print(w io.Writer, m Metadata, d hdr.Dialect) error {
	if d != hdr.Human {
		_, err := fmt.Fprintln(w, ShellJoin(Args(m, d, printTrackID)))
		return err
	}

	var lines [][2]string
	line := func(label, value string) {
		lines = append(lines, [2]string{label, value})
	}
	if v, ok := m.ColorSpace.Get(); ok {
		line("Color space", v.String())
	}
	if v, ok := m.Transfer.Get(); ok {
		line("Transfer", v.String())
	}
	if v, ok := m.Primaries.Get(); ok {
		line("Primaries", v.String())
	}
	if v, ok := m.Range.Get(); ok {
		line("Color range", v.String())
	}
	if v, ok := m.MasteringPrimaries.Get(); ok {
		line("Mastering display", describePrimaries(v))
	}
	if v, ok := m.MinLuminance.Get(); ok {
		line("Min luminance", hdr.FormatLuminance(v)+" cd/m²")
	}
	if v, ok := m.MaxLuminance.Get(); ok {
		line("Max luminance", hdr.FormatLuminance(v)+" cd/m²")
	}
	if v, ok := m.MaxCLL.Get(); ok {
		line("MaxCLL", fmt.Sprintf("%d cd/m²", v))
	}
	if v, ok := m.MaxFALL.Get(); ok {
		line("MaxFALL", fmt.Sprintf("%d cd/m²", v))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-18s %s\n", l[0]+":", l[1]); err != nil {
			return err
		}
	}
	return nil
}

// PrintChapters writes one line per chapter.
func PrintChapters(w io.Writer, chapters []Chapter) error {
	for i, c := range chapters {
		if _, err := fmt.Fprintf(w, "%3d  %s  %s\n", i+1, FormatTimestamp(c.Start), c.Title); err != nil {
			return err
		}
	}
	return nil
}

func describePrimaries(p MasteringPrimaries) string {
	coords := fmt.Sprintf("R(%s,%s) G(%s,%s) B(%s,%s) WP(%s,%s)",
		hdr.FormatChromaticity(p.Red.X), hdr.FormatChromaticity(p.Red.Y),
		hdr.FormatChromaticity(p.Green.X), hdr.FormatChromaticity(p.Green.Y),
		hdr.FormatChromaticity(p.Blue.X), hdr.FormatChromaticity(p.Blue.Y),
		hdr.FormatChromaticity(p.WhitePoint.X), hdr.FormatChromaticity(p.WhitePoint.Y),
	)
	if name := p.Name(); name != "" {
		return name + " " + coords
	}
	return coords
}

// ShellJoin joins args into a single line, quoting arguments that a POSIX shell
// would otherwise interpret.
func ShellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuoting) < 0 {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_.,:/=+@%", r)
}
