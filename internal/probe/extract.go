// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package probe extracts color metadata and chapters of media files by means of
// an external prober.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/evolution-gaming/hdrcopier/internal/hdr"
	"github.com/evolution-gaming/hdrcopier/internal/logging"
	"github.com/evolution-gaming/hdrcopier/internal/metadata"
)

// Extractor turns prober reports into metadata.
type Extractor struct {
	Prober Prober
}

// NewExtractor creates an Extractor backed by ffprobe at given path.
func NewExtractor(ffprobePath string) *Extractor {
	return &Extractor{Prober: &Ffprobe{Path: ffprobePath}}
}

// Parse extracts metadata of the primary video stream of file at path.
func (e *Extractor) Parse(ctx context.Context, path string) (metadata.Metadata, error) {
	out, err := e.Prober.ProbeStreams(ctx, path)
	if err != nil {
		return metadata.Metadata{}, &ExtractError{Path: path, Kind: ErrProbeFailed, Err: err}
	}
	m, err := ParseStreamsJSON(out)
	switch {
	case errors.Is(err, ErrNoStreams):
		return metadata.Metadata{}, &ExtractError{Path: path, Kind: ErrNoStreams}
	case err != nil:
		return metadata.Metadata{}, &ExtractError{Path: path, Kind: ErrProbeFailed, Err: err}
	}
	return m, nil
}

// ExtractChapters returns chapters of file at path. Chapters are optional, so
// failures are logged and nil is returned.
func (e *Extractor) ExtractChapters(ctx context.Context, path string) []metadata.Chapter {
	out, err := e.Prober.ProbeChapters(ctx, path)
	if err != nil {
		logging.Warnf("Unable to read chapters of %s: %s", path, err)
		return nil
	}
	chapters, err := ParseChaptersJSON(out)
	if err != nil {
		logging.Warnf("Unable to read chapters of %s: %s", path, err)
		return nil
	}
	if len(chapters) == 0 {
		logging.Debugf("No chapters in %s", path)
		return nil
	}
	return chapters
}

// ParseStreamsJSON decodes ffprobe's stream and frame report into Metadata.
func ParseStreamsJSON(data []byte) (metadata.Metadata, error) {
	var m metadata.Metadata
	var out ffprobeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return m, fmt.Errorf("decode ffprobe output: %w", err)
	}

	var stream *ffprobeStream
	for i := range out.Streams {
		if out.Streams[i].isVideo() {
			stream = &out.Streams[i]
			break
		}
	}
	if stream == nil {
		return m, ErrNoStreams
	}

	m.ColorSpace = optionalEnum("color_space", stream.ColorSpace, hdr.ColorSpaceFromFFmpeg)
	m.Transfer = optionalEnum("color_transfer", stream.ColorTransfer, hdr.TransferFromFFmpeg)
	m.Primaries = optionalEnum("color_primaries", stream.ColorPrimaries, hdr.PrimariesFromFFmpeg)
	m.Range = optionalEnum("color_range", stream.ColorRange, hdr.RangeFromFFmpeg)

	// Frame side data first so that stream side data overrides it.
	for _, f := range out.Frames {
		if f.StreamIndex != stream.Index || (f.MediaType != "" && f.MediaType != "video") {
			continue
		}
		applySideData(&m, f.SideDataList)
		break
	}
	applySideData(&m, stream.SideDataList)

	return m, nil
}

// ParseChaptersJSON decodes ffprobe's chapter report.
func ParseChaptersJSON(data []byte) ([]metadata.Chapter, error) {
	var out ffprobeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode ffprobe output: %w", err)
	}
	chapters := make([]metadata.Chapter, 0, len(out.Chapters))
	for i, c := range out.Chapters {
		start, err := chapterStart(c)
		if err != nil {
			return nil, fmt.Errorf("chapter %d: %w", i+1, err)
		}
		title := c.title()
		if title == "" {
			title = fmt.Sprintf("Chapter %02d", i+1)
		}
		chapters = append(chapters, metadata.Chapter{Start: start, Title: title})
	}
	return chapters, nil
}

func chapterStart(c ffprobeChapter) (time.Duration, error) {
	var seconds float64
	if sec, err := c.StartTime.Rational(); err == nil {
		seconds = sec
	} else {
		start, err := c.Start.Int64()
		if err != nil {
			return 0, fmt.Errorf("no usable start time: %w", err)
		}
		tb, err := c.TimeBase.Rational()
		if err != nil {
			return 0, fmt.Errorf("time base: %w", err)
		}
		seconds = float64(start) * tb
	}
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("invalid start time %v", seconds)
	}
	return time.Duration(math.Round(seconds * float64(time.Second))), nil
}

// optionalEnum maps an ffprobe enum name, empty name means absent.
func optionalEnum[T any](field, name string, fromFFmpeg func(string) (T, bool)) metadata.Optional[T] {
	if name == "" {
		return metadata.Optional[T]{}
	}
	v, ok := fromFFmpeg(name)
	if !ok {
		logging.Debugf("Ignoring unrecognized %s %q", field, name)
		return metadata.Optional[T]{}
	}
	return metadata.Some(v)
}

func applySideData(m *metadata.Metadata, list []ffprobeSideData) {
	for _, sd := range list {
		switch {
		case sd.is(sideDataMasteringDisplay):
			applyMasteringDisplay(m, sd)
		case sd.is(sideDataContentLight):
			applyContentLight(m, sd)
		}
	}
}

func applyMasteringDisplay(m *metadata.Metadata, sd ffprobeSideData) {
	coords := []probeValue{
		sd.RedX, sd.RedY,
		sd.GreenX, sd.GreenY,
		sd.BlueX, sd.BlueY,
		sd.WhitePointX, sd.WhitePointY,
	}
	parsed := make([]float64, 0, len(coords))
	for _, c := range coords {
		v, err := c.Rational()
		if err != nil {
			logging.Debugf("Ignoring mastering display primaries: %s", err)
			break
		}
		parsed = append(parsed, v)
	}
	if len(parsed) == len(coords) {
		m.MasteringPrimaries = metadata.Some(metadata.MasteringPrimaries{
			Red:        metadata.Chromaticity{X: parsed[0], Y: parsed[1]},
			Green:      metadata.Chromaticity{X: parsed[2], Y: parsed[3]},
			Blue:       metadata.Chromaticity{X: parsed[4], Y: parsed[5]},
			WhitePoint: metadata.Chromaticity{X: parsed[6], Y: parsed[7]},
		})
	}
	if v, ok := rational("min_luminance", sd.MinLuminance); ok {
		m.MinLuminance = metadata.Some(v)
	}
	if v, ok := rational("max_luminance", sd.MaxLuminance); ok {
		m.MaxLuminance = metadata.Some(v)
	}
}

func applyContentLight(m *metadata.Metadata, sd ffprobeSideData) {
	if v, ok := integer("max_content", sd.MaxContent); ok {
		m.MaxCLL = metadata.Some(v)
	}
	if v, ok := integer("max_average", sd.MaxAverage); ok {
		m.MaxFALL = metadata.Some(v)
	}
}

func rational(field string, v probeValue) (float64, bool) {
	f, err := v.Rational()
	if err != nil {
		if !errors.Is(err, errEmptyValue) {
			logging.Debugf("Ignoring %s: %s", field, err)
		}
		return 0, false
	}
	if f < 0 {
		logging.Debugf("Ignoring negative %s %v", field, f)
		return 0, false
	}
	return f, true
}

func integer(field string, v probeValue) (int, bool) {
	n, err := v.Int()
	if err != nil {
		if !errors.Is(err, errEmptyValue) {
			logging.Debugf("Ignoring %s: %s", field, err)
		}
		return 0, false
	}
	if n < 0 {
		logging.Debugf("Ignoring negative %s %d", field, n)
		return 0, false
	}
	return n, true
}
