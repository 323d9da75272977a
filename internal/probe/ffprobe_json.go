// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Side data types reported by ffprobe.
const (
	sideDataMasteringDisplay = "Mastering display metadata"
	sideDataContentLight     = "Content light level metadata"
)

// ffprobeOutput is the subset of ffprobe's JSON document that is of interest.
type ffprobeOutput struct {
	Streams  []ffprobeStream  `json:"streams"`
	Frames   []ffprobeFrame   `json:"frames"`
	Chapters []ffprobeChapter `json:"chapters"`
}

type ffprobeStream struct {
	Index          int               `json:"index"`
	CodecType      string            `json:"codec_type"`
	ColorSpace     string            `json:"color_space"`
	ColorTransfer  string            `json:"color_transfer"`
	ColorPrimaries string            `json:"color_primaries"`
	ColorRange     string            `json:"color_range"`
	Disposition    map[string]int    `json:"disposition"`
	SideDataList   []ffprobeSideData `json:"side_data_list"`
}

func (s ffprobeStream) isVideo() bool {
	return s.CodecType == "video" && s.Disposition["attached_pic"] == 0
}

type ffprobeFrame struct {
	MediaType    string            `json:"media_type"`
	StreamIndex  int               `json:"stream_index"`
	SideDataList []ffprobeSideData `json:"side_data_list"`
}

type ffprobeSideData struct {
	Type string `json:"side_data_type"`
	// Mastering display metadata
	RedX         probeValue `json:"red_x"`
	RedY         probeValue `json:"red_y"`
	GreenX       probeValue `json:"green_x"`
	GreenY       probeValue `json:"green_y"`
	BlueX        probeValue `json:"blue_x"`
	BlueY        probeValue `json:"blue_y"`
	WhitePointX  probeValue `json:"white_point_x"`
	WhitePointY  probeValue `json:"white_point_y"`
	MinLuminance probeValue `json:"min_luminance"`
	MaxLuminance probeValue `json:"max_luminance"`
	// Content light level metadata
	MaxContent probeValue `json:"max_content"`
	MaxAverage probeValue `json:"max_average"`
}

func (s ffprobeSideData) is(kind string) bool {
	return strings.EqualFold(s.Type, kind)
}

type ffprobeChapter struct {
	ID        int               `json:"id"`
	TimeBase  probeValue        `json:"time_base"`
	Start     probeValue        `json:"start"`
	StartTime probeValue        `json:"start_time"`
	Tags      map[string]string `json:"tags"`
}

func (c ffprobeChapter) title() string {
	for k, v := range c.Tags {
		if strings.EqualFold(k, "title") {
			return v
		}
	}
	return ""
}

// probeValue is a scalar which ffprobe reports either as a JSON string or as a
// JSON number depending on version and field.
type probeValue string

func (v *probeValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = probeValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("probe value %s: %w", b, err)
	}
	*v = probeValue(n.String())
	return nil
}

var errEmptyValue = errors.New("empty value")

// Rational parses "num/den" or a plain decimal number.
func (v probeValue) Rational() (float64, error) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0, errEmptyValue
	}
	num, den, found := strings.Cut(s, "/")
	if !found {
		return strconv.ParseFloat(s, 64)
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, err
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("rational %q: zero denominator", s)
	}
	return n / d, nil
}

// Int parses an integer value.
func (v probeValue) Int() (int, error) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0, errEmptyValue
	}
	return strconv.Atoi(s)
}

// Int64 parses a 64-bit integer value.
func (v probeValue) Int64() (int64, error) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0, errEmptyValue
	}
	return strconv.ParseInt(s, 10, 64)
}
