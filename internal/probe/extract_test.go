// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/evolution-gaming/hdrcopier/internal/hdr"
	"github.com/evolution-gaming/hdrcopier/internal/metadata"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProber serves canned reports and records calls.
type fakeProber struct {
	streams  []byte
	chapters []byte
	err      error
	calls    int
}

func (f *fakeProber) ProbeStreams(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.streams, f.err
}

func (f *fakeProber) ProbeChapters(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.chapters, f.err
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return b
}

func chromaticity(x, y float64) metadata.Chromaticity {
	return metadata.Chromaticity{X: x, Y: y}
}

func Test_ParseStreamsJSON(t *testing.T) {
	type testCase struct {
		fixture string
		want    metadata.Metadata
	}

	tests := map[string]testCase{
		"HDR10 with stream side data": {
			fixture: "hdr10_mkv.json",
			want: metadata.Metadata{
				ColorSpace: metadata.Some(hdr.ColorSpaceBT2020NC),
				Transfer:   metadata.Some(hdr.TransferPQ),
				Primaries:  metadata.Some(hdr.PrimariesBT2020),
				Range:      metadata.Some(hdr.RangeLimited),
				MasteringPrimaries: metadata.Some(metadata.MasteringPrimaries{
					Red:        chromaticity(0.708, 0.292),
					Green:      chromaticity(0.17, 0.797),
					Blue:       chromaticity(0.131, 0.046),
					WhitePoint: chromaticity(0.3127, 0.329),
				}),
				MinLuminance: metadata.Some(0.005),
				MaxLuminance: metadata.Some(1000.0),
				MaxCLL:       metadata.Some(1000),
				MaxFALL:      metadata.Some(400),
			},
		},
		"HDR10 with first frame side data": {
			fixture: "hdr10_mp4_frame.json",
			want: metadata.Metadata{
				ColorSpace: metadata.Some(hdr.ColorSpaceBT2020NC),
				Transfer:   metadata.Some(hdr.TransferPQ),
				Primaries:  metadata.Some(hdr.PrimariesBT2020),
				Range:      metadata.Some(hdr.RangeLimited),
				MasteringPrimaries: metadata.Some(metadata.MasteringPrimaries{
					Red:        chromaticity(0.68, 0.32),
					Green:      chromaticity(0.265, 0.69),
					Blue:       chromaticity(0.15, 0.06),
					WhitePoint: chromaticity(0.3127, 0.329),
				}),
				MinLuminance: metadata.Some(0.0001),
				MaxLuminance: metadata.Some(4000.0),
				MaxCLL:       metadata.Some(1200),
				MaxFALL:      metadata.Some(300),
			},
		},
		"Stream side data wins over frame side data": {
			fixture: "stream_overrides_frame.json",
			want: metadata.Metadata{
				MaxCLL:  metadata.Some(1000),
				MaxFALL: metadata.Some(400),
			},
		},
		"Unknown names are Unspecified, not absent": {
			fixture: "sdr_unknown.json",
			want: metadata.Metadata{
				ColorSpace: metadata.Some(hdr.ColorSpaceUnspecified),
				Transfer:   metadata.Some(hdr.TransferUnspecified),
				Primaries:  metadata.Some(hdr.PrimariesUnspecified),
				Range:      metadata.Some(hdr.RangeLimited),
			},
		},
		"Malformed values are absent": {
			fixture: "malformed_values.json",
			want: metadata.Metadata{
				ColorSpace:   metadata.Some(hdr.ColorSpaceBT709),
				MaxLuminance: metadata.Some(1000.0),
				MaxFALL:      metadata.Some(400),
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseStreamsJSON(fixture(t, tc.fixture))
			require.NoError(t, err)
			assert.Truef(t, tc.want.Equal(got), "want:\n%+v\ngot:\n%+v", tc.want, got)
		})
	}
}

func Test_ParseStreamsJSON_Negative(t *testing.T) {
	t.Run("Should fail without video stream", func(t *testing.T) {
		_, err := ParseStreamsJSON(fixture(t, "no_streams.json"))
		assert.ErrorIs(t, err, ErrNoStreams)
	})
	t.Run("Should skip attached pictures", func(t *testing.T) {
		_, err := ParseStreamsJSON(fixture(t, "attached_pic_only.json"))
		assert.ErrorIs(t, err, ErrNoStreams)
	})
	t.Run("Should fail on garbage", func(t *testing.T) {
		_, err := ParseStreamsJSON([]byte("not json"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoStreams)
	})
}

func TestExtractor_Parse(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return metadata", func(t *testing.T) {
		e := Extractor{Prober: &fakeProber{streams: fixture(t, "hdr10_mkv.json")}}
		got, err := e.Parse(ctx, "in.mkv")
		require.NoError(t, err)
		assert.False(t, got.IsEmpty())
	})

	t.Run("Should wrap prober failure", func(t *testing.T) {
		cause := errors.New("exit status 1")
		e := Extractor{Prober: &fakeProber{err: cause}}
		_, err := e.Parse(ctx, "in.mkv")

		var extractErr *ExtractError
		require.ErrorAs(t, err, &extractErr)
		assert.Equal(t, "in.mkv", extractErr.Path)
		assert.ErrorIs(t, err, ErrProbeFailed)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "in.mkv")
	})

	t.Run("Should report undecodable output as probe failure", func(t *testing.T) {
		e := Extractor{Prober: &fakeProber{streams: []byte("{")}}
		_, err := e.Parse(ctx, "in.mkv")
		assert.ErrorIs(t, err, ErrProbeFailed)
	})

	t.Run("Should report missing video stream", func(t *testing.T) {
		e := Extractor{Prober: &fakeProber{streams: fixture(t, "no_streams.json")}}
		_, err := e.Parse(ctx, "in.mka")
		assert.ErrorIs(t, err, ErrNoStreams)
		assert.NotErrorIs(t, err, ErrProbeFailed)
	})
}

func Test_ParseChaptersJSON(t *testing.T) {
	got, err := ParseChaptersJSON(fixture(t, "chapters.json"))
	require.NoError(t, err)

	want := []metadata.Chapter{
		{Start: 0, Title: "Intro"},
		{Start: 90 * time.Second, Title: "Main"},
		{Start: time.Hour + 2*time.Minute + 3500*time.Millisecond, Title: "Chapter 03"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chapters mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractor_ExtractChapters(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		prober *fakeProber
		want   int
	}{
		"Chapters present": {
			prober: &fakeProber{chapters: fixture(t, "chapters.json")},
			want:   3,
		},
		"No chapters": {
			prober: &fakeProber{chapters: fixture(t, "no_chapters.json")},
		},
		"Prober failure is not an error": {
			prober: &fakeProber{err: errors.New("boom")},
		},
		"Garbage is not an error": {
			prober: &fakeProber{chapters: []byte("[")},
		},
		"Bad start time is not an error": {
			prober: &fakeProber{chapters: []byte(`{"chapters":[{"start":"x","time_base":"1/1000"}]}`)},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := Extractor{Prober: tc.prober}
			got := e.ExtractChapters(ctx, "in.mkv")
			assert.Len(t, got, tc.want)
			if tc.want == 0 {
				assert.Nil(t, got)
			}
		})
	}
}

func Test_probeValue(t *testing.T) {
	tests := map[string]struct {
		value   probeValue
		want    float64
		wantErr bool
	}{
		"rational":         {value: "35400/50000", want: 0.708},
		"decimal":          {value: "0.005", want: 0.005},
		"integer":          {value: "1000", want: 1000},
		"zero denominator": {value: "1/0", wantErr: true},
		"empty":            {value: "", wantErr: true},
		"garbage":          {value: "abc/10", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.value.Rational()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}
