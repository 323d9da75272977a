// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Tests for reusable parts of hdrcopier application and subcommand infrastructure.
package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseInterleaved(t *testing.T) {
	tests := map[string]struct {
		given      []string
		want       []string
		wantForce  bool
		wantTrack  int
		wantErrStr string
	}{
		"Flags first": {
			given:     []string{"-force", "-track", "2", "a", "b", "c"},
			want:      []string{"a", "b", "c"},
			wantForce: true,
			wantTrack: 2,
		},
		"Flags last": {
			given:     []string{"a", "b", "c", "-force"},
			want:      []string{"a", "b", "c"},
			wantForce: true,
		},
		"Flags interleaved": {
			given:     []string{"a", "-track=3", "b", "-force", "c"},
			want:      []string{"a", "b", "c"},
			wantForce: true,
			wantTrack: 3,
		},
		"Double dash ends flags": {
			given: []string{"a", "--", "-b", "-force"},
			want:  []string{"a", "-b", "-force"},
		},
		"No arguments": {
			given: []string{},
		},
		"Unknown flag": {
			given:      []string{"a", "-nope"},
			wantErrStr: "flag provided but not defined",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			force := fs.Bool("force", false, "")
			track := fs.Int("track", 0, "")

			got, err := parseInterleaved(fs, tc.given)
			if tc.wantErrStr != "" {
				assert.ErrorContains(t, err, tc.wantErrStr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantForce, *force)
			assert.Equal(t, tc.wantTrack, *track)
		})
	}
}

func Test_AppError(t *testing.T) {
	cause := errors.New("cause")

	tests := map[string]struct {
		given *AppError
		want  string
	}{
		"Message only": {
			given: &AppError{msg: "usage error", exitCode: 2},
			want:  "usage error",
		},
		"Error only": {
			given: &AppError{err: cause, exitCode: 1},
			want:  "cause",
		},
		"Message and error": {
			given: &AppError{msg: "input x.mkv", err: cause, exitCode: 1},
			want:  "input x.mkv: cause",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.given.Error())
		})
	}

	t.Run("Should unwrap", func(t *testing.T) {
		err := error(&AppError{msg: "target", err: ErrFileNotFound, exitCode: 1})
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}

func Test_root(t *testing.T) {
	tests := map[string]struct {
		args     []string
		wantCode int
	}{
		"No command":      {args: []string{}, wantCode: 2},
		"Unknown command": {args: []string{"frobnicate"}, wantCode: 2},
		"Show usage":      {args: []string{"show"}, wantCode: 2},
		"Copy usage":      {args: []string{"copy", "a"}, wantCode: 2},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := root(tc.args)
			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tc.wantCode, appErr.ExitCode())
		})
	}

	t.Run("Help and version succeed", func(t *testing.T) {
		assert.NoError(t, root([]string{"help"}))
		assert.NoError(t, root([]string{"version"}))
	})
}

func Test_versionInfo(t *testing.T) {
	assert.Equal(t, "hdrcopier (devel)", versionInfo{}.String())
	assert.Equal(t, "hdrcopier v1.2.3 abc123", versionInfo{version: "v1.2.3", revision: "abc123"}.String())
}
