// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Reusable helpers and fixtures for tests.
package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/evolution-gaming/hdrcopier/internal/tools"
	"github.com/stretchr/testify/require"
)

// fakeTools describes fake ffprobe and mkvmerge executables and the files they
// leave behind.
type fakeTools struct {
	// Created on every ffprobe invocation
	probeMarker string
	// Arguments of last mkvmerge invocation, one per line
	muxArgs string
	// Copy of chapter file passed to mkvmerge
	muxChapters string
}

// fixFakeTools fixture creates fake ffprobe (replying with given testdata
// fixtures) and fake mkvmerge (copying target to output), and points
// configuration at them.
func fixFakeTools(t *testing.T, streamsFixture, chaptersFixture string) *fakeTools {
	t.Helper()
	dir := t.TempDir()
	ft := &fakeTools{
		probeMarker: path.Join(dir, "probed"),
		muxArgs:     path.Join(dir, "mux_args"),
		muxChapters: path.Join(dir, "mux_chapters"),
	}

	streams, err := filepath.Abs(path.Join("testdata", streamsFixture))
	require.NoError(t, err)
	chapters := "/dev/null"
	if chaptersFixture != "" {
		chapters, err = filepath.Abs(path.Join("testdata", chaptersFixture))
		require.NoError(t, err)
	}

	ffprobe := fmt.Sprintf(`#!/bin/sh
touch %q
for a in "$@"; do
	if [ "$a" = "-show_chapters" ]; then
		cat %q
		exit 0
	fi
done
cat %q
`, ft.probeMarker, chapters, streams)

	mkvmerge := fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$@" > %q
prev=""
for a in "$@"; do
	if [ "$prev" = "--chapters" ]; then
		cp "$a" %q
	fi
	prev="$a"
done
cp "$a" "$2"
`, ft.muxArgs, ft.muxChapters)

	writeExe := func(name, body string) string {
		p := path.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o755))
		return p
	}
	t.Setenv(tools.FfprobeEnv, writeExe("ffprobe", ffprobe))
	t.Setenv(tools.MkvmergeEnv, writeExe("mkvmerge", mkvmerge))

	return ft
}

// fixFile fixture creates a file with given contents in a temporary directory.
func fixFile(t *testing.T, name, contents string) string {
	t.Helper()
	p := path.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	return p
}

// fakeConfirmer answers every question the same way.
type fakeConfirmer struct {
	answer bool
	err    error
	asked  int
}

func (f *fakeConfirmer) Confirm(string) (bool, error) {
	f.asked++
	return f.answer, f.err
}
