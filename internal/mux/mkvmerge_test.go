// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mux

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMkvmerge writes a shell script standing in for mkvmerge and returns its path.
func fakeMkvmerge(t *testing.T, script string) string {
	t.Helper()
	exe := filepath.Join(t.TempDir(), "mkvmerge")
	err := os.WriteFile(exe, []byte("#!/bin/sh\n"+script+"\n"), 0o755)
	require.NoError(t, err)
	return exe
}

func TestMkvmerge_Mux(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass output, options and target in order", func(t *testing.T) {
		argsFile := filepath.Join(t.TempDir(), "args")
		exe := fakeMkvmerge(t, `for a in "$@"; do echo "$a"; done > `+argsFile)
		m := Mkvmerge{Path: exe}

		err := m.Mux(ctx, "target.mkv", "out.mkv", []string{"--max-content-light", "0:1000"})
		require.NoError(t, err)

		b, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"-o", "out.mkv", "--max-content-light", "0:1000", "target.mkv"},
			strings.Fields(string(b)))
	})

	t.Run("Warnings are not failures", func(t *testing.T) {
		exe := fakeMkvmerge(t, `echo "Warning: something odd"; exit 1`)
		m := Mkvmerge{Path: exe}
		assert.NoError(t, m.Mux(ctx, "target.mkv", "out.mkv", nil))
	})

	t.Run("Should return MuxError on failure", func(t *testing.T) {
		exe := fakeMkvmerge(t, `echo "Error: The file 'target.mkv' could not be opened"; exit 2`)
		m := Mkvmerge{Path: exe}

		err := m.Mux(ctx, "target.mkv", "out.mkv", nil)
		var muxErr *MuxError
		require.ErrorAs(t, err, &muxErr)
		assert.Equal(t, 2, muxErr.ExitCode)
		assert.Contains(t, muxErr.Stderr, "could not be opened")
		assert.NotContains(t, muxErr.Stderr, "(truncated)")
	})

	t.Run("Should mark truncated output", func(t *testing.T) {
		exe := fakeMkvmerge(t, `head -c 70000 /dev/zero | tr '\0' x; exit 2`)
		m := Mkvmerge{Path: exe}

		err := m.Mux(ctx, "target.mkv", "out.mkv", nil)
		var muxErr *MuxError
		require.ErrorAs(t, err, &muxErr)
		assert.True(t, strings.HasSuffix(muxErr.Stderr, " (truncated)"))
		assert.Equal(t, outputLimit+len(" (truncated)"), len(muxErr.Stderr))
	})

	t.Run("Should fail for missing executable", func(t *testing.T) {
		m := Mkvmerge{Path: filepath.Join(t.TempDir(), "missing")}
		err := m.Mux(ctx, "target.mkv", "out.mkv", nil)
		require.Error(t, err)
		var muxErr *MuxError
		assert.False(t, errors.As(err, &muxErr))
	})
}
