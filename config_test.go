// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Application Config related tests.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path"
	"testing"

	"github.com/evolution-gaming/hdrcopier/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixBinDir fixture creates empty executables with given names and puts them
// (and only them) on PATH.
func fixBinDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(path.Join(dir, n), nil, 0o755))
	}
	t.Setenv("PATH", dir)
	t.Setenv(tools.FfprobeEnv, "")
	t.Setenv(tools.MkvmergeEnv, "")
	return dir
}

func Test_loadDefaultConfig(t *testing.T) {
	dir := fixBinDir(t, "ffprobe", "mkvmerge")

	c := loadDefaultConfig()
	assert.Equal(t, path.Join(dir, "ffprobe"), c.FfprobePath.Value())
	assert.Equal(t, path.Join(dir, "mkvmerge"), c.MkvmergePath.Value())
	assert.NoError(t, c.Verify(), "DefaultConfig should be valid")
}

func Test_loadDefaultConfig_Negative(t *testing.T) {
	// Messing up PATH should leave executables undetected which makes
	// configuration invalid.
	fixBinDir(t)

	c := loadDefaultConfig()
	assert.True(t, c.FfprobePath.IsNil())
	assert.True(t, c.MkvmergePath.IsNil())

	err := c.Verify()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "invalid ffprobe path, invalid mkvmerge path")
	assert.ErrorIs(t, c.VerifyProber(), ErrInvalidConfig)
}

func Test_LoadConfig_EnvOverride(t *testing.T) {
	dir := fixBinDir(t, "ffprobe", "mkvmerge")
	custom := path.Join(t.TempDir(), "my-mkvmerge")
	require.NoError(t, os.WriteFile(custom, nil, 0o755))

	t.Run("Override wins over PATH", func(t *testing.T) {
		t.Setenv(tools.MkvmergeEnv, custom)

		c := LoadConfig()
		assert.Equal(t, path.Join(dir, "ffprobe"), c.FfprobePath.Value())
		assert.Equal(t, custom, c.MkvmergePath.Value())
		assert.NoError(t, c.Verify())
	})

	t.Run("Broken override does not fall back to PATH", func(t *testing.T) {
		t.Setenv(tools.FfprobeEnv, "/non/existent/ffprobe")

		c := LoadConfig()
		assert.True(t, c.FfprobePath.IsNil())
		assert.Equal(t, path.Join(dir, "mkvmerge"), c.MkvmergePath.Value())
		assert.ErrorContains(t, c.VerifyProber(), "invalid ffprobe path")
	})
}

func Test_ConfigVal_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Config{FfprobePath: NewConfigVal("/usr/bin/ffprobe")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ffprobe_path": "/usr/bin/ffprobe", "mkvmerge_path": null}`, string(b))
}

func Test_DumpConfApp_Run(t *testing.T) {
	t.Run("Valid configuration", func(t *testing.T) {
		commandOutput := &bytes.Buffer{}
		dir := fixBinDir(t, "ffprobe", "mkvmerge")

		cmd := CreateDumpConfCommand()
		// Redirect output to buffer
		cmd.out = commandOutput

		err := cmd.Run([]string{})
		assert.NoError(t, err, "Unexpected error running dump-conf")
		assert.Contains(t, commandOutput.String(), `"mkvmerge_path": "`+path.Join(dir, "mkvmerge")+`"`)
	})

	t.Run("Invalid configuration is dumped and reported", func(t *testing.T) {
		commandOutput := &bytes.Buffer{}
		fixBinDir(t, "ffprobe")

		cmd := CreateDumpConfCommand()
		cmd.out = commandOutput

		err := cmd.Run([]string{})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Equal(t, 1, err.(*AppError).ExitCode())
		assert.Contains(t, commandOutput.String(), `"mkvmerge_path": null`)
	})
}
