// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// hdrcopier tool's copy subcommand implementation.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/evolution-gaming/hdrcopier/internal/logging"
	"github.com/evolution-gaming/hdrcopier/internal/metadata"
	"github.com/evolution-gaming/hdrcopier/internal/mux"
	"github.com/evolution-gaming/hdrcopier/internal/probe"
	"github.com/evolution-gaming/hdrcopier/internal/prompt"
)

// Make sure CopyApp implements Commander interface.
var _ Commander = (*CopyApp)(nil)

// CopyApp is copy subcommand context that implements Commander interface.
type CopyApp struct {
	// Asks before overwriting existing output
	confirmer prompt.Confirmer
	// Progress and prompt output
	errOut io.Writer
	// FlagSet instance
	fs *flag.FlagSet
	// Positional arguments
	inFile     string
	targetFile string
	outFile    string
	// Copy chapters as well
	flChapters bool
	// Overwrite output without asking
	flForce bool
	// mkvmerge track ID of the video track in target
	flTrack int
	// Global flags
	gf globalFlags
}

// CreateCopyCommand will create Commander instance from CopyApp.
func CreateCopyCommand() *CopyApp {
	longHelp := `Subcommand "copy" will copy color and HDR metadata from <input> onto the video track
of <target> and write the result to <output> (Matroska). Streams of <target> are not
re-encoded. With -chapters the chapters of <input> replace those of <target>.

Usage:

  hdrcopier copy [flags] <input> <target> <output>

Examples:

  hdrcopier copy source.mkv encode.mkv final.mkv
  hdrcopier copy -chapters -force source.mkv encode.hevc final.mkv`

	app := &CopyApp{
		confirmer: prompt.NewTerminal(),
		errOut:    os.Stderr,
		fs:        flag.NewFlagSet("copy", flag.ContinueOnError),
		gf:        globalFlags{},
	}
	app.gf.Register(app.fs)
	app.fs.BoolVar(&app.flChapters, "chapters", false, "Copy chapters from input as well")
	app.fs.BoolVar(&app.flForce, "force", false, "Overwrite existing output without asking")
	app.fs.IntVar(&app.flTrack, "track", 0, "Track ID of the video track in target as reported by \"mkvmerge -i\"")
	app.fs.Usage = func() {
		printSubCommandUsage(longHelp, app.fs)
	}

	return app
}

func (a *CopyApp) Name() string {
	return a.fs.Name()
}

func (a *CopyApp) Help() {
	a.fs.Usage()
}

// init will do App state initialization.
func (a *CopyApp) init(args []string) error {
	positional, err := parseInterleaved(a.fs, args)
	if err != nil {
		return usageError(fmt.Sprintf("%s usage error", a.Name()))
	}
	a.gf.Apply()

	if len(positional) != 3 {
		a.Help()
		return usageError(fmt.Sprintf("expected <input> <target> <output>, got %d argument(s)", len(positional)))
	}
	a.inFile, a.targetFile, a.outFile = positional[0], positional[1], positional[2]

	if a.flTrack < 0 {
		return usageError("track ID can not be negative")
	}

	return nil
}

// checkFiles verifies that input and target exist and that output may be written.
func (a *CopyApp) checkFiles() error {
	if !fileExists(a.inFile) {
		return &AppError{exitCode: 1, msg: fmt.Sprintf("input %s", a.inFile), err: ErrFileNotFound}
	}
	if !fileExists(a.targetFile) {
		return &AppError{exitCode: 1, msg: fmt.Sprintf("target %s", a.targetFile), err: ErrFileNotFound}
	}

	fi, err := os.Stat(a.outFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return &AppError{exitCode: 1, msg: fmt.Sprintf("output %s", a.outFile), err: err}
	case fi.IsDir():
		return &AppError{
			exitCode: 1,
			msg:      fmt.Sprintf("output %s is a directory", a.outFile),
			err:      ErrOutputConflict,
		}
	case a.flForce:
		logging.Debugf("Overwriting %s", a.outFile)
		return nil
	}

	ok, err := a.confirmer.Confirm(fmt.Sprintf("Output %s already exists. Overwrite?", a.outFile))
	if errors.Is(err, prompt.ErrNotInteractive) {
		logging.Warnf("Not asking to overwrite %s, use -force to overwrite without asking", a.outFile)
	} else if err != nil {
		return &AppError{exitCode: 1, msg: "overwrite confirmation", err: err}
	}
	if !ok {
		return &AppError{
			exitCode: 1,
			msg:      fmt.Sprintf("output %s exists, not overwriting", a.outFile),
			err:      ErrOutputConflict,
		}
	}
	return nil
}

// Run is main entry point into CopyApp execution.
func (a *CopyApp) Run(args []string) error {
	if err := a.init(args); err != nil {
		return err
	}
	if err := a.checkFiles(); err != nil {
		return err
	}

	cfg := LoadConfig()
	if err := cfg.Verify(); err != nil {
		return &AppError{exitCode: 1, msg: "configuration validation", err: err}
	}

	ctx := context.Background()
	extractor := probe.NewExtractor(cfg.FfprobePath.Value())

	m, err := extractor.Parse(ctx, a.inFile)
	if err != nil {
		return &AppError{exitCode: 1, err: err}
	}
	if m.IsEmpty() {
		logging.Warnf("No color metadata found in %s", a.inFile)
	}
	logging.Debugf("Metadata of %s: %+v", a.inFile, m)

	var chapters []metadata.Chapter
	if a.flChapters {
		chapters = extractor.ExtractChapters(ctx, a.inFile)
		logging.Infof("Found %d chapter(s) in %s", len(chapters), a.inFile)
	}

	applier := mux.NewApplier(cfg.MkvmergePath.Value(), a.flTrack)
	logging.Infof("Writing %s", a.outFile)
	if err := applier.Apply(ctx, m, a.targetFile, a.outFile, chapters); err != nil {
		return &AppError{exitCode: 1, err: err}
	}

	fmt.Fprintln(a.errOut, "Done!")
	return nil
}
