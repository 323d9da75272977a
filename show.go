// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// hdrcopier tool's show subcommand implementation.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/evolution-gaming/hdrcopier/internal/hdr"
	"github.com/evolution-gaming/hdrcopier/internal/logging"
	"github.com/evolution-gaming/hdrcopier/internal/metadata"
	"github.com/evolution-gaming/hdrcopier/internal/probe"
)

// Make sure ShowApp implements Commander interface.
var _ Commander = (*ShowApp)(nil)

// ShowApp is show subcommand context that implements Commander interface.
type ShowApp struct {
	out io.Writer
	// FlagSet instance
	fs     *flag.FlagSet
	inFile string
	// Output format, human readable if empty
	flFormat   string
	flChapters bool
	dialect    hdr.Dialect
	gf         globalFlags
}

// CreateShowCommand will create Commander instance from ShowApp.
func CreateShowCommand() *ShowApp {
	dialects := make([]string, 0, len(hdr.Dialects))
	for _, d := range hdr.Dialects {
		dialects = append(dialects, d.String())
	}

	longHelp := `Subcommand "show" will print color and HDR metadata of <input>. By default metadata is
printed in human readable form, with -format it is printed as encoder/muxer options
ready to be pasted into a command line.

Usage:

  hdrcopier show [flags] <input>

Examples:

  hdrcopier show source.mkv
  hdrcopier show -format x265 source.mkv
  hdrcopier show -chapters source.mkv`

	app := &ShowApp{
		out: os.Stdout,
		fs:  flag.NewFlagSet("show", flag.ContinueOnError),
		gf:  globalFlags{},
	}
	app.gf.Register(app.fs)
	app.fs.StringVar(&app.flFormat, "format", "",
		fmt.Sprintf("Print as options of given tool: %s", strings.Join(dialects, ", ")))
	app.fs.StringVar(&app.flFormat, "f", "", "Shorthand for -format")
	app.fs.BoolVar(&app.flChapters, "chapters", false, "List chapters as well (human readable format only)")
	app.fs.Usage = func() {
		printSubCommandUsage(longHelp, app.fs)
	}

	return app
}

func (a *ShowApp) Name() string {
	return a.fs.Name()
}

func (a *ShowApp) Help() {
	a.fs.Usage()
}

// init will do App state initialization.
func (a *ShowApp) init(args []string) error {
	positional, err := parseInterleaved(a.fs, args)
	if err != nil {
		return usageError(fmt.Sprintf("%s usage error", a.Name()))
	}
	a.gf.Apply()

	// Format is checked before anything else is looked at.
	a.dialect, err = hdr.ParseDialect(a.flFormat)
	if err != nil {
		return &AppError{exitCode: 2, err: err}
	}

	if len(positional) != 1 {
		a.Help()
		return usageError(fmt.Sprintf("expected <input>, got %d argument(s)", len(positional)))
	}
	a.inFile = positional[0]

	if a.flChapters && a.dialect != hdr.Human {
		return usageError("-chapters can not be combined with -format")
	}

	return nil
}

// Run is main entry point into ShowApp execution.
func (a *ShowApp) Run(args []string) error {
	if err := a.init(args); err != nil {
		return err
	}

	if !fileExists(a.inFile) {
		return &AppError{exitCode: 1, msg: fmt.Sprintf("input %s", a.inFile), err: ErrFileNotFound}
	}

	cfg := LoadConfig()
	if err := cfg.VerifyProber(); err != nil {
		return &AppError{exitCode: 1, msg: "configuration validation", err: err}
	}

	ctx := context.Background()
	extractor := probe.NewExtractor(cfg.FfprobePath.Value())

	m, err := extractor.Parse(ctx, a.inFile)
	if err != nil {
		return &AppError{exitCode: 1, err: err}
	}
	if m.IsEmpty() {
		logging.Infof("No color metadata found in %s", a.inFile)
	}
	if err := metadata.Print(a.out, m, a.dialect); err != nil {
		return &AppError{exitCode: 1, err: err}
	}

	if !a.flChapters {
		return nil
	}
	chapters := extractor.ExtractChapters(ctx, a.inFile)
	if len(chapters) == 0 {
		logging.Infof("No chapters found in %s", a.inFile)
		return nil
	}
	fmt.Fprintln(a.out, "\nChapters:")
	if err := metadata.PrintChapters(a.out, chapters); err != nil {
		return &AppError{exitCode: 1, err: err}
	}
	return nil
}
