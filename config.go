// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Application configuration structures.

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/evolution-gaming/hdrcopier/internal/logging"
	"github.com/evolution-gaming/hdrcopier/internal/tools"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config represent application configuration.
type Config struct {
	FfprobePath  ConfigVal[string] `json:"ffprobe_path"`
	MkvmergePath ConfigVal[string] `json:"mkvmerge_path"`
}

// Verify will check that configuration is valid for copying e.g. both prober
// and muxer are usable.
func (c *Config) Verify() error {
	msgs := []string{}
	if err := c.VerifyProber(); err != nil {
		msgs = append(msgs, "invalid ffprobe path")
	}
	// Check that mkvmerge exists.
	if !fileExists(c.MkvmergePath.Value()) {
		msgs = append(msgs, "invalid mkvmerge path")
	}

	if len(msgs) != 0 {
		return fmt.Errorf("%s: %w", strings.Join(msgs, ", "), ErrInvalidConfig)
	}
	return nil
}

// VerifyProber will check that ffprobe is usable, which is all that is needed
// for inspecting files.
func (c *Config) VerifyProber() error {
	if !fileExists(c.FfprobePath.Value()) {
		return fmt.Errorf("invalid ffprobe path: %w", ErrInvalidConfig)
	}
	return nil
}

// loadDefaultConfig will create a default configuration.
//
// Executables are looked up via tools package: environment override first, then
// $PATH. An executable that can not be found leaves its option unset, Verify()
// reports it when it is actually needed.
func loadDefaultConfig() Config {
	var cfg Config

	if p, err := tools.FfprobePath(); err == nil {
		cfg.FfprobePath = NewConfigVal(p)
	} else {
		logLookupFailure(err)
	}

	if p, err := tools.MkvmergePath(); err == nil {
		cfg.MkvmergePath = NewConfigVal(p)
	} else {
		logLookupFailure(err)
	}

	return cfg
}

// A broken override is a user mistake worth a warning, a missing executable
// may not be needed at all.
func logLookupFailure(err error) {
	if errors.Is(err, tools.ErrInvalidOverride) {
		logging.Warnf("DefaultConfig: %s", err)
		return
	}
	logging.Debugf("DefaultConfig: %s", err)
}

// LoadConfig will return application configuration. This is main function to
// use for config loading.
func LoadConfig() Config {
	return loadDefaultConfig()
}

// In order to tell unset options (executable not found) from options explicitly
// set to the zero value of their type Config fields are wrapped.
// NewConfigVal is constructor for ConfigVal. It will wrap its argument into ConfigVal.
func NewConfigVal[T any](v T) ConfigVal[T] {
	return ConfigVal[T]{v: &v}
}

// ConfigVal is a wrapper for Config field value.
type ConfigVal[T any] struct {
	// Store wrapped value as pointer in order to have ability to distinguish between
	// unspecified ConfigVal and a value that is the same as zero value for wrapped type.
	v *T
}

// Value will return wrapped value.
//
// In case field has not been defined e.g. is zero value, then appropriate zero value of
// wrapped type will be returned.
func (o *ConfigVal[T]) Value() T {
	if o.IsNil() {
		var v T
		return v
	}
	return *o.v
}

// IsNil check if wrapped value is nil.
func (o *ConfigVal[T]) IsNil() bool {
	// Zero value for pointer type is nil.
	return o.v == nil
}

// MarshalJSON implements json.Marshaler interface for ConfigVal. Unset values
// are rendered as null.
func (o ConfigVal[T]) MarshalJSON() ([]byte, error) {
	if o.IsNil() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value())
}

func CreateDumpConfCommand() *DumpConfApp {
	longHelp := `Command "dump-conf" will print actual application configuration taking into account
environment overrides and auto-detected executables.

Environment:

	HDRCOPIER_FFPROBE     path to ffprobe executable
	HDRCOPIER_MKVMERGE    path to mkvmerge executable

Examples:

	hdrcopier dump-conf
	HDRCOPIER_MKVMERGE=/opt/mkvtoolnix/mkvmerge hdrcopier dump-conf`

	app := &DumpConfApp{
		fs:  flag.NewFlagSet("dump-conf", flag.ContinueOnError),
		gf:  globalFlags{},
		out: os.Stdout,
	}
	app.gf.Register(app.fs)
	app.fs.Usage = func() {
		printSubCommandUsage(longHelp, app.fs)
	}

	return app
}

// Make sure App implements Commander interface.
var _ Commander = (*DumpConfApp)(nil)

// DumpConfApp is subcommand application context that implements Commander interface.
// Although this is very simple application, but for consistency sake is is implemented in
// similar style as other subcommands.
type DumpConfApp struct {
	out io.Writer
	fs  *flag.FlagSet
	gf  globalFlags
}

// Run is main entry point into DumpConfApp execution.
func (d *DumpConfApp) Run(args []string) error {
	if err := d.fs.Parse(args); err != nil {
		return usageError("usage error")
	}
	d.gf.Apply()

	cfg := LoadConfig()

	enc := json.NewEncoder(d.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return &AppError{exitCode: 1, err: err}
	}

	// Also, report if configuration is valid.
	if err := cfg.Verify(); err != nil {
		return &AppError{exitCode: 1, msg: "configuration validation", err: err}
	}

	return nil
}

func (d *DumpConfApp) Name() string {
	return d.fs.Name()
}

func (d *DumpConfApp) Help() {
	d.fs.Usage()
}
