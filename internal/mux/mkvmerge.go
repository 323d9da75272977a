// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mux

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/evolution-gaming/hdrcopier/internal/logging"
	"github.com/evolution-gaming/hdrcopier/internal/lw"
)

// Keep at most this much of mkvmerge's output for error reporting.
const outputLimit = 64 * 1024

// mkvmerge exit status for "completed with warnings".
const exitWarnings = 1

// Muxer is the external muxer capability: remux target into output while
// applying options to it.
type Muxer interface {
	Mux(ctx context.Context, target, output string, options []string) error
}

// MuxError is returned when the muxer exits unsuccessfully.
type MuxError struct {
	ExitCode int
	// Diagnostic output of the muxer, possibly truncated.
	Stderr string
}

func (e *MuxError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("mkvmerge exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("mkvmerge exited with status %d: %s", e.ExitCode, e.Stderr)
}

// Make sure Mkvmerge implements Muxer interface.
var _ Muxer = (*Mkvmerge)(nil)

// Mkvmerge is a Muxer backed by mkvmerge executable.
type Mkvmerge struct {
	// Path to mkvmerge executable, "mkvmerge" from $PATH if empty.
	Path string
}

// Mux implements Muxer.
func (m *Mkvmerge) Mux(ctx context.Context, target, output string, options []string) error {
	exe := m.Path
	if exe == "" {
		exe = "mkvmerge"
	}
	args := make([]string, 0, len(options)+3)
	args = append(args, "-o", output)
	args = append(args, options...)
	args = append(args, target)

	// mkvmerge reports errors and warnings on stdout.
	var out bytes.Buffer
	limited := lw.LimitWriter(&out, outputLimit)
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdout = limited
	cmd.Stderr = limited
	logging.Debugf("Running: %s", cmd)

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr) && exitErr.ExitCode() == exitWarnings:
		logging.Warnf("mkvmerge completed with warnings:\n%s", captured(&out, limited))
		return nil
	case errors.As(err, &exitErr):
		return &MuxError{ExitCode: exitErr.ExitCode(), Stderr: captured(&out, limited)}
	default:
		return fmt.Errorf("run mkvmerge: %w", err)
	}
}

// captured returns output collected through limited, marking dropped data.
func captured(out *bytes.Buffer, limited *lw.LimitedWriter) string {
	s := strings.TrimSpace(out.String())
	if limited.Truncated() {
		s += " (truncated)"
	}
	return s
}
