// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tools locates external executables.
package tools

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/evolution-gaming/hdrcopier/internal/logging"
)

var (
	// ErrNotFound is returned when executable can not be located.
	ErrNotFound = errors.New("executable not found")
	// ErrInvalidOverride is returned when override variable points to nothing.
	ErrInvalidOverride = errors.New("overridden executable does not exist")
)

// Environment variables overriding executable locations.
const (
	FfprobeEnv  = "HDRCOPIER_FFPROBE"
	MkvmergeEnv = "HDRCOPIER_MKVMERGE"
)

// FindTool will find tool executable in $PATH with possibility to override it
// via environment variable. An override that does not exist is an error rather
// than a reason to fall back to $PATH.
func FindTool(exeName, overrideEnvVar string) (string, error) {
	// First check for executable in case it's overridden via env variable.
	if overrideEnvVar != "" {
		if p := os.Getenv(overrideEnvVar); p != "" {
			if _, err := os.Stat(p); err != nil {
				return "", fmt.Errorf("%s=%s: %w", overrideEnvVar, p, ErrInvalidOverride)
			}
			logging.Debugf("Using %s=%s", overrideEnvVar, p)
			return p, nil
		}
	}

	// Look for executable in $PATH.
	if p, err := exec.LookPath(exeName); err == nil {
		return p, nil
	}

	// So we did not find any traces of executable - error out!
	return "", fmt.Errorf("%s: %w", exeName, ErrNotFound)
}

// FfprobePath locates ffprobe.
func FfprobePath() (string, error) {
	return FindTool("ffprobe", FfprobeEnv)
}

// MkvmergePath locates mkvmerge.
func MkvmergePath() (string, error) {
	return FindTool("mkvmerge", MkvmergeEnv)
}
