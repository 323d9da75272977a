// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package prompt asks the user for confirmation on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when there is no terminal to ask on.
var ErrNotInteractive = errors.New("stdin is not a terminal")

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Make sure Terminal implements Confirmer interface.
var _ Confirmer = (*Terminal)(nil)

// Terminal asks on In and writes the question to Out. Answer defaults to no.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	// Skip terminal detection on In.
	AssumeInteractive bool
}

// NewTerminal creates a Terminal over process stdin and stderr.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr}
}

// Confirm implements Confirmer.
func (t *Terminal) Confirm(question string) (bool, error) {
	if !t.AssumeInteractive && !isTerminal(t.In) {
		return false, ErrNotInteractive
	}
	fmt.Fprintf(t.Out, "%s [y/N] ", question)

	line, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
