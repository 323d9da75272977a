// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mux writes color metadata and chapters onto a copy of a target file
// by means of an external muxer.
package mux

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/evolution-gaming/hdrcopier/internal/hdr"
	"github.com/evolution-gaming/hdrcopier/internal/logging"
	"github.com/evolution-gaming/hdrcopier/internal/metadata"
)

// Applier applies metadata onto a single track of the target.
type Applier struct {
	Muxer Muxer
	// mkvmerge track ID of the video track in the target.
	TrackID int
}

// NewApplier creates an Applier backed by mkvmerge at given path.
func NewApplier(mkvmergePath string, trackID int) *Applier {
	return &Applier{Muxer: &Mkvmerge{Path: mkvmergePath}, TrackID: trackID}
}

// Options returns muxer options that apply m and chapters from chaptersFile
// (if not empty).
func (a *Applier) Options(m metadata.Metadata, chaptersFile string) []string {
	opts := metadata.Args(m, hdr.Mkvmerge, a.TrackID)
	if chaptersFile != "" {
		opts = append(opts, "--no-chapters", "--chapters", chaptersFile)
	}
	return opts
}

// Apply writes target with metadata m and chapters applied to output. Output
// is replaced only when muxing succeeds.
func (a *Applier) Apply(ctx context.Context, m metadata.Metadata, target, output string, chapters []metadata.Chapter) error {
	var chaptersFile string
	if len(chapters) > 0 {
		f, err := writeChapterFile(chapters)
		if err != nil {
			return &ApplyError{Output: output, Kind: ErrIO, Err: err}
		}
		defer removeFile(f)
		chaptersFile = f
	}

	tmp, mode, err := tempSibling(output)
	if err != nil {
		return &ApplyError{Output: output, Kind: ErrIO, Err: err}
	}
	// No-op once renamed.
	defer removeFile(tmp)

	if err := a.Muxer.Mux(ctx, target, tmp, a.Options(m, chaptersFile)); err != nil {
		return &ApplyError{Output: output, Kind: ErrMuxFailed, Err: err}
	}
	// The muxer may have recreated the file with its own permissions.
	if err := os.Chmod(tmp, mode); err != nil {
		return &ApplyError{Output: output, Kind: ErrIO, Err: err}
	}
	if err := os.Rename(tmp, output); err != nil {
		return &ApplyError{Output: output, Kind: ErrIO, Err: err}
	}
	return nil
}

// Attempts at finding an unused temporary name.
const tempAttempts = 100

// tempSibling reserves a temporary file next to output so that the final
// rename stays within one filesystem. It also returns the permissions output
// should end up with: those of an existing output, otherwise the default for
// a new file (0666 less umask).
func tempSibling(output string) (string, fs.FileMode, error) {
	dir := filepath.Dir(output)
	for i := 0; i < tempAttempts; i++ {
		name := filepath.Join(dir, ".hdrcopier-"+strconv.FormatUint(uint64(rand.Uint32()), 36)+".mkv")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", 0, fmt.Errorf("create temporary output: %w", err)
		}
		fi, err := f.Stat()
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			removeFile(name)
			return "", 0, fmt.Errorf("create temporary output: %w", err)
		}
		mode := fi.Mode().Perm()
		if ofi, err := os.Stat(output); err == nil {
			mode = ofi.Mode().Perm()
		}
		return name, mode, nil
	}
	return "", 0, fmt.Errorf("create temporary output in %s: %w", dir, fs.ErrExist)
}

// writeChapterFile stores chapters in OGM simple chapter format.
func writeChapterFile(chapters []metadata.Chapter) (string, error) {
	f, err := os.CreateTemp("", "hdrcopier-chapters-*.txt")
	if err != nil {
		return "", fmt.Errorf("create chapter file: %w", err)
	}
	if err := WriteOGMChapters(f, chapters); err != nil {
		f.Close()
		removeFile(f.Name())
		return "", fmt.Errorf("write chapter file: %w", err)
	}
	if err := f.Close(); err != nil {
		removeFile(f.Name())
		return "", fmt.Errorf("write chapter file: %w", err)
	}
	return f.Name(), nil
}

// Line breaks would end the NAME entry early.
var titleReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// WriteOGMChapters writes chapters in the OGM simple chapter format understood
// by mkvmerge.
func WriteOGMChapters(w io.Writer, chapters []metadata.Chapter) error {
	bw := bufio.NewWriter(w)
	for i, c := range chapters {
		fmt.Fprintf(bw, "CHAPTER%02d=%s\n", i+1, metadata.FormatTimestamp(c.Start))
		fmt.Fprintf(bw, "CHAPTER%02dNAME=%s\n", i+1, titleReplacer.Replace(c.Title))
	}
	return bw.Flush()
}

func removeFile(name string) {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		logging.Warnf("Unable to remove %s: %s", name, err)
	}
}
