// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/evolution-gaming/hdrcopier/internal/logging"
	"github.com/evolution-gaming/hdrcopier/internal/lw"
)

// Keep at most this much of ffprobe's stderr for error reporting.
const stderrLimit = 64 * 1024

// Prober is the external media prober capability. Both methods return the
// prober's raw JSON document.
type Prober interface {
	// ProbeStreams reports the primary video stream along with its first frame.
	ProbeStreams(ctx context.Context, path string) ([]byte, error)
	// ProbeChapters reports the chapters of a container.
	ProbeChapters(ctx context.Context, path string) ([]byte, error)
}

// Make sure Ffprobe implements Prober interface.
var _ Prober = (*Ffprobe)(nil)

// Ffprobe is a Prober backed by ffprobe executable.
type Ffprobe struct {
	// Path to ffprobe executable, "ffprobe" from $PATH if empty.
	Path string
}

// ProbeStreams implements Prober.
//
// Mastering display and content light level metadata are stream side data in
// Matroska, but only frame side data (SEI) for e.g. HEVC in MP4. Hence the first
// frame is read as well.
func (f *Ffprobe) ProbeStreams(ctx context.Context, path string) ([]byte, error) {
	return f.run(ctx,
		"-select_streams", "V:0",
		"-show_streams",
		"-show_frames",
		"-read_intervals", "%+#1",
		path,
	)
}

// ProbeChapters implements Prober.
func (f *Ffprobe) ProbeChapters(ctx context.Context, path string) ([]byte, error) {
	return f.run(ctx, "-show_chapters", path)
}

func (f *Ffprobe) run(ctx context.Context, args ...string) ([]byte, error) {
	exe := f.Path
	if exe == "" {
		exe = "ffprobe"
	}
	args = append([]string{"-v", "error", "-print_format", "json"}, args...)

	var stderr bytes.Buffer
	limited := lw.LimitWriter(&stderr, stderrLimit)
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stderr = limited
	logging.Debugf("Running: %s", cmd)

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			if limited.Truncated() {
				msg += " (truncated)"
			}
			return nil, fmt.Errorf("ffprobe: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("ffprobe: %w", err)
	}
	return out, nil
}
