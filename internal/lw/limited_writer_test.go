// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lw_test

import (
	"bytes"
	"io"
	"testing"
	"testing/quick"

	"github.com/evolution-gaming/hdrcopier/internal/lw"
)

func TestLimitedWriterImplementsWriter(t *testing.T) {
	var _ io.Writer = &lw.LimitedWriter{}
}

func TestLimitedWriterProp(t *testing.T) {
	// How many iterations quick.Check should run.
	iterations := 1 * 1000
	qCfg := &quick.Config{MaxCount: iterations}

	writerFixture := func(size uint) (*lw.LimitedWriter, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		return lw.LimitWriter(buf, size), buf
	}

	t.Run(
		"Written data to large enough buffer should be equal source data",
		func(t *testing.T) {
			fn := func(b []byte) bool {
				// Large enough buffer to hold all data.
				w, buf := writerFixture(uint(len(b)))
				n, err := w.Write(b)
				if err != nil {
					return false
				}
				return n == len(b) && bytes.Equal(b, buf.Bytes()) && !w.Truncated()
			}
			if err := quick.Check(fn, qCfg); err != nil {
				t.Error(err)
			}
		})

	t.Run(
		"Overflowing write should keep prefix and report full length",
		func(t *testing.T) {
			fn := func(b []byte, limit uint8) bool {
				w, buf := writerFixture(uint(limit))
				n, err := w.Write(b)
				if err != nil || n != len(b) {
					return false
				}
				if len(b) > int(limit) {
					return w.Truncated() && bytes.Equal(b[:limit], buf.Bytes())
				}
				return !w.Truncated() && bytes.Equal(b, buf.Bytes())
			}
			if err := quick.Check(fn, qCfg); err != nil {
				t.Error(err)
			}
		})

	t.Run(
		"Multiple writes never exceed the limit",
		func(t *testing.T) {
			fn := func(b []byte, c uint8, limit uint16) bool {
				w, buf := writerFixture(uint(limit))
				for i := c; i > 0; i-- {
					n, err := w.Write(b)
					if err != nil || n != len(b) {
						return false
					}
				}
				total := len(b) * int(c)
				if total > int(limit) {
					return buf.Len() == int(limit) && w.Truncated()
				}
				return buf.Len() == total && !w.Truncated()
			}
			if err := quick.Check(fn, qCfg); err != nil {
				t.Error(err)
			}
		})
}
