// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/evolution-gaming/hdrcopier/internal/logging"
)

type globalFlags struct {
	Debug bool
	Quiet bool
}

func (g *globalFlags) Register(fs *flag.FlagSet) {
	fs.BoolVar(&g.Debug, "debug", false, "Enable debug logging (optional)")
	fs.BoolVar(&g.Quiet, "quiet", false, "Only log warnings (optional)")
}

// Apply configures logging according to flags.
func (g *globalFlags) Apply() {
	switch {
	case g.Debug:
		logging.EnableDebugLogger()
	case g.Quiet:
		logging.Quiet()
	}
}
