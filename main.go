// Copyright ©2022 Evolution. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Main entrypoint for hdrcopier application

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/evolution-gaming/hdrcopier/internal/logging"
)

const usage = `hdrcopier - copy HDR and color metadata between video files

Usage:

    hdrcopier <command> [arguments] [-h|-help]

The commands are:

    copy        copy color metadata (and chapters) from input onto target
    show        print color metadata of a file
    dump-conf   output actual application configuration
    version     print hdrcopier version and exit

Use "hdrcopier <command> -h|-help" for more information about command.`

// root represents top level of hdrcopier command, including dispatching to subcommands.
func root(args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, usage)
		return usageError("please, specify command")
	}

	switch args[0] {
	case "copy":
		return CreateCopyCommand().Run(args[1:])
	case "show":
		return CreateShowCommand().Run(args[1:])
	case "dump-conf", "dump":
		return CreateDumpConfCommand().Run(args[1:])
	case "version":
		printVersion(os.Stdout)
		return nil
	case "-h", "-help", "--help", "help", "?":
		fmt.Println(usage)
		return nil
	default:
		// No commands were matched at this point, so bail out with default usage message.
		fmt.Fprintln(os.Stderr, usage)
		return usageError(fmt.Sprintf("unknown command/flag %q", args[0]))
	}
}

func main() {
	// Enable info logger by default and early enough.
	logging.EnableInfoLogger()

	if err := root(os.Args[1:]); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		var appErr *AppError
		if errors.As(err, &appErr) {
			os.Exit(appErr.ExitCode())
		}
		os.Exit(1)
	}
	os.Exit(0)
}
