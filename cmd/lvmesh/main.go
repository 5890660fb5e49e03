// SPDX-License-Identifier: MIT

// Command lvmesh subdivides polygon meshes stored as Wavefront OBJ files.
//
// Usage:
//
//	lvmesh subdivide in.obj -o out.obj --levels 2
//	lvmesh info in.obj
//	lvmesh solid cube -o cube.obj --scale 0.5
//
// A path of "-" reads stdin or writes stdout. --verbose enables debug logs on
// stderr.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvmesh:", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}

// newLogger builds the stderr text logger used by every subcommand.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
