// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

// emacsctl manages named local Emacs servers over their Unix domain
// sockets: start, list, kill, connect, and supervise.
package main

import (
	"fmt"
	"os"

	"github.com/barefootcode/emacsctl/cmd/emacsctl/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that already produced their own output (keepalive
		// propagating the daemon's exit) return an error carrying the
		// desired exit code. Don't print a redundant "error:" line for
		// those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
