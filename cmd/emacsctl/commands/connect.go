// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/barefootcode/emacsctl/cmd/emacsctl/cli"
)

func connectCommand() *cli.Command {
	var serverFlag string

	return &cli.Command{
		Name:    "connect",
		Summary: "Open a terminal-mode client session (blocking)",
		Description: `Open emacsclient -t against the chosen server, in the foreground,
with all file arguments passed through unvalidated. The command
returns when the client session ends; any client failure surfaces as
emacsclient's own output and exit status.`,
		Usage: "emacsctl connect [flags] [files...]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("connect", pflag.ContinueOnError)
			flagSet.StringVar(&serverFlag, "server", "", `server to connect to (default from config, "server")`)
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Open a terminal frame on the default server", Command: "emacsctl connect"},
			{Description: "Edit a file on the git server", Command: "emacsctl connect --server git COMMIT_EDITMSG"},
		},
		Run: func(args []string) error {
			tk, err := newToolkit("")
			if err != nil {
				return err
			}
			isTerminal := term.IsTerminal(int(os.Stdin.Fd()))
			return runConnect(tk, pickServer(tk, serverFlag), isTerminal, args)
		},
	}
}

func openCommand() *cli.Command {
	var serverFlag string

	return &cli.Command{
		Name:    "open",
		Summary: "Open files in a detached client (non-blocking)",
		Description: `Open emacsclient -n against the chosen server and return immediately.
With file arguments the files are opened in an existing frame. With no
arguments a new frame is created and focused.`,
		Usage: "emacsctl open [flags] [files...]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("open", pflag.ContinueOnError)
			flagSet.StringVar(&serverFlag, "server", "", `server to connect to (default from config, "server")`)
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Pop up a fresh focused frame", Command: "emacsctl open"},
			{Description: "Open two files without blocking", Command: "emacsctl open notes.org todo.org"},
		},
		Run: func(args []string) error {
			tk, err := newToolkit("")
			if err != nil {
				return err
			}
			return runOpen(tk, pickServer(tk, serverFlag), args)
		},
	}
}

// pickServer resolves the --server flag against the configured default.
func pickServer(tk *toolkit, serverFlag string) string {
	if serverFlag != "" {
		return serverFlag
	}
	return tk.config.DefaultServer
}

func runConnect(tk *toolkit, name string, isTerminal bool, args []string) error {
	if !isTerminal {
		return fmt.Errorf("stdin is not a terminal; use 'emacsctl open' for a detached client")
	}
	return tk.client.ConnectTerminal(tk.registry.SocketPath(name), args...)
}

func runOpen(tk *toolkit, name string, args []string) error {
	return tk.client.ConnectDetached(tk.registry.SocketPath(name), args...)
}
