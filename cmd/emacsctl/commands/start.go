// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/barefootcode/emacsctl/cmd/emacsctl/cli"
)

func startCommand() *cli.Command {
	return &cli.Command{
		Name:    "start",
		Summary: "Start a named Emacs server",
		Description: `Start an Emacs daemon for the given server name (default "server").

If a socket for the name already exists the command reports that and
does nothing — socket presence is taken as "already running". The
daemon is spawned detached; the command does not wait for the socket
to become usable.`,
		Usage: "emacsctl start [name]",
		Examples: []cli.Example{
			{Description: "Start the default server", Command: "emacsctl start"},
			{Description: "Start a dedicated server named work", Command: "emacsctl start work"},
		},
		Run: func(args []string) error {
			tk, err := newToolkit("")
			if err != nil {
				return err
			}
			name, err := serverNameArg(tk.config, args)
			if err != nil {
				return err
			}
			return runStart(tk, name)
		},
	}
}

func runStart(tk *toolkit, name string) error {
	if tk.registry.Present(name) {
		fmt.Fprintf(tk.stdout, "emacs server %q already running (socket %s)\n",
			name, tk.registry.SocketPath(name))
		return nil
	}

	if err := tk.client.StartDaemon(name); err != nil {
		return err
	}
	fmt.Fprintf(tk.stdout, "starting emacs server %q\n", name)
	return nil
}
