// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/barefootcode/emacsctl/cmd/emacsctl/cli"
)

func keepaliveCommand() *cli.Command {
	return &cli.Command{
		Name:    "keepalive",
		Summary: "Run a server in the foreground for a process manager",
		Description: `Run the named Emacs server with --fg-daemon and block until it exits.

Process managers with keep-alive semantics (launchd KeepAlive, systemd
Restart=) need a stable foreground child; a self-daemonizing emacs
--daemon confuses them into endless restart attempts. If a socket for
the name already exists, keepalive exits 0 immediately so a manager
restart does not race a live server. The daemon's exit status is
propagated unchanged.`,
		Usage: "emacsctl keepalive [name]",
		Examples: []cli.Example{
			{Description: "Foreground default server for launchd", Command: "emacsctl keepalive"},
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
			return runKeepalive(tk, name)
		},
	}
}

func runKeepalive(tk *toolkit, name string) error {
	if tk.registry.Present(name) {
		fmt.Fprintf(tk.stdout, "emacs server %q already running; nothing to keep alive\n", name)
		return nil
	}

	fmt.Fprintf(tk.stdout, "running emacs server %q in the foreground\n", name)
	err := tk.client.StartForegroundDaemon(name)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The daemon printed its own diagnostics; just carry the code.
		return &cli.ExitError{Code: exitErr.ExitCode()}
	}
	return err
}
