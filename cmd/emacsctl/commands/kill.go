// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/barefootcode/emacsctl/cmd/emacsctl/cli"
)

func killCommand() *cli.Command {
	var graceFlag string

	return &cli.Command{
		Name:    "kill",
		Summary: "Terminate a named Emacs server",
		Description: `Send a kill-emacs eval to the named server (default "server") via its
socket, wait a short grace period for teardown, and show the updated
listing.

Fire-and-forget: termination is not verified. A server that ignores
the request keeps its socket, which the final listing will show. With
no socket present there is nothing to address and the command reports
that and exits 0.`,
		Usage: "emacsctl kill [name] [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("kill", pflag.ContinueOnError)
			flagSet.StringVar(&graceFlag, "grace", "", `teardown grace period before re-listing (default from config, "1s")`)
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Terminate the default server", Command: "emacsctl kill"},
			{Description: "Terminate the git server with a longer grace", Command: "emacsctl kill --grace 3s git"},
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

			grace, err := tk.config.KillGraceDuration()
			if err != nil {
				return err
			}
			if graceFlag != "" {
				grace, err = time.ParseDuration(graceFlag)
				if err != nil {
					return fmt.Errorf("--grace %q: %w", graceFlag, err)
				}
			}
			return runKill(tk, name, grace)
		},
	}
}

func runKill(tk *toolkit, name string, grace time.Duration) error {
	if !tk.registry.Present(name) {
		fmt.Fprintf(tk.stdout, "no socket for server %q; nothing to do\n", name)
		return nil
	}

	fmt.Fprintf(tk.stdout, "sending kill-emacs to server %q\n", name)
	if err := tk.client.Terminate(tk.registry.SocketPath(name)); err != nil {
		// The request was sent once; whether the server honored it is
		// the listing's problem, not ours. Surface the failure without
		// aborting the refresh.
		tk.logger.Warn("terminate request failed", "server", name, "error", err)
	}

	tk.clock.Sleep(grace)
	return runList(tk)
}
