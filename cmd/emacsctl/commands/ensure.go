// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/barefootcode/emacsctl/cmd/emacsctl/cli"
	"github.com/barefootcode/emacsctl/lib/supervise"
)

// watchFallbackInterval is the safety tick used when --watch is given
// without --interval: directory events drive reconciliation, the tick
// only catches anything the watch missed.
const watchFallbackInterval = time.Minute

func ensureCommand() *cli.Command {
	var configFlag string
	var intervalFlag time.Duration
	var watchFlag bool

	return &cli.Command{
		Name:    "ensure",
		Summary: "Keep a set of Emacs servers running",
		Description: `Reconcile the requested servers (arguments, or the config file's
servers list) against reality: sockets whose process has died are
removed, and servers with no live process are started.

One-shot by default, which suits launchd's StartInterval. With
--interval the command stays in the foreground and reconciles on every
tick until interrupted; --watch additionally reacts to socket
directory changes as they happen.`,
		Usage: "emacsctl ensure [flags] [names...]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("ensure", pflag.ContinueOnError)
			flagSet.StringVar(&configFlag, "config", "", "config file (overrides EMACSCTL_CONFIG)")
			flagSet.DurationVar(&intervalFlag, "interval", 0, "reconcile continuously at this interval (0 = once)")
			flagSet.BoolVar(&watchFlag, "watch", false, "also reconcile on socket directory changes")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "One reconcile pass for two servers", Command: "emacsctl ensure server git"},
			{Description: "Supervise the configured servers", Command: "emacsctl ensure --config ~/.config/emacsctl.yaml --interval 10s"},
		},
		Run: func(args []string) error {
			tk, err := newToolkit(configFlag)
			if err != nil {
				return err
			}
			return runEnsure(tk, args, intervalFlag, watchFlag)
		},
	}
}

func runEnsure(tk *toolkit, names []string, interval time.Duration, watch bool) error {
	if len(names) == 0 {
		names = tk.config.Servers
	}
	if len(names) == 0 {
		fmt.Fprintln(tk.stdout, "no servers requested; nothing to do")
		return nil
	}

	logger := tk.logger.With("command", "ensure")
	supervisor := supervise.New(tk.registry, tk.client, tk.scanner, names, logger, tk.clock)

	if interval == 0 && !watch {
		return supervisor.ReconcileOnce()
	}
	if interval == 0 {
		interval = watchFallbackInterval
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return supervisor.Run(ctx, interval, watch)
}
