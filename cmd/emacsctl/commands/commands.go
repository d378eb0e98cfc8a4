// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the emacsctl CLI command tree.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/barefootcode/emacsctl/cmd/emacsctl/cli"
	"github.com/barefootcode/emacsctl/lib/clock"
	"github.com/barefootcode/emacsctl/lib/config"
	"github.com/barefootcode/emacsctl/lib/emacs"
	"github.com/barefootcode/emacsctl/lib/procscan"
	"github.com/barefootcode/emacsctl/lib/registry"
	"github.com/barefootcode/emacsctl/lib/version"
)

// Root builds and returns the complete emacsctl command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "emacsctl",
		Description: `emacsctl: manage named local Emacs servers.

Each server is an Emacs daemon listening on a per-user Unix domain
socket under $TMPDIR/emacs<uid>. emacsctl starts, lists, terminates,
and connects to these servers, and can supervise a configured set of
them for launchd or systemd.`,
		Subcommands: []*cli.Command{
			startCommand(),
			listCommand(),
			killCommand(),
			connectCommand(),
			openCommand(),
			ensureCommand(),
			keepaliveCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("emacsctl %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Start the default server",
				Command:     "emacsctl start",
			},
			{
				Description: "Start a second server for git work",
				Command:     "emacsctl start git",
			},
			{
				Description: "See sockets and emacs processes",
				Command:     "emacsctl list",
			},
			{
				Description: "Keep two servers running, checking every 10s",
				Command:     "emacsctl ensure --interval 10s server git",
			},
		},
	}
}

// toolkit bundles the collaborators a command run function needs. The
// wiring (real binaries, real clock, real stdout) happens once in
// newToolkit; tests build a toolkit by hand around a recording runner.
type toolkit struct {
	config   *config.Config
	registry *registry.Registry
	client   *emacs.Client
	scanner  *procscan.Scanner
	clock    clock.Clock
	logger   *slog.Logger
	stdout   io.Writer
}

// newToolkit loads configuration (EMACSCTL_CONFIG or defaults; an
// explicit path wins) and wires the production toolkit.
func newToolkit(configPath string) (*toolkit, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	reg := registry.Default()
	if cfg.SocketDir != "" {
		reg = registry.AtDir(cfg.SocketDir)
	}

	runner := emacs.NewRunner()
	return &toolkit{
		config:   cfg,
		registry: reg,
		client:   emacs.NewClient(cfg.Emacs, cfg.Emacsclient, runner),
		scanner:  procscan.NewScanner(runner, reg.Dir()),
		clock:    clock.Real(),
		logger:   cli.NewCommandLogger(),
		stdout:   os.Stdout,
	}, nil
}

// serverNameArg resolves the optional positional server name. No name
// means the configured default; empty strings fall through to the
// registry's own "server" substitution.
func serverNameArg(cfg *config.Config, args []string) (string, error) {
	switch len(args) {
	case 0:
		return cfg.DefaultServer, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("expected at most one server name, got %d arguments", len(args))
	}
}
