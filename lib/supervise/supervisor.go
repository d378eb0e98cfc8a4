// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package supervise keeps a requested set of Emacs servers running.
// One reconcile pass compares three views of the world — the socket
// directory, the process table, and the requested server names — then
// prunes sockets with no backing process and starts daemons for names
// with no socket and no process.
//
// Reconciliation is idempotent and tolerates being run concurrently
// with the servers themselves starting and stopping: every action is a
// single unverified step (unlink one socket, spawn one daemon), and
// the next pass observes whatever actually happened.
package supervise

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/barefootcode/emacsctl/lib/clock"
	"github.com/barefootcode/emacsctl/lib/emacs"
	"github.com/barefootcode/emacsctl/lib/procscan"
	"github.com/barefootcode/emacsctl/lib/registry"
)

// Supervisor reconciles requested servers against observed state.
type Supervisor struct {
	registry *registry.Registry
	client   *emacs.Client
	scanner  *procscan.Scanner
	servers  []string
	logger   *slog.Logger
	clock    clock.Clock
}

// New returns a Supervisor that keeps the given servers running.
func New(reg *registry.Registry, client *emacs.Client, scanner *procscan.Scanner,
	servers []string, logger *slog.Logger, clk clock.Clock) *Supervisor {
	return &Supervisor{
		registry: reg,
		client:   client,
		scanner:  scanner,
		servers:  servers,
		logger:   logger,
		clock:    clk,
	}
}

// ReconcileOnce performs a single reconcile pass. It returns an error
// only when the world could not be observed (the process scan failed);
// individual socket removals and daemon starts are logged and do not
// abort the pass.
func (s *Supervisor) ReconcileOnce() error {
	running, err := s.scanner.RunningServers()
	if err != nil {
		return fmt.Errorf("scanning for running servers: %w", err)
	}

	sockets, err := s.registry.Sockets()
	if err != nil {
		return err
	}

	// A socket with no backing process is left over from a crash.
	// Emacs refuses to reuse it, so the daemon it blocks could never
	// be started again without this cleanup.
	for _, name := range sockets {
		if _, ok := running[name]; ok {
			continue
		}
		s.logger.Info("removing dangling server socket", "server", name)
		if err := s.registry.Remove(name); err != nil {
			s.logger.Warn("could not remove dangling socket", "server", name, "error", err)
		}
	}

	for _, name := range s.servers {
		if _, ok := running[name]; ok {
			continue
		}
		s.logger.Info("starting emacs server", "server", name)
		if err := s.client.StartDaemon(name); err != nil {
			s.logger.Warn("could not start server", "server", name, "error", err)
		}
	}

	return nil
}

// Run reconciles immediately and then on every interval tick until the
// context is cancelled. With watch enabled it also subscribes to
// socket-directory events, so a crashed server is restarted as soon as
// its socket disappears instead of on the next tick. Reconcile errors
// are logged, not fatal: a supervisor that exits on a transient ps
// failure defeats its purpose.
func (s *Supervisor) Run(ctx context.Context, interval time.Duration, watch bool) error {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	// Nil channels when not watching; they never fire in the select.
	// The watch is established before the first reconcile so that
	// socket changes made by that pass are themselves observed.
	var events <-chan fsnotify.Event
	var watchErrors <-chan error
	if watch {
		watcher, err := s.watchSocketDir()
		if err != nil {
			return err
		}
		defer watcher.Close()
		events = watcher.Events
		watchErrors = watcher.Errors
	}

	if err := s.ReconcileOnce(); err != nil {
		s.logger.Error("reconcile failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("supervisor stopping")
			return nil
		case <-ticker.C:
			if err := s.ReconcileOnce(); err != nil {
				s.logger.Error("reconcile failed", "error", err)
			}
		case event := <-events:
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) {
				continue
			}
			s.logger.Info("socket directory changed", "path", event.Name, "op", event.Op.String())
			if err := s.ReconcileOnce(); err != nil {
				s.logger.Error("reconcile failed", "error", err)
			}
		case err := <-watchErrors:
			s.logger.Warn("socket directory watch error", "error", err)
		}
	}
}

// watchSocketDir sets up an fsnotify watch on the socket directory,
// creating the directory first: Emacs creates it lazily on first bind,
// but fsnotify cannot watch a path that does not exist yet.
func (s *Supervisor) watchSocketDir() (*fsnotify.Watcher, error) {
	if err := os.MkdirAll(s.registry.Dir(), 0o700); err != nil {
		return nil, fmt.Errorf("creating socket directory %s: %w", s.registry.Dir(), err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating socket directory watcher: %w", err)
	}
	if err := watcher.Add(s.registry.Dir()); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", s.registry.Dir(), err)
	}
	return watcher, nil
}
