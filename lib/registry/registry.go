// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package registry derives and probes the per-user socket namespace
// that Emacs servers live in. A server named "work" run by uid 501
// listens on <tempRoot>/emacs501/work; the presence of a filesystem
// entry at that path is the liveness proxy the rest of emacsctl acts
// on.
//
// The socket path is a pure function of (tempRoot, uid, name). Both
// tempRoot and uid are captured once at construction — nothing in this
// package reads the ambient environment after New returns, which is
// what makes the probe deterministic under test.
//
// This package never creates socket files: Emacs owns the sockets.
// Remove exists only for the supervisor to unlink dangling entries
// whose server process is gone.
package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// DefaultServer is the server name substituted when the caller supplies
// an empty name. It matches the name Emacs itself uses when started
// with a bare --daemon.
const DefaultServer = "server"

// Registry locates the socket directory for one user's Emacs servers.
type Registry struct {
	tempRoot string
	uid      int

	// dir, when non-empty, short-circuits the derivation. Set only by
	// AtDir for explicit socket_dir configuration.
	dir string
}

// New returns a Registry rooted at the given temp directory for the
// given uid. Use Default for the invoking user's real namespace.
func New(tempRoot string, uid int) *Registry {
	return &Registry{tempRoot: tempRoot, uid: uid}
}

// AtDir returns a Registry using the given directory verbatim instead
// of the <tempRoot>/emacs<uid> derivation. This backs the socket_dir
// config override for setups where Emacs is configured with an
// explicit server-socket-dir.
func AtDir(dir string) *Registry {
	return &Registry{dir: dir}
}

// Default captures $TMPDIR (falling back to /tmp, the resolution Emacs
// itself applies) and the invoking user's uid. This is the only place
// the process environment is consulted.
func Default() *Registry {
	tempRoot := os.Getenv("TMPDIR")
	if tempRoot == "" {
		tempRoot = "/tmp"
	}
	return New(tempRoot, os.Getuid())
}

// Dir returns the socket directory, e.g. /tmp/emacs501.
func (r *Registry) Dir() string {
	if r.dir != "" {
		return r.dir
	}
	return filepath.Join(r.tempRoot, fmt.Sprintf("emacs%d", r.uid))
}

// SocketPath returns the socket path for the named server. An empty
// name means DefaultServer. Pure; never fails.
func (r *Registry) SocketPath(name string) string {
	if name == "" {
		name = DefaultServer
	}
	return filepath.Join(r.Dir(), name)
}

// Present reports whether a filesystem entry exists at the named
// server's socket path. Presence is a proxy for "server is running":
// the entry is created by Emacs when the daemon binds and removed when
// it exits cleanly. A crashed server can leave the entry behind, which
// is why the supervisor cross-checks against the process table.
func (r *Registry) Present(name string) bool {
	_, err := os.Lstat(r.SocketPath(name))
	return err == nil
}

// IsSocket reports whether the entry at the named server's path is
// actually a Unix domain socket. Diagnostic only — presence, not
// socket-ness, drives start/kill decisions.
func (r *Registry) IsSocket(name string) bool {
	var stat unix.Stat_t
	if err := unix.Stat(r.SocketPath(name), &stat); err != nil {
		return false
	}
	return stat.Mode&unix.S_IFMT == unix.S_IFSOCK
}

// Sockets returns the entries of the socket directory in sorted order,
// hidden entries included. A missing directory means no servers have
// ever been started; that yields an empty list, not an error.
func (r *Registry) Sockets() ([]string, error) {
	entries, err := os.ReadDir(r.Dir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading socket directory %s: %w", r.Dir(), err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Remove unlinks the named server's socket entry. Used by the
// supervisor to clean up dangling sockets whose process has died;
// the interactive commands never mutate the socket directory.
func (r *Registry) Remove(name string) error {
	path := r.SocketPath(name)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing socket %s: %w", path, err)
	}
	return nil
}
