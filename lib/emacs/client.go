// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package emacs provides a typed interface to the emacs and emacsclient
// binaries. Every client operation addresses an explicit socket path
// via the -s flag, which the methods inject automatically. This makes
// it structurally impossible to target the wrong server or fall back to
// emacsclient's own socket discovery.
//
// The package does no readiness polling and no output translation: a
// failing external command surfaces as its own exit status and stderr,
// wrapped but unmediated.
package emacs

import "fmt"

// terminateExpression is the remote eval sent by Terminate. kill-emacs
// tears the server down along with the connection, so emacsclient's
// reply (if any) is not meaningful.
const terminateExpression = "(kill-emacs)"

// focusExpression raises and focuses the frame a detached client just
// created, so "open a fresh frame" also brings it to the front.
const focusExpression = "(select-frame-set-input-focus (selected-frame))"

// Client wraps the emacs daemon and emacsclient binaries.
type Client struct {
	emacsPath  string
	clientPath string
	runner     Runner
}

// NewClient returns a Client using the given binary paths. A nil
// runner means the real os/exec-backed one.
func NewClient(emacsPath, clientPath string, runner Runner) *Client {
	if runner == nil {
		runner = NewRunner()
	}
	return &Client{
		emacsPath:  emacsPath,
		clientPath: clientPath,
		runner:     runner,
	}
}

// StartDaemon launches a named Emacs daemon and returns immediately.
// It does not wait for the server socket to appear: there is a benign
// race between spawn and bind that only Emacs can resolve.
func (c *Client) StartDaemon(name string) error {
	return c.runner.Start(c.emacsPath, "--daemon="+name)
}

// StartForegroundDaemon runs a named Emacs daemon in the foreground
// and blocks until it exits. This is the keepalive shape for process
// managers (launchd KeepAlive, systemd Restart=) that supervise a
// stable foreground child instead of a self-daemonizing one.
func (c *Client) StartForegroundDaemon(name string) error {
	return c.runner.Interactive(c.emacsPath, "--fg-daemon="+name)
}

// Terminate sends a kill-emacs eval to the server listening on
// socketPath. Fire-and-forget: the expression is sent exactly once and
// termination is never verified — a server that ignores the request
// keeps its socket, which the next listing will show.
func (c *Client) Terminate(socketPath string) error {
	_, err := c.runner.Run(c.clientPath, "-s", socketPath, "-e", terminateExpression)
	if err != nil {
		return fmt.Errorf("terminate request on %s: %w", socketPath, err)
	}
	return nil
}

// ConnectTerminal opens a blocking terminal-mode client on the server
// at socketPath, passing any file arguments straight through. It
// returns when the client session ends.
func (c *Client) ConnectTerminal(socketPath string, args ...string) error {
	full := append([]string{"-t", "-s", socketPath}, args...)
	return c.runner.Interactive(c.clientPath, full...)
}

// ConnectDetached opens a non-blocking client on the server at
// socketPath. With file arguments, the files are opened in an existing
// frame. Without arguments, a new frame is created and focused.
// Arguments are passed through unvalidated.
func (c *Client) ConnectDetached(socketPath string, args ...string) error {
	full := []string{"-n", "-s", socketPath}
	if len(args) == 0 {
		full = append(full, "-c", "-e", focusExpression)
	} else {
		full = append(full, args...)
	}
	return c.runner.Start(c.clientPath, full...)
}
