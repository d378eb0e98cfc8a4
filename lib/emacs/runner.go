// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package emacs

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner is the process-launching capability behind Client. Exactly
// three spawn shapes exist in emacsctl:
//
//   - Run: spawn and wait, capturing combined output (emacsclient
//     eval calls, ps, lsof)
//   - Start: spawn detached and return without waiting (daemon start,
//     detached client frames)
//   - Interactive: spawn in the foreground with the caller's stdio
//     (terminal client, foreground daemon)
//
// Production code uses the exec-backed runner from NewRunner; tests
// inject a RecordingRunner so no external binary is ever touched.
type Runner interface {
	Run(name string, args ...string) (string, error)
	Start(name string, args ...string) error
	Interactive(name string, args ...string) error
}

// NewRunner returns the os/exec-backed Runner used outside tests.
func NewRunner() Runner { return execRunner{} }

type execRunner struct{}

// Run executes the command and waits for it. The returned error wraps
// the trimmed combined output, so callers get the external tool's own
// diagnostics without any translation.
func (execRunner) Run(name string, args ...string) (string, error) {
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w (%s)",
			name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}

// Start launches the command detached and returns as soon as the
// process is spawned. The child is released rather than reaped: the
// CLI exits long before the daemon does, and init collects it. There
// is no readiness wait — the gap between spawn and a usable socket is
// Emacs's to close.
func (execRunner) Start(name string, args ...string) error {
	command := exec.Command(name, args...)
	if err := command.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	if err := command.Process.Release(); err != nil {
		return fmt.Errorf("releasing %s: %w", name, err)
	}
	return nil
}

// Interactive runs the command in the foreground with the caller's
// stdin, stdout, and stderr. It returns when the command exits; the
// error (if any) is the raw exec error, so exit codes survive for the
// caller to propagate.
func (execRunner) Interactive(name string, args ...string) error {
	command := exec.Command(name, args...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	return command.Run()
}
