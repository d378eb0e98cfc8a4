// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strings"
	"testing"
)

func TestEnsureNoServersRequested(t *testing.T) {
	tk, runner, _, stdout := testToolkit(t)

	if err := runEnsure(tk, nil, 0, false); err != nil {
		t.Fatalf("runEnsure: %v", err)
	}

	if calls := runner.Calls(); len(calls) != 0 {
		t.Errorf("recorded calls %+v, want none", calls)
	}
	if !strings.Contains(stdout.String(), "nothing to do") {
		t.Errorf("output %q missing nothing-to-do message", stdout.String())
	}
}

func TestEnsureOneShotStartsMissing(t *testing.T) {
	tk, runner, _, _ := testToolkit(t)
	// Empty process table: both requested servers are missing.
	runner.Stub("ps", "  PID COMMAND\n", nil)

	if err := runEnsure(tk, []string{"server", "git"}, 0, false); err != nil {
		t.Fatalf("runEnsure: %v", err)
	}

	var started []string
	for _, call := range runner.CallsTo("emacs") {
		started = append(started, call.CommandLine())
	}
	if len(started) != 2 {
		t.Fatalf("started = %v, want two daemon starts", started)
	}
	if started[0] != "emacs --daemon=server" || started[1] != "emacs --daemon=git" {
		t.Errorf("started = %v", started)
	}
}

func TestEnsureUsesConfiguredServers(t *testing.T) {
	tk, runner, _, _ := testToolkit(t)
	tk.config.Servers = []string{"work"}
	runner.Stub("ps", "  PID COMMAND\n", nil)

	if err := runEnsure(tk, nil, 0, false); err != nil {
		t.Fatalf("runEnsure: %v", err)
	}

	calls := runner.CallsTo("emacs")
	if len(calls) != 1 || calls[0].CommandLine() != "emacs --daemon=work" {
		t.Errorf("calls = %+v, want one start of work", calls)
	}
}
