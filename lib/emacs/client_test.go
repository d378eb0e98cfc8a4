// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package emacs_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/barefootcode/emacsctl/lib/emacs"
)

func TestStartDaemonSpawnsDetached(t *testing.T) {
	runner := emacs.NewRecordingRunner()
	client := emacs.NewClient("emacs", "emacsclient", runner)

	if err := client.StartDaemon("work"); err != nil {
		t.Fatalf("StartDaemon: %v", err)
	}

	calls := runner.Calls()
	if len(calls) != 1 {
		t.Fatalf("recorded %d calls, want 1", len(calls))
	}
	if calls[0].Kind != "start" {
		t.Errorf("call kind = %q, want start (daemon start must not wait)", calls[0].Kind)
	}
	if got, want := calls[0].CommandLine(), "emacs --daemon=work"; got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestStartForegroundDaemonBlocks(t *testing.T) {
	runner := emacs.NewRecordingRunner()
	client := emacs.NewClient("emacs", "emacsclient", runner)

	if err := client.StartForegroundDaemon("server"); err != nil {
		t.Fatalf("StartForegroundDaemon: %v", err)
	}

	calls := runner.Calls()
	if len(calls) != 1 || calls[0].Kind != "interactive" {
		t.Fatalf("calls = %+v, want one interactive call", calls)
	}
	if got, want := calls[0].CommandLine(), "emacs --fg-daemon=server"; got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestTerminateAddressesSocket(t *testing.T) {
	runner := emacs.NewRecordingRunner()
	client := emacs.NewClient("emacs", "emacsclient", runner)

	if err := client.Terminate("/tmp/emacs501/work"); err != nil {
		t.Fatalf("Terminate: %v", err)
	}

	calls := runner.CallsTo("emacsclient")
	if len(calls) != 1 {
		t.Fatalf("recorded %d emacsclient calls, want 1", len(calls))
	}
	want := "emacsclient -s /tmp/emacs501/work -e (kill-emacs)"
	if got := calls[0].CommandLine(); got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestTerminateWrapsFailure(t *testing.T) {
	runner := emacs.NewRecordingRunner()
	runner.Stub("emacsclient", "", errors.New("connect: no such file"))
	client := emacs.NewClient("emacs", "emacsclient", runner)

	err := client.Terminate("/tmp/emacs501/gone")
	if err == nil {
		t.Fatal("Terminate should surface the client failure")
	}
	if !strings.Contains(err.Error(), "/tmp/emacs501/gone") {
		t.Errorf("error %q does not name the socket", err)
	}
}

func TestConnectTerminalPassesArgsThrough(t *testing.T) {
	runner := emacs.NewRecordingRunner()
	client := emacs.NewClient("emacs", "emacsclient", runner)

	if err := client.ConnectTerminal("/tmp/emacs501/server", "notes.org", "+12"); err != nil {
		t.Fatalf("ConnectTerminal: %v", err)
	}

	calls := runner.Calls()
	if len(calls) != 1 || calls[0].Kind != "interactive" {
		t.Fatalf("calls = %+v, want one interactive call", calls)
	}
	want := "emacsclient -t -s /tmp/emacs501/server notes.org +12"
	if got := calls[0].CommandLine(); got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestConnectDetachedWithFiles(t *testing.T) {
	runner := emacs.NewRecordingRunner()
	client := emacs.NewClient("emacs", "emacsclient", runner)

	if err := client.ConnectDetached("/tmp/emacs501/server", "a.txt"); err != nil {
		t.Fatalf("ConnectDetached: %v", err)
	}

	calls := runner.Calls()
	if len(calls) != 1 || calls[0].Kind != "start" {
		t.Fatalf("calls = %+v, want one detached start", calls)
	}
	want := "emacsclient -n -s /tmp/emacs501/server a.txt"
	if got := calls[0].CommandLine(); got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestConnectDetachedNoArgsCreatesFocusedFrame(t *testing.T) {
	runner := emacs.NewRecordingRunner()
	client := emacs.NewClient("emacs", "emacsclient", runner)

	if err := client.ConnectDetached("/tmp/emacs501/server"); err != nil {
		t.Fatalf("ConnectDetached: %v", err)
	}

	calls := runner.Calls()
	if len(calls) != 1 {
		t.Fatalf("recorded %d calls, want 1", len(calls))
	}
	line := calls[0].CommandLine()
	if !strings.Contains(line, " -c ") {
		t.Errorf("command %q should create a frame when no files are given", line)
	}
	if !strings.Contains(line, "select-frame-set-input-focus") {
		t.Errorf("command %q should focus the new frame", line)
	}
}
