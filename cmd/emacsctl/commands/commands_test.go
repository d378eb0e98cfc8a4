// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/barefootcode/emacsctl/lib/clock"
	"github.com/barefootcode/emacsctl/lib/config"
	"github.com/barefootcode/emacsctl/lib/emacs"
	"github.com/barefootcode/emacsctl/lib/procscan"
	"github.com/barefootcode/emacsctl/lib/registry"
)

// testToolkit wires a toolkit around a recording runner, a fake clock,
// and a throwaway socket directory.
func testToolkit(t *testing.T) (*toolkit, *emacs.RecordingRunner, *clock.Fake, *bytes.Buffer) {
	t.Helper()

	runner := emacs.NewRecordingRunner()
	reg := registry.New(t.TempDir(), os.Getuid())
	fake := clock.NewFake(time.Unix(0, 0))
	var stdout bytes.Buffer

	tk := &toolkit{
		config:   config.Default(),
		registry: reg,
		client:   emacs.NewClient("emacs", "emacsclient", runner),
		scanner:  procscan.NewScanner(runner, reg.Dir()),
		clock:    fake,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdout:   &stdout,
	}
	return tk, runner, fake, &stdout
}

// plantSocket creates a placeholder socket entry for a server.
func plantSocket(t *testing.T, tk *toolkit, name string) {
	t.Helper()
	path := tk.registry.SocketPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("creating socket directory: %v", err)
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("creating socket entry: %v", err)
	}
}

func TestServerNameArgDefaults(t *testing.T) {
	cfg := config.Default()

	name, err := serverNameArg(cfg, nil)
	if err != nil {
		t.Fatalf("serverNameArg: %v", err)
	}
	if name != "server" {
		t.Errorf("name = %q, want server", name)
	}

	name, err = serverNameArg(cfg, []string{"work"})
	if err != nil {
		t.Fatalf("serverNameArg: %v", err)
	}
	if name != "work" {
		t.Errorf("name = %q, want work", name)
	}

	if _, err := serverNameArg(cfg, []string{"a", "b"}); err == nil {
		t.Error("serverNameArg should reject more than one name")
	}
}
