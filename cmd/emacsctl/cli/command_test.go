// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "emacsctl",
		Subcommands: []*Command{
			{Name: "start", Run: func(args []string) error { called = "start"; return nil }},
			{Name: "kill", Run: func(args []string) error { called = "kill"; return nil }},
		},
	}

	if err := root.Execute([]string{"kill"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if called != "kill" {
		t.Errorf("dispatched to %q, want %q", called, "kill")
	}
}

func TestExecutePassesRemainingArgs(t *testing.T) {
	var received []string

	root := &Command{
		Name: "emacsctl",
		Subcommands: []*Command{
			{Name: "connect", Run: func(args []string) error { received = args; return nil }},
		},
	}

	if err := root.Execute([]string{"connect", "notes.org", "+12"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(received) != 2 || received[0] != "notes.org" || received[1] != "+12" {
		t.Errorf("args = %v, want [notes.org +12]", received)
	}
}

func TestExecuteParsesFlags(t *testing.T) {
	var grace string
	var positional []string

	command := &Command{
		Name: "kill",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("kill", pflag.ContinueOnError)
			flagSet.StringVar(&grace, "grace", "1s", "teardown grace period")
			return flagSet
		},
		Run: func(args []string) error { positional = args; return nil },
	}

	if err := command.Execute([]string{"--grace", "250ms", "work"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if grace != "250ms" {
		t.Errorf("grace = %q, want 250ms", grace)
	}
	if len(positional) != 1 || positional[0] != "work" {
		t.Errorf("positional = %v, want [work]", positional)
	}
}

func TestExecuteSuggestsCommandForTypo(t *testing.T) {
	root := &Command{
		Name: "emacsctl",
		Subcommands: []*Command{
			{Name: "start", Run: func(args []string) error { return nil }},
			{Name: "list", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"strat"})
	if err == nil {
		t.Fatal("Execute should fail for an unknown command")
	}
	if !strings.Contains(err.Error(), `"start"`) {
		t.Errorf("error %q does not suggest start", err)
	}
}

func TestExecuteSuggestsFlagForTypo(t *testing.T) {
	command := &Command{
		Name: "kill",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("kill", pflag.ContinueOnError)
			flagSet.String("grace", "1s", "teardown grace period")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--garce", "2s"})
	if err == nil {
		t.Fatal("Execute should fail for an unknown flag")
	}
	if !strings.Contains(err.Error(), "--grace") {
		t.Errorf("error %q does not suggest --grace", err)
	}
}

func TestExecuteSubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "emacsctl",
		Subcommands: []*Command{{Name: "start", Run: func(args []string) error { return nil }}},
	}

	if err := root.Execute(nil); err == nil {
		t.Fatal("Execute with no args should require a subcommand")
	}
}

func TestPrintHelpListsSubcommandsAndExamples(t *testing.T) {
	root := &Command{
		Name:    "emacsctl",
		Summary: "Manage named Emacs servers",
		Subcommands: []*Command{
			{Name: "start", Summary: "Start a named server"},
			{Name: "kill", Summary: "Terminate a named server"},
		},
		Examples: []Example{
			{Description: "Start the default server", Command: "emacsctl start"},
		},
	}

	var buffer bytes.Buffer
	root.PrintHelp(&buffer)
	help := buffer.String()

	for _, want := range []string{"start", "kill", "emacsctl start", "Commands:"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"start", "start", 0},
		{"strat", "start", 2},
		{"kil", "kill", 1},
		{"connect", "list", 6},
	}
	for _, c := range cases {
		if got := editDistance(c.a, c.b); got != c.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
