// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/barefootcode/emacsctl/cmd/emacsctl/cli"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Summary: "List server sockets and emacs processes",
		Description: `List the entries of the per-user socket directory (sorted, hidden
entries included) followed by every process-table entry mentioning
emacs. Purely observational: a socket without a matching process is
shown as-is, not cleaned up — that is the ensure command's job.`,
		Usage: "emacsctl list",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			tk, err := newToolkit("")
			if err != nil {
				return err
			}
			return runList(tk)
		},
	}
}

func runList(tk *toolkit) error {
	sockets, err := tk.registry.Sockets()
	if err != nil {
		return err
	}

	if len(sockets) == 0 {
		fmt.Fprintf(tk.stdout, "No server sockets in %s.\n", tk.registry.Dir())
	} else {
		fmt.Fprintf(tk.stdout, "Server sockets in %s:\n", tk.registry.Dir())
		for _, name := range sockets {
			fmt.Fprintf(tk.stdout, "  %s\n", name)
		}
	}

	processes, err := tk.scanner.Processes()
	if err != nil {
		return err
	}

	if len(processes) == 0 {
		fmt.Fprintln(tk.stdout, "No emacs processes.")
		return nil
	}

	fmt.Fprintln(tk.stdout, "Emacs processes:")
	writer := tabwriter.NewWriter(tk.stdout, 0, 4, 2, ' ', 0)
	for _, process := range processes {
		fmt.Fprintf(writer, "  %d\t%s\n", process.PID, process.Command)
	}
	return writer.Flush()
}
