// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package procscan inspects the process table for Emacs servers. The
// socket directory tells us which servers appear to exist; the process
// table tells us which of those are actually backed by a live process.
// The supervisor uses the difference to prune dangling sockets, and
// the list command shows both views side by side.
//
// The scan shells out to ps and lsof rather than reading /proc, so the
// same logic works on macOS and Linux.
package procscan

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/barefootcode/emacsctl/lib/emacs"
)

// Process is one emacs-like entry from the process table.
type Process struct {
	PID     int
	Command string
}

// Scanner discovers running Emacs servers for one socket directory.
type Scanner struct {
	runner    emacs.Runner
	socketDir string

	// socketPattern matches an open file under the socket directory in
	// lsof output; the capture group is the server name.
	socketPattern *regexp.Regexp
}

// NewScanner returns a Scanner for the given socket directory. A nil
// runner means the real os/exec-backed one.
func NewScanner(runner emacs.Runner, socketDir string) *Scanner {
	if runner == nil {
		runner = emacs.NewRunner()
	}
	return &Scanner{
		runner:        runner,
		socketDir:     socketDir,
		socketPattern: regexp.MustCompile(`(?m)` + regexp.QuoteMeta(socketDir) + `/(\S+)$`),
	}
}

// Processes lists process-table entries whose command line mentions
// emacs, case-insensitively, sorted by pid. This deliberately
// over-matches (emacsclient, this tool's own children) — ServerName is
// what confirms a pid is a server.
func (s *Scanner) Processes() ([]Process, error) {
	output, err := s.runner.Run("ps", "-x", "-o", "pid,command")
	if err != nil {
		return nil, err
	}

	var processes []Process
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(strings.ToLower(line), "emacs") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		processes = append(processes, Process{
			PID:     pid,
			Command: strings.Join(fields[1:], " "),
		})
	}

	sort.Slice(processes, func(i, j int) bool {
		return processes[i].PID < processes[j].PID
	})
	return processes, nil
}

// ServerName reports which server socket the given pid holds open, if
// any. A failing lsof (process already gone, permission denied) means
// "not a server we can see", not an error — the scan is best-effort by
// construction.
func (s *Scanner) ServerName(pid int) (string, bool) {
	output, err := s.runner.Run("lsof", "+p", strconv.Itoa(pid))
	if err != nil {
		return "", false
	}
	match := s.socketPattern.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// RunningServers returns the servers that are backed by a live process
// holding a socket in the directory, keyed by server name.
func (s *Scanner) RunningServers() (map[string]int, error) {
	processes, err := s.Processes()
	if err != nil {
		return nil, err
	}

	running := make(map[string]int)
	for _, process := range processes {
		if name, ok := s.ServerName(process.PID); ok {
			running[name] = process.PID
		}
	}
	return running, nil
}

// Alive reports whether a process with the given pid exists, via the
// null signal. EPERM still means "exists" — just not ours to signal.
func Alive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || err == unix.EPERM
}
