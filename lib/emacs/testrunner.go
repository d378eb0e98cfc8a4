// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package emacs

import (
	"strings"
	"sync"
)

// Call records one spawn request made through a RecordingRunner.
type Call struct {
	// Kind is "run", "start", or "interactive".
	Kind string
	// Name is the binary that would have been executed.
	Name string
	// Args are the arguments it would have received.
	Args []string
}

// CommandLine reconstructs the full command line for matching in tests.
func (c Call) CommandLine() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// NewRecordingRunner returns a Runner that records every spawn request
// instead of executing it. Tests configure canned output per command
// with Stub and assert on the recorded calls afterwards. Safe for
// concurrent use.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{
		outputs: make(map[string]string),
		errors:  make(map[string]error),
	}
}

// RecordingRunner is the test double for Runner. No external process
// is ever spawned.
type RecordingRunner struct {
	mu      sync.Mutex
	calls   []Call
	outputs map[string]string
	errors  map[string]error
}

// Stub sets the output and error returned for a command. The key is
// matched first against the full command line, then against the bare
// binary name, so a test can stub "ps" once but give each "lsof +p N"
// invocation its own output.
func (r *RecordingRunner) Stub(key, output string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs[key] = output
	if err != nil {
		r.errors[key] = err
	}
}

func (r *RecordingRunner) record(kind, name string, args []string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := Call{Kind: kind, Name: name, Args: args}
	r.calls = append(r.calls, call)

	if output, ok := r.outputs[call.CommandLine()]; ok {
		return output, r.errors[call.CommandLine()]
	}
	return r.outputs[name], r.errors[name]
}

// Run records the call and returns any stubbed output.
func (r *RecordingRunner) Run(name string, args ...string) (string, error) {
	return r.record("run", name, args)
}

// Start records the call and returns any stubbed error.
func (r *RecordingRunner) Start(name string, args ...string) error {
	_, err := r.record("start", name, args)
	return err
}

// Interactive records the call and returns any stubbed error.
func (r *RecordingRunner) Interactive(name string, args ...string) error {
	_, err := r.record("interactive", name, args)
	return err
}

// Calls returns every recorded call in order.
func (r *RecordingRunner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// CallsTo returns the recorded calls for one binary.
func (r *RecordingRunner) CallsTo(name string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []Call
	for _, call := range r.calls {
		if call.Name == name {
			matched = append(matched, call)
		}
	}
	return matched
}
