package zcash

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Veraticus/protect-coins/internal/config"
)

// fakeCall is one scripted zcash-cli response.
type fakeCall struct {
	err      error
	output   string
	exitCode int
}

// fakeRunner replays scripted responses keyed by subcommand and records argv.
type fakeRunner struct {
	responses map[string]fakeCall
	calls     [][]string
	mu        sync.Mutex
}

func newFakeRunner(responses map[string]fakeCall) *fakeRunner {
	return &fakeRunner{responses: responses}
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, append([]string{name}, args...))
	if len(args) == 0 {
		return nil, 1, fmt.Errorf("no subcommand")
	}
	resp, ok := f.responses[args[0]]
	if !ok {
		return []byte("error: unknown command: " + args[0]), 1, nil
	}
	return []byte(resp.output), resp.exitCode, resp.err
}

func (f *fakeRunner) subcommands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		names = append(names, call[1])
	}
	return names
}

// recordingEcho keeps every message with its level.
type recordingEcho struct {
	messages []string
	levels   []config.Verbosity
}

func (r *recordingEcho) Echo(msg string, level config.Verbosity) {
	r.messages = append(r.messages, msg)
	r.levels = append(r.levels, level)
}

func (r *recordingEcho) joined() string {
	return strings.Join(r.messages, "")
}

// countingActivity counts Start/stop pairs.
type countingActivity struct {
	labels  []string
	stopped int
}

func (a *countingActivity) Start(label string) func() {
	a.labels = append(a.labels, label)
	return func() { a.stopped++ }
}
