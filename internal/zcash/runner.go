// Package zcash runs zcash-cli subcommands and decodes what they print.
package zcash

import (
	"context"
	"errors"
	"os/exec"
)

// Runner executes a program and reports its combined output and exit status.
// A non-nil error means the program could not be run at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (output []byte, exitCode int, err error)
}

// ExecRunner runs programs directly from an argument vector; no shell is involved.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	// stderr is folded into the output the same way the node's errors
	// would appear on a terminal.
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, exitErr.ExitCode(), nil
		}
		return out, -1, err
	}

	return out, 0, nil
}
