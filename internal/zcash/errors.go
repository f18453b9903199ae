package zcash

import (
	"fmt"

	"github.com/Veraticus/protect-coins/internal/common"
)

// CommandError reports a zcash-cli invocation that exited non-zero or could
// not be started. Command is the full command line, arguments included, so
// secrets passed as arguments end up in the message.
type CommandError struct {
	Err      error
	Command  string
	Output   string
	ExitCode int
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command returned non-zero exit code (%d): %s", e.ExitCode, e.Command)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *CommandError) Unwrap() []error {
	if e.Err != nil {
		return []error{common.ErrCommandFailed, e.Err}
	}
	return []error{common.ErrCommandFailed}
}
