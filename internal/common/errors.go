// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors.
	ErrMissingUnspent = errors.New("--unspent is required")
	ErrInvalidConfig  = errors.New("invalid configuration")

	// Selection errors.
	ErrUnknownTxID = errors.New("tx not in utxo list")

	// zcash-cli errors.
	ErrCommandFailed    = errors.New("zcash-cli command failed")
	ErrUnexpectedOutput = errors.New("unexpected zcash-cli output")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
