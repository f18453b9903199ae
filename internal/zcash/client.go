package zcash

import (
	"context"
	"fmt"

	"github.com/Veraticus/protect-coins/internal/common"
	"github.com/Veraticus/protect-coins/internal/config"
	"github.com/kballard/go-shellquote"
)

// Echoer prints verbosity-gated messages to the user.
type Echoer interface {
	Echo(msg string, level config.Verbosity)
}

// Activity shows that a long-running subcommand is in progress.
// The returned function is called once the subcommand has exited.
type Activity interface {
	Start(label string) (stop func())
}

// ClientConfig wires a Client to its collaborators.
// Nil collaborators are replaced with working defaults.
type ClientConfig struct {
	Runner   Runner
	Echo     Echoer
	Activity Activity
	Path     string
}

// Client invokes subcommands of one zcash-cli binary.
type Client struct {
	runner   Runner
	echo     Echoer
	activity Activity
	path     string
}

// NewClient creates a Client for the zcash-cli at cfg.Path.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		runner:   cfg.Runner,
		echo:     cfg.Echo,
		activity: cfg.Activity,
		path:     cfg.Path,
	}
	if c.runner == nil {
		c.runner = ExecRunner{}
	}
	if c.echo == nil {
		c.echo = nopEcho{}
	}
	if c.activity == nil {
		c.activity = nopActivity{}
	}
	if c.path == "" {
		c.path = config.DefaultZcashCLI
	}
	return c
}

// Call runs `zcash-cli <subcommand> <args...>` and decodes its output.
// A non-zero exit status is returned as a *CommandError.
func (c *Client) Call(ctx context.Context, subcommand string, args ...string) (Result, error) {
	argv := append([]string{subcommand}, args...)
	cmdline := shellquote.Join(append([]string{c.path}, argv...)...)

	c.echo.Echo(fmt.Sprintf("\nexecuting: %s\n\n", cmdline), config.Debug)
	common.LogDebug("running zcash-cli", common.Fields{"subcommand": subcommand, "args": len(args)})

	stop := c.activity.Start(subcommand)
	out, exitCode, err := c.runner.Run(ctx, c.path, argv...)
	stop()

	if err != nil || exitCode != 0 {
		cmdErr := &CommandError{
			Err:      err,
			Command:  cmdline,
			Output:   Decode(out).Text,
			ExitCode: exitCode,
		}
		common.LogDebug("zcash-cli failed", common.Fields{"subcommand": subcommand, "exit_code": exitCode})
		return Result{}, cmdErr
	}

	return Decode(out), nil
}

type nopEcho struct{}

func (nopEcho) Echo(string, config.Verbosity) {}

type nopActivity struct{}

func (nopActivity) Start(string) func() { return func() {} }
