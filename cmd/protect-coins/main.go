package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/protect-coins/internal/cli"
	"github.com/Veraticus/protect-coins/internal/common"
	"github.com/Veraticus/protect-coins/internal/config"
	"github.com/Veraticus/protect-coins/internal/shield"
	"github.com/Veraticus/protect-coins/internal/zcash"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	// Set up signal handling
	ctx, release := cli.NewInterruptHandler(os.Stderr).HandleInterrupts(context.Background())

	code := newApp(os.Stdout, os.Stderr).execute(ctx, os.Args[1:])
	release() // Always cleanup

	os.Exit(code)
}

// app holds one invocation's command tree and configuration.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	v       *viper.Viper
	runner  zcash.Runner
	cfgFile string
	help    bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		v:      viper.New(),
	}
}

// execute runs the command line and returns the process exit status.
func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if a.help {
		return 1
	}
	if err != nil {
		fmt.Fprintln(a.stderr, cli.NewStyles(a.stderr).FormatError(err.Error()))
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protect-coins --unspent=<arg>",
		Short: "Move transparent zcash funds into a new shielded address",
		Long: `protect-coins makes public funds (utxo) into private funds.

It drives zcash-cli through listunspent, zcrawkeygen, createrawtransaction,
zcrawpour, signrawtransaction, sendrawtransaction and zcrawreceive, printing
each step's result before starting the next.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runProtect,
	}

	flags := cmd.Flags()
	flags.String(config.KeyUnspent, "", "all|first|last|<txlist> (required)")
	flags.String(config.KeyFee, "", "fee amount (default 0)")
	flags.String(config.KeyZcashCLI, config.DefaultZcashCLI, "path to zcash-cli")
	flags.String(config.KeyVerbosity, config.DefaultVerbosity, "silent|errors|summaries|results|debug")
	flags.BoolVarP(&a.help, "help", "h", false, "display usage information")
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/protect-coins/config.yaml)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (console, json)")

	// Bind flags to viper
	_ = a.v.BindPFlag(config.KeyUnspent, flags.Lookup(config.KeyUnspent))
	_ = a.v.BindPFlag(config.KeyFee, flags.Lookup(config.KeyFee))
	_ = a.v.BindPFlag(config.KeyZcashCLI, flags.Lookup(config.KeyZcashCLI))
	_ = a.v.BindPFlag(config.KeyVerbosity, flags.Lookup(config.KeyVerbosity))
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	cmd.SetHelpFunc(func(_ *cobra.Command, _ []string) {
		a.help = true
		printUsage(a.stderr)
	})

	return cmd
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	config.SetDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		a.v.AddConfigPath(fmt.Sprintf("%s/.config/protect-coins", home))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix("PROTECT_COINS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := common.SetupLogger(a.stderr, a.v.GetString(config.KeyLogLevel), a.v.GetString(config.KeyLogFormat)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func (a *app) runProtect(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v)
	if errors.Is(err, common.ErrMissingUnspent) {
		printUsage(a.stderr)
		return err
	}
	if err != nil {
		return err
	}

	reporter := cli.NewReporter(a.stdout, cfg.Verbosity)
	spinner := cli.NewSpinner(a.stderr, cfg.Verbosity.Shows(config.Summaries) && cli.IsTerminal(a.stderr))
	client := zcash.NewClient(zcash.ClientConfig{
		Path:     cfg.ZcashCLI,
		Runner:   a.runner,
		Echo:     reporter,
		Activity: spinner,
	})

	outcome, err := shield.NewProtector(cfg, client, reporter).Run(cmd.Context())
	if err != nil {
		return err
	}

	if outcome.Shielded {
		slog.Debug("Shielded transparent funds",
			"txid", outcome.TxID,
			"inputs", len(outcome.Selected),
			"total", outcome.Total.String(),
			"fee", cfg.Fee.String(),
			"zcaddress", outcome.Key.ZcAddress)
	}

	return nil
}
