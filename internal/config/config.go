package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/protect-coins/internal/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyUnspent   = "unspent"
	KeyFee       = "fee"
	KeyZcashCLI  = "zcash-cli"
	KeyVerbosity = "verbosity"
	KeyLogLevel  = "logging.level"
	KeyLogFormat = "logging.format"
)

// Defaults.
const (
	DefaultZcashCLI  = "./src/zcash-cli"
	DefaultVerbosity = "debug"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Config is built once per run and never changes afterwards.
type Config struct {
	Unspent   string
	ZcashCLI  string
	LogLevel  string
	LogFormat string
	Fee       decimal.Decimal
	Verbosity Verbosity
	FeeSet    bool
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyZcashCLI, DefaultZcashCLI)
	v.SetDefault(KeyVerbosity, DefaultVerbosity)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
}

// Load reads the run configuration out of v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Unspent:   strings.TrimSpace(v.GetString(KeyUnspent)),
		ZcashCLI:  ExpandPath(v.GetString(KeyZcashCLI)),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
	}

	verbosity, err := ParseVerbosity(v.GetString(KeyVerbosity))
	if err != nil {
		return Config{}, err
	}
	cfg.Verbosity = verbosity

	if raw := strings.TrimSpace(v.GetString(KeyFee)); raw != "" {
		fee, err := decimal.NewFromString(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: fee %q is not a decimal amount", common.ErrInvalidConfig, raw)
		}
		cfg.Fee = fee
		cfg.FeeSet = true
	}

	if cfg.Unspent == "" {
		return cfg, common.ErrMissingUnspent
	}

	return cfg, nil
}
