package config

import (
	"fmt"

	"github.com/Veraticus/protect-coins/internal/common"
)

// Verbosity ranks how much of the run is echoed to the user.
type Verbosity int

// Verbosity levels, least to most verbose.
const (
	Silent Verbosity = iota
	Errors
	Summaries
	Results
	Debug
)

var verbosityNames = [...]string{
	Silent:    "silent",
	Errors:    "errors",
	Summaries: "summaries",
	Results:   "results",
	Debug:     "debug",
}

// ParseVerbosity returns the level with the given name.
func ParseVerbosity(name string) (Verbosity, error) {
	for i, n := range verbosityNames {
		if n == name {
			return Verbosity(i), nil
		}
	}
	return Silent, fmt.Errorf("%w: unknown verbosity %q (want silent|errors|summaries|results|debug)", common.ErrInvalidConfig, name)
}

func (v Verbosity) String() string {
	if v < Silent || v > Debug {
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
	return verbosityNames[v]
}

// Shows reports whether a message at level msg is printed when v is configured.
func (v Verbosity) Shows(msg Verbosity) bool {
	return msg <= v
}
