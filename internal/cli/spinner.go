package cli

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// spinInterval is how often the spinner advances.
const spinInterval = 120 * time.Millisecond

// Spinner shows an indeterminate progress indicator while a zcash-cli
// subcommand runs. zcrawpour in particular can take minutes.
type Spinner struct {
	writer  io.Writer
	enabled bool
}

// NewSpinner creates a spinner drawing to w. A disabled spinner draws nothing.
func NewSpinner(w io.Writer, enabled bool) *Spinner {
	if w == nil {
		w = os.Stderr
	}
	return &Spinner{writer: w, enabled: enabled}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Start begins spinning with label and returns a function that stops and
// clears the spinner. The returned function blocks until the spinner's
// goroutine has exited.
func (s *Spinner) Start(label string) func() {
	if !s.enabled {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(s.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan][bold]zcash-cli "+label+"[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(spinInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := bar.Add(1); err != nil {
					slog.Warn("Failed to update spinner", "error", err)
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
			if err := bar.Finish(); err != nil {
				slog.Warn("Failed to finish spinner", "error", err)
			}
		})
	}
}
