package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/protect-coins/internal/config"
)

// Reporter prints the run's headers and results. A message is printed only
// when its level ranks at or below the configured verbosity.
type Reporter struct {
	writer    io.Writer
	styles    Styles
	verbosity config.Verbosity
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, verbosity config.Verbosity) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		writer:    w,
		styles:    NewStyles(w),
		verbosity: verbosity,
	}
}

// Echo prints msg as-is if level is shown.
func (r *Reporter) Echo(msg string, level config.Verbosity) {
	if !r.verbosity.Shows(level) {
		return
	}
	if _, err := fmt.Fprintln(r.writer, msg); err != nil {
		slog.Warn("Failed to write output", "error", err)
	}
}

// Header announces a step of the run.
func (r *Reporter) Header(text string) {
	r.Echo("\n\n"+r.styles.Header.Render(fmt.Sprintf("-- %s --", text))+"\n", config.Summaries)
}

// Warn prints a styled warning at the given level.
func (r *Reporter) Warn(msg string, level config.Verbosity) {
	r.Echo(r.styles.FormatWarning(msg), level)
}

// Result pretty-prints data as JSON with sorted keys.
func (r *Reporter) Result(data any) {
	if !r.verbosity.Shows(config.Results) {
		return
	}

	pretty, err := PrettyJSON(data)
	if err != nil {
		slog.Warn("Failed to format result", "error", err)
		pretty = fmt.Sprintf("%v", data)
	}

	r.Echo("\n"+r.styles.Label.Render("Result:")+"\n", config.Results)
	r.Echo(pretty+"\n\n", config.Results)
}

// PrettyJSON renders data indented by four spaces with object keys sorted.
// HTML characters are left unescaped.
func PrettyJSON(data any) (string, error) {
	raw, err := marshal(data)
	if err != nil {
		return "", err
	}

	// Round-trip through a generic value so struct fields are sorted too.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(generic); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func marshal(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
