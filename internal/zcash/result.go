package zcash

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/protect-coins/internal/common"
)

// Result is what a zcash-cli subcommand printed: either a JSON object or
// array, or a plain text value such as a hex transaction or a txid.
type Result struct {
	// Value holds the decoded object or array; nil for plain text.
	Value any
	// Text is the trimmed output.
	Text string
}

// Decode classifies zcash-cli output. Only text that starts with '[' or '{'
// and parses completely is treated as JSON; anything else, including empty
// output, is returned as trimmed text.
func Decode(buf []byte) Result {
	trimmed := bytes.TrimSpace(buf)
	res := Result{Text: string(trimmed)}

	if len(trimmed) == 0 || (trimmed[0] != '[' && trimmed[0] != '{') || !json.Valid(trimmed) {
		return res
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return res
	}

	res.Value = v
	return res
}

// IsJSON reports whether the output decoded as a JSON object or array.
func (r Result) IsJSON() bool {
	return r.Value != nil
}

// Display returns the decoded value, or the text when the output was not JSON.
func (r Result) Display() any {
	if r.IsJSON() {
		return r.Value
	}
	return r.Text
}

// Into decodes JSON output into dst.
func (r Result) Into(dst any) error {
	if !r.IsJSON() {
		return fmt.Errorf("%w: expected JSON, got %q", common.ErrUnexpectedOutput, r.Text)
	}
	if err := json.Unmarshal([]byte(r.Text), dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnexpectedOutput, err)
	}
	return nil
}
