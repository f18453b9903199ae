package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNode answers every subcommand from a fixed table.
type stubNode struct {
	outputs   map[string]string
	exitCodes map[string]int
	calls     [][]string
}

func newStubNode() *stubNode {
	return &stubNode{outputs: map[string]string{
		"listunspent":          `[{"txid":"a","vout":0,"amount":1.0},{"txid":"b","vout":0,"amount":2.5}]`,
		"zcrawkeygen":          `{"zcaddress":"zcADDR","zcsecretkey":"SKEY"}`,
		"createrawtransaction": "RAWTX",
		"zcrawpour":            `{"rawtxn":"POURTX","encryptedbucket1":"B1","encryptedbucket2":"B2"}`,
		"signrawtransaction":   `{"hex":"SIGNED","complete":true}`,
		"sendrawtransaction":   "TXID",
		"zcrawreceive":         `{"amount":3.4,"note":"N","exists":true}`,
	}}
}

func (s *stubNode) Run(_ context.Context, name string, args ...string) ([]byte, int, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	return []byte(s.outputs[args[0]]), s.exitCodes[args[0]], nil
}

type harness struct {
	node   *stubNode
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func runApp(t *testing.T, args ...string) (*harness, int) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	h := &harness{node: newStubNode()}
	a := newApp(&h.stdout, &h.stderr)
	a.runner = h.node
	return h, a.execute(context.Background(), args)
}

func TestHelpExitsOne(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		t.Run(flag, func(t *testing.T) {
			h, code := runApp(t, "--unspent=all", flag)
			assert.Equal(t, 1, code)
			assert.Contains(t, h.stderr.String(), "protect-coins --unspent=<arg>")
			assert.Empty(t, h.stdout.String())
			assert.Empty(t, h.node.calls)
		})
	}
}

func TestMissingUnspent(t *testing.T) {
	h, code := runApp(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "all|first|last|<txlist>")
	assert.Contains(t, h.stderr.String(), "--unspent is required")
	assert.Empty(t, h.node.calls)
}

func TestFullRun(t *testing.T) {
	h, code := runApp(t, "--unspent=b,a", "--fee=0.1", "--zcash-cli=/opt/zcash-cli", "--log-level=error")
	require.Equal(t, 0, code, h.stderr.String())

	require.Len(t, h.node.calls, 7)
	for _, call := range h.node.calls {
		assert.Equal(t, "/opt/zcash-cli", call[0])
	}
	assert.JSONEq(t, `[{"txid":"b","vout":0},{"txid":"a","vout":0}]`, h.node.calls[2][2])
	assert.Equal(t, `{"zcADDR":3.4}`, h.node.calls[3][4])
	assert.Contains(t, h.stdout.String(), "-- Done! --")
}

func TestNothingToDoExitsZero(t *testing.T) {
	h := &harness{node: newStubNode()}
	h.node.outputs["listunspent"] = "[]"
	t.Setenv("HOME", t.TempDir())
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	a := newApp(&h.stdout, &h.stderr)
	a.runner = h.node
	code := a.execute(context.Background(), []string{"--unspent=all"})

	assert.Equal(t, 0, code)
	assert.Len(t, h.node.calls, 1)
	assert.Contains(t, h.stdout.String(), "No unspent coins to process.")
}

func TestUnknownTxIDExitsOne(t *testing.T) {
	h, code := runApp(t, "--unspent=zz")
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "zz")
	assert.Len(t, h.node.calls, 1)
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "verbosity", args: []string{"--unspent=all", "--verbosity=full"}},
		{name: "fee", args: []string{"--unspent=all", "--fee=lots"}},
		{name: "log level", args: []string{"--unspent=all", "--log-level=loud"}},
		{name: "positional argument", args: []string{"--unspent=all", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, code := runApp(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.NotEmpty(t, h.stderr.String())
			assert.Empty(t, h.node.calls)
		})
	}
}

func TestSilentRunWritesNothing(t *testing.T) {
	tests := []struct {
		name        string
		listunspent string
		wantCalls   int
	}{
		{name: "shielded", listunspent: "", wantCalls: 7},
		{name: "listunspent not a list", listunspent: "error: wallet is locked", wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			previous := slog.Default()
			t.Cleanup(func() { slog.SetDefault(previous) })

			h := &harness{node: newStubNode()}
			if tt.listunspent != "" {
				h.node.outputs["listunspent"] = tt.listunspent
			}
			a := newApp(&h.stdout, &h.stderr)
			a.runner = h.node

			code := a.execute(context.Background(), []string{"--unspent=all", "--verbosity=silent"})
			assert.Equal(t, 0, code)
			assert.Len(t, h.node.calls, tt.wantCalls)
			assert.Empty(t, h.stdout.String())
			assert.Empty(t, h.stderr.String())
		})
	}
}

func TestFailureReportedOnce(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	h := &harness{node: newStubNode()}
	h.node.outputs["zcrawreceive"] = "error: bad bucket"
	h.node.exitCodes = map[string]int{"zcrawreceive": 1}
	a := newApp(&h.stdout, &h.stderr)
	a.runner = h.node

	code := a.execute(context.Background(), []string{"--unspent=all", "--verbosity=silent"})
	assert.Equal(t, 1, code)
	assert.Len(t, h.node.calls, 7)
	assert.Equal(t, 1, strings.Count(h.stderr.String(), "error: bad bucket"), h.stderr.String())
	assert.Equal(t, 1, strings.Count(h.stderr.String(), "SKEY"), h.stderr.String())
}

func TestEnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("PROTECT_COINS_UNSPENT", "first")
	t.Setenv("PROTECT_COINS_ZCASH_CLI", "/env/zcash-cli")
	t.Setenv("PROTECT_COINS_VERBOSITY", "silent")

	h, code := runApp(t, "--log-level=error")
	require.Equal(t, 0, code, h.stderr.String())
	assert.Empty(t, h.stdout.String())
	require.NotEmpty(t, h.node.calls)
	assert.Equal(t, "/env/zcash-cli", h.node.calls[0][0])
	assert.JSONEq(t, `[{"txid":"a","vout":0}]`, h.node.calls[2][2])
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unspent: last\nverbosity: errors\nfee: 0.5\nlogging:\n  level: error\n"), 0o600))

	h, code := runApp(t, "--config="+path)
	require.Equal(t, 0, code, h.stderr.String())
	assert.Empty(t, h.stdout.String())
	assert.JSONEq(t, `[{"txid":"b","vout":0}]`, h.node.calls[2][2])
	assert.Equal(t, `{"zcADDR":2}`, h.node.calls[3][4])
}
