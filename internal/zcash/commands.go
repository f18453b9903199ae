package zcash

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Veraticus/protect-coins/internal/common"
	"github.com/Veraticus/protect-coins/internal/model"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/shopspring/decimal"
)

// zcash-cli subcommands used by the shielding run.
const (
	CmdListUnspent          = "listunspent"
	CmdRawKeygen            = "zcrawkeygen"
	CmdCreateRawTransaction = "createrawtransaction"
	CmdRawPour              = "zcrawpour"
	CmdSignRawTransaction   = "signrawtransaction"
	CmdSendRawTransaction   = "sendrawtransaction"
	CmdRawReceive           = "zcrawreceive"
)

// emptyObject is passed wherever a subcommand takes a mapping we leave empty.
const emptyObject = "{}"

// ListUnspent returns the wallet's unspent transparent outputs. Output that
// is not a JSON array yields no outputs.
func (c *Client) ListUnspent(ctx context.Context) ([]model.Unspent, Result, error) {
	res, err := c.Call(ctx, CmdListUnspent)
	if err != nil {
		return nil, res, err
	}

	if _, ok := res.Value.([]any); !ok {
		if res.Text != "" {
			slog.Debug("listunspent did not return a list", "output", res.Text)
		}
		return nil, res, nil
	}

	var unspent []model.Unspent
	if err := res.Into(&unspent); err != nil {
		return nil, res, fmt.Errorf("failed to decode %s: %w", CmdListUnspent, err)
	}
	return unspent, res, nil
}

// RawKeygen generates a new shielded address and its secret key.
func (c *Client) RawKeygen(ctx context.Context) (model.KeyInfo, Result, error) {
	var key model.KeyInfo
	res, err := c.Call(ctx, CmdRawKeygen)
	if err != nil {
		return key, res, err
	}
	if err := res.Into(&key); err != nil {
		return key, res, fmt.Errorf("failed to decode %s: %w", CmdRawKeygen, err)
	}
	if key.ZcAddress == "" || key.ZcSecretKey == "" {
		return key, res, fmt.Errorf("%w: %s returned no address or secret key", common.ErrUnexpectedOutput, CmdRawKeygen)
	}
	return key, res, nil
}

// CreateRawTransaction builds an unsigned transaction spending inputs with no
// transparent outputs and returns its hex encoding.
func (c *Client) CreateRawTransaction(ctx context.Context, inputs []btcjson.TransactionInput) (string, Result, error) {
	if inputs == nil {
		inputs = []btcjson.TransactionInput{}
	}
	encoded, err := json.Marshal(inputs)
	if err != nil {
		return "", Result{}, fmt.Errorf("failed to encode inputs: %w", err)
	}

	res, err := c.Call(ctx, CmdCreateRawTransaction, string(encoded), emptyObject)
	if err != nil {
		return "", res, err
	}
	return textResult(CmdCreateRawTransaction, res)
}

// RawPour moves total from the raw transaction's inputs into a note for
// address, paying fee. The note amount is total minus fee.
func (c *Client) RawPour(ctx context.Context, rawTx, address string, total, fee decimal.Decimal) (model.PourResult, Result, error) {
	var pour model.PourResult

	outputs, err := json.Marshal(map[string]json.Number{
		address: json.Number(model.ShieldedAmount(total, fee).String()),
	})
	if err != nil {
		return pour, Result{}, fmt.Errorf("failed to encode pour outputs: %w", err)
	}

	res, err := c.Call(ctx, CmdRawPour, rawTx, emptyObject, string(outputs), total.String(), fee.String())
	if err != nil {
		return pour, res, err
	}
	if err := res.Into(&pour); err != nil {
		return pour, res, fmt.Errorf("failed to decode %s: %w", CmdRawPour, err)
	}
	if pour.RawTxn == "" {
		return pour, res, fmt.Errorf("%w: %s returned no rawtxn", common.ErrUnexpectedOutput, CmdRawPour)
	}
	return pour, res, nil
}

// SignRawTransaction signs a raw transaction with the wallet's keys.
func (c *Client) SignRawTransaction(ctx context.Context, rawTx string) (model.SignResult, Result, error) {
	var sig model.SignResult
	res, err := c.Call(ctx, CmdSignRawTransaction, rawTx)
	if err != nil {
		return sig, res, err
	}
	if err := res.Into(&sig); err != nil {
		return sig, res, fmt.Errorf("failed to decode %s: %w", CmdSignRawTransaction, err)
	}
	if sig.Hex == "" {
		return sig, res, fmt.Errorf("%w: %s returned no hex", common.ErrUnexpectedOutput, CmdSignRawTransaction)
	}
	return sig, res, nil
}

// SendRawTransaction broadcasts a signed transaction and returns its txid.
func (c *Client) SendRawTransaction(ctx context.Context, signedHex string) (string, Result, error) {
	res, err := c.Call(ctx, CmdSendRawTransaction, signedHex)
	if err != nil {
		return "", res, err
	}
	return textResult(CmdSendRawTransaction, res)
}

// RawReceive decrypts an encrypted bucket with the shielded secret key.
func (c *Client) RawReceive(ctx context.Context, secretKey, bucket string) (model.Received, Result, error) {
	var received model.Received
	res, err := c.Call(ctx, CmdRawReceive, secretKey, bucket)
	if err != nil {
		return received, res, err
	}
	if err := res.Into(&received); err != nil {
		return received, res, fmt.Errorf("failed to decode %s: %w", CmdRawReceive, err)
	}
	return received, res, nil
}

func textResult(subcommand string, res Result) (string, Result, error) {
	if res.IsJSON() || res.Text == "" {
		return "", res, fmt.Errorf("%w: %s should print a hex string, got %q", common.ErrUnexpectedOutput, subcommand, res.Text)
	}
	return res.Text, res, nil
}
