// Package shield runs the transparent-to-shielded sequence against zcash-cli.
package shield

import (
	"context"
	"fmt"

	"github.com/Veraticus/protect-coins/internal/common"
	"github.com/Veraticus/protect-coins/internal/config"
	"github.com/Veraticus/protect-coins/internal/model"
	"github.com/Veraticus/protect-coins/internal/selector"
	"github.com/Veraticus/protect-coins/internal/zcash"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/shopspring/decimal"
)

// Node is the subset of zcash-cli the run needs.
type Node interface {
	ListUnspent(ctx context.Context) ([]model.Unspent, zcash.Result, error)
	RawKeygen(ctx context.Context) (model.KeyInfo, zcash.Result, error)
	CreateRawTransaction(ctx context.Context, inputs []btcjson.TransactionInput) (string, zcash.Result, error)
	RawPour(ctx context.Context, rawTx, address string, total, fee decimal.Decimal) (model.PourResult, zcash.Result, error)
	SignRawTransaction(ctx context.Context, rawTx string) (model.SignResult, zcash.Result, error)
	SendRawTransaction(ctx context.Context, signedHex string) (string, zcash.Result, error)
	RawReceive(ctx context.Context, secretKey, bucket string) (model.Received, zcash.Result, error)
}

// Reporter displays the run's progress.
type Reporter interface {
	Echo(msg string, level config.Verbosity)
	Warn(msg string, level config.Verbosity)
	Header(text string)
	Result(data any)
}

// Outcome summarises a finished run.
type Outcome struct {
	Selected []model.Unspent
	Key      model.KeyInfo
	Pour     model.PourResult
	Received model.Received
	TxID     string
	Total    decimal.Decimal
	// Shielded is false when there were no unspent outputs to work with.
	Shielded bool
}

// Protector moves selected transparent outputs into a new shielded address.
type Protector struct {
	node     Node
	reporter Reporter
	cfg      config.Config
}

// NewProtector creates a Protector.
func NewProtector(cfg config.Config, node Node, reporter Reporter) *Protector {
	return &Protector{
		node:     node,
		reporter: reporter,
		cfg:      cfg,
	}
}

// Run performs the whole sequence. It stops at the first failure and leaves
// whatever the node already did in place.
func (p *Protector) Run(ctx context.Context) (Outcome, error) {
	var out Outcome

	selected, err := p.chooseUnspent(ctx)
	if err != nil || len(selected) == 0 {
		return out, err
	}
	out.Selected = selected

	p.reporter.Header("Generating Address")
	key, res, err := p.node.RawKeygen(ctx)
	if err != nil {
		return out, p.abort("generating address", err)
	}
	p.reporter.Result(res.Display())
	out.Key = key

	inputs, total := BuildInputs(selected)
	out.Total = total

	p.reporter.Header("Creating Raw Tx")
	rawTx, res, err := p.node.CreateRawTransaction(ctx, inputs)
	if err != nil {
		return out, p.abort("creating raw transaction", err)
	}
	p.reporter.Result(res.Display())

	p.reporter.Header("Calling zcrawpour")
	pour, res, err := p.node.RawPour(ctx, rawTx, key.ZcAddress, total, p.cfg.Fee)
	if err != nil {
		return out, p.abort("calling zcrawpour", err)
	}
	p.reporter.Result(res.Display())
	out.Pour = pour

	p.reporter.Header("Signing Tx")
	sig, res, err := p.node.SignRawTransaction(ctx, pour.RawTxn)
	if err != nil {
		return out, p.abort("signing transaction", err)
	}
	p.reporter.Result(res.Display())

	p.reporter.Header("Sending the Tx to ourself")
	txid, res, err := p.node.SendRawTransaction(ctx, sig.Hex)
	if err != nil {
		return out, p.abort("sending transaction", err)
	}
	p.reporter.Result(res.Display())
	out.TxID = txid

	p.reporter.Header("Decrypting the received Tx")
	received, res, err := p.node.RawReceive(ctx, key.ZcSecretKey, pour.EncryptedBucket1)
	if err != nil {
		return out, p.abort("decrypting received transaction", err)
	}
	p.reporter.Result(res.Display())
	out.Received = received
	out.Shielded = true

	p.reporter.Header("Done!")
	return out, nil
}

// chooseUnspent lists the wallet's unspent outputs and applies the
// configured selection. An empty wallet yields no outputs and no error.
func (p *Protector) chooseUnspent(ctx context.Context) ([]model.Unspent, error) {
	p.reporter.Header("Listing Unspent Coins")
	unspent, res, err := p.node.ListUnspent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unspent coins: %w", err)
	}
	p.reporter.Result(res.Display())

	if len(unspent) == 0 {
		p.reporter.Warn("No unspent coins to process.  Quitting!", config.Errors)
		return nil, nil
	}

	selected, err := selector.Select(p.cfg.Unspent, unspent)
	if err != nil {
		return nil, common.NewUserError("invalid --unspent selection", err)
	}

	p.reporter.Header("Unspent Coins Chosen")
	p.reporter.Echo(fmt.Sprintf("  User's choice: %s\n\n", p.cfg.Unspent), config.Results)
	p.reporter.Result(selected)

	return selected, nil
}

// abort records which step failed. The node keeps any state changed by
// earlier steps.
func (p *Protector) abort(step string, err error) error {
	common.LogDebug("shielding run aborted", common.Fields{"step": step, "error": err.Error()})
	return fmt.Errorf("%s: %w", step, err)
}

// BuildInputs turns the selected outputs into createrawtransaction inputs and
// sums their amounts. Every input references output index 0, whatever the
// record's own vout.
func BuildInputs(selected []model.Unspent) ([]btcjson.TransactionInput, decimal.Decimal) {
	inputs := make([]btcjson.TransactionInput, 0, len(selected))
	for _, u := range selected {
		inputs = append(inputs, btcjson.TransactionInput{Txid: u.TxID, Vout: 0})
	}
	return inputs, model.TotalAmount(selected)
}
