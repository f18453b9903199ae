// Package model holds the records exchanged with zcash-cli during a run.
package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Unspent is one entry of `zcash-cli listunspent`.
// Fields this tool does not use are kept in Raw and shown as received.
type Unspent struct {
	TxID   string          `json:"txid"`
	Raw    json.RawMessage `json:"-"`
	Amount decimal.Decimal `json:"amount"`
	Vout   uint32          `json:"vout"`
}

// UnmarshalJSON decodes the known fields and remembers the original object.
func (u *Unspent) UnmarshalJSON(data []byte) error {
	type plain Unspent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = Unspent(p)
	u.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the object as zcash-cli produced it.
func (u Unspent) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	type plain Unspent
	return json.Marshal(plain(u))
}

// TotalAmount sums the amounts of the given outputs exactly.
func TotalAmount(outputs []Unspent) decimal.Decimal {
	total := decimal.Zero
	for _, u := range outputs {
		total = total.Add(u.Amount)
	}
	return total
}

// ShieldedAmount is the value credited to the new note: total minus fee.
func ShieldedAmount(total, fee decimal.Decimal) decimal.Decimal {
	return total.Sub(fee)
}
