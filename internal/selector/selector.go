// Package selector picks which unspent outputs a run shields.
package selector

import (
	"fmt"
	"strings"

	"github.com/Veraticus/protect-coins/internal/common"
	"github.com/Veraticus/protect-coins/internal/model"
)

// Selection modes besides an explicit txid list.
const (
	All   = "all"
	First = "first"
	Last  = "last"
)

// Select applies choice to unspent. choice is all, first, last or a
// comma-separated list of txids; listed txids are returned in the order
// given and every one must be present in unspent.
//
// unspent must not be empty.
func Select(choice string, unspent []model.Unspent) ([]model.Unspent, error) {
	switch choice {
	case All:
		return append([]model.Unspent(nil), unspent...), nil
	case First:
		return []model.Unspent{unspent[0]}, nil
	case Last:
		return []model.Unspent{unspent[len(unspent)-1]}, nil
	}

	ids := strings.Split(choice, ",")
	chosen := make([]model.Unspent, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		utxo, ok := find(id, unspent)
		if !ok {
			return nil, fmt.Errorf("%w. (txid: %s)", common.ErrUnknownTxID, id)
		}
		chosen = append(chosen, utxo)
	}
	return chosen, nil
}

func find(txid string, unspent []model.Unspent) (model.Unspent, bool) {
	for _, u := range unspent {
		if u.TxID == txid {
			return u, true
		}
	}
	return model.Unspent{}, false
}
