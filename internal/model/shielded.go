package model

import "github.com/shopspring/decimal"

// KeyInfo is the result of `zcash-cli zcrawkeygen`.
type KeyInfo struct {
	ZcAddress   string `json:"zcaddress"`
	ZcSecretKey string `json:"zcsecretkey"`
}

// PourResult is the result of `zcash-cli zcrawpour`.
type PourResult struct {
	RawTxn           string `json:"rawtxn"`
	EncryptedBucket1 string `json:"encryptedbucket1"`
	EncryptedBucket2 string `json:"encryptedbucket2"`
}

// SignResult is the result of `zcash-cli signrawtransaction`.
type SignResult struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`
}

// Received is the result of `zcash-cli zcrawreceive`.
type Received struct {
	Note   string          `json:"note"`
	Amount decimal.Decimal `json:"amount"`
	Exists bool            `json:"exists"`
}
