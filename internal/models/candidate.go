package models

import (
	"encoding/json"
	"strings"
)

// Candidate is the oracle's raw, unvalidated output for one possible
// transaction. Fields may be missing or malformed; the store sanitizes
// candidates into Transactions during persistence.
type Candidate struct {
	TransactionID string      `json:"transaction_id"`
	Date          string      `json:"date"`
	Merchant      string      `json:"merchant"`
	Amount        AmountField `json:"amount"`
	TxnType       string      `json:"txn_type"`
	PaymentMethod string      `json:"payment_method"`
	Notes         string      `json:"notes"`
}

// AmountField tolerates the oracle returning an amount as either a JSON
// number or a formatted string ("1,234.50"). The raw text is kept so
// normalization happens in exactly one place.
type AmountField string

// UnmarshalJSON accepts a number, a string, or null.
func (a *AmountField) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = AmountField(n.String())
	return nil
}

// IsZero reports whether the field is absent, unparseable, or an exact
// zero. Candidates without a truthy amount are discarded.
func (a AmountField) IsZero() bool {
	dec, err := NormalizeAmount(string(a))
	if err != nil {
		return true
	}
	return dec.IsZero()
}

func (a AmountField) String() string {
	return string(a)
}
