package models

import "strings"

// TxnType represents the direction of a transaction. Amounts are always
// stored non-negative; direction is carried here and nowhere else.
type TxnType int

const (
	TxnDebit TxnType = iota
	TxnCredit
)

// String returns the stored representation of the transaction type.
func (t TxnType) String() string {
	if t == TxnCredit {
		return "CREDIT"
	}
	return "DEBIT"
}

// ParseTxnType decodes a stored or oracle-supplied type string.
// Anything other than a case-insensitive "CREDIT" is a debit.
func ParseTxnType(s string) TxnType {
	if strings.EqualFold(strings.TrimSpace(s), "CREDIT") {
		return TxnCredit
	}
	return TxnDebit
}

// PaymentMethod identifies the instrument a transaction was made with.
type PaymentMethod int

const (
	MethodUnknown PaymentMethod = iota
	MethodCreditCard
	MethodDebitCard
	MethodUPI
	MethodBankTransfer
	MethodCash
)

var methodNames = map[PaymentMethod]string{
	MethodCreditCard:   "Credit Card",
	MethodDebitCard:    "Debit Card",
	MethodUPI:          "UPI",
	MethodBankTransfer: "Bank Transfer",
	MethodCash:         "Cash",
	MethodUnknown:      "Unknown",
}

// String returns the display string used at the persistence boundary.
func (m PaymentMethod) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "Unknown"
}

// ParsePaymentMethod decodes a display string case-insensitively.
// Unrecognized values map to MethodUnknown and ok is false, so callers
// can fall back to a document-level default.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	trimmed := strings.TrimSpace(s)
	for method, name := range methodNames {
		if strings.EqualFold(trimmed, name) {
			return method, true
		}
	}
	return MethodUnknown, false
}

// KnownInstrumentLabels lists the display strings an instrument
// classifier may answer with, excluding Unknown.
func KnownInstrumentLabels() []string {
	return []string{
		MethodCreditCard.String(),
		MethodDebitCard.String(),
		MethodUPI.String(),
		MethodBankTransfer.String(),
		MethodCash.String(),
	}
}

// CategoryUncategorized is the sentinel category assigned to every
// transaction at creation. Only the rule engine moves it off this value.
const CategoryUncategorized = "Uncategorized"
