package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTxnType(t *testing.T) {
	tests := []struct {
		input string
		want  TxnType
	}{
		{"CREDIT", TxnCredit},
		{"credit", TxnCredit},
		{" Credit ", TxnCredit},
		{"DEBIT", TxnDebit},
		{"withdrawal", TxnDebit},
		{"", TxnDebit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTxnType(tt.input))
		})
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		input  string
		want   PaymentMethod
		wantOK bool
	}{
		{"UPI", MethodUPI, true},
		{"upi", MethodUPI, true},
		{"Credit Card", MethodCreditCard, true},
		{" bank transfer ", MethodBankTransfer, true},
		{"Unknown", MethodUnknown, true},
		{"wire", MethodUnknown, false},
		{"", MethodUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParsePaymentMethod(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestKnownInstrumentLabelsExcludesUnknown(t *testing.T) {
	labels := KnownInstrumentLabels()
	assert.Len(t, labels, 5)
	assert.NotContains(t, labels, "Unknown")
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "450.00", "450", false},
		{"thousands separators", "1,234.50", "1234.5", false},
		{"rupee symbol", "₹890.00", "890", false},
		{"currency code", "INR 100", "100", false},
		{"dollar sign", "$25.99", "25.99", false},
		{"negative becomes absolute", "-890.50", "890.5", false},
		{"empty", "", "", true},
		{"garbage", "n/a", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAmountFieldUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number", `{"amount": 450.5}`, "450.5"},
		{"string", `{"amount": "1,234.50"}`, "1,234.50"},
		{"null", `{"amount": null}`, ""},
		{"missing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Candidate
			require.NoError(t, json.Unmarshal([]byte(tt.input), &c))
			assert.Equal(t, tt.want, c.Amount.String())
		})
	}
}

func TestAmountFieldIsZero(t *testing.T) {
	assert.True(t, AmountField("").IsZero())
	assert.True(t, AmountField("0").IsZero())
	assert.True(t, AmountField("0.00").IsZero())
	assert.True(t, AmountField("abc").IsZero())
	assert.False(t, AmountField("0.01").IsZero())
	assert.False(t, AmountField("-5").IsZero())
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-01-05"))
	assert.True(t, IsISODate("2024-01-05T10:00:00Z"))
	assert.False(t, IsISODate("05/01/2024"))
	assert.False(t, IsISODate("Jan 5, 2024"))
	assert.False(t, IsISODate(""))
}
