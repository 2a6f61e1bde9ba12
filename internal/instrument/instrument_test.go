package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
	"github.com/sumanmaity112/smart-finanza/internal/oracle"
)

func TestInferOracleTierWins(t *testing.T) {
	mock := &oracle.MockOracle{Instrument: `The document is a "Credit Card" statement.`}
	inf := New(mock, &logging.MockLogger{})

	// Header keywords would say bank transfer; the oracle answer takes priority.
	method := inf.Infer(context.Background(), "Savings account statement", "statement.pdf")
	assert.Equal(t, models.MethodCreditCard, method)
}

func TestInferHeaderTextTier(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected models.PaymentMethod
	}{
		{name: "credit card", header: "HDFC Credit Card Statement for March", expected: models.MethodCreditCard},
		{name: "upi", header: "UPI transaction history", expected: models.MethodUPI},
		{name: "savings", header: "Savings summary", expected: models.MethodBankTransfer},
		{name: "account statement", header: "Account Statement 01/01-31/01", expected: models.MethodBankTransfer},
		{name: "no signal", header: "Monthly summary", expected: models.MethodUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Oracle answers nonsense so tier two decides.
			mock := &oracle.MockOracle{Instrument: "not sure"}
			inf := New(mock, &logging.MockLogger{})
			assert.Equal(t, tt.expected, inf.Infer(context.Background(), tt.header, "x.pdf"))
		})
	}
}

func TestInferFilenameTier(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected models.PaymentMethod
	}{
		{name: "credit card", filename: "hdfc_credit_card_jan.pdf", expected: models.MethodCreditCard},
		{name: "debit card", filename: "sbi-debit-card.csv", expected: models.MethodDebitCard},
		{name: "upi", filename: "upi_history.csv", expected: models.MethodUPI},
		{name: "bank", filename: "icici_bank_statement.pdf", expected: models.MethodBankTransfer},
		{name: "nothing", filename: "document.pdf", expected: models.MethodUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inf := New(&oracle.MockOracle{Instrument: "Unknown"}, &logging.MockLogger{})
			assert.Equal(t, tt.expected, inf.Infer(context.Background(), "", tt.filename))
		})
	}
}

func TestInferOracleFailureFallsThrough(t *testing.T) {
	mock := &oracle.MockOracle{InstrumentErr: errors.New("model unavailable")}
	inf := New(mock, &logging.MockLogger{})

	method := inf.Infer(context.Background(), "UPI statement for March", "x.csv")
	assert.Equal(t, models.MethodUPI, method)
}

func TestInferNilOracle(t *testing.T) {
	inf := New(nil, &logging.MockLogger{})
	method := inf.Infer(context.Background(), "credit card statement", "x.pdf")
	assert.Equal(t, models.MethodCreditCard, method)
}
