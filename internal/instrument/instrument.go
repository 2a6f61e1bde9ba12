// Package instrument infers the payment method of a statement from its
// header text and filename. The result becomes the per-transaction
// default when the oracle does not supply a method per row.
package instrument

import (
	"context"
	"strings"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
	"github.com/sumanmaity112/smart-finanza/internal/oracle"
)

// Inferer guesses the payment instrument using a strict three-tier
// priority: oracle classification, header-text keywords, filename
// keywords. Lower tiers only run when higher tiers produce nothing.
type Inferer struct {
	oracle oracle.Oracle
	log    logging.Logger
}

// New creates an Inferer. The oracle may be nil, in which case tier one
// is skipped.
func New(o oracle.Oracle, logger logging.Logger) *Inferer {
	return &Inferer{oracle: o, log: logger}
}

// Infer returns the best-guess payment method for a document.
func (i *Inferer) Infer(ctx context.Context, headerText, filename string) models.PaymentMethod {
	if method, ok := i.fromOracle(ctx, headerText); ok {
		return method
	}
	if method, ok := fromHeaderText(headerText); ok {
		return method
	}
	if method, ok := fromFilename(filename); ok {
		return method
	}
	return models.MethodUnknown
}

// fromOracle asks the classification capability and accepts the answer
// only when one of the known instrument labels appears in it.
func (i *Inferer) fromOracle(ctx context.Context, headerText string) (models.PaymentMethod, bool) {
	if i.oracle == nil || strings.TrimSpace(headerText) == "" {
		return models.MethodUnknown, false
	}

	answer, err := i.oracle.ClassifyInstrument(ctx, headerText)
	if err != nil {
		i.log.WithError(err).Debug("Instrument classification failed, falling back to keywords")
		return models.MethodUnknown, false
	}

	lower := strings.ToLower(answer)
	for _, label := range models.KnownInstrumentLabels() {
		if strings.Contains(lower, strings.ToLower(label)) {
			method, _ := models.ParsePaymentMethod(label)
			i.log.Debug("Instrument classified by oracle",
				logging.Field{Key: logging.FieldMethod, Value: label})
			return method, true
		}
	}
	return models.MethodUnknown, false
}

func fromHeaderText(headerText string) (models.PaymentMethod, bool) {
	lower := strings.ToLower(headerText)
	switch {
	case strings.Contains(lower, "credit card"):
		return models.MethodCreditCard, true
	case strings.Contains(lower, "upi"):
		return models.MethodUPI, true
	case strings.Contains(lower, "savings"), strings.Contains(lower, "account statement"):
		return models.MethodBankTransfer, true
	}
	return models.MethodUnknown, false
}

func fromFilename(filename string) (models.PaymentMethod, bool) {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "credit") && strings.Contains(lower, "card"):
		return models.MethodCreditCard, true
	case strings.Contains(lower, "debit") && strings.Contains(lower, "card"):
		return models.MethodDebitCard, true
	case strings.Contains(lower, "upi"):
		return models.MethodUPI, true
	case strings.Contains(lower, "bank"):
		return models.MethodBankTransfer, true
	}
	return models.MethodUnknown, false
}
