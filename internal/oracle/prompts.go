package oracle

import (
	"fmt"

	"github.com/sumanmaity112/smart-finanza/internal/models"
)

// headerSample bounds how much header text is sent for instrument
// classification; the account type is always near the top.
const headerSample = 2000

func extractionPrompt(fragment models.Fragment) string {
	contextHint := "unstructured text from a bank statement page"
	if fragment.Hint == models.HintTabular {
		contextHint = "raw tabular statement rows"
	}

	return fmt.Sprintf(`You are a strict financial data parser. Extract transactions from the %s below.

### RULES
1. Truthfulness: only extract data explicitly present in the input. Do NOT invent transactions.
   If the input is just headers, footers, or empty, return an empty list: [].
2. Date: input is likely DD/MM/YYYY. Convert strictly to YYYY-MM-DD.
3. Merchant: extract the clean name. Remove cities, "POS", and "Value Date".
   Exception: keep "Payment Received" and "Fuel Surcharge Waiver" as merchant names.
4. Amount: ALWAYS positive.
5. Type: "DEBIT" (spending) or "CREDIT" (refund/income/waiver).
6. Transaction ID: look for labels like "Ref No", "Txn ID", "Reference".
   Capture long numeric strings often found in waivers and payments.
7. Notes: capture any remaining details (category columns, narration, remarks).
   If there is no extra text, return an empty string "".
8. Structure: return a JSON list only. No markdown, no commentary.

### INPUT
%s

### EXAMPLE OUTPUT (use this format, but NOT this data)
[
    {
        "date": "2025-12-31",
        "merchant": "EXAMPLE_MERCHANT_ONLY",
        "amount": 100.00,
        "txn_type": "DEBIT",
        "payment_method": "Unknown",
        "transaction_id": "REF123456789",
        "notes": "Retail Outlet Services"
    }
]`, contextHint, fragment.Text)
}

func instrumentPrompt(headerText string) string {
	if len(headerText) > headerSample {
		headerText = headerText[:headerSample]
	}

	return fmt.Sprintf(`Analyze the header text of this financial document.
Identify the payment instrument or account type.

Return ONLY one of the following exact strings:
- "Credit Card"
- "Debit Card"
- "UPI"
- "Bank Transfer"
- "Cash"
- "Unknown"

Text:
%s`, headerText)
}
