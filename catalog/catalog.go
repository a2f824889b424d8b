// Package catalog maps transaction status codes to human-readable display
// text.
//
// The mapping lives outside the processing core so the core's tests can
// assert on codes alone and the text can change without touching the
// status-code contract.
package catalog

import "github.com/Software78/payment-instruction-parser/transaction"

// reasons is a static lookup table, initialized once and read-only.
var reasons = map[transaction.StatusCode]string{
	transaction.CodeMissingKeyword:      "Instruction is missing a required keyword",
	transaction.CodeKeywordOrder:        "Instruction keywords are out of order",
	transaction.CodeUnparseable:         "Instruction could not be parsed",
	transaction.CodeInvalidAmount:       "Amount must be a positive whole number",
	transaction.CodeCurrencyMismatch:    "Currency mismatch between instruction and accounts",
	transaction.CodeUnsupportedCurrency: "Currency is not supported",
	transaction.CodeInsufficientFunds:   "Insufficient funds in debit account",
	transaction.CodeSameAccount:         "Debit and credit accounts must differ",
	transaction.CodeAccountNotFound:     "One or both accounts could not be found",
	transaction.CodeExecuted:            "Transaction executed successfully",
	transaction.CodeScheduled:           "Transaction scheduled for future execution",
}

// unknownReason is returned for codes outside the taxonomy.
const unknownReason = "Unknown status"

// Reason returns the display text for a status code.
func Reason(code transaction.StatusCode) string {
	if reason, ok := reasons[code]; ok {
		return reason
	}

	return unknownReason
}
