package transaction

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/Software78/payment-instruction-parser/instruction"
)

// Status represents the terminal outcome of processing one instruction.
type Status string

const (
	// StatusFailed marks an instruction rejected by a syntax or business check.
	StatusFailed Status = "failed"
	// StatusPending marks a valid future-dated instruction accepted without execution.
	StatusPending Status = "pending"
	// StatusSuccessful marks an instruction executed against the account views.
	StatusSuccessful Status = "successful"
)

// StatusCode is the machine-readable outcome identifier paired with a Status.
type StatusCode string

const (
	// CodeMissingKeyword indicates a required anchor phrase is absent.
	CodeMissingKeyword StatusCode = "SY01"
	// CodeKeywordOrder indicates anchors are present but out of order.
	CodeKeywordOrder StatusCode = "SY02"
	// CodeUnparseable indicates an unparseable instruction or malformed date.
	CodeUnparseable StatusCode = "SY03"
	// CodeInvalidAmount indicates the amount token is not a positive integer.
	CodeInvalidAmount StatusCode = "AM01"
	// CodeCurrencyMismatch indicates account currencies disagree with each
	// other or with the instruction currency.
	CodeCurrencyMismatch StatusCode = "CU01"
	// CodeUnsupportedCurrency indicates the currency is not in the supported set.
	CodeUnsupportedCurrency StatusCode = "CU02"
	// CodeInsufficientFunds indicates the debit account cannot cover the amount.
	CodeInsufficientFunds StatusCode = "AC01"
	// CodeSameAccount indicates debit and credit accounts are identical.
	CodeSameAccount StatusCode = "AC02"
	// CodeAccountNotFound indicates one or both accounts are missing.
	CodeAccountNotFound StatusCode = "AC03"
	// CodeExecuted indicates the transaction executed successfully.
	CodeExecuted StatusCode = "AP00"
	// CodeScheduled indicates the transaction was scheduled for future execution.
	CodeScheduled StatusCode = "AP01"
)

// Account is one entry of the caller-supplied balance snapshot.
//
// IDs are expected to be unique within a request; uniqueness is not enforced
// here and the first match wins on lookup. Balance may be fractional even
// though executed amounts are always whole.
type Account struct {
	ID       string          `json:"id"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// AccountView is the reported post-state of an account involved in the
// instruction. BalanceBefore always carries the pre-invocation balance;
// mutation, if any, is visible only on Balance. Currency is uppercased.
type AccountView struct {
	ID            string          `json:"id"`
	Balance       decimal.Decimal `json:"balance"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	Currency      string          `json:"currency"`
}

// MarshalJSON emits Balance and BalanceBefore as bare JSON numbers.
// decimal.Decimal marshals quoted by default, which would turn the numeric
// balance fields into strings on the wire.
func (v AccountView) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID            string      `json:"id"`
		Balance       json.Number `json:"balance"`
		BalanceBefore json.Number `json:"balance_before"`
		Currency      string      `json:"currency"`
	}{
		ID:            v.ID,
		Balance:       json.Number(v.Balance.String()),
		BalanceBefore: json.Number(v.BalanceBefore.String()),
		Currency:      v.Currency,
	})
}

// Result is the complete outcome of one instruction evaluation.
//
// Pointer fields are nil when the failing stage terminated the chain before
// the field was resolved; they serialize as JSON null. Accounts holds only
// the accounts named by the instruction, in the caller's original order, and
// is empty when no account could be determined.
type Result struct {
	Type          *instruction.Type `json:"type"`
	Amount        *int64            `json:"amount"`
	Currency      *string           `json:"currency"`
	DebitAccount  *string           `json:"debit_account"`
	CreditAccount *string           `json:"credit_account"`
	ExecuteBy     *string           `json:"execute_by"`
	Status        Status            `json:"status"`
	StatusReason  string            `json:"status_reason"`
	StatusCode    StatusCode        `json:"status_code"`
	Accounts      []AccountView     `json:"accounts"`
}

// supportedCurrencies is the fixed currency configuration, initialized once
// and shared read-only across invocations.
var supportedCurrencies = map[string]struct{}{
	"NGN": {},
	"USD": {},
	"GBP": {},
	"GHS": {},
}

// IsSupportedCurrency reports whether code (already uppercased by the
// scanner) belongs to the supported currency set.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}
