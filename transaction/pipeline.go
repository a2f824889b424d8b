package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Software78/payment-instruction-parser/instruction"
)

// ReasonFunc maps a status code to its display text. Keeping the mapping
// behind a function keeps the catalog swappable and lets tests assert on
// codes alone.
type ReasonFunc func(StatusCode) string

// Processor evaluates payment instructions against account snapshots.
//
// A Processor holds no per-invocation state; concurrent Process calls are
// fully independent.
type Processor struct {
	reason ReasonFunc
	now    func() time.Time
}

// Option configures a Processor.
type Option func(*Processor)

// WithReasonFunc installs the status-reason lookup used on every result.
func WithReasonFunc(reason ReasonFunc) Option {
	return func(p *Processor) {
		if reason != nil {
			p.reason = reason
		}
	}
}

// WithClock overrides the clock used to classify execute-by dates. Intended
// for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProcessor creates a Processor. Without options it uses the wall clock
// and empty status reasons.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		reason: func(StatusCode) string { return "" },
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process runs the ordered validation chain over one raw instruction and the
// caller's account snapshot, terminating at the first failing check.
//
// Stage order is a designed precedence: tokenization, amount format,
// currency support, account existence, account distinctness, account
// currency consistency, instruction currency consistency, date format and
// classification, funds sufficiency, then execution or scheduling. Every
// exit point reports whatever fields were resolved before it; the rest stay
// null. The caller's accounts are never mutated.
func (p *Processor) Process(rawInstruction string, accounts []Account) Result {
	parsed := instruction.Scan(rawInstruction)

	result := Result{Status: StatusFailed, Accounts: []AccountView{}}
	if parsed.Type != "" {
		result.Type = ptr(parsed.Type)
	}

	if parsed.Err != "" {
		return p.finish(result, StatusCode(parsed.Err))
	}

	// Tokenization resolved every raw field; from here on all exits report
	// them, and the account view follows the identifiers just resolved.
	result.Currency = ptr(parsed.Currency)
	result.DebitAccount = ptr(parsed.DebitAccount)
	result.CreditAccount = ptr(parsed.CreditAccount)

	if parsed.ExecuteBy != "" {
		result.ExecuteBy = ptr(parsed.ExecuteBy)
	}

	result.Accounts = ViewInRequestOrder(accounts, parsed.DebitAccount, parsed.CreditAccount)

	amount, ok := ValidateAmount(parsed.Amount)
	if !ok {
		return p.finish(result, CodeInvalidAmount)
	}

	result.Amount = ptr(amount)

	if !IsSupportedCurrency(parsed.Currency) {
		return p.finish(result, CodeUnsupportedCurrency)
	}

	debit, debitFound := FindAccount(accounts, parsed.DebitAccount)

	credit, creditFound := FindAccount(accounts, parsed.CreditAccount)
	if !debitFound || !creditFound {
		return p.finish(result, CodeAccountNotFound)
	}

	if debit.ID == credit.ID {
		return p.finish(result, CodeSameAccount)
	}

	if !strings.EqualFold(debit.Currency, credit.Currency) {
		return p.finish(result, CodeCurrencyMismatch)
	}

	// Both accounts agree at this point, so comparing the instruction
	// currency against the debit side covers both.
	if parsed.Currency != strings.ToUpper(debit.Currency) {
		return p.finish(result, CodeCurrencyMismatch)
	}

	future := false

	if parsed.ExecuteBy != "" {
		if !ValidateDate(parsed.ExecuteBy) {
			// Malformed dates share the unparseable code with instructions
			// that never tokenized. Part of the status-code contract.
			return p.finish(result, CodeUnparseable)
		}

		future = IsFutureDate(parsed.ExecuteBy, p.now())
	}

	if !future && debit.Balance.LessThan(decimal.NewFromInt(amount)) {
		return p.finish(result, CodeInsufficientFunds)
	}

	if future {
		result.Status = StatusPending
		return p.finish(result, CodeScheduled)
	}

	result.Status = StatusSuccessful
	result.Accounts = applyTransfer(result.Accounts, debit.ID, credit.ID, amount)

	return p.finish(result, CodeExecuted)
}

func (p *Processor) finish(result Result, code StatusCode) Result {
	result.StatusCode = code
	result.StatusReason = p.reason(code)

	return result
}

// applyTransfer moves amount from the debit view to the credit view. The
// pre-state stays on BalanceBefore.
func applyTransfer(views []AccountView, debitID, creditID string, amount int64) []AccountView {
	delta := decimal.NewFromInt(amount)

	for i, view := range views {
		switch view.ID {
		case debitID:
			views[i].Balance = view.BalanceBefore.Sub(delta)
		case creditID:
			views[i].Balance = view.BalanceBefore.Add(delta)
		}
	}

	return views
}

func ptr[T any](v T) *T {
	return &v
}
