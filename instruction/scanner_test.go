package instruction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Well-formed instructions
// ---------------------------------------------------------------------------

func TestScan_DebitShape(t *testing.T) {
	t.Parallel()

	parsed := Scan("debit 500 NGN from account a1 for credit to account a2")

	require.Empty(t, parsed.Err)
	assert.Equal(t, TypeDebit, parsed.Type)
	assert.Equal(t, "500", parsed.Amount)
	assert.Equal(t, "NGN", parsed.Currency)
	assert.Equal(t, "a1", parsed.DebitAccount)
	assert.Equal(t, "a2", parsed.CreditAccount)
	assert.Empty(t, parsed.ExecuteBy)
}

func TestScan_CreditShape(t *testing.T) {
	t.Parallel()

	parsed := Scan("credit 50 usd to account a2 for debit from account a1")

	require.Empty(t, parsed.Err)
	assert.Equal(t, TypeCredit, parsed.Type)
	assert.Equal(t, "50", parsed.Amount)
	assert.Equal(t, "USD", parsed.Currency)
	assert.Equal(t, "a1", parsed.DebitAccount)
	assert.Equal(t, "a2", parsed.CreditAccount)
}

func TestScan_DebitShapeWithDate(t *testing.T) {
	t.Parallel()

	parsed := Scan("debit 500 NGN from account a1 for credit to account a2 on 2999-01-01")

	require.Empty(t, parsed.Err)
	assert.Equal(t, "a2", parsed.CreditAccount)
	assert.Equal(t, "2999-01-01", parsed.ExecuteBy)
}

func TestScan_CreditShapeWithDate(t *testing.T) {
	t.Parallel()

	parsed := Scan("credit 75 GBP to account savings for debit from account current on 2030-12-31")

	require.Empty(t, parsed.Err)
	assert.Equal(t, "savings", parsed.CreditAccount)
	assert.Equal(t, "current", parsed.DebitAccount)
	assert.Equal(t, "2030-12-31", parsed.ExecuteBy)
}

func TestScan_NormalizesCaseAndWhitespace(t *testing.T) {
	t.Parallel()

	parsed := Scan("  DEBIT 500 ngn FROM ACCOUNT A1 for CREDIT to account A2  ")

	require.Empty(t, parsed.Err)
	assert.Equal(t, TypeDebit, parsed.Type)
	assert.Equal(t, "NGN", parsed.Currency)
	// Identifiers come out lowercase because the whole input is normalized.
	assert.Equal(t, "a1", parsed.DebitAccount)
	assert.Equal(t, "a2", parsed.CreditAccount)
}

// The scanner extracts raw tokens only; a malformed amount is not its concern.
func TestScan_MalformedAmountTokenPassesThrough(t *testing.T) {
	t.Parallel()

	parsed := Scan("debit 12.5 NGN from account a1 for credit to account a2")

	require.Empty(t, parsed.Err)
	assert.Equal(t, "12.5", parsed.Amount)
}

func TestScan_MalformedDateTokenPassesThrough(t *testing.T) {
	t.Parallel()

	parsed := Scan("debit 500 NGN from account a1 for credit to account a2 on tomorrow")

	require.Empty(t, parsed.Err)
	assert.Equal(t, "tomorrow", parsed.ExecuteBy)
}

// A trailing "on" never dangles: the date anchor requires a trailing space,
// and trimming strips any whitespace after it, so the word stays inside the
// account token and ExecuteBy is only ever empty when no date was given.
func TestScan_TrailingOnStaysInAccountToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "bare trailing on", raw: "debit 500 NGN from account a1 for credit to account a2 on"},
		{name: "trailing on with whitespace", raw: "debit 500 NGN from account a1 for credit to account a2 on   "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parsed := Scan(tt.raw)
			require.Empty(t, parsed.Err)
			assert.Equal(t, "a2 on", parsed.CreditAccount)
			assert.Empty(t, parsed.ExecuteBy)
		})
	}
}

// ---------------------------------------------------------------------------
// Syntax failures
// ---------------------------------------------------------------------------

func TestScan_UnrecognizedVerb(t *testing.T) {
	t.Parallel()

	tests := []string{
		"please move money",
		"",
		"   ",
		"transfer 500 NGN from account a1 for credit to account a2",
	}

	for _, raw := range tests {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			parsed := Scan(raw)
			assert.Equal(t, ParseErrorUnparseable, parsed.Err)
			assert.Empty(t, parsed.Type)
		})
	}
}

func TestScan_MissingAnchors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "debit missing first anchor", raw: "debit 500 NGN a1 for credit to account a2"},
		{name: "debit missing second anchor", raw: "debit 500 NGN from account a1 a2"},
		{name: "credit missing first anchor", raw: "credit 50 USD a2 for debit from account a1"},
		{name: "credit missing second anchor", raw: "credit 50 USD to account a2 a1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parsed := Scan(tt.raw)
			assert.Equal(t, ParseErrorMissingKeyword, parsed.Err)
			assert.NotEmpty(t, parsed.Type)
		})
	}
}

func TestScan_AnchorsOutOfOrder(t *testing.T) {
	t.Parallel()

	parsed := Scan("debit 500 NGN for credit to account a2 from account a1")
	assert.Equal(t, ParseErrorKeywordOrder, parsed.Err)
	assert.Equal(t, TypeDebit, parsed.Type)

	parsed = Scan("credit 50 USD for debit from account a1 to account a2")
	assert.Equal(t, ParseErrorKeywordOrder, parsed.Err)
	assert.Equal(t, TypeCredit, parsed.Type)
}

func TestScan_FewerThanTwoLeadingTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "amount only", raw: "debit 500 from account a1 for credit to account a2"},
		{name: "nothing between verb and anchor", raw: "debit from account a1 for credit to account a2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parsed := Scan(tt.raw)
			assert.Equal(t, ParseErrorUnparseable, parsed.Err)
			assert.Equal(t, TypeDebit, parsed.Type)
		})
	}
}
