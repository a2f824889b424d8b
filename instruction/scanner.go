package instruction

import "strings"

// Type classifies an instruction by its leading verb.
type Type string

const (
	// TypeDebit identifies instructions of the form
	// "debit <amount> <currency> from account <a> for credit to account <b>".
	TypeDebit Type = "DEBIT"
	// TypeCredit identifies instructions of the form
	// "credit <amount> <currency> to account <b> for debit from account <a>".
	TypeCredit Type = "CREDIT"
)

// ParseError is a syntax error code produced by the scanner.
type ParseError string

const (
	// ParseErrorMissingKeyword indicates a required anchor phrase is absent (SY01).
	ParseErrorMissingKeyword ParseError = "SY01"
	// ParseErrorKeywordOrder indicates anchors are present but out of order (SY02).
	ParseErrorKeywordOrder ParseError = "SY02"
	// ParseErrorUnparseable indicates the instruction cannot be tokenized at all (SY03).
	ParseErrorUnparseable ParseError = "SY03"
)

// Parsed is the immutable result of tokenizing one instruction string.
//
// A zero Err means tokenization succeeded; it says nothing about semantic
// validity. Amount carries the raw token and may be malformed. Currency is
// uppercased; account identifiers are lowercase because the whole input is
// normalized before slicing.
type Parsed struct {
	Type          Type
	Amount        string
	Currency      string
	DebitAccount  string
	CreditAccount string
	ExecuteBy     string
	Err           ParseError
}

// grammar describes one verb shape of the closed instruction grammar.
// first delimits the field right after the amount/currency pair, second
// delimits the remaining account field. firstIsDebit records which side of
// the transfer the first account field names.
type grammar struct {
	verb         string
	first        string
	second       string
	firstIsDebit bool
}

// dateAnchor introduces the optional execute-by date at the tail of either shape.
const dateAnchor = " on "

// grammars is the parsed grammar definition. It is process-wide immutable
// state, shared read-only across concurrent invocations.
var grammars = [...]grammar{
	{verb: "debit", first: "from account", second: "for credit to account", firstIsDebit: true},
	{verb: "credit", first: "to account", second: "for debit from account", firstIsDebit: false},
}

// Scan normalizes raw (lowercase, trimmed) and slices it against the grammar
// whose verb it starts with. It never returns a Go error: syntax failures
// surface as a ParseError code on the returned record, with every field
// resolved up to the point of failure.
func Scan(raw string) Parsed {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	for _, g := range grammars {
		if strings.HasPrefix(normalized, g.verb) {
			return scanShape(normalized, g)
		}
	}

	return Parsed{Err: ParseErrorUnparseable}
}

func scanShape(normalized string, g grammar) Parsed {
	parsed := Parsed{Type: TypeDebit}
	if !g.firstIsDebit {
		parsed.Type = TypeCredit
	}

	firstAt := strings.Index(normalized, g.first)
	secondAt := strings.Index(normalized, g.second)

	if firstAt < 0 || secondAt < 0 {
		parsed.Err = ParseErrorMissingKeyword
		return parsed
	}

	if firstAt >= secondAt {
		parsed.Err = ParseErrorKeywordOrder
		return parsed
	}

	tokens := strings.Fields(normalized[len(g.verb):firstAt])
	if len(tokens) < 2 {
		parsed.Err = ParseErrorUnparseable
		return parsed
	}

	parsed.Amount = tokens[0]
	parsed.Currency = strings.ToUpper(tokens[1])

	firstAccount := strings.TrimSpace(normalized[firstAt+len(g.first) : secondAt])

	tail := normalized[secondAt+len(g.second):]
	if onAt := strings.Index(tail, dateAnchor); onAt >= 0 {
		parsed.ExecuteBy = strings.TrimSpace(tail[onAt+len(dateAnchor):])
		tail = tail[:onAt]
	}

	secondAccount := strings.TrimSpace(tail)

	if g.firstIsDebit {
		parsed.DebitAccount = firstAccount
		parsed.CreditAccount = secondAccount
	} else {
		parsed.CreditAccount = firstAccount
		parsed.DebitAccount = secondAccount
	}

	return parsed
}
