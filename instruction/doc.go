// Package instruction tokenizes free-text payment instruction strings.
//
// The grammar is closed and position-based: a leading verb followed by fixed
// anchor phrases that delimit the amount, currency, account, and date fields.
// Scanning is pure substring search over the normalized input; no pattern
// engine is involved. The package reports syntax errors as codes on the
// Parsed record, never as Go errors, so callers can fold them into their own
// status taxonomy.
package instruction
