// Package transaction evaluates parsed payment instructions against a
// caller-supplied account snapshot.
//
// The Processor runs a strictly ordered chain of semantic checks over the
// output of the instruction scanner and produces a single Result per
// invocation: executed, scheduled, or failed with a specific status code.
// Expected business failures are never Go errors; they are terminal values
// of the chain. The computation is pure: the caller's accounts are read,
// never written, and any balance movement is visible only on the returned
// account views.
package transaction
