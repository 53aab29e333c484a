// Package document implements the in-progress document state machine.
//
// A Model moves through three phases (no line of business, line of business
// selected, template selected). Every transition is synchronous and never
// fails for well-typed input. A Model has a single owner and is not safe for
// concurrent use; the session package serializes access when a Model is
// shared across requests.
package document
