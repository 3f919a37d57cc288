// Package logging centralizes slog construction for the Studify CLI.
//
// It builds console or JSON handlers from configuration, exposes typed attr
// helpers so call sites stay terse, and derives structured fields (record id,
// collection, correlation id) from context values stamped by the registry
// package. Tests use NewNop to silence output.
package logging
