// Package registry defines shared utilities consumed by the subject and
// material registries and the CLI facade.
//
// Key responsibilities:
//   - Context helpers that stamp record IDs, collection names, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper so callers can distinguish
//     validation failures, missing records, and storage faults without string
//     matching.
//
// Use these helpers when wiring new registry logic so operational behaviour
// (error handling, observability) stays uniform across collections.
package registry
