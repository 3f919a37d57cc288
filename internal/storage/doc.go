// Package storage persists named record collections as whole JSON payloads
// under fixed keys, backed by SQLite.
//
// The Backend interface is the injection point for registries: one payload per
// collection key, replaced wholesale on every save. Store is the durable
// SQLite implementation; it holds a file lock on the data directory so only
// one process mutates the collections at a time, and refuses writes when the
// volume is nearly full. Memory is the in-process implementation used by
// tests.
//
// Generic LoadAll/SaveAll helpers handle the JSON codec. A corrupt payload is
// logged and treated as an empty collection rather than surfaced as an error;
// the stored data is cache-like local state, so availability wins over strict
// correctness there.
package storage
