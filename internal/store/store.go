// Package store provides the key-value persistence port consumed by the
// session tracker, plus its in-memory, file-backed, and SQLite-backed
// implementations.
package store

// Store is the persistence port. Get reports whether a value exists for
// key; Set overwrites unconditionally. Callers must tolerate missing
// values and treat unreadable ones as absent.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
