// Package store holds the in-memory entity stores behind the lifecycle
// orchestrator. Each store owns one entity collection, publishes the
// full collection to subscribers after every mutation, and writes the
// collection through to a local blob cache keyed by a versioned schema
// key.
//
// The in-memory collection is the source of truth for the running
// session; the blob cache is best-effort. Cache write failures are
// logged and swallowed so a transition that succeeded in memory is
// never aborted by storage.
package store

// Versioned cache keys, one JSON-array blob per entity kind. Bump the
// suffix when the persisted field set changes shape.
const (
	CustomersCacheKey  = "customers:v1"
	QuotesCacheKey     = "quotes:v1"
	AgreementsCacheKey = "agreements:v1"
	SetupsCacheKey     = "setups:v1"
)

// BlobCache is the local key/value blob storage backing each store.
//
// Load reports ok=false on a missing key; implementations also map
// internal read errors to a miss so a broken cache degrades to an empty
// collection instead of failing startup.
type BlobCache interface {
	Load(key string) (blob []byte, ok bool)
	Store(key string, blob []byte) error
}
