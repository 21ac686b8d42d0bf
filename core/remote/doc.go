// Package remote synchronizes single records with a Firebase-style REST backend.
//
// Records are JSON documents addressed by key: PUT <base>/<key>.json creates or
// replaces one, DELETE removes it, and GET <base>/.json returns the whole collection
// as an object keyed by record key.
//
// The Dispatcher runs these calls in the background on a bounded pool so callers can
// treat them as fire-and-forget while still observing the outcome via a Completion.
package remote
