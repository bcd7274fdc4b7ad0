// Package tokenstore keeps the process-wide index of live session token IDs
// per user. Every authenticated request consults it, so lookups are pure
// in-memory reads; the durable copy lives on the user documents and reseeds
// the index at startup.
//
// The index is derived state: it is never persisted itself, and after a crash
// the user documents win — the startup reseed rebuilds the index from them.
//
// # Usage
//
//	store := tokenstore.New()
//	store.Add(userID, tokenID)
//
//	if !store.IsValid(userID, tokenID) {
//	    // token has been revoked
//	}
//
//	store.Invalidate(userID, tokenID)   // single logout
//	store.InvalidateAll(userID)         // rights change
//	store.RemoveUser(userID)            // account deletion
//
// All operations are safe for concurrent use.
package tokenstore
