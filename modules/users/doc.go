// Package users owns the user entity: identity, credentials, rights, and the
// durable list of valid session token IDs that survives restarts.
//
// The validTokens field on each user document is the source of truth for
// session revocation. It is only ever mutated with atomic update operators
// ($push, $pull, $set), so concurrent logins for the same user cannot lose
// tokens to a read-modify-write race. The in-memory token index mirrors this
// field and is rebuilt from it at startup.
//
// Changing a user's rights revokes all of that user's sessions — unless the
// submitted rights equal the stored ones, in which case nothing is revoked.
package users
