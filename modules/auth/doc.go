// Package auth implements session issuance, verification, and revocation.
//
// A session token is a signed JWT carrying the user's public profile, the
// user's rights snapshot, and a random token ID. The token itself never
// expires; instead, every authenticated request checks the token ID against
// the in-memory index of live tokens. Logging out, changing a user's rights,
// or deleting a user removes token IDs from both the index and the
// validTokens ledger on the user document, so revocation takes effect on the
// next request.
//
// The index is rebuilt from the ledger at startup (Service.Reseed); after a
// crash between the two writes of a lifecycle operation, the ledger wins.
package auth
