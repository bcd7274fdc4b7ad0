package tokenstore

import "sync"

// Store maps user IDs to the set of their currently valid token IDs.
// Mutations are check-then-act sequences, so they hold the write lock.
type Store struct {
	mu     sync.RWMutex
	tokens map[string]map[string]struct{}
}

// New creates an empty token store.
func New() *Store {
	return &Store{
		tokens: make(map[string]map[string]struct{}),
	}
}

// Add inserts tokenID into the user's set, creating the set if absent.
func (s *Store) Add(userID, tokenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.tokens[userID]
	if !ok {
		set = make(map[string]struct{})
		s.tokens[userID] = set
	}
	set[tokenID] = struct{}{}
}

// Invalidate removes tokenID from the user's set.
// Unknown users and unknown tokens are a no-op.
func (s *Store) Invalidate(userID, tokenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.tokens[userID]; ok {
		delete(set, tokenID)
	}
}

// InvalidateAll empties the user's set. The entry itself is kept; IsValid
// treats a missing entry and an empty set identically.
func (s *Store) InvalidateAll(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[userID]; ok {
		s.tokens[userID] = make(map[string]struct{})
	}
}

// RemoveUser deletes the user's entry entirely. No-op if absent.
func (s *Store) RemoveUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, userID)
}

// IsValid reports whether tokenID is currently valid for the user.
func (s *Store) IsValid(userID, tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.tokens[userID]
	if !ok {
		return false
	}
	_, ok = set[tokenID]
	return ok
}

// Stats returns the number of indexed users and live tokens.
func (s *Store) Stats() (users, tokens int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users = len(s.tokens)
	for _, set := range s.tokens {
		tokens += len(set)
	}
	return users, tokens
}
