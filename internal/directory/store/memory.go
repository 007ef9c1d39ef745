package store

import (
	"context"
	"sync"

	"pcdir/internal/directory/models"
	person "pcdir/internal/person/models"
)

// InMemory is the append-only registry of directory entries.
//
// It is also the owner-identity arena: the single root allowed to establish
// sharing of Person values. Every entry whose owner has the same email address
// references the identical *Person; the arena index enforces that no two
// distinct identities ever share an email (invariant I1).
type InMemory struct {
	mu      sync.RWMutex
	entries []*models.Entry
	owners  map[person.EmailAddress]*person.Person
}

// NewInMemory creates an empty in-memory directory store.
func NewInMemory() *InMemory {
	return &InMemory{
		owners: make(map[person.EmailAddress]*person.Person),
	}
}

// AppendPC atomically resolves the builder's owner against the arena and
// appends a new entry. The builder must already carry hardware and OS.
//
// Owner resolution:
//   - no owner: the entry is created unowned;
//   - email already registered to an equal identity: the existing shared
//     *Person is reused, no new allocation;
//   - email registered to a different identity: fails with
//     *models.DuplicateEmailError and leaves the store unchanged;
//   - email unseen: the owner is promoted into the arena.
//
// The new entry's id is the current entry count, so ids stay dense and
// insertion-ordered (invariant I2).
func (s *InMemory) AppendPC(_ context.Context, b models.PCBuilder) (*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owner *person.Person
	if b.Owner != nil {
		if existing, ok := s.owners[b.Owner.Email]; ok {
			if !existing.Equal(b.Owner) {
				return nil, &models.DuplicateEmailError{Email: b.Owner.Email}
			}
			owner = existing
		} else {
			owner = b.Owner
			s.owners[b.Owner.Email] = owner
		}
	}

	entry := models.NewEntry(len(s.entries), *b.Hardware, *b.OS, owner)
	s.entries = append(s.entries, entry)
	return entry, nil
}

// List returns a snapshot of all entries in insertion order.
func (s *InMemory) List(_ context.Context) []*models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// FindByOwnerEmail returns every entry owned by the person with the given
// email address, in insertion order.
func (s *InMemory) FindByOwnerEmail(_ context.Context, email person.EmailAddress) []*models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Entry
	for _, e := range s.entries {
		if e.OwnedBy(email) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the total number of entries.
func (s *InMemory) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
