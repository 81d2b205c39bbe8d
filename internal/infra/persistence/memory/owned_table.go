package memory

import (
	"context"
	"slices"
	"sync"

	"sahara/internal/domain/repository"
	"sahara/internal/errors"

	"github.com/google/uuid"
)

// ownedTable keeps records in insertion order. Records are copied on the way
// in and out so callers never share memory with the table.
type ownedTable[E any, P any] struct {
	mu   sync.RWMutex
	rows []E

	id     func(*E) uuid.UUID
	owner  func(*E) uuid.UUID
	unique func(*E) string // nil when the table has no unique key
	apply  func(P, *E)
}

func (t *ownedTable[E, P]) Create(ctx context.Context, record *E) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.id(record)
	if slices.ContainsFunc(t.rows, func(row E) bool { return t.id(&row) == id }) {
		return errors.WithStack(repository.ErrDuplicateKey)
	}
	if t.violatesUnique(record, -1) {
		return errors.WithStack(repository.ErrDuplicateKey)
	}

	t.rows = append(t.rows, *record)

	return nil
}

func (t *ownedTable[E, P]) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*E, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	records := make([]*E, 0)
	for i := range t.rows {
		if t.owner(&t.rows[i]) == ownerID {
			record := t.rows[i]
			records = append(records, &record)
		}
	}

	return records, nil
}

func (t *ownedTable[E, P]) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*E, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := t.indexOwned(id, ownerID)
	if idx < 0 {
		return nil, errors.WithStack(repository.ErrRecordNotFound)
	}

	record := t.rows[idx]

	return &record, nil
}

func (t *ownedTable[E, P]) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, patch P) (*E, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOwned(id, ownerID)
	if idx < 0 {
		return nil, errors.WithStack(repository.ErrRecordNotFound)
	}

	candidate := t.rows[idx]
	t.apply(patch, &candidate)
	if t.violatesUnique(&candidate, idx) {
		return nil, errors.WithStack(repository.ErrDuplicateKey)
	}
	t.rows[idx] = candidate

	return &candidate, nil
}

func (t *ownedTable[E, P]) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (*E, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOwned(id, ownerID)
	if idx < 0 {
		return nil, errors.WithStack(repository.ErrRecordNotFound)
	}

	removed := t.rows[idx]
	t.rows = slices.Delete(t.rows, idx, idx+1)

	return &removed, nil
}

// indexOwned must be called with the lock held.
func (t *ownedTable[E, P]) indexOwned(id, ownerID uuid.UUID) int {
	return slices.IndexFunc(t.rows, func(row E) bool {
		return t.id(&row) == id && t.owner(&row) == ownerID
	})
}

// violatesUnique must be called with the lock held. skip is the row being replaced, or -1.
func (t *ownedTable[E, P]) violatesUnique(record *E, skip int) bool {
	if t.unique == nil {
		return false
	}

	key := t.unique(record)
	for i := range t.rows {
		if i != skip && t.unique(&t.rows[i]) == key {
			return true
		}
	}

	return false
}
