package memory

import (
	"context"
	"slices"
	"sync"

	"sahara/internal/domain/entity"
	"sahara/internal/domain/repository"
	"sahara/internal/errors"

	"github.com/google/uuid"
)

type userTable struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
}

func newUserTable() *userTable {
	return &userTable{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (t *userTable) Create(ctx context.Context, user *entity.User) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, taken := t.byEmail[user.Email]; taken {
		return errors.WithStack(repository.ErrDuplicateKey)
	}
	if _, taken := t.byID[user.ID]; taken {
		return errors.WithStack(repository.ErrDuplicateKey)
	}

	t.byID[user.ID] = cloneUser(user)
	t.byEmail[user.Email] = user.ID

	return nil
}

func (t *userTable) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	user, ok := t.byID[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return cloneUser(user), nil
}

func (t *userTable) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := t.byEmail[email]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return cloneUser(t.byID[id]), nil
}

func (t *userTable) AddContactRef(ctx context.Context, userID, contactID uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	user, ok := t.byID[userID]
	if !ok {
		return errors.WithStack(repository.ErrUserNotFound)
	}
	if !slices.Contains(user.ContactIDs, contactID) {
		user.ContactIDs = append(user.ContactIDs, contactID)
	}

	return nil
}

func (t *userTable) RemoveContactRef(ctx context.Context, userID, contactID uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	user, ok := t.byID[userID]
	if !ok {
		return errors.WithStack(repository.ErrUserNotFound)
	}
	user.ContactIDs = slices.DeleteFunc(user.ContactIDs, func(id uuid.UUID) bool { return id == contactID })

	return nil
}

func cloneUser(user *entity.User) *entity.User {
	clone := *user
	clone.ContactIDs = slices.Clone(user.ContactIDs)

	return &clone
}
