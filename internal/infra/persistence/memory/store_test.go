package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sahara/internal/domain/entity"
	"sahara/internal/domain/repository"
	"sahara/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContact(owner uuid.UUID, phone string) *entity.Contact {
	now := time.Now().UTC()

	return &entity.Contact{
		ID:           uuid.New(),
		OwnerID:      owner,
		Name:         "Contact " + phone,
		PhoneNumber:  phone,
		Relationship: "friend",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestContacts_OwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Contacts()
	alice, bob := uuid.New(), uuid.New()

	contact := newContact(alice, "+15550001")
	require.NoError(t, repo.Create(ctx, contact))

	_, err := repo.FindOwned(ctx, contact.ID, bob)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))

	name := "hijacked"
	_, err = repo.UpdateOwned(ctx, contact.ID, bob, entity.ContactPatch{Name: &name})
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))

	_, err = repo.DeleteOwned(ctx, contact.ID, bob)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))

	stored, err := repo.FindOwned(ctx, contact.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, *contact, *stored)

	bobs, err := repo.FindByOwner(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobs)
}

func TestContacts_FindByOwnerKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Contacts()
	owner, other := uuid.New(), uuid.New()

	var want []uuid.UUID
	for i := range 5 {
		c := newContact(owner, fmt.Sprintf("+1555000%d", i))
		require.NoError(t, repo.Create(ctx, c))
		want = append(want, c.ID)
		require.NoError(t, repo.Create(ctx, newContact(other, fmt.Sprintf("+1555100%d", i))))
	}

	got, err := repo.FindByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i, c := range got {
		assert.Equal(t, want[i], c.ID)
		assert.Equal(t, owner, c.OwnerID)
	}
}

func TestContacts_PhoneNumberUniqueAcrossUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Contacts()

	require.NoError(t, repo.Create(ctx, newContact(uuid.New(), "+15550001")))

	err := repo.Create(ctx, newContact(uuid.New(), "+15550001"))
	assert.True(t, errors.Is(err, repository.ErrDuplicateKey))
}

func TestContacts_UpdateToTakenPhoneNumberFails(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Contacts()
	owner := uuid.New()

	first := newContact(owner, "+15550001")
	second := newContact(owner, "+15550002")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	taken := first.PhoneNumber
	_, err := repo.UpdateOwned(ctx, second.ID, owner, entity.ContactPatch{PhoneNumber: &taken})
	assert.True(t, errors.Is(err, repository.ErrDuplicateKey))

	unchanged, err := repo.FindOwned(ctx, second.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "+15550002", unchanged.PhoneNumber)

	// Re-saving a record with its own phone number is not a conflict.
	own := second.PhoneNumber
	_, err = repo.UpdateOwned(ctx, second.ID, owner, entity.ContactPatch{PhoneNumber: &own})
	assert.NoError(t, err)
}

func TestContacts_DeleteReturnsRecordAndRemovesIt(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Contacts()
	owner := uuid.New()

	contact := newContact(owner, "+15550001")
	require.NoError(t, repo.Create(ctx, contact))

	removed, err := repo.DeleteOwned(ctx, contact.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, removed.ID)

	_, err = repo.FindOwned(ctx, contact.ID, owner)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))

	// The phone number is free again.
	require.NoError(t, repo.Create(ctx, newContact(uuid.New(), "+15550001")))
}

func TestContacts_ReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Contacts()
	owner := uuid.New()

	contact := newContact(owner, "+15550001")
	require.NoError(t, repo.Create(ctx, contact))
	contact.Name = "mutated after create"

	found, err := repo.FindOwned(ctx, contact.ID, owner)
	require.NoError(t, err)
	found.Name = "mutated after find"

	again, err := repo.FindOwned(ctx, contact.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Contact +15550001", again.Name)
}

func TestContacts_ConcurrentDuplicateCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Contacts()

	var succeeded atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Create(ctx, newContact(uuid.New(), "+15550001")); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
}

func TestReminders_UpdateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Reminders()
	owner := uuid.New()

	reminder := &entity.Reminder{ID: uuid.New(), OwnerID: owner, MedicationName: "Aspirin", Time: "08:00", Frequency: "daily"}
	require.NoError(t, repo.Create(ctx, reminder))

	taken := true
	patch := entity.ReminderPatch{IsTaken: &taken, UpdatedAt: time.Now().UTC()}

	first, err := repo.UpdateOwned(ctx, reminder.ID, owner, patch)
	require.NoError(t, err)
	second, err := repo.UpdateOwned(ctx, reminder.ID, owner, patch)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
	assert.True(t, second.IsTaken)
}

func TestReminders_NoUniqueKey(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Reminders()
	owner := uuid.New()

	for range 2 {
		require.NoError(t, repo.Create(ctx, &entity.Reminder{ID: uuid.New(), OwnerID: owner, MedicationName: "Aspirin", Time: "08:00", Frequency: "daily"}))
	}

	all, err := repo.FindByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUsers_EmailUniqueAndContactRefs(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()

	user := &entity.User{ID: uuid.New(), FullName: "Asha", Email: "asha@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Create(ctx, &entity.User{ID: uuid.New(), Email: "asha@example.com"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateKey))

	found, err := repo.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	contactID := uuid.New()
	require.NoError(t, repo.AddContactRef(ctx, user.ID, contactID))
	require.NoError(t, repo.AddContactRef(ctx, user.ID, contactID))

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{contactID}, found.ContactIDs)

	require.NoError(t, repo.RemoveContactRef(ctx, user.ID, contactID))
	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, found.ContactIDs)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	assert.True(t, errors.Is(repo.AddContactRef(ctx, uuid.New(), contactID), repository.ErrUserNotFound))
}
