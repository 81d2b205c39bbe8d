package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "sahara/internal/delivery/context"
	"sahara/internal/domain/entity"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/repository"
	"sahara/internal/domain/service"
	"sahara/internal/errors"
	"sahara/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	userRepo    repository.UserRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	UserRepo    repository.UserRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		userRepo:    params.UserRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
		now:         systemClock,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *contactService) CreateContact(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateContactInput) (*entity.Contact, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.PhoneNumber)
	relationship := strings.TrimSpace(input.Relationship)
	if name == "" || phone == "" || relationship == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	now := srv.now()
	contact := &entity.Contact{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         name,
		PhoneNumber:  phone,
		Relationship: relationship,
		Primary:      input.Primary,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, srv.translateError(err, "create contact")
	}

	// The advisory list on the user is not authoritative, so a failed write is only logged.
	if err := srv.userRepo.AddContactRef(ctx, ownerID, contact.ID); err != nil {
		srv.log(ctx).Warn("Failed to append contact to user list",
			slog.String("userID", ownerID.String()),
			slog.String("contactID", contact.ID.String()),
			slog.Any("error", err))
	}

	srv.log(ctx).Info("Contact created", slog.String("userID", ownerID.String()), slog.String("contactID", contact.ID.String()))

	return contact, nil
}

func (srv *contactService) ListContacts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list contacts")
	}

	return contacts, nil
}

func (srv *contactService) GetContact(ctx context.Context, ownerID, contactID uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindOwned(ctx, contactID, ownerID)
	if err != nil {
		return nil, srv.translateError(err, "find contact")
	}

	return contact, nil
}

func (srv *contactService) UpdateContact(ctx context.Context, ownerID, contactID uuid.UUID, input *usecase.UpdateContactInput) (*entity.Contact, error) {
	patch := entity.ContactPatch{Primary: input.Primary}

	var ok bool
	if patch.Name, ok = trimmedPresent(input.Name); !ok {
		return nil, domainerrors.ErrValidationFailed
	}
	if patch.PhoneNumber, ok = trimmedPresent(input.PhoneNumber); !ok {
		return nil, domainerrors.ErrValidationFailed
	}
	if patch.Relationship, ok = trimmedPresent(input.Relationship); !ok {
		return nil, domainerrors.ErrValidationFailed
	}
	patch.UpdatedAt = srv.now()

	contact, err := srv.contactRepo.UpdateOwned(ctx, contactID, ownerID, patch)
	if err != nil {
		return nil, srv.translateError(err, "update contact")
	}

	srv.log(ctx).Info("Contact updated", slog.String("userID", ownerID.String()), slog.String("contactID", contactID.String()))

	return contact, nil
}

func (srv *contactService) DeleteContact(ctx context.Context, ownerID, contactID uuid.UUID) error {
	if _, err := srv.contactRepo.DeleteOwned(ctx, contactID, ownerID); err != nil {
		return srv.translateError(err, "delete contact")
	}

	if err := srv.userRepo.RemoveContactRef(ctx, ownerID, contactID); err != nil {
		srv.log(ctx).Warn("Failed to remove contact from user list",
			slog.String("userID", ownerID.String()),
			slog.String("contactID", contactID.String()),
			slog.Any("error", err))
	}

	srv.log(ctx).Info("Contact deleted", slog.String("userID", ownerID.String()), slog.String("contactID", contactID.String()))

	return nil
}

func (srv *contactService) ContactCard(ctx context.Context, ownerID, contactID uuid.UUID) ([]byte, error) {
	contact, err := srv.GetContact(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateContactCard(contact)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render contact card")
	}

	return png, nil
}

func (srv *contactService) translateError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domainerrors.ErrContactNotFound
	case errors.Is(err, repository.ErrDuplicateKey):
		return domainerrors.ErrDuplicateField
	default:
		return domainerrors.NewDatabaseExecuteError(err, op)
	}
}

// trimmedPresent returns (nil, true) for an absent field and rejects a present blank one.
func trimmedPresent(value *string) (*string, bool) {
	if value == nil {
		return nil, true
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, false
	}

	return &trimmed, true
}
