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
	"sahara/internal/errors"
	"sahara/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	reminderRepo repository.ReminderRepository
	logger       *slog.Logger
	now          func() time.Time
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	Logger       *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo: params.ReminderRepo,
		logger:       params.Logger,
		now:          systemClock,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reminderService) CreateReminder(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateReminderInput) (*entity.Reminder, error) {
	name := strings.TrimSpace(input.MedicationName)
	at := strings.TrimSpace(input.Time)
	frequency := strings.TrimSpace(input.Frequency)
	if name == "" || at == "" || frequency == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	now := srv.now()
	reminder := &entity.Reminder{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		MedicationName: name,
		Time:           at,
		Frequency:      frequency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, srv.translateError(err, "create reminder")
	}

	srv.log(ctx).Info("Reminder created", slog.String("userID", ownerID.String()), slog.String("reminderID", reminder.ID.String()))

	return reminder, nil
}

func (srv *reminderService) ListReminders(ctx context.Context, ownerID uuid.UUID) ([]*entity.Reminder, error) {
	reminders, err := srv.reminderRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list reminders")
	}

	return reminders, nil
}

func (srv *reminderService) GetReminder(ctx context.Context, ownerID, reminderID uuid.UUID) (*entity.Reminder, error) {
	reminder, err := srv.reminderRepo.FindOwned(ctx, reminderID, ownerID)
	if err != nil {
		return nil, srv.translateError(err, "find reminder")
	}

	return reminder, nil
}

func (srv *reminderService) UpdateReminder(ctx context.Context, ownerID, reminderID uuid.UUID, input *usecase.UpdateReminderInput) (*entity.Reminder, error) {
	patch := entity.ReminderPatch{IsTaken: input.IsTaken}

	var ok bool
	if patch.MedicationName, ok = trimmedPresent(input.MedicationName); !ok {
		return nil, domainerrors.ErrValidationFailed
	}
	if patch.Time, ok = trimmedPresent(input.Time); !ok {
		return nil, domainerrors.ErrValidationFailed
	}
	if patch.Frequency, ok = trimmedPresent(input.Frequency); !ok {
		return nil, domainerrors.ErrValidationFailed
	}
	patch.UpdatedAt = srv.now()

	reminder, err := srv.reminderRepo.UpdateOwned(ctx, reminderID, ownerID, patch)
	if err != nil {
		return nil, srv.translateError(err, "update reminder")
	}

	srv.log(ctx).Info("Reminder updated", slog.String("userID", ownerID.String()), slog.String("reminderID", reminderID.String()))

	return reminder, nil
}

func (srv *reminderService) DeleteReminder(ctx context.Context, ownerID, reminderID uuid.UUID) error {
	if _, err := srv.reminderRepo.DeleteOwned(ctx, reminderID, ownerID); err != nil {
		return srv.translateError(err, "delete reminder")
	}

	srv.log(ctx).Info("Reminder deleted", slog.String("userID", ownerID.String()), slog.String("reminderID", reminderID.String()))

	return nil
}

func (srv *reminderService) translateError(err error, op string) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domainerrors.ErrReminderNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}
