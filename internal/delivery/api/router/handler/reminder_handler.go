package handler

import (
	"net/http"

	"sahara/internal/delivery/api/middleware"
	"sahara/internal/delivery/api/response"
	"sahara/internal/delivery/api/validator"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
}

// ReminderHandler holds dependencies for medication reminder handlers
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
	}
}

// CreateReminderRequest represents the request body for creating a reminder
type CreateReminderRequest struct {
	MedicationName string `json:"medicationName" validate:"required,notblank"`
	Time           string `json:"time" validate:"required,notblank"`
	Frequency      string `json:"frequency" validate:"required,notblank"`
}

// UpdateReminderRequest represents the request body for updating a reminder
type UpdateReminderRequest struct {
	MedicationName *string `json:"medicationName" validate:"omitnil,notblank"`
	Time           *string `json:"time" validate:"omitnil,notblank"`
	Frequency      *string `json:"frequency" validate:"omitnil,notblank"`
	IsTaken        *bool   `json:"isTaken"`
}

type reminderMessageResponse struct {
	Message  string                `json:"message"`
	Reminder response.ReminderView `json:"reminder"`
}

// CreateReminder handles reminder creation
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	var req CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	reminder, err := h.reminderUC.CreateReminder(c.Request().Context(), userID, &usecase.CreateReminderInput{
		MedicationName: req.MedicationName,
		Time:           req.Time,
		Frequency:      req.Frequency,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, reminderMessageResponse{
		Message:  "Medication reminder created successfully.",
		Reminder: response.NewReminderView(reminder),
	})
}

// GetReminders lists the caller's reminders in creation order
func (h *ReminderHandler) GetReminders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	reminders, err := h.reminderUC.ListReminders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewReminderViews(reminders))
}

// GetReminder returns one of the caller's reminders
func (h *ReminderHandler) GetReminder(c echo.Context) error {
	userID, reminderID, err := h.scope(c)
	if err != nil {
		return err
	}

	reminder, err := h.reminderUC.GetReminder(c.Request().Context(), userID, reminderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewReminderView(reminder))
}

// UpdateReminder applies a partial update
func (h *ReminderHandler) UpdateReminder(c echo.Context) error {
	userID, reminderID, err := h.scope(c)
	if err != nil {
		return err
	}

	var req UpdateReminderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	reminder, err := h.reminderUC.UpdateReminder(c.Request().Context(), userID, reminderID, &usecase.UpdateReminderInput{
		MedicationName: req.MedicationName,
		Time:           req.Time,
		Frequency:      req.Frequency,
		IsTaken:        req.IsTaken,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, reminderMessageResponse{
		Message:  "Reminder updated successfully.",
		Reminder: response.NewReminderView(reminder),
	})
}

// DeleteReminder removes one of the caller's reminders
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	userID, reminderID, err := h.scope(c)
	if err != nil {
		return err
	}

	if err := h.reminderUC.DeleteReminder(c.Request().Context(), userID, reminderID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Reminder deleted successfully."})
}

func (h *ReminderHandler) scope(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrMissingToken
	}

	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrReminderNotFound
	}

	return userID, reminderID, nil
}
