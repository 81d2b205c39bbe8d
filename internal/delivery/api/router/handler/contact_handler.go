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

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
}

// ContactHandler holds dependencies for emergency contact handlers
type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
	}
}

// CreateContactRequest represents the request body for creating a contact
type CreateContactRequest struct {
	Name         string `json:"contactName" validate:"required,notblank"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,notblank"`
	Relationship string `json:"relationship" validate:"required,notblank"`
	Primary      bool   `json:"primary"`
}

// UpdateContactRequest represents the request body for updating a contact.
// Absent fields are left unchanged.
type UpdateContactRequest struct {
	Name         *string `json:"contactName" validate:"omitnil,notblank"`
	PhoneNumber  *string `json:"phoneNumber" validate:"omitnil,notblank"`
	Relationship *string `json:"relationship" validate:"omitnil,notblank"`
	Primary      *bool   `json:"primary"`
}

type contactMessageResponse struct {
	Message string               `json:"message"`
	Contact response.ContactView `json:"contact"`
}

// CreateContact handles contact creation
func (h *ContactHandler) CreateContact(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	contact, err := h.contactUC.CreateContact(c.Request().Context(), userID, &usecase.CreateContactInput{
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		Relationship: req.Relationship,
		Primary:      req.Primary,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, contactMessageResponse{
		Message: "Contact created successfully.",
		Contact: response.NewContactView(contact),
	})
}

// GetContacts lists the caller's contacts in creation order
func (h *ContactHandler) GetContacts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	contacts, err := h.contactUC.ListContacts(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewContactViews(contacts))
}

// GetContact returns one of the caller's contacts
func (h *ContactHandler) GetContact(c echo.Context) error {
	userID, contactID, err := h.scope(c)
	if err != nil {
		return err
	}

	contact, err := h.contactUC.GetContact(c.Request().Context(), userID, contactID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewContactView(contact))
}

// UpdateContact applies a partial update
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	userID, contactID, err := h.scope(c)
	if err != nil {
		return err
	}

	var req UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	contact, err := h.contactUC.UpdateContact(c.Request().Context(), userID, contactID, &usecase.UpdateContactInput{
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		Relationship: req.Relationship,
		Primary:      req.Primary,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, contactMessageResponse{
		Message: "Contact updated successfully.",
		Contact: response.NewContactView(contact),
	})
}

// DeleteContact removes one of the caller's contacts
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	userID, contactID, err := h.scope(c)
	if err != nil {
		return err
	}

	if err := h.contactUC.DeleteContact(c.Request().Context(), userID, contactID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Contact deleted successfully."})
}

// ContactCard renders the contact as a scannable PNG
func (h *ContactHandler) ContactCard(c echo.Context) error {
	userID, contactID, err := h.scope(c)
	if err != nil {
		return err
	}

	png, err := h.contactUC.ContactCard(c.Request().Context(), userID, contactID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// scope returns the caller and the path id. A malformed id is reported as not
// found so it is indistinguishable from someone else's contact.
func (h *ContactHandler) scope(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrMissingToken
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrContactNotFound
	}

	return userID, contactID, nil
}
