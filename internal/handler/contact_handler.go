package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/handler/dto"
)

// ContactHandler handles contact-directory HTTP requests
type ContactHandler struct {
	usecase domain.ContactUsecase
	logger  *slog.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(usecase domain.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// CreateContact adds a contact to the caller's directory
//
//	@Summary		Create contact
//	@Tags			Contacts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateContactRequest	true	"Contact"
//	@Success		201		{object}	Response{data=dto.ContactResponse}
//	@Failure		400		{object}	Response	"Invalid request parameters"
//	@Router			/contacts [post]
func (h *ContactHandler) CreateContact(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	var req dto.CreateContactRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid contact request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	contact, err := h.usecase.CreateContact(ctx, userID, domain.CreateContactInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
		Favorite:     req.Favorite,
		Emergency:    req.Emergency,
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToContactResponse(contact))
}

// GetContact returns one contact
//
//	@Summary		Get contact
//	@Tags			Contacts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Contact ID"
//	@Success		200	{object}	Response{data=dto.ContactResponse}
//	@Failure		404	{object}	Response	"Contact not found"
//	@Router			/contacts/{id} [get]
func (h *ContactHandler) GetContact(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	contact, err := h.usecase.GetContact(ctx, userID, c.Param("id"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToContactResponse(contact))
}

// ListContacts returns the caller's directory, favorites first
//
//	@Summary		List contacts
//	@Tags			Contacts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Response{data=dto.ContactListResponse}
//	@Router			/contacts [get]
func (h *ContactHandler) ListContacts(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	contacts, err := h.usecase.ListContacts(ctx, userID)
	if err != nil {
		h.logger.Error("failed to list contacts", "error", err, "user_id", userID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToContactListResponse(contacts))
}

// ListEmergencyContacts returns the contacts flagged for emergencies
//
//	@Summary		List emergency contacts
//	@Tags			Contacts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Response{data=dto.ContactListResponse}
//	@Router			/contacts/emergency [get]
func (h *ContactHandler) ListEmergencyContacts(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	contacts, err := h.usecase.ListEmergencyContacts(ctx, userID)
	if err != nil {
		h.logger.Error("failed to list emergency contacts", "error", err, "user_id", userID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToContactListResponse(contacts))
}

// UpdateContact applies a partial update
//
//	@Summary		Update contact
//	@Tags			Contacts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Contact ID"
//	@Param			request	body		dto.UpdateContactRequest	true	"Fields to update"
//	@Success		200		{object}	Response{data=dto.ContactResponse}
//	@Failure		404		{object}	Response	"Contact not found"
//	@Router			/contacts/{id} [put]
func (h *ContactHandler) UpdateContact(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	var req dto.UpdateContactRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid contact update", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	contact, err := h.usecase.UpdateContact(ctx, userID, c.Param("id"), domain.UpdateContactInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
		Favorite:     req.Favorite,
		Emergency:    req.Emergency,
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToContactResponse(contact))
}

// ToggleFavorite flips a contact's favorite flag
//
//	@Summary		Toggle favorite
//	@Tags			Contacts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Contact ID"
//	@Success		200	{object}	Response{data=dto.ContactResponse}
//	@Failure		404	{object}	Response	"Contact not found"
//	@Router			/contacts/{id}/favorite [post]
func (h *ContactHandler) ToggleFavorite(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	contact, err := h.usecase.ToggleFavorite(ctx, userID, c.Param("id"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToContactResponse(contact))
}

// DeleteContact removes a contact
//
//	@Summary		Delete contact
//	@Tags			Contacts
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Contact ID"
//	@Success		204
//	@Failure		404	{object}	Response	"Contact not found"
//	@Router			/contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	if err := h.usecase.DeleteContact(ctx, userID, c.Param("id")); err != nil {
		ErrorResponse(c, err)
		return
	}

	NoContentResponse(c)
}
