package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/handler/dto"
)

// ReminderHandler handles health-reminder HTTP requests
type ReminderHandler struct {
	usecase domain.ReminderUsecase
	logger  *slog.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(usecase domain.ReminderUsecase, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// CreateReminder creates a health reminder
//
//	@Summary		Create reminder
//	@Tags			Reminders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateReminderRequest	true	"Reminder"
//	@Success		201		{object}	Response{data=dto.ReminderResponse}
//	@Failure		400		{object}	Response	"Invalid request parameters"
//	@Router			/reminders [post]
func (h *ReminderHandler) CreateReminder(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	var req dto.CreateReminderRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid reminder request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	// Reminders are active unless the caller says otherwise.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	reminder, err := h.usecase.CreateReminder(ctx, userID, domain.CreateReminderInput{
		Title:         req.Title,
		Description:   req.Description,
		Type:          entity.ReminderType(req.Type),
		ScheduledDate: req.ScheduledDate,
		Time:          req.Time,
		Active:        active,
		Recurring:     req.Recurring,
		RecurringType: entity.RecurrenceType(req.RecurringType),
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToReminderResponse(reminder))
}

// GetReminder returns one reminder
//
//	@Summary		Get reminder
//	@Tags			Reminders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Reminder ID"
//	@Success		200	{object}	Response{data=dto.ReminderResponse}
//	@Failure		404	{object}	Response	"Reminder not found"
//	@Router			/reminders/{id} [get]
func (h *ReminderHandler) GetReminder(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	reminder, err := h.usecase.GetReminder(ctx, userID, c.Param("id"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToReminderResponse(reminder))
}

// ListReminders returns the caller's reminders, newest first
//
//	@Summary		List reminders
//	@Tags			Reminders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Response{data=dto.ReminderListResponse}
//	@Router			/reminders [get]
func (h *ReminderHandler) ListReminders(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	reminders, err := h.usecase.ListReminders(ctx, userID)
	if err != nil {
		h.logger.Error("failed to list reminders", "error", err, "user_id", userID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToReminderListResponse(reminders))
}

// UpdateReminder applies a partial update
//
//	@Summary		Update reminder
//	@Tags			Reminders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Reminder ID"
//	@Param			request	body		dto.UpdateReminderRequest	true	"Fields to update"
//	@Success		200		{object}	Response{data=dto.ReminderResponse}
//	@Failure		404		{object}	Response	"Reminder not found"
//	@Router			/reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	var req dto.UpdateReminderRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid reminder update", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	in := domain.UpdateReminderInput{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		Time:          req.Time,
		Active:        req.Active,
		Recurring:     req.Recurring,
	}
	if req.RecurringType != nil {
		recurringType := entity.RecurrenceType(*req.RecurringType)
		in.RecurringType = &recurringType
	}

	reminder, err := h.usecase.UpdateReminder(ctx, userID, c.Param("id"), in)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToReminderResponse(reminder))
}

// DeleteReminder removes a reminder
//
//	@Summary		Delete reminder
//	@Tags			Reminders
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Reminder ID"
//	@Success		204
//	@Failure		404	{object}	Response	"Reminder not found"
//	@Router			/reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	if err := h.usecase.DeleteReminder(ctx, userID, c.Param("id")); err != nil {
		ErrorResponse(c, err)
		return
	}

	NoContentResponse(c)
}
