package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/handler/dto"
)

// SupportHandler handles help-center HTTP requests
type SupportHandler struct {
	usecase domain.SupportUsecase
	logger  *slog.Logger
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(usecase domain.SupportUsecase, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// ListFAQ returns the FAQ catalog
//
//	@Summary		List FAQ
//	@Tags			Support
//	@Produce		json
//	@Security		BearerAuth
//	@Param			category	query		string	false	"Category filter"
//	@Success		200			{object}	Response{data=dto.FAQListResponse}
//	@Router			/support/faq [get]
func (h *SupportHandler) ListFAQ(ctx context.Context, c *app.RequestContext) {
	faq, err := h.usecase.ListFAQ(ctx, c.Query("category"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToFAQListResponse(faq))
}

// ListTutorials returns the tutorial catalog
//
//	@Summary		List tutorials
//	@Tags			Support
//	@Produce		json
//	@Security		BearerAuth
//	@Param			category	query		string	false	"Category filter"
//	@Success		200			{object}	Response{data=dto.TutorialListResponse}
//	@Router			/support/tutorials [get]
func (h *SupportHandler) ListTutorials(ctx context.Context, c *app.RequestContext) {
	tutorials, err := h.usecase.ListTutorials(ctx, c.Query("category"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToTutorialListResponse(tutorials))
}

// CreateTicket opens a support ticket
//
//	@Summary		Create support ticket
//	@Tags			Support
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateTicketRequest	true	"Ticket"
//	@Success		201		{object}	Response{data=dto.TicketResponse}
//	@Failure		400		{object}	Response	"Invalid request parameters"
//	@Router			/support/tickets [post]
func (h *SupportHandler) CreateTicket(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	var req dto.CreateTicketRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid ticket request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	ticket, err := h.usecase.CreateTicket(ctx, userID, domain.CreateTicketInput{
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    entity.TicketPriority(req.Priority),
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToTicketResponse(ticket))
}

// GetTicket returns one ticket
//
//	@Summary		Get support ticket
//	@Tags			Support
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Ticket ID"
//	@Success		200	{object}	Response{data=dto.TicketResponse}
//	@Failure		404	{object}	Response	"Ticket not found"
//	@Router			/support/tickets/{id} [get]
func (h *SupportHandler) GetTicket(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	ticket, err := h.usecase.GetTicket(ctx, userID, c.Param("id"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToTicketResponse(ticket))
}

// ListTickets returns the caller's tickets, newest first
//
//	@Summary		List support tickets
//	@Tags			Support
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Response{data=dto.TicketListResponse}
//	@Router			/support/tickets [get]
func (h *SupportHandler) ListTickets(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	tickets, err := h.usecase.ListTickets(ctx, userID)
	if err != nil {
		h.logger.Error("failed to list tickets", "error", err, "user_id", userID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToTicketListResponse(tickets))
}
