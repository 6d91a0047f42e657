package domain

import (
	"context"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// CreateTicketInput carries the fields of a human-escalation request.
type CreateTicketInput struct {
	Subject     string
	Description string
	Category    string
	Priority    entity.TicketPriority
}

// ============ Repository interface ============

// TicketRepository is the support-ticket data-access interface.
type TicketRepository interface {
	// Create stores a new ticket.
	Create(ctx context.Context, ticket *entity.SupportTicket) (*entity.SupportTicket, error)

	// GetByID looks a ticket up, scoped to its owner.
	GetByID(ctx context.Context, userID, ticketID string) (*entity.SupportTicket, error)

	// ListByUser returns a user's tickets, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.SupportTicket, error)

	// UpdateStatus moves a ticket through its lifecycle.
	UpdateStatus(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.SupportTicket, error)
}

// ============ Usecase interface ============

// SupportUsecase is the help-center business logic: static FAQ and tutorial
// catalogs plus persisted escalation tickets.
type SupportUsecase interface {
	// ListFAQ returns the FAQ catalog, optionally filtered by category.
	ListFAQ(ctx context.Context, category string) ([]*entity.FAQItem, error)

	// ListTutorials returns the tutorial catalog, optionally filtered by
	// category.
	ListTutorials(ctx context.Context, category string) ([]*entity.Tutorial, error)

	// CreateTicket validates and stores an escalation request.
	CreateTicket(ctx context.Context, userID string, in CreateTicketInput) (*entity.SupportTicket, error)

	// GetTicket returns one ticket.
	GetTicket(ctx context.Context, userID, ticketID string) (*entity.SupportTicket, error)

	// ListTickets returns a user's tickets, newest first.
	ListTickets(ctx context.Context, userID string) ([]*entity.SupportTicket, error)
}
