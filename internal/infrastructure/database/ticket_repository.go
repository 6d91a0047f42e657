package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/ticket"
)

// ticketRepository is the database implementation of the TicketRepository
// interface.
type ticketRepository struct {
	client *ent.Client
}

// NewTicketRepository creates a new TicketRepository instance.
func NewTicketRepository(client *ent.Client) domain.TicketRepository {
	return &ticketRepository{
		client: client,
	}
}

// Create stores a new ticket.
func (r *ticketRepository) Create(ctx context.Context, t *entity.SupportTicket) (*entity.SupportTicket, error) {
	uid, err := uuid.Parse(t.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	created, err := r.client.Ticket.Create().
		SetUserID(uid).
		SetSubject(t.Subject).
		SetDescription(t.Description).
		SetCategory(t.Category).
		SetPriority(ticket.Priority(t.Priority)).
		SetStatus(ticket.Status(t.Status)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, domain.NewInvalidInputError("ticket references an unknown user")
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return toTicketEntity(created), nil
}

// GetByID looks a ticket up, scoped to its owner.
func (r *ticketRepository) GetByID(ctx context.Context, userID, ticketID string) (*entity.SupportTicket, error) {
	uid, tid, err := parseOwnedID(userID, ticketID)
	if err != nil {
		return nil, err
	}

	t, err := r.client.Ticket.Query().
		Where(
			ticket.ID(tid),
			ticket.UserID(uid),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Ticket", ticketID)
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return toTicketEntity(t), nil
}

// ListByUser returns a user's tickets, newest first.
func (r *ticketRepository) ListByUser(ctx context.Context, userID string) ([]*entity.SupportTicket, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	tickets, err := r.client.Ticket.Query().
		Where(ticket.UserID(uid)).
		Order(ent.Desc(ticket.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	result := make([]*entity.SupportTicket, len(tickets))
	for i, t := range tickets {
		result[i] = toTicketEntity(t)
	}
	return result, nil
}

// UpdateStatus moves a ticket through its lifecycle.
func (r *ticketRepository) UpdateStatus(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.SupportTicket, error) {
	tid, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket id: %w", err)
	}

	updated, err := r.client.Ticket.UpdateOneID(tid).
		SetStatus(ticket.Status(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Ticket", ticketID)
		}
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}

	return toTicketEntity(updated), nil
}
