package mocks

import (
	"context"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// MockTicketRepository is a mock implementation of domain.TicketRepository
type MockTicketRepository struct {
	CreateFunc       func(ctx context.Context, ticket *entity.SupportTicket) (*entity.SupportTicket, error)
	GetByIDFunc      func(ctx context.Context, userID, ticketID string) (*entity.SupportTicket, error)
	ListByUserFunc   func(ctx context.Context, userID string) ([]*entity.SupportTicket, error)
	UpdateStatusFunc func(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.SupportTicket, error)
}

// Create mocks the Create method
func (m *MockTicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) (*entity.SupportTicket, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ticket)
	}
	return ticket, nil
}

// GetByID mocks the GetByID method
func (m *MockTicketRepository) GetByID(ctx context.Context, userID, ticketID string) (*entity.SupportTicket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, ticketID)
	}
	return &entity.SupportTicket{
		ID:     ticketID,
		UserID: userID,
		Status: entity.TicketStatusOpen,
	}, nil
}

// ListByUser mocks the ListByUser method
func (m *MockTicketRepository) ListByUser(ctx context.Context, userID string) ([]*entity.SupportTicket, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []*entity.SupportTicket{}, nil
}

// UpdateStatus mocks the UpdateStatus method
func (m *MockTicketRepository) UpdateStatus(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.SupportTicket, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, ticketID, status)
	}
	return &entity.SupportTicket{
		ID:     ticketID,
		Status: status,
	}, nil
}
