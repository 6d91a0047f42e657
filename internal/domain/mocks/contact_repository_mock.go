package mocks

import (
	"context"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// MockContactRepository is a mock implementation of domain.ContactRepository
type MockContactRepository struct {
	CreateFunc        func(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
	GetByIDFunc       func(ctx context.Context, userID, contactID string) (*entity.Contact, error)
	ListByUserFunc    func(ctx context.Context, userID string) ([]*entity.Contact, error)
	ListEmergencyFunc func(ctx context.Context, userID string) ([]*entity.Contact, error)
	UpdateFunc        func(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
	DeleteFunc        func(ctx context.Context, userID, contactID string) error
}

// Create mocks the Create method
func (m *MockContactRepository) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	return contact, nil
}

// GetByID mocks the GetByID method
func (m *MockContactRepository) GetByID(ctx context.Context, userID, contactID string) (*entity.Contact, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, contactID)
	}
	return &entity.Contact{
		ID:     contactID,
		UserID: userID,
	}, nil
}

// ListByUser mocks the ListByUser method
func (m *MockContactRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Contact, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []*entity.Contact{}, nil
}

// ListEmergency mocks the ListEmergency method
func (m *MockContactRepository) ListEmergency(ctx context.Context, userID string) ([]*entity.Contact, error) {
	if m.ListEmergencyFunc != nil {
		return m.ListEmergencyFunc(ctx, userID)
	}
	return []*entity.Contact{}, nil
}

// Update mocks the Update method
func (m *MockContactRepository) Update(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, contact)
	}
	return contact, nil
}

// Delete mocks the Delete method
func (m *MockContactRepository) Delete(ctx context.Context, userID, contactID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, contactID)
	}
	return nil
}
