package domain

import (
	"context"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// CreateContactInput carries the fields needed to add a directory entry.
type CreateContactInput struct {
	Name         string
	Phone        string
	Relationship string
	Favorite     bool
	Emergency    bool
}

// UpdateContactInput carries partial contact updates; nil fields are left
// untouched.
type UpdateContactInput struct {
	Name         *string
	Phone        *string
	Relationship *string
	Favorite     *bool
	Emergency    *bool
}

// ============ Repository interface ============

// ContactRepository is the contact-directory data-access interface.
type ContactRepository interface {
	// Create stores a new contact.
	Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)

	// GetByID looks a contact up, scoped to its owner.
	GetByID(ctx context.Context, userID, contactID string) (*entity.Contact, error)

	// ListByUser returns a user's contacts, favorites first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Contact, error)

	// ListEmergency returns a user's emergency contacts.
	ListEmergency(ctx context.Context, userID string) ([]*entity.Contact, error)

	// Update overwrites a contact's mutable fields.
	Update(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)

	// Delete removes a contact, scoped to its owner.
	Delete(ctx context.Context, userID, contactID string) error
}

// ============ Usecase interface ============

// ContactUsecase is the contact-directory business logic.
type ContactUsecase interface {
	// CreateContact validates and stores a contact.
	CreateContact(ctx context.Context, userID string, in CreateContactInput) (*entity.Contact, error)

	// GetContact returns one contact.
	GetContact(ctx context.Context, userID, contactID string) (*entity.Contact, error)

	// ListContacts returns a user's directory, favorites first.
	ListContacts(ctx context.Context, userID string) ([]*entity.Contact, error)

	// ListEmergencyContacts returns the contacts flagged for emergencies.
	ListEmergencyContacts(ctx context.Context, userID string) ([]*entity.Contact, error)

	// UpdateContact applies a partial update.
	UpdateContact(ctx context.Context, userID, contactID string, in UpdateContactInput) (*entity.Contact, error)

	// ToggleFavorite flips the favorite flag.
	ToggleFavorite(ctx context.Context, userID, contactID string) (*entity.Contact, error)

	// DeleteContact removes a contact.
	DeleteContact(ctx context.Context, userID, contactID string) error
}
