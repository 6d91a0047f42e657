package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/contact"
)

// contactRepository is the database implementation of the ContactRepository
// interface.
type contactRepository struct {
	client *ent.Client
}

// NewContactRepository creates a new ContactRepository instance.
func NewContactRepository(client *ent.Client) domain.ContactRepository {
	return &contactRepository{
		client: client,
	}
}

// Create stores a new contact.
func (r *contactRepository) Create(ctx context.Context, c *entity.Contact) (*entity.Contact, error) {
	uid, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	created, err := r.client.Contact.Create().
		SetUserID(uid).
		SetName(c.Name).
		SetPhone(c.Phone).
		SetRelationship(c.Relationship).
		SetFavorite(c.Favorite).
		SetEmergency(c.Emergency).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, domain.NewInvalidInputError("contact references an unknown user")
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return toContactEntity(created), nil
}

// GetByID looks a contact up, scoped to its owner.
func (r *contactRepository) GetByID(ctx context.Context, userID, contactID string) (*entity.Contact, error) {
	uid, cid, err := parseOwnedID(userID, contactID)
	if err != nil {
		return nil, err
	}

	c, err := r.client.Contact.Query().
		Where(
			contact.ID(cid),
			contact.UserID(uid),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Contact", contactID)
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return toContactEntity(c), nil
}

// ListByUser returns a user's contacts, favorites first, then by name.
func (r *contactRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Contact, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	contacts, err := r.client.Contact.Query().
		Where(contact.UserID(uid)).
		Order(ent.Desc(contact.FieldFavorite), ent.Asc(contact.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	result := make([]*entity.Contact, len(contacts))
	for i, c := range contacts {
		result[i] = toContactEntity(c)
	}
	return result, nil
}

// ListEmergency returns a user's emergency contacts.
func (r *contactRepository) ListEmergency(ctx context.Context, userID string) ([]*entity.Contact, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	contacts, err := r.client.Contact.Query().
		Where(
			contact.UserID(uid),
			contact.Emergency(true),
		).
		Order(ent.Asc(contact.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}

	result := make([]*entity.Contact, len(contacts))
	for i, c := range contacts {
		result[i] = toContactEntity(c)
	}
	return result, nil
}

// Update overwrites a contact's mutable fields.
func (r *contactRepository) Update(ctx context.Context, c *entity.Contact) (*entity.Contact, error) {
	uid, cid, err := parseOwnedID(c.UserID, c.ID)
	if err != nil {
		return nil, err
	}

	updated, err := r.client.Contact.UpdateOneID(cid).
		Where(contact.UserID(uid)).
		SetName(c.Name).
		SetPhone(c.Phone).
		SetRelationship(c.Relationship).
		SetFavorite(c.Favorite).
		SetEmergency(c.Emergency).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Contact", c.ID)
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return toContactEntity(updated), nil
}

// Delete removes a contact, scoped to its owner.
func (r *contactRepository) Delete(ctx context.Context, userID, contactID string) error {
	uid, cid, err := parseOwnedID(userID, contactID)
	if err != nil {
		return err
	}

	deleted, err := r.client.Contact.Delete().
		Where(
			contact.ID(cid),
			contact.UserID(uid),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if deleted == 0 {
		return domain.NewNotFoundError("Contact", contactID)
	}
	return nil
}
