package usecase

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// phoneFormat accepts Brazilian phone numbers with optional country code,
// area code and separators, e.g. "(11) 98765-4321" or "+55 11 98765 4321".
var phoneFormat = regexp.MustCompile(`^\+?[\d\s()\-]{8,20}$`)

// contactUsecase is the ContactUsecase interface implementation.
type contactUsecase struct {
	contactRepo domain.ContactRepository
	logger      *slog.Logger
}

// NewContactUsecase creates a new Contact usecase instance.
//
// Parameters:
//   - contactRepo: contact data storage
//   - logger: structured logger
//
// Returns:
//   - domain.ContactUsecase interface implementation
func NewContactUsecase(contactRepo domain.ContactRepository, logger *slog.Logger) domain.ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// CreateContact validates and stores a directory entry.
func (u *contactUsecase) CreateContact(ctx context.Context, userID string, in domain.CreateContactInput) (*entity.Contact, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user ID cannot be empty")
	}
	if in.Name == "" {
		return nil, domain.NewInvalidInputError("contact name cannot be empty")
	}
	if !phoneFormat.MatchString(in.Phone) {
		return nil, domain.NewInvalidInputError("invalid phone number")
	}

	contact := &entity.Contact{
		UserID:       userID,
		Name:         in.Name,
		Phone:        in.Phone,
		Relationship: in.Relationship,
		Favorite:     in.Favorite,
		Emergency:    in.Emergency,
	}

	created, err := u.contactRepo.Create(ctx, contact)
	if err != nil {
		return nil, err
	}

	u.logger.Info("contact created",
		"contact_id", created.ID,
		"user_id", userID,
		"emergency", created.Emergency,
	)
	return created, nil
}

// GetContact returns one contact.
func (u *contactUsecase) GetContact(ctx context.Context, userID, contactID string) (*entity.Contact, error) {
	if userID == "" || contactID == "" {
		return nil, domain.NewInvalidInputError("user ID and contact ID cannot be empty")
	}
	return u.contactRepo.GetByID(ctx, userID, contactID)
}

// ListContacts returns a user's directory, favorites first.
func (u *contactUsecase) ListContacts(ctx context.Context, userID string) ([]*entity.Contact, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user ID cannot be empty")
	}
	return u.contactRepo.ListByUser(ctx, userID)
}

// ListEmergencyContacts returns the contacts flagged for emergencies. The
// chat layer attaches these to emergency turns.
func (u *contactUsecase) ListEmergencyContacts(ctx context.Context, userID string) ([]*entity.Contact, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user ID cannot be empty")
	}
	return u.contactRepo.ListEmergency(ctx, userID)
}

// UpdateContact applies a partial update.
func (u *contactUsecase) UpdateContact(ctx context.Context, userID, contactID string, in domain.UpdateContactInput) (*entity.Contact, error) {
	if userID == "" || contactID == "" {
		return nil, domain.NewInvalidInputError("user ID and contact ID cannot be empty")
	}

	contact, err := u.contactRepo.GetByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewInvalidInputError("contact name cannot be empty")
		}
		contact.Name = *in.Name
	}
	if in.Phone != nil {
		if !phoneFormat.MatchString(*in.Phone) {
			return nil, domain.NewInvalidInputError("invalid phone number")
		}
		contact.Phone = *in.Phone
	}
	if in.Relationship != nil {
		contact.Relationship = *in.Relationship
	}
	if in.Favorite != nil {
		contact.Favorite = *in.Favorite
	}
	if in.Emergency != nil {
		contact.Emergency = *in.Emergency
	}

	updated, err := u.contactRepo.Update(ctx, contact)
	if err != nil {
		return nil, err
	}

	u.logger.Info("contact updated", "contact_id", contactID, "user_id", userID)
	return updated, nil
}

// ToggleFavorite flips the favorite flag.
func (u *contactUsecase) ToggleFavorite(ctx context.Context, userID, contactID string) (*entity.Contact, error) {
	if userID == "" || contactID == "" {
		return nil, domain.NewInvalidInputError("user ID and contact ID cannot be empty")
	}

	contact, err := u.contactRepo.GetByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	contact.Favorite = !contact.Favorite

	return u.contactRepo.Update(ctx, contact)
}

// DeleteContact removes a contact.
func (u *contactUsecase) DeleteContact(ctx context.Context, userID, contactID string) error {
	if userID == "" || contactID == "" {
		return domain.NewInvalidInputError("user ID and contact ID cannot be empty")
	}

	if err := u.contactRepo.Delete(ctx, userID, contactID); err != nil {
		return err
	}
	u.logger.Info("contact deleted", "contact_id", contactID, "user_id", userID)
	return nil
}
