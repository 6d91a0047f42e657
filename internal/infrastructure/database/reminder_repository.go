package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent"
	"github.com/nogueira-gui/conecta-apiserver/internal/ent/reminder"
)

// reminderRepository is the database implementation of the
// ReminderRepository interface. Every operation is scoped to the owning user.
type reminderRepository struct {
	client *ent.Client
}

// NewReminderRepository creates a new ReminderRepository instance.
func NewReminderRepository(client *ent.Client) domain.ReminderRepository {
	return &reminderRepository{
		client: client,
	}
}

// Create stores a new reminder.
func (r *reminderRepository) Create(ctx context.Context, rem *entity.Reminder) (*entity.Reminder, error) {
	uid, err := uuid.Parse(rem.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	builder := r.client.Reminder.Create().
		SetUserID(uid).
		SetTitle(rem.Title).
		SetDescription(rem.Description).
		SetType(reminder.Type(rem.Type)).
		SetScheduledDate(rem.ScheduledDate).
		SetTime(rem.Time).
		SetActive(rem.Active).
		SetRecurring(rem.Recurring)
	if rem.RecurringType != "" {
		builder.SetRecurringType(reminder.RecurringType(rem.RecurringType))
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, domain.NewInvalidInputError("reminder references an unknown user")
		}
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return toReminderEntity(created), nil
}

// GetByID looks a reminder up, scoped to its owner.
func (r *reminderRepository) GetByID(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	uid, rid, err := parseOwnedID(userID, reminderID)
	if err != nil {
		return nil, err
	}

	rem, err := r.client.Reminder.Query().
		Where(
			reminder.ID(rid),
			reminder.UserID(uid),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Reminder", reminderID)
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return toReminderEntity(rem), nil
}

// ListByUser returns a user's reminders, newest first.
func (r *reminderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	reminders, err := r.client.Reminder.Query().
		Where(reminder.UserID(uid)).
		Order(ent.Desc(reminder.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	result := make([]*entity.Reminder, len(reminders))
	for i, rem := range reminders {
		result[i] = toReminderEntity(rem)
	}
	return result, nil
}

// Update overwrites a reminder's mutable fields.
func (r *reminderRepository) Update(ctx context.Context, rem *entity.Reminder) (*entity.Reminder, error) {
	uid, rid, err := parseOwnedID(rem.UserID, rem.ID)
	if err != nil {
		return nil, err
	}

	builder := r.client.Reminder.UpdateOneID(rid).
		Where(reminder.UserID(uid)).
		SetTitle(rem.Title).
		SetDescription(rem.Description).
		SetType(reminder.Type(rem.Type)).
		SetScheduledDate(rem.ScheduledDate).
		SetTime(rem.Time).
		SetActive(rem.Active).
		SetRecurring(rem.Recurring)
	if rem.RecurringType != "" {
		builder.SetRecurringType(reminder.RecurringType(rem.RecurringType))
	} else {
		builder.ClearRecurringType()
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Reminder", rem.ID)
		}
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	return toReminderEntity(updated), nil
}

// Delete removes a reminder, scoped to its owner.
func (r *reminderRepository) Delete(ctx context.Context, userID, reminderID string) error {
	uid, rid, err := parseOwnedID(userID, reminderID)
	if err != nil {
		return err
	}

	deleted, err := r.client.Reminder.Delete().
		Where(
			reminder.ID(rid),
			reminder.UserID(uid),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if deleted == 0 {
		return domain.NewNotFoundError("Reminder", reminderID)
	}
	return nil
}

// parseOwnedID parses the (owner, resource) UUID pair shared by the
// user-scoped repositories.
func parseOwnedID(userID, resourceID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	rid, err := uuid.Parse(resourceID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid resource id: %w", err)
	}
	return uid, rid, nil
}
