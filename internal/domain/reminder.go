package domain

import (
	"context"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// CreateReminderInput carries the fields needed to persist a reminder.
type CreateReminderInput struct {
	Title         string
	Description   string
	Type          entity.ReminderType
	ScheduledDate string // "YYYY-MM-DD"
	Time          string // "HH:MM"
	Active        bool
	Recurring     bool
	RecurringType entity.RecurrenceType
}

// UpdateReminderInput carries partial reminder updates; nil fields are left
// untouched.
type UpdateReminderInput struct {
	Title         *string
	Description   *string
	ScheduledDate *string
	Time          *string
	Active        *bool
	Recurring     *bool
	RecurringType *entity.RecurrenceType
}

// ============ Repository interface ============

// ReminderRepository is the reminder data-access interface.
type ReminderRepository interface {
	// Create stores a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error)

	// GetByID looks a reminder up, scoped to its owner.
	GetByID(ctx context.Context, userID, reminderID string) (*entity.Reminder, error)

	// ListByUser returns a user's reminders, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Reminder, error)

	// Update overwrites a reminder's mutable fields.
	Update(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error)

	// Delete removes a reminder, scoped to its owner.
	Delete(ctx context.Context, userID, reminderID string) error
}

// ============ Usecase interface ============

// ReminderUsecase is the health-reminder business logic. It is also the
// reminder-creation collaborator the chat core hands drafts to.
type ReminderUsecase interface {
	// CreateReminder validates and persists a reminder.
	CreateReminder(ctx context.Context, userID string, in CreateReminderInput) (*entity.Reminder, error)

	// CreateFromDraft persists a conversation-extracted draft as a pending
	// (inactive) reminder awaiting user confirmation.
	CreateFromDraft(ctx context.Context, userID string, draft *entity.ReminderDraft) (*entity.Reminder, error)

	// GetReminder returns one reminder.
	GetReminder(ctx context.Context, userID, reminderID string) (*entity.Reminder, error)

	// ListReminders returns a user's reminders, newest first.
	ListReminders(ctx context.Context, userID string) ([]*entity.Reminder, error)

	// UpdateReminder applies a partial update.
	UpdateReminder(ctx context.Context, userID, reminderID string, in UpdateReminderInput) (*entity.Reminder, error)

	// DeleteReminder removes a reminder.
	DeleteReminder(ctx context.Context, userID, reminderID string) error
}
