package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// clockTimeFormat validates the "HH:MM" reminder time.
var clockTimeFormat = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// reminderUsecase is the ReminderUsecase interface implementation.
type reminderUsecase struct {
	reminderRepo domain.ReminderRepository
	logger       *slog.Logger
}

// NewReminderUsecase creates a new Reminder usecase instance.
//
// Parameters:
//   - reminderRepo: reminder data storage
//   - logger: structured logger
//
// Returns:
//   - domain.ReminderUsecase interface implementation
func NewReminderUsecase(reminderRepo domain.ReminderRepository, logger *slog.Logger) domain.ReminderUsecase {
	return &reminderUsecase{
		reminderRepo: reminderRepo,
		logger:       logger,
	}
}

// CreateReminder validates and persists a reminder.
func (u *reminderUsecase) CreateReminder(ctx context.Context, userID string, in domain.CreateReminderInput) (*entity.Reminder, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user ID cannot be empty")
	}

	scheduledDate, err := parseScheduledDate(in.ScheduledDate)
	if err != nil {
		return nil, err
	}

	reminder := &entity.Reminder{
		UserID:        userID,
		Title:         in.Title,
		Description:   in.Description,
		Type:          in.Type,
		ScheduledDate: scheduledDate,
		Time:          in.Time,
		Active:        in.Active,
		Recurring:     in.Recurring,
		RecurringType: in.RecurringType,
	}
	if err := validateReminder(reminder); err != nil {
		return nil, err
	}

	created, err := u.reminderRepo.Create(ctx, reminder)
	if err != nil {
		return nil, err
	}

	u.logger.Info("reminder created",
		"reminder_id", created.ID,
		"user_id", userID,
		"type", created.Type,
		"recurring", created.Recurring,
	)
	return created, nil
}

// CreateFromDraft persists a conversation-extracted draft as a pending
// reminder. Pending means inactive: the user still has to confirm it from the
// reminders screen before it starts firing.
func (u *reminderUsecase) CreateFromDraft(ctx context.Context, userID string, draft *entity.ReminderDraft) (*entity.Reminder, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user ID cannot be empty")
	}
	if draft == nil {
		return nil, domain.NewInvalidInputError("reminder draft cannot be nil")
	}

	reminder := &entity.Reminder{
		UserID:        userID,
		Title:         draft.Title,
		Description:   draft.Description,
		Type:          draft.Type,
		ScheduledDate: draft.ScheduledDate,
		Time:          draft.Time,
		Active:        false,
		Recurring:     draft.Recurring,
		RecurringType: draft.RecurringType,
	}
	if err := validateReminder(reminder); err != nil {
		return nil, err
	}

	created, err := u.reminderRepo.Create(ctx, reminder)
	if err != nil {
		return nil, err
	}

	u.logger.Info("pending reminder created from chat draft",
		"reminder_id", created.ID,
		"user_id", userID,
		"type", created.Type,
	)
	return created, nil
}

// GetReminder returns one reminder.
func (u *reminderUsecase) GetReminder(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	if userID == "" || reminderID == "" {
		return nil, domain.NewInvalidInputError("user ID and reminder ID cannot be empty")
	}
	return u.reminderRepo.GetByID(ctx, userID, reminderID)
}

// ListReminders returns a user's reminders, newest first.
func (u *reminderUsecase) ListReminders(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user ID cannot be empty")
	}
	return u.reminderRepo.ListByUser(ctx, userID)
}

// UpdateReminder applies a partial update and revalidates the result.
func (u *reminderUsecase) UpdateReminder(ctx context.Context, userID, reminderID string, in domain.UpdateReminderInput) (*entity.Reminder, error) {
	if userID == "" || reminderID == "" {
		return nil, domain.NewInvalidInputError("user ID and reminder ID cannot be empty")
	}

	reminder, err := u.reminderRepo.GetByID(ctx, userID, reminderID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		reminder.Title = *in.Title
	}
	if in.Description != nil {
		reminder.Description = *in.Description
	}
	if in.ScheduledDate != nil {
		scheduledDate, err := parseScheduledDate(*in.ScheduledDate)
		if err != nil {
			return nil, err
		}
		reminder.ScheduledDate = scheduledDate
	}
	if in.Time != nil {
		reminder.Time = *in.Time
	}
	if in.Active != nil {
		reminder.Active = *in.Active
	}
	if in.Recurring != nil {
		reminder.Recurring = *in.Recurring
	}
	if in.RecurringType != nil {
		reminder.RecurringType = *in.RecurringType
	}
	if !reminder.Recurring {
		reminder.RecurringType = ""
	}

	if err := validateReminder(reminder); err != nil {
		return nil, err
	}

	updated, err := u.reminderRepo.Update(ctx, reminder)
	if err != nil {
		return nil, err
	}

	u.logger.Info("reminder updated", "reminder_id", reminderID, "user_id", userID)
	return updated, nil
}

// DeleteReminder removes a reminder.
func (u *reminderUsecase) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	if userID == "" || reminderID == "" {
		return domain.NewInvalidInputError("user ID and reminder ID cannot be empty")
	}

	if err := u.reminderRepo.Delete(ctx, userID, reminderID); err != nil {
		return err
	}
	u.logger.Info("reminder deleted", "reminder_id", reminderID, "user_id", userID)
	return nil
}

// validateReminder enforces the reminder invariants shared by every write
// path, including drafts arriving from chat.
func validateReminder(r *entity.Reminder) error {
	if r.Title == "" {
		return domain.NewInvalidInputError("title cannot be empty")
	}

	switch r.Type {
	case entity.ReminderTypeMedication, entity.ReminderTypeAppointment,
		entity.ReminderTypeExam, entity.ReminderTypeGeneral:
	default:
		return domain.NewInvalidInputError(fmt.Sprintf("invalid reminder type: %s", r.Type))
	}

	if !clockTimeFormat.MatchString(r.Time) {
		return domain.NewInvalidInputError(fmt.Sprintf("time must be HH:MM, got %q", r.Time))
	}
	if r.ScheduledDate.IsZero() {
		return domain.NewInvalidInputError("scheduled date cannot be empty")
	}

	if r.Recurring {
		switch r.RecurringType {
		case entity.RecurrenceDaily, entity.RecurrenceWeekly, entity.RecurrenceMonthly:
		default:
			return domain.NewInvalidInputError(fmt.Sprintf("invalid recurrence type: %s", r.RecurringType))
		}
	} else if r.RecurringType != "" {
		return domain.NewInvalidInputError("recurrence type set on a non-recurring reminder")
	}

	return nil
}

func parseScheduledDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, domain.NewInvalidInputError(fmt.Sprintf("scheduled date must be YYYY-MM-DD, got %q", date))
	}
	return t, nil
}
