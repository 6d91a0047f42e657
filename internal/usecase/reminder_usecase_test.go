package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// Fake ReminderRepository for testing (simple map-backed implementation).
type testReminderRepository struct {
	seq       int
	reminders map[string]*entity.Reminder
}

func newTestReminderRepository() *testReminderRepository {
	return &testReminderRepository{
		reminders: make(map[string]*entity.Reminder),
	}
}

func (r *testReminderRepository) Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	r.seq++
	stored := *reminder
	stored.ID = fmt.Sprintf("reminder-%d", r.seq)
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = time.Now()
	r.reminders[stored.ID] = &stored
	return &stored, nil
}

func (r *testReminderRepository) GetByID(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	reminder, ok := r.reminders[reminderID]
	if !ok || reminder.UserID != userID {
		return nil, domain.NewNotFoundError("Reminder", reminderID)
	}
	clone := *reminder
	return &clone, nil
}

func (r *testReminderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var out []*entity.Reminder
	for _, reminder := range r.reminders {
		if reminder.UserID == userID {
			out = append(out, reminder)
		}
	}
	return out, nil
}

func (r *testReminderRepository) Update(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	if _, ok := r.reminders[reminder.ID]; !ok {
		return nil, domain.NewNotFoundError("Reminder", reminder.ID)
	}
	stored := *reminder
	stored.UpdatedAt = time.Now()
	r.reminders[reminder.ID] = &stored
	return &stored, nil
}

func (r *testReminderRepository) Delete(ctx context.Context, userID, reminderID string) error {
	reminder, ok := r.reminders[reminderID]
	if !ok || reminder.UserID != userID {
		return domain.NewNotFoundError("Reminder", reminderID)
	}
	delete(r.reminders, reminderID)
	return nil
}

func newReminderUsecaseForTest() (domain.ReminderUsecase, *testReminderRepository) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	repo := newTestReminderRepository()
	return NewReminderUsecase(repo, logger), repo
}

func TestCreateReminderValidation(t *testing.T) {
	uc, _ := newReminderUsecaseForTest()
	valid := domain.CreateReminderInput{
		Title:         "Tomar losartana",
		Type:          entity.ReminderTypeMedication,
		ScheduledDate: "2025-03-11",
		Time:          "08:00",
		Active:        true,
		Recurring:     true,
		RecurringType: entity.RecurrenceDaily,
	}

	tests := []struct {
		name    string
		mutate  func(*domain.CreateReminderInput)
		wantErr bool
	}{
		{name: "valid input", mutate: func(in *domain.CreateReminderInput) {}},
		{
			name:    "empty title",
			mutate:  func(in *domain.CreateReminderInput) { in.Title = "" },
			wantErr: true,
		},
		{
			name:    "bad type",
			mutate:  func(in *domain.CreateReminderInput) { in.Type = "birthday" },
			wantErr: true,
		},
		{
			name:    "bad time format",
			mutate:  func(in *domain.CreateReminderInput) { in.Time = "8h00" },
			wantErr: true,
		},
		{
			name:    "hour out of range",
			mutate:  func(in *domain.CreateReminderInput) { in.Time = "24:00" },
			wantErr: true,
		},
		{
			name:    "bad date format",
			mutate:  func(in *domain.CreateReminderInput) { in.ScheduledDate = "11/03/2025" },
			wantErr: true,
		},
		{
			name: "recurring without recurrence type",
			mutate: func(in *domain.CreateReminderInput) {
				in.Recurring = true
				in.RecurringType = ""
			},
			wantErr: true,
		},
		{
			name: "recurrence type on one-shot reminder",
			mutate: func(in *domain.CreateReminderInput) {
				in.Recurring = false
				in.RecurringType = entity.RecurrenceDaily
			},
			wantErr: true,
		},
		{
			name: "one-shot reminder",
			mutate: func(in *domain.CreateReminderInput) {
				in.Recurring = false
				in.RecurringType = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := uc.CreateReminder(context.Background(), "user-1", in)
			if tt.wantErr {
				if !domain.IsInvalidInput(err) {
					t.Errorf("err = %v, want invalid input", err)
				}
				return
			}
			if err != nil {
				t.Errorf("CreateReminder failed: %v", err)
			}
		})
	}
}

func TestCreateFromDraftIsPending(t *testing.T) {
	uc, _ := newReminderUsecaseForTest()

	draft := &entity.ReminderDraft{
		Title:         "Tomar losartana",
		Description:   "Lembrete para tomar losartana",
		Type:          entity.ReminderTypeMedication,
		ScheduledDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local),
		Time:          "08:00",
		Active:        true,
		Recurring:     true,
		RecurringType: entity.RecurrenceDaily,
	}

	created, err := uc.CreateFromDraft(context.Background(), "user-1", draft)
	if err != nil {
		t.Fatalf("CreateFromDraft failed: %v", err)
	}

	// Drafts always land inactive, whatever the draft said, until the user
	// confirms them.
	if created.Active {
		t.Error("draft-created reminder must start inactive")
	}
	if created.Title != draft.Title || created.Type != draft.Type {
		t.Errorf("created = %+v, want draft fields preserved", created)
	}

	if _, err := uc.CreateFromDraft(context.Background(), "user-1", nil); !domain.IsInvalidInput(err) {
		t.Errorf("nil draft err = %v, want invalid input", err)
	}
}

func TestUpdateReminder(t *testing.T) {
	uc, _ := newReminderUsecaseForTest()

	created, err := uc.CreateReminder(context.Background(), "user-1", domain.CreateReminderInput{
		Title:         "Tomar losartana",
		Type:          entity.ReminderTypeMedication,
		ScheduledDate: "2025-03-11",
		Time:          "08:00",
		Active:        true,
		Recurring:     true,
		RecurringType: entity.RecurrenceDaily,
	})
	if err != nil {
		t.Fatalf("CreateReminder failed: %v", err)
	}

	newTitle := "Tomar losartana 50mg"
	recurring := false
	updated, err := uc.UpdateReminder(context.Background(), "user-1", created.ID, domain.UpdateReminderInput{
		Title:     &newTitle,
		Recurring: &recurring,
	})
	if err != nil {
		t.Fatalf("UpdateReminder failed: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("title = %q, want %q", updated.Title, newTitle)
	}
	if updated.Recurring {
		t.Error("reminder still recurring")
	}
	// Turning recurrence off clears the recurrence type.
	if updated.RecurringType != "" {
		t.Errorf("recurrence type = %q, want empty", updated.RecurringType)
	}
	// Untouched fields survive.
	if updated.Time != "08:00" {
		t.Errorf("time = %q, want 08:00", updated.Time)
	}

	t.Run("owner scoping", func(t *testing.T) {
		_, err := uc.UpdateReminder(context.Background(), "user-2", created.ID, domain.UpdateReminderInput{Title: &newTitle})
		if !domain.IsNotFound(err) {
			t.Errorf("err = %v, want not found for another user's reminder", err)
		}
	})
}

func TestDeleteReminder(t *testing.T) {
	uc, _ := newReminderUsecaseForTest()

	created, err := uc.CreateReminder(context.Background(), "user-1", domain.CreateReminderInput{
		Title:         "Consulta: cardiologista",
		Type:          entity.ReminderTypeAppointment,
		ScheduledDate: "2025-03-20",
		Time:          "14:00",
		Active:        true,
	})
	if err != nil {
		t.Fatalf("CreateReminder failed: %v", err)
	}

	if err := uc.DeleteReminder(context.Background(), "user-1", created.ID); err != nil {
		t.Fatalf("DeleteReminder failed: %v", err)
	}
	if _, err := uc.GetReminder(context.Background(), "user-1", created.ID); !domain.IsNotFound(err) {
		t.Errorf("deleted reminder still retrievable, err = %v", err)
	}
}
