package dto

import (
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// CreateReminderRequest creates a health reminder.
type CreateReminderRequest struct {
	Title         string `json:"title" binding:"required,max=200"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type" binding:"required"`
	ScheduledDate string `json:"scheduled_date" binding:"required"` // "YYYY-MM-DD"
	Time          string `json:"time" binding:"required"`           // "HH:MM"
	Active        *bool  `json:"active,omitempty"`
	Recurring     bool   `json:"recurring,omitempty"`
	RecurringType string `json:"recurring_type,omitempty"`
}

// UpdateReminderRequest updates a reminder. Nil fields are left unchanged.
type UpdateReminderRequest struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	Time          *string `json:"time,omitempty"`
	Active        *bool   `json:"active,omitempty"`
	Recurring     *bool   `json:"recurring,omitempty"`
	RecurringType *string `json:"recurring_type,omitempty"`
}

// ReminderResponse is the reminder representation returned by the API.
type ReminderResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type"`
	ScheduledDate string `json:"scheduled_date"`
	Time          string `json:"time"`
	Active        bool   `json:"active"`
	Recurring     bool   `json:"recurring"`
	RecurringType string `json:"recurring_type,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ReminderListResponse is the list wrapper for reminders.
type ReminderListResponse struct {
	Reminders []*ReminderResponse `json:"reminders"`
	Total     int                 `json:"total"`
}

// ToReminderResponse converts an entity.Reminder to its DTO.
func ToReminderResponse(reminder *entity.Reminder) *ReminderResponse {
	return &ReminderResponse{
		ID:            reminder.ID,
		Title:         reminder.Title,
		Description:   reminder.Description,
		Type:          string(reminder.Type),
		ScheduledDate: reminder.ScheduledDate.Format("2006-01-02"),
		Time:          reminder.Time,
		Active:        reminder.Active,
		Recurring:     reminder.Recurring,
		RecurringType: string(reminder.RecurringType),
		CreatedAt:     reminder.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     reminder.UpdatedAt.Format(time.RFC3339),
	}
}

// ToReminderListResponse converts a slice of reminders to the list DTO.
func ToReminderListResponse(reminders []*entity.Reminder) *ReminderListResponse {
	items := make([]*ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		items[i] = ToReminderResponse(reminder)
	}
	return &ReminderListResponse{Reminders: items, Total: len(items)}
}
