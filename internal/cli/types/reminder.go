package types

// Reminder represents a health reminder returned by the API
type Reminder struct {
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

// ReminderList is the reminders list payload
type ReminderList struct {
	Reminders []Reminder `json:"reminders"`
	Total     int        `json:"total"`
}

// CreateReminderRequest creates a reminder
type CreateReminderRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type"`
	ScheduledDate string `json:"scheduled_date"`
	Time          string `json:"time"`
	Recurring     bool   `json:"recurring,omitempty"`
	RecurringType string `json:"recurring_type,omitempty"`
}
