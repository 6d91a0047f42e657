package entity

import "time"

// ReminderType classifies what a health reminder is about.
type ReminderType string

const (
	ReminderTypeMedication  ReminderType = "medication"
	ReminderTypeAppointment ReminderType = "appointment"
	ReminderTypeExam        ReminderType = "exam"
	ReminderTypeGeneral     ReminderType = "general"
)

// RecurrenceType is how often a recurring reminder repeats.
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// ReminderDraft is a partially filled, unpersisted reminder extracted from
// conversation text. Invariant: RecurringType is non-empty iff Recurring.
type ReminderDraft struct {
	Title         string
	Description   string
	Type          ReminderType
	ScheduledDate time.Time
	Time          string // "HH:MM"
	Active        bool
	Recurring     bool
	RecurringType RecurrenceType
}

// Reminder is a persisted health reminder owned by a user.
type Reminder struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	Type          ReminderType
	ScheduledDate time.Time
	Time          string // "HH:MM"
	Active        bool
	Recurring     bool
	RecurringType RecurrenceType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
