package entity

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

// TicketPriority orders tickets in the human-support queue.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// SupportTicket is a human-escalation request created from the help center.
type SupportTicket struct {
	ID          string
	UserID      string
	Subject     string
	Description string
	Category    string
	Priority    TicketPriority
	Status      TicketStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FAQItem is one entry of the static help-center FAQ catalog.
type FAQItem struct {
	ID       string
	Question string
	Answer   string
	Category string
}

// Tutorial is a step-by-step guide of the help center.
type Tutorial struct {
	ID          string
	Title       string
	Description string
	Category    string
	Steps       []string
}
