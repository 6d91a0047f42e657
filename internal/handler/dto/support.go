package dto

import (
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// CreateTicketRequest opens a support ticket.
type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"` // low, medium, high
}

// TicketResponse is the support-ticket representation returned by the API.
type TicketResponse struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TicketListResponse is the list wrapper for support tickets.
type TicketListResponse struct {
	Tickets []*TicketResponse `json:"tickets"`
	Total   int               `json:"total"`
}

// FAQResponse is one help-center FAQ entry.
type FAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// FAQListResponse is the list wrapper for FAQ entries.
type FAQListResponse struct {
	Items []*FAQResponse `json:"items"`
	Total int            `json:"total"`
}

// TutorialResponse is one help-center tutorial.
type TutorialResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Steps       []string `json:"steps"`
}

// TutorialListResponse is the list wrapper for tutorials.
type TutorialListResponse struct {
	Tutorials []*TutorialResponse `json:"tutorials"`
	Total     int                 `json:"total"`
}

// ToTicketResponse converts an entity.SupportTicket to its DTO.
func ToTicketResponse(ticket *entity.SupportTicket) *TicketResponse {
	return &TicketResponse{
		ID:          ticket.ID,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Category:    ticket.Category,
		Priority:    string(ticket.Priority),
		Status:      string(ticket.Status),
		CreatedAt:   ticket.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   ticket.UpdatedAt.Format(time.RFC3339),
	}
}

// ToTicketListResponse converts a slice of tickets to the list DTO.
func ToTicketListResponse(tickets []*entity.SupportTicket) *TicketListResponse {
	items := make([]*TicketResponse, len(tickets))
	for i, ticket := range tickets {
		items[i] = ToTicketResponse(ticket)
	}
	return &TicketListResponse{Tickets: items, Total: len(items)}
}

// ToFAQListResponse converts FAQ entries to the list DTO.
func ToFAQListResponse(faq []*entity.FAQItem) *FAQListResponse {
	items := make([]*FAQResponse, len(faq))
	for i, entry := range faq {
		items[i] = &FAQResponse{
			ID:       entry.ID,
			Question: entry.Question,
			Answer:   entry.Answer,
			Category: entry.Category,
		}
	}
	return &FAQListResponse{Items: items, Total: len(items)}
}

// ToTutorialListResponse converts tutorials to the list DTO.
func ToTutorialListResponse(tutorials []*entity.Tutorial) *TutorialListResponse {
	items := make([]*TutorialResponse, len(tutorials))
	for i, tutorial := range tutorials {
		items[i] = &TutorialResponse{
			ID:          tutorial.ID,
			Title:       tutorial.Title,
			Description: tutorial.Description,
			Category:    tutorial.Category,
			Steps:       tutorial.Steps,
		}
	}
	return &TutorialListResponse{Tutorials: items, Total: len(items)}
}
