package dto

import (
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// CreateContactRequest creates a directory contact.
type CreateContactRequest struct {
	Name         string `json:"name" binding:"required,max=120"`
	Phone        string `json:"phone" binding:"required"`
	Relationship string `json:"relationship,omitempty"`
	Favorite     bool   `json:"favorite,omitempty"`
	Emergency    bool   `json:"emergency,omitempty"`
}

// UpdateContactRequest updates a contact. Nil fields are left unchanged.
type UpdateContactRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Favorite     *bool   `json:"favorite,omitempty"`
	Emergency    *bool   `json:"emergency,omitempty"`
}

// ContactResponse is the contact representation returned by the API.
type ContactResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
	Favorite     bool   `json:"favorite"`
	Emergency    bool   `json:"emergency"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ContactListResponse is the list wrapper for contacts.
type ContactListResponse struct {
	Contacts []*ContactResponse `json:"contacts"`
	Total    int                `json:"total"`
}

// ToContactResponse converts an entity.Contact to its DTO.
func ToContactResponse(contact *entity.Contact) *ContactResponse {
	return &ContactResponse{
		ID:           contact.ID,
		Name:         contact.Name,
		Phone:        contact.Phone,
		Relationship: contact.Relationship,
		Favorite:     contact.Favorite,
		Emergency:    contact.Emergency,
		CreatedAt:    contact.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    contact.UpdatedAt.Format(time.RFC3339),
	}
}

// ToContactListResponse converts a slice of contacts to the list DTO.
func ToContactListResponse(contacts []*entity.Contact) *ContactListResponse {
	items := make([]*ContactResponse, len(contacts))
	for i, contact := range contacts {
		items[i] = ToContactResponse(contact)
	}
	return &ContactListResponse{Contacts: items, Total: len(items)}
}
