package types

// Contact represents a directory contact returned by the API
type Contact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
	Favorite     bool   `json:"favorite"`
	Emergency    bool   `json:"emergency"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ContactList is the contacts list payload
type ContactList struct {
	Contacts []Contact `json:"contacts"`
	Total    int       `json:"total"`
}
