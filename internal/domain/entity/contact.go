package entity

import "time"

// Contact is an entry of a user's communication directory. Emergency contacts
// are surfaced alongside emergency chat turns.
type Contact struct {
	ID           string
	UserID       string
	Name         string
	Phone        string
	Relationship string
	Favorite     bool
	Emergency    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
