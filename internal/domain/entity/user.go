package entity

import "time"

// User is a Conecta60+ account (domain layer, no serialization concerns).
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	LastLoginAt  *time.Time
	DeletedAt    *time.Time // soft delete marker
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDeleted reports whether the account has been soft deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
