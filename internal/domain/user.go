package domain

import (
	"context"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// ============ Repository interface ============

// UserRepository is the account data-access interface.
type UserRepository interface {
	// Create stores a new account.
	Create(ctx context.Context, username, passwordHash, fullName string) (*entity.User, error)

	// GetByUsername looks an account up for login.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetByID looks an account up by ID.
	GetByID(ctx context.Context, userID string) (*entity.User, error)

	// List queries accounts with pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// Count returns the number of active accounts.
	Count(ctx context.Context) (int, error)

	// Delete soft deletes an account.
	Delete(ctx context.Context, userID string) error

	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, userID string) error
}

// ============ Usecase interface ============

// UserUsecase is the account business logic.
type UserUsecase interface {
	// Register creates a new account.
	Register(ctx context.Context, username, password, fullName string) (*entity.User, error)

	// Login verifies credentials and returns the account.
	Login(ctx context.Context, username, password string) (*entity.User, error)

	// GetUser returns account details.
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// ListUsers queries accounts with pagination.
	ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int, error)

	// DeleteUser soft deletes an account.
	DeleteUser(ctx context.Context, userID string) error
}
