package usecase

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// Fake UserRepository for testing (simple map-backed implementation).
type testUserRepository struct {
	users map[string]*entity.User
}

func newTestUserRepository() *testUserRepository {
	return &testUserRepository{
		users: make(map[string]*entity.User),
	}
}

func (r *testUserRepository) Create(ctx context.Context, username, passwordHash, fullName string) (*entity.User, error) {
	user := &entity.User{
		ID:           "test-user-id",
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[username] = user
	return user, nil
}

func (r *testUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if user, ok := r.users[username]; ok {
		return user, nil
	}
	return nil, domain.NewNotFoundError("User", username)
}

func (r *testUserRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, domain.NewNotFoundError("User", userID)
}

func (r *testUserRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	return []*entity.User{}, nil
}

func (r *testUserRepository) Count(ctx context.Context) (int, error) {
	return len(r.users), nil
}

func (r *testUserRepository) Delete(ctx context.Context, userID string) error {
	return nil
}

func (r *testUserRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	return nil
}

func TestRegister(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	tests := []struct {
		name        string
		username    string
		password    string
		fullName    string
		setup       func(*testUserRepository)
		wantErr     bool
		errContains string
	}{
		{
			name:     "successful registration",
			username: "mariasilva",
			password: "password123",
			fullName: "Maria Silva",
			wantErr:  false,
		},
		{
			name:        "username too short",
			username:    "ab",
			password:    "password123",
			fullName:    "Maria Silva",
			wantErr:     true,
			errContains: "username",
		},
		{
			name:        "username with invalid characters",
			username:    "maria silva",
			password:    "password123",
			fullName:    "Maria Silva",
			wantErr:     true,
			errContains: "username",
		},
		{
			name:        "password too short",
			username:    "mariasilva",
			password:    "12345",
			fullName:    "Maria Silva",
			wantErr:     true,
			errContains: "password",
		},
		{
			name:        "full name empty",
			username:    "mariasilva",
			password:    "password123",
			fullName:    "   ",
			wantErr:     true,
			errContains: "full name",
		},
		{
			name:     "username already taken",
			username: "mariasilva",
			password: "password123",
			fullName: "Maria Silva",
			setup: func(r *testUserRepository) {
				r.users["mariasilva"] = &entity.User{ID: "existing", Username: "mariasilva"}
			},
			wantErr:     true,
			errContains: "already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestUserRepository()
			if tt.setup != nil {
				tt.setup(repo)
			}
			uc := NewUserUsecase(repo, logger)

			user, err := uc.Register(context.Background(), tt.username, tt.password, tt.fullName)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error = %q, want it to contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register failed: %v", err)
			}

			if user.Username != tt.username {
				t.Errorf("username = %q, want %q", user.Username, tt.username)
			}
			if user.FullName != tt.fullName {
				t.Errorf("full name = %q, want %q", user.FullName, tt.fullName)
			}
			// The stored hash must verify against the original password.
			if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)) != nil {
				t.Error("stored password hash does not verify")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}

	repo := newTestUserRepository()
	repo.users["mariasilva"] = &entity.User{
		ID:           "user-1",
		Username:     "mariasilva",
		PasswordHash: string(hash),
		FullName:     "Maria Silva",
	}
	uc := NewUserUsecase(repo, logger)

	t.Run("successful login", func(t *testing.T) {
		user, err := uc.Login(context.Background(), "mariasilva", "password123")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if user.ID != "user-1" {
			t.Errorf("user ID = %q, want user-1", user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(context.Background(), "mariasilva", "wrongpass")
		if !domain.IsInvalidInput(err) {
			t.Errorf("err = %v, want invalid input", err)
		}
	})

	t.Run("unknown username maps to the same error", func(t *testing.T) {
		_, err := uc.Login(context.Background(), "nobody", "password123")
		if !domain.IsInvalidInput(err) {
			t.Errorf("err = %v, want invalid input", err)
		}
	})
}
