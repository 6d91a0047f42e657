package usecase

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/mocks"
)

func newContactUsecaseForTest(repo *mocks.MockContactRepository) domain.ContactUsecase {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewContactUsecase(repo, logger)
}

func TestContactUsecase_CreateContact(t *testing.T) {
	repo := &mocks.MockContactRepository{
		CreateFunc: func(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
			stored := *contact
			stored.ID = "contact-1"
			return &stored, nil
		},
	}
	uc := newContactUsecaseForTest(repo)

	contact, err := uc.CreateContact(context.Background(), "user-1", domain.CreateContactInput{
		Name:         "Ana",
		Phone:        "+55 11 91234-5678",
		Relationship: "filha",
		Emergency:    true,
	})
	if err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}
	if contact.ID != "contact-1" {
		t.Errorf("expected ID 'contact-1', got '%s'", contact.ID)
	}
	if !contact.Emergency {
		t.Error("expected contact to keep the emergency flag")
	}
}

func TestContactUsecase_CreateContact_Validation(t *testing.T) {
	uc := newContactUsecaseForTest(&mocks.MockContactRepository{})

	tests := []struct {
		name  string
		input domain.CreateContactInput
	}{
		{
			name:  "empty name",
			input: domain.CreateContactInput{Phone: "11 91234-5678"},
		},
		{
			name:  "empty phone",
			input: domain.CreateContactInput{Name: "Ana"},
		},
		{
			name:  "malformed phone",
			input: domain.CreateContactInput{Name: "Ana", Phone: "não é telefone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateContact(context.Background(), "user-1", tt.input)
			if !domain.IsInvalidInput(err) {
				t.Errorf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestContactUsecase_CreateContact_EmptyUserID(t *testing.T) {
	uc := newContactUsecaseForTest(&mocks.MockContactRepository{})

	_, err := uc.CreateContact(context.Background(), "", domain.CreateContactInput{
		Name:  "Ana",
		Phone: "11 91234-5678",
	})
	if !domain.IsInvalidInput(err) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestContactUsecase_UpdateContact_PartialFields(t *testing.T) {
	stored := &entity.Contact{
		ID:           "contact-1",
		UserID:       "user-1",
		Name:         "Ana",
		Phone:        "11 91234-5678",
		Relationship: "filha",
	}
	repo := &mocks.MockContactRepository{
		GetByIDFunc: func(ctx context.Context, userID, contactID string) (*entity.Contact, error) {
			clone := *stored
			return &clone, nil
		},
		UpdateFunc: func(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
			return contact, nil
		},
	}
	uc := newContactUsecaseForTest(repo)

	newPhone := "11 99876-5432"
	updated, err := uc.UpdateContact(context.Background(), "user-1", "contact-1", domain.UpdateContactInput{
		Phone: &newPhone,
	})
	if err != nil {
		t.Fatalf("UpdateContact failed: %v", err)
	}
	if updated.Phone != newPhone {
		t.Errorf("expected phone '%s', got '%s'", newPhone, updated.Phone)
	}
	if updated.Name != "Ana" {
		t.Errorf("untouched fields must survive a partial update, got name '%s'", updated.Name)
	}
}

func TestContactUsecase_UpdateContact_NotFound(t *testing.T) {
	repo := &mocks.MockContactRepository{
		GetByIDFunc: func(ctx context.Context, userID, contactID string) (*entity.Contact, error) {
			return nil, domain.NewNotFoundError("Contact", contactID)
		},
	}
	uc := newContactUsecaseForTest(repo)

	name := "Beatriz"
	_, err := uc.UpdateContact(context.Background(), "user-1", "missing", domain.UpdateContactInput{Name: &name})
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestContactUsecase_ToggleFavorite(t *testing.T) {
	repo := &mocks.MockContactRepository{
		GetByIDFunc: func(ctx context.Context, userID, contactID string) (*entity.Contact, error) {
			return &entity.Contact{
				ID:       contactID,
				UserID:   userID,
				Name:     "Ana",
				Phone:    "11 91234-5678",
				Favorite: false,
			}, nil
		},
		UpdateFunc: func(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
			return contact, nil
		},
	}
	uc := newContactUsecaseForTest(repo)

	contact, err := uc.ToggleFavorite(context.Background(), "user-1", "contact-1")
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if !contact.Favorite {
		t.Error("expected favorite flag to flip to true")
	}
}

func TestContactUsecase_ListEmergencyContacts(t *testing.T) {
	repo := &mocks.MockContactRepository{
		ListEmergencyFunc: func(ctx context.Context, userID string) ([]*entity.Contact, error) {
			return []*entity.Contact{
				{ID: "contact-1", UserID: userID, Name: "Ana", Emergency: true},
				{ID: "contact-2", UserID: userID, Name: "SAMU", Phone: "192", Emergency: true},
			}, nil
		},
	}
	uc := newContactUsecaseForTest(repo)

	contacts, err := uc.ListEmergencyContacts(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListEmergencyContacts failed: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	for _, c := range contacts {
		if !c.Emergency {
			t.Errorf("contact %s should be flagged emergency", c.ID)
		}
	}
}

func TestContactUsecase_DeleteContact_EmptyIDs(t *testing.T) {
	uc := newContactUsecaseForTest(&mocks.MockContactRepository{})

	if err := uc.DeleteContact(context.Background(), "", "contact-1"); !domain.IsInvalidInput(err) {
		t.Errorf("expected invalid input error for empty user ID, got %v", err)
	}
	if err := uc.DeleteContact(context.Background(), "user-1", ""); !domain.IsInvalidInput(err) {
		t.Errorf("expected invalid input error for empty contact ID, got %v", err)
	}
}
