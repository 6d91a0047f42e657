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

func newSupportUsecaseForTest(repo *mocks.MockTicketRepository) domain.SupportUsecase {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewSupportUsecase(repo, logger)
}

func TestSupportUsecase_ListFAQ(t *testing.T) {
	uc := newSupportUsecaseForTest(&mocks.MockTicketRepository{})

	all, err := uc.ListFAQ(context.Background(), "")
	if err != nil {
		t.Fatalf("ListFAQ failed: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("expected a seeded FAQ catalog")
	}
	for _, item := range all {
		if item.Question == "" || item.Answer == "" {
			t.Errorf("FAQ item %s must have question and answer", item.ID)
		}
	}
}

func TestSupportUsecase_ListFAQ_FilterByCategory(t *testing.T) {
	uc := newSupportUsecaseForTest(&mocks.MockTicketRepository{})

	all, err := uc.ListFAQ(context.Background(), "")
	if err != nil {
		t.Fatalf("ListFAQ failed: %v", err)
	}
	category := all[0].Category

	filtered, err := uc.ListFAQ(context.Background(), category)
	if err != nil {
		t.Fatalf("ListFAQ with category failed: %v", err)
	}
	if len(filtered) == 0 {
		t.Fatalf("expected items in category '%s'", category)
	}
	for _, item := range filtered {
		if item.Category != category {
			t.Errorf("expected category '%s', got '%s'", category, item.Category)
		}
	}

	none, err := uc.ListFAQ(context.Background(), "no-such-category")
	if err != nil {
		t.Fatalf("ListFAQ with unknown category failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty result for unknown category, got %d items", len(none))
	}
}

func TestSupportUsecase_ListTutorials(t *testing.T) {
	uc := newSupportUsecaseForTest(&mocks.MockTicketRepository{})

	tutorials, err := uc.ListTutorials(context.Background(), "")
	if err != nil {
		t.Fatalf("ListTutorials failed: %v", err)
	}
	if len(tutorials) == 0 {
		t.Fatal("expected a seeded tutorial catalog")
	}
	for _, tut := range tutorials {
		if len(tut.Steps) == 0 {
			t.Errorf("tutorial %s must have steps", tut.ID)
		}
	}
}

func TestSupportUsecase_CreateTicket(t *testing.T) {
	var storedTicket *entity.SupportTicket
	repo := &mocks.MockTicketRepository{
		CreateFunc: func(ctx context.Context, ticket *entity.SupportTicket) (*entity.SupportTicket, error) {
			stored := *ticket
			stored.ID = "ticket-1"
			storedTicket = &stored
			return &stored, nil
		},
	}
	uc := newSupportUsecaseForTest(repo)

	ticket, err := uc.CreateTicket(context.Background(), "user-1", domain.CreateTicketInput{
		Subject:     "Não consigo ouvir as mensagens",
		Description: "O botão de áudio não responde quando toco nele.",
		Category:    "audio",
	})
	if err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}
	if ticket.Status != entity.TicketStatusOpen {
		t.Errorf("new tickets must start open, got '%s'", ticket.Status)
	}
	if ticket.Priority != entity.TicketPriorityMedium {
		t.Errorf("priority should default to medium, got '%s'", ticket.Priority)
	}
	if storedTicket == nil || storedTicket.UserID != "user-1" {
		t.Error("ticket should be stored for the requesting user")
	}
}

func TestSupportUsecase_CreateTicket_Validation(t *testing.T) {
	uc := newSupportUsecaseForTest(&mocks.MockTicketRepository{})

	tests := []struct {
		name  string
		input domain.CreateTicketInput
	}{
		{
			name:  "empty subject",
			input: domain.CreateTicketInput{Description: "algo não funciona"},
		},
		{
			name:  "empty description",
			input: domain.CreateTicketInput{Subject: "problema"},
		},
		{
			name: "invalid priority",
			input: domain.CreateTicketInput{
				Subject:     "problema",
				Description: "algo não funciona",
				Priority:    entity.TicketPriority("urgentíssimo"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateTicket(context.Background(), "user-1", tt.input)
			if !domain.IsInvalidInput(err) {
				t.Errorf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestSupportUsecase_GetTicket_Scoped(t *testing.T) {
	repo := &mocks.MockTicketRepository{
		GetByIDFunc: func(ctx context.Context, userID, ticketID string) (*entity.SupportTicket, error) {
			if userID != "user-1" {
				return nil, domain.NewNotFoundError("SupportTicket", ticketID)
			}
			return &entity.SupportTicket{ID: ticketID, UserID: userID}, nil
		},
	}
	uc := newSupportUsecaseForTest(repo)

	if _, err := uc.GetTicket(context.Background(), "user-1", "ticket-1"); err != nil {
		t.Fatalf("GetTicket failed for owner: %v", err)
	}
	if _, err := uc.GetTicket(context.Background(), "user-2", "ticket-1"); !domain.IsNotFound(err) {
		t.Errorf("expected not found for another user, got %v", err)
	}
}
