package usecase

import (
	"context"
	"log/slog"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// supportUsecase is the SupportUsecase interface implementation. The FAQ and
// tutorial catalogs are static seed data; only tickets hit storage.
type supportUsecase struct {
	ticketRepo domain.TicketRepository
	faq        []*entity.FAQItem
	tutorials  []*entity.Tutorial
	logger     *slog.Logger
}

// NewSupportUsecase creates a new Support usecase instance.
//
// Parameters:
//   - ticketRepo: support-ticket data storage
//   - logger: structured logger
//
// Returns:
//   - domain.SupportUsecase interface implementation
func NewSupportUsecase(ticketRepo domain.TicketRepository, logger *slog.Logger) domain.SupportUsecase {
	return &supportUsecase{
		ticketRepo: ticketRepo,
		faq:        seedFAQ(),
		tutorials:  seedTutorials(),
		logger:     logger,
	}
}

// ListFAQ returns the FAQ catalog, optionally filtered by category.
func (u *supportUsecase) ListFAQ(ctx context.Context, category string) ([]*entity.FAQItem, error) {
	if category == "" {
		return u.faq, nil
	}
	var items []*entity.FAQItem
	for _, item := range u.faq {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

// ListTutorials returns the tutorial catalog, optionally filtered by
// category.
func (u *supportUsecase) ListTutorials(ctx context.Context, category string) ([]*entity.Tutorial, error) {
	if category == "" {
		return u.tutorials, nil
	}
	var items []*entity.Tutorial
	for _, item := range u.tutorials {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

// CreateTicket validates and stores a human-escalation request. New tickets
// always start open; priority defaults to medium.
func (u *supportUsecase) CreateTicket(ctx context.Context, userID string, in domain.CreateTicketInput) (*entity.SupportTicket, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user ID cannot be empty")
	}
	if in.Subject == "" {
		return nil, domain.NewInvalidInputError("ticket subject cannot be empty")
	}
	if in.Description == "" {
		return nil, domain.NewInvalidInputError("ticket description cannot be empty")
	}

	priority := in.Priority
	switch priority {
	case entity.TicketPriorityLow, entity.TicketPriorityMedium, entity.TicketPriorityHigh:
	case "":
		priority = entity.TicketPriorityMedium
	default:
		return nil, domain.NewInvalidInputError("invalid ticket priority")
	}

	ticket := &entity.SupportTicket{
		UserID:      userID,
		Subject:     in.Subject,
		Description: in.Description,
		Category:    in.Category,
		Priority:    priority,
		Status:      entity.TicketStatusOpen,
	}

	created, err := u.ticketRepo.Create(ctx, ticket)
	if err != nil {
		return nil, err
	}

	u.logger.Info("support ticket created",
		"ticket_id", created.ID,
		"user_id", userID,
		"priority", created.Priority,
	)
	return created, nil
}

// GetTicket returns one ticket.
func (u *supportUsecase) GetTicket(ctx context.Context, userID, ticketID string) (*entity.SupportTicket, error) {
	if userID == "" || ticketID == "" {
		return nil, domain.NewInvalidInputError("user ID and ticket ID cannot be empty")
	}
	return u.ticketRepo.GetByID(ctx, userID, ticketID)
}

// ListTickets returns a user's tickets, newest first.
func (u *supportUsecase) ListTickets(ctx context.Context, userID string) ([]*entity.SupportTicket, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user ID cannot be empty")
	}
	return u.ticketRepo.ListByUser(ctx, userID)
}

// seedFAQ is the built-in help-center FAQ, in Brazilian Portuguese.
func seedFAQ() []*entity.FAQItem {
	return []*entity.FAQItem{
		{
			ID:       "faq-1",
			Question: "Como criar um lembrete de medicamento?",
			Answer:   "Você pode pedir pelo chat, por exemplo: \"me lembre de tomar o remédio às 8h\". Também é possível criar na tela de Lembretes tocando no botão +.",
			Category: "lembretes",
		},
		{
			ID:       "faq-2",
			Question: "Como adicionar um contato de emergência?",
			Answer:   "Na tela de Contatos, toque em Adicionar, preencha nome e telefone e marque a opção \"Contato de emergência\".",
			Category: "contatos",
		},
		{
			ID:       "faq-3",
			Question: "O assistente substitui o meu médico?",
			Answer:   "Não. O assistente dá orientações gerais de bem-estar, mas nunca substitui uma consulta. Em caso de sintomas graves, procure um médico ou ligue 192.",
			Category: "chat",
		},
		{
			ID:       "faq-4",
			Question: "Posso usar o aplicativo por voz?",
			Answer:   "Sim. No chat, toque e segure o botão do microfone para gravar sua mensagem.",
			Category: "chat",
		},
		{
			ID:       "faq-5",
			Question: "Como falar com uma pessoa de verdade?",
			Answer:   "Na Central de Ajuda, abra um chamado descrevendo o problema. Nossa equipe responde em até um dia útil.",
			Category: "suporte",
		},
	}
}

// seedTutorials is the built-in tutorial catalog, in Brazilian Portuguese.
func seedTutorials() []*entity.Tutorial {
	return []*entity.Tutorial{
		{
			ID:          "tutorial-1",
			Title:       "Primeiros passos",
			Description: "Conheça as telas principais do aplicativo.",
			Category:    "basico",
			Steps: []string{
				"Abra o aplicativo e faça seu cadastro com nome e senha.",
				"Na tela inicial, veja seus lembretes do dia.",
				"Use o menu inferior para navegar entre Chat, Lembretes e Contatos.",
			},
		},
		{
			ID:          "tutorial-2",
			Title:       "Conversando com o assistente",
			Description: "Aprenda a usar o chat para tirar dúvidas e criar lembretes.",
			Category:    "chat",
			Steps: []string{
				"Toque em Chat no menu inferior.",
				"Escreva sua mensagem ou grave um áudio segurando o microfone.",
				"Para criar um lembrete, diga algo como \"me lembre de tomar o remédio às 8h\".",
				"Confirme o lembrete quando o assistente perguntar.",
			},
		},
		{
			ID:          "tutorial-3",
			Title:       "Organizando seus contatos",
			Description: "Cadastre familiares e marque contatos de emergência.",
			Category:    "contatos",
			Steps: []string{
				"Toque em Contatos no menu inferior.",
				"Toque em Adicionar e preencha nome, telefone e parentesco.",
				"Marque a estrela para favoritar os contatos que você mais usa.",
				"Marque \"Contato de emergência\" para quem deve ser acionado em urgências.",
			},
		},
	}
}
