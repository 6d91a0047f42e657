package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/intent"
)

// Fixed conversation texts. These are user-facing and localized to Brazilian
// Portuguese; change them together with the assistant persona prompts.
const (
	apologyMessage   = "Desculpe, ocorreu um erro. Tente novamente em alguns instantes."
	sendErrorMessage = "Erro ao enviar mensagem. Tente novamente."

	// Placeholder transcription until a speech-to-text collaborator exists.
	voiceTranscriptionStub = "Esta é uma mensagem de voz simulada"

	// Emergency turns never reach the assistant; the guidance is fixed.
	emergencyGuidanceMessage = "Entendi que pode ser uma emergência. Ligue imediatamente para o SAMU no telefone 192. Se possível, avise também um familiar ou vizinho próximo."

	familyGreetingFormat = "Olá! Sou o %s, seu %s. Como você está se sentindo hoje?"
)

// defaultReminderHandOffDelay is how long a classified reminder draft waits
// before being handed to the reminder pipeline. The window lets a closing
// session cancel the hand-off.
const defaultReminderHandOffDelay = time.Second

// streamBufferSize bounds the chunk channel so a slow consumer applies
// backpressure instead of growing memory.
const streamBufferSize = 16

// chatUsecase is the ChatUsecase interface implementation.
// It orchestrates one conversation turn at a time per session: intent
// classification first, then either the reminder short-circuit or a call to
// the assistant, with the transcript kept consistent at every step.
type chatUsecase struct {
	assistant  domain.AssistantClient
	sessions   domain.ChatSessionStore
	classifier *intent.Classifier
	onReminder domain.ReminderIntentFunc
	logger     *slog.Logger

	reminderDelay time.Duration

	// Pending reminder hand-off timers, keyed by assistant message ID.
	// Closing a session cancels every timer it owns.
	timersMu sync.Mutex
	timers   map[string]*reminderHandOff
}

type reminderHandOff struct {
	sessionID string
	timer     *time.Timer
}

// ChatOption configures optional behavior of the chat usecase.
type ChatOption func(*chatUsecase)

// WithReminderHandOffDelay overrides the delay before a reminder draft is
// handed to the reminder pipeline.
func WithReminderHandOffDelay(d time.Duration) ChatOption {
	return func(u *chatUsecase) { u.reminderDelay = d }
}

// NewChatUsecase creates a new Chat usecase instance.
//
// Parameters:
//   - assistant: chat-completion client answering in the caregiver persona
//   - sessions: in-memory store holding live conversation sessions
//   - classifier: intent classifier run on every incoming text turn
//   - onReminder: callback receiving reminder drafts extracted from chat;
//     may be nil, in which case drafts are logged and dropped
//   - logger: structured logger
//
// Returns:
//   - domain.ChatUsecase interface implementation
func NewChatUsecase(
	assistant domain.AssistantClient,
	sessions domain.ChatSessionStore,
	classifier *intent.Classifier,
	onReminder domain.ReminderIntentFunc,
	logger *slog.Logger,
	opts ...ChatOption,
) domain.ChatUsecase {
	u := &chatUsecase{
		assistant:     assistant,
		sessions:      sessions,
		classifier:    classifier,
		onReminder:    onReminder,
		logger:        logger,
		reminderDelay: defaultReminderHandOffDelay,
		timers:        make(map[string]*reminderHandOff),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateSession opens a new conversation session for a user.
func (u *chatUsecase) CreateSession(ctx context.Context, userID string, opts entity.ChatOptions) (*entity.ChatSession, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user ID cannot be empty")
	}

	now := time.Now()
	session := &entity.ChatSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Options:   opts,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Create(session); err != nil {
		return nil, err
	}

	u.logger.Info("chat session created",
		"session_id", session.ID,
		"user_id", userID,
		"family_simulation", opts.FamilySimulation,
	)
	return session, nil
}

// GetSession returns a snapshot of the session and its transcript.
func (u *chatUsecase) GetSession(ctx context.Context, sessionID string) (*entity.ChatSession, error) {
	if sessionID == "" {
		return nil, domain.NewInvalidInputError("session ID cannot be empty")
	}
	return u.sessions.Get(sessionID)
}

// SendMessage runs one conversation turn and waits for the complete reply.
//
// The turn proceeds as:
//  1. reject empty-after-trim input or a session already processing a turn
//  2. append the user message and a loading assistant placeholder
//  3. classify intent; emergencies short-circuit with the fixed guidance
//     text, reminder requests short-circuit with a confirmation text and
//     a delayed hand-off of the extracted draft
//  4. otherwise ask the assistant (the family roleplay responder when a
//     simulation target is configured) and substitute its reply (or the
//     fixed apology on failure) into the placeholder
func (u *chatUsecase) SendMessage(ctx context.Context, sessionID, text string) (*domain.ChatTurn, error) {
	return u.sendTurn(ctx, sessionID, text, entity.MessageTypeText)
}

// SendVoiceMessage runs one turn for a voice recording. The audio is not yet
// transcribed; a fixed placeholder transcription stands in for it and flows
// through the same pipeline as a text turn.
func (u *chatUsecase) SendVoiceMessage(ctx context.Context, sessionID string, audio []byte) (*domain.ChatTurn, error) {
	if len(audio) == 0 {
		return nil, domain.NewInvalidInputError("audio cannot be empty")
	}
	return u.sendTurn(ctx, sessionID, voiceTranscriptionStub, entity.MessageTypeVoice)
}

func (u *chatUsecase) sendTurn(ctx context.Context, sessionID, text string, msgType entity.MessageType) (*domain.ChatTurn, error) {
	turn, err := u.beginTurn(sessionID, text, msgType)
	if err != nil {
		return nil, err
	}

	text = turn.userMessage.Content

	analysis := u.classifier.Classify(text)
	turn.analysis = analysis

	if analysis.Intent == entity.IntentEmergency {
		return u.finishTurn(turn, emergencyGuidanceMessage, nil)
	}

	if analysis.Intent == entity.IntentCreateReminder {
		confirmation := u.classifier.BuildConfirmation(analysis.Reminder)
		u.scheduleReminderHandOff(ctx, turn, analysis.Reminder)
		return u.finishTurn(turn, confirmation, nil)
	}

	if turn.options.FamilySimulation && turn.options.FamilyMemberName != "" {
		reply, err := u.assistant.SimulateFamily(ctx, turn.options.FamilyMemberName, turn.options.Relationship, text)
		return u.finishTurn(turn, reply, err)
	}

	reply, err := u.assistant.Generate(ctx, text, turn.options.Patient)
	return u.finishTurn(turn, reply, err)
}

// SendMessageStream runs one turn and returns the reply as an ordered chunk
// stream. The assistant placeholder in the transcript accumulates the chunks
// as they arrive and is replaced with the responder's authoritative final
// text when the stream completes.
func (u *chatUsecase) SendMessageStream(ctx context.Context, sessionID, text string) (<-chan entity.StreamChunk, error) {
	turn, err := u.beginTurn(sessionID, text, entity.MessageTypeText)
	if err != nil {
		return nil, err
	}

	text = turn.userMessage.Content
	ch := make(chan entity.StreamChunk, streamBufferSize)

	go func() {
		defer close(ch)

		analysis := u.classifier.Classify(text)
		turn.analysis = analysis

		if analysis.Intent == entity.IntentEmergency {
			u.emitFinal(ch, turn, emergencyGuidanceMessage, nil)
			return
		}

		if analysis.Intent == entity.IntentCreateReminder {
			confirmation := u.classifier.BuildConfirmation(analysis.Reminder)
			u.scheduleReminderHandOff(ctx, turn, analysis.Reminder)
			u.emitFinal(ch, turn, confirmation, nil)
			return
		}

		if turn.options.FamilySimulation && turn.options.FamilyMemberName != "" {
			reply, err := u.assistant.SimulateFamily(ctx, turn.options.FamilyMemberName, turn.options.Relationship, text)
			u.emitFinal(ch, turn, reply, err)
			return
		}

		final, err := u.assistant.GenerateStream(ctx, text, turn.options.Patient, func(chunk string) {
			u.appendToPlaceholder(turn, chunk)
			ch <- entity.StreamChunk{Text: chunk, MessageID: turn.assistantID}
		})
		if err != nil {
			u.emitFinal(ch, turn, "", err)
			return
		}

		// The responder's final text wins over the chunk concatenation.
		u.emitFinal(ch, turn, final, nil)
	}()

	return ch, nil
}

// ClearChat empties the transcript and the error slot. Session options,
// including an active family simulation, survive.
func (u *chatUsecase) ClearChat(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.NewInvalidInputError("session ID cannot be empty")
	}
	return u.sessions.Update(sessionID, func(s *entity.ChatSession) error {
		s.Messages = nil
		s.LastError = ""
		s.Busy = false
		s.UpdatedAt = time.Now()
		return nil
	})
}

// CloseSession discards the session and cancels any reminder hand-off that
// has not fired yet.
func (u *chatUsecase) CloseSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.NewInvalidInputError("session ID cannot be empty")
	}

	u.cancelReminderHandOffs(sessionID)
	return u.sessions.Delete(sessionID)
}

// StartFamilySimulation enables family roleplay on the session and appends
// the templated greeting to the transcript. The assistant is not called; the
// greeting is fixed.
func (u *chatUsecase) StartFamilySimulation(ctx context.Context, sessionID, memberName, relationship string) (*entity.ChatMessage, error) {
	if sessionID == "" {
		return nil, domain.NewInvalidInputError("session ID cannot be empty")
	}
	if memberName == "" || relationship == "" {
		return nil, domain.NewInvalidInputError("family member name and relationship cannot be empty")
	}

	greeting := &entity.ChatMessage{
		ID:        uuid.New().String(),
		Content:   fmt.Sprintf(familyGreetingFormat, memberName, relationship),
		Timestamp: time.Now(),
		FromUser:  false,
		Type:      entity.MessageTypeText,
	}

	err := u.sessions.Update(sessionID, func(s *entity.ChatSession) error {
		if s.Busy {
			return domain.NewConflictError("session is processing a previous message")
		}
		s.Options.FamilySimulation = true
		s.Options.FamilyMemberName = memberName
		s.Options.Relationship = relationship
		s.Messages = append(s.Messages, greeting)
		s.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("family simulation started",
		"session_id", sessionID,
		"member", memberName,
		"relationship", relationship,
	)
	return cloneMessage(greeting), nil
}

// ============ Turn plumbing ============

// turnState carries one in-flight turn between the setup, responder and
// completion phases.
type turnState struct {
	sessionID   string
	userID      string
	options     entity.ChatOptions
	userMessage *entity.ChatMessage
	assistantID string
	analysis    *entity.IntentAnalysis
}

// beginTurn applies the busy guard and appends the user message plus the
// loading assistant placeholder in one atomic store update.
func (u *chatUsecase) beginTurn(sessionID, text string, msgType entity.MessageType) (*turnState, error) {
	if sessionID == "" {
		return nil, domain.NewInvalidInputError("session ID cannot be empty")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewInvalidInputError("message cannot be empty")
	}

	turn := &turnState{
		sessionID: sessionID,
		userMessage: &entity.ChatMessage{
			ID:        uuid.New().String(),
			Content:   text,
			Timestamp: time.Now(),
			FromUser:  true,
			Type:      msgType,
		},
		assistantID: uuid.New().String(),
	}

	err := u.sessions.Update(sessionID, func(s *entity.ChatSession) error {
		if s.Busy {
			return domain.NewConflictError("session is processing a previous message")
		}
		s.Busy = true
		s.LastError = ""
		s.Messages = append(s.Messages, turn.userMessage, &entity.ChatMessage{
			ID:        turn.assistantID,
			Timestamp: time.Now(),
			FromUser:  false,
			Type:      entity.MessageTypeText,
			Loading:   true,
		})
		s.UpdatedAt = time.Now()

		turn.userID = s.UserID
		turn.options = s.Options
		return nil
	})
	if err != nil {
		return nil, err
	}
	return turn, nil
}

// finishTurn resolves the placeholder with the reply, or with the fixed
// apology when the responder failed, and releases the busy guard. The turn
// result is returned to the caller either way; a responder failure is
// recorded in the session's error slot, not surfaced as a Go error.
func (u *chatUsecase) finishTurn(turn *turnState, reply string, replyErr error) (*domain.ChatTurn, error) {
	content := reply
	if replyErr != nil {
		u.logger.Warn("assistant request failed",
			"session_id", turn.sessionID,
			"error", replyErr,
		)
		content = apologyMessage
	}

	var assistantMessage *entity.ChatMessage
	err := u.sessions.Update(turn.sessionID, func(s *entity.ChatSession) error {
		if msg := findMessage(s, turn.assistantID); msg != nil {
			msg.Content = content
			msg.Loading = false
			assistantMessage = cloneMessage(msg)
		}
		if replyErr != nil {
			s.LastError = sendErrorMessage
		}
		s.Busy = false
		s.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.ChatTurn{
		SessionID:        turn.sessionID,
		UserMessage:      cloneMessage(turn.userMessage),
		AssistantMessage: assistantMessage,
		Analysis:         turn.analysis,
	}, nil
}

// emitFinal completes a streaming turn: it resolves the placeholder through
// finishTurn and emits the terminal chunk.
func (u *chatUsecase) emitFinal(ch chan<- entity.StreamChunk, turn *turnState, reply string, replyErr error) {
	result, err := u.finishTurn(turn, reply, replyErr)
	if err != nil {
		ch <- entity.StreamChunk{Error: err.Error(), IsEnd: true, MessageID: turn.assistantID}
		return
	}

	chunk := entity.StreamChunk{IsEnd: true, MessageID: turn.assistantID}
	if replyErr != nil {
		chunk.Text = apologyMessage
		chunk.Error = sendErrorMessage
	} else if result.AssistantMessage != nil {
		chunk.Text = result.AssistantMessage.Content
	}
	ch <- chunk
}

// appendToPlaceholder accumulates a streamed chunk into the transcript's
// loading assistant message.
func (u *chatUsecase) appendToPlaceholder(turn *turnState, chunk string) {
	err := u.sessions.Update(turn.sessionID, func(s *entity.ChatSession) error {
		if msg := findMessage(s, turn.assistantID); msg != nil {
			msg.Content += chunk
		}
		s.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		u.logger.Warn("failed to append stream chunk",
			"session_id", turn.sessionID,
			"error", err,
		)
	}
}

// ============ Reminder hand-off ============

// scheduleReminderHandOff arms the delayed hand-off of an extracted reminder
// draft. The delay keeps the hand-off cancellable while the confirmation text
// is still being delivered; closing the session cancels it.
func (u *chatUsecase) scheduleReminderHandOff(ctx context.Context, turn *turnState, draft *entity.ReminderDraft) {
	if u.onReminder == nil {
		u.logger.Info("reminder draft extracted but no hand-off configured",
			"session_id", turn.sessionID,
			"title", draft.Title,
		)
		return
	}

	// The hand-off outlives the originating request.
	handOffCtx := context.WithoutCancel(ctx)
	key := turn.assistantID
	handOff := &reminderHandOff{sessionID: turn.sessionID}

	handOff.timer = time.AfterFunc(u.reminderDelay, func() {
		u.timersMu.Lock()
		delete(u.timers, key)
		u.timersMu.Unlock()

		u.logger.Info("handing reminder draft to reminder pipeline",
			"session_id", turn.sessionID,
			"user_id", turn.userID,
			"title", draft.Title,
			"type", draft.Type,
		)
		u.onReminder(handOffCtx, turn.userID, draft)
	})

	u.timersMu.Lock()
	u.timers[key] = handOff
	u.timersMu.Unlock()
}

// cancelReminderHandOffs stops every pending hand-off owned by a session.
func (u *chatUsecase) cancelReminderHandOffs(sessionID string) {
	u.timersMu.Lock()
	defer u.timersMu.Unlock()

	for key, handOff := range u.timers {
		if handOff.sessionID == sessionID {
			handOff.timer.Stop()
			delete(u.timers, key)
		}
	}
}

// ============ Helpers ============

func findMessage(s *entity.ChatSession, id string) *entity.ChatMessage {
	for _, msg := range s.Messages {
		if msg.ID == id {
			return msg
		}
	}
	return nil
}

func cloneMessage(msg *entity.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	clone := *msg
	return &clone
}
