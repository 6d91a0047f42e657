package domain

import (
	"context"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// ============ Usecase-internal DTOs ============

// ChatTurn is the outcome of one non-streaming conversation turn.
type ChatTurn struct {
	SessionID        string
	UserMessage      *entity.ChatMessage
	AssistantMessage *entity.ChatMessage
	Analysis         *entity.IntentAnalysis
}

// ============ Collaborator interfaces ============

// AssistantClient is the conversational responder: a hosted chat-completion
// API that answers in the Conecta60+ caregiver persona.
type AssistantClient interface {
	// Generate returns one complete reply.
	Generate(ctx context.Context, userMessage string, patient *entity.PatientContext) (string, error)

	// GenerateStream delivers the reply incrementally through onChunk, in
	// delivery order, and returns the final complete text. The returned text
	// is authoritative; callers must prefer it over their own concatenation.
	GenerateStream(ctx context.Context, userMessage string, patient *entity.PatientContext, onChunk func(string)) (string, error)

	// SimulateFamily answers one turn roleplaying the named family member.
	SimulateFamily(ctx context.Context, memberName, relationship, userMessage string) (string, error)
}

// ChatSessionStore keeps live conversation sessions. Transcripts are not
// persisted; implementations hold them in process memory.
type ChatSessionStore interface {
	// Create registers a new session.
	Create(session *entity.ChatSession) error

	// Get returns a snapshot copy of a session.
	Get(sessionID string) (*entity.ChatSession, error)

	// Update applies fn to the live session under the store's lock.
	Update(sessionID string, fn func(*entity.ChatSession) error) error

	// Delete removes a session.
	Delete(sessionID string) error
}

// ReminderIntentFunc is invoked when a chat turn was classified as a reminder
// request. The callee owns validation and persistence of the draft; the chat
// core only hands it over.
type ReminderIntentFunc func(ctx context.Context, userID string, draft *entity.ReminderDraft)

// ============ Usecase interface ============

// ChatUsecase orchestrates conversation turns: classify intent, short-circuit
// reminder requests, otherwise dispatch to the assistant, and keep the
// session transcript consistent throughout.
type ChatUsecase interface {
	// CreateSession opens a new conversation for a user.
	CreateSession(ctx context.Context, userID string, opts entity.ChatOptions) (*entity.ChatSession, error)

	// GetSession returns a snapshot of the session and its transcript.
	GetSession(ctx context.Context, sessionID string) (*entity.ChatSession, error)

	// SendMessage runs one turn and waits for the complete reply.
	SendMessage(ctx context.Context, sessionID, text string) (*ChatTurn, error)

	// SendMessageStream runs one turn and returns the reply as an ordered
	// chunk stream.
	SendMessageStream(ctx context.Context, sessionID, text string) (<-chan entity.StreamChunk, error)

	// SendVoiceMessage runs one turn for a voice recording. Transcription is
	// stubbed pending a speech-to-text collaborator.
	SendVoiceMessage(ctx context.Context, sessionID string, audio []byte) (*ChatTurn, error)

	// ClearChat empties the transcript and error slot, keeping options.
	ClearChat(ctx context.Context, sessionID string) error

	// CloseSession discards the session and cancels any pending reminder
	// hand-off.
	CloseSession(ctx context.Context, sessionID string) error

	// StartFamilySimulation enables family roleplay and appends the templated
	// greeting. No assistant call is made.
	StartFamilySimulation(ctx context.Context, sessionID, memberName, relationship string) (*entity.ChatMessage, error)
}
