package dto

import (
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// ============ OpenAI-compatible API format (HTTP layer) ============

// ChatCompletionMessage is the OpenAI message format.
type ChatCompletionMessage struct {
	Role    string `json:"role"` // user, assistant, system
	Content string `json:"content"`
}

// ChatCompletionRequest is the OpenAI chat request (HTTP).
type ChatCompletionRequest struct {
	Messages []ChatCompletionMessage `json:"messages"`
	Stream   bool                    `json:"stream"`
	Model    string                  `json:"model,omitempty"`

	// Extension: conversation session. Empty starts a new session.
	SessionID string `json:"session_id,omitempty"`
}

// ChatCompletionResponse is the OpenAI non-streaming response (HTTP).
type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"` // "chat.completion"
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   ChatCompletionUsage    `json:"usage"`

	// Extension fields.
	SessionID         string                 `json:"session_id,omitempty"`
	Intent            *IntentResponse        `json:"intent,omitempty"`
	ReminderDraft     *ReminderDraftResponse `json:"reminder_draft,omitempty"`
	EmergencyContacts []*ContactResponse     `json:"emergency_contacts,omitempty"`
}

// ChatCompletionChoice is one response option.
type ChatCompletionChoice struct {
	Index        int                   `json:"index"`
	Message      ChatCompletionMessage `json:"message"`
	FinishReason string                `json:"finish_reason"`
}

// ChatCompletionUsage is the token usage block.
type ChatCompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatCompletionChunk is one streaming response block (HTTP).
type ChatCompletionChunk struct {
	ID      string                       `json:"id"`
	Object  string                       `json:"object"` // "chat.completion.chunk"
	Created int64                        `json:"created"`
	Model   string                       `json:"model"`
	Choices []ChatCompletionStreamChoice `json:"choices"`

	// Extension fields (first chunk only).
	SessionID string `json:"session_id,omitempty"`
}

// ChatCompletionStreamChoice is one streaming option.
type ChatCompletionStreamChoice struct {
	Index        int                 `json:"index"`
	Delta        ChatCompletionDelta `json:"delta"`
	FinishReason *string             `json:"finish_reason"`
}

// ChatCompletionDelta is the incremental content.
type ChatCompletionDelta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// ============ Intent and reminder-draft extensions ============

// IntentResponse reports how a chat turn was classified.
type IntentResponse struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// ReminderDraftResponse is the reminder draft extracted from a chat turn.
type ReminderDraftResponse struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type"`
	ScheduledDate string `json:"scheduled_date"` // "YYYY-MM-DD"
	Time          string `json:"time"`           // "HH:MM"
	Recurring     bool   `json:"recurring"`
	RecurringType string `json:"recurring_type,omitempty"`
}

// ToIntentResponse converts an entity.IntentAnalysis to its DTO.
func ToIntentResponse(analysis *entity.IntentAnalysis) *IntentResponse {
	if analysis == nil {
		return nil
	}
	return &IntentResponse{
		Intent:     string(analysis.Intent),
		Confidence: analysis.Confidence,
	}
}

// ToReminderDraftResponse converts an entity.ReminderDraft to its DTO.
func ToReminderDraftResponse(draft *entity.ReminderDraft) *ReminderDraftResponse {
	if draft == nil {
		return nil
	}
	return &ReminderDraftResponse{
		Title:         draft.Title,
		Description:   draft.Description,
		Type:          string(draft.Type),
		ScheduledDate: draft.ScheduledDate.Format("2006-01-02"),
		Time:          draft.Time,
		Recurring:     draft.Recurring,
		RecurringType: string(draft.RecurringType),
	}
}

// ============ Session management (HTTP) ============

// PatientContextRequest is the optional patient context of a session.
type PatientContextRequest struct {
	Name             string   `json:"name,omitempty"`
	Age              int      `json:"age,omitempty"`
	HealthConditions []string `json:"health_conditions,omitempty"`
	Medications      []string `json:"medications,omitempty"`
	FamilyContext    string   `json:"family_context,omitempty"`
}

// CreateSessionRequest opens a conversation session.
type CreateSessionRequest struct {
	FamilySimulation bool                   `json:"family_simulation,omitempty"`
	FamilyMemberName string                 `json:"family_member_name,omitempty"`
	Relationship     string                 `json:"relationship,omitempty"`
	Patient          *PatientContextRequest `json:"patient,omitempty"`
}

// FamilySimulationRequest enables family roleplay on a session.
type FamilySimulationRequest struct {
	MemberName   string `json:"member_name" binding:"required"`
	Relationship string `json:"relationship" binding:"required"`
}

// VoiceMessageRequest carries a base64-encoded voice recording.
type VoiceMessageRequest struct {
	Audio string `json:"audio" binding:"required"`
}

// MessageResponse is one transcript entry (HTTP).
type MessageResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	FromUser  bool   `json:"from_user"`
	Type      string `json:"type"`
	Loading   bool   `json:"loading,omitempty"`
}

// SessionResponse is a conversation session with its transcript (HTTP).
type SessionResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Messages  []*MessageResponse `json:"messages"`
	Busy      bool               `json:"busy"`
	LastError string             `json:"last_error,omitempty"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

// ToChatOptions converts a CreateSessionRequest to entity.ChatOptions.
func (r *CreateSessionRequest) ToChatOptions() entity.ChatOptions {
	opts := entity.ChatOptions{
		FamilySimulation: r.FamilySimulation,
		FamilyMemberName: r.FamilyMemberName,
		Relationship:     r.Relationship,
	}
	if r.Patient != nil {
		opts.Patient = &entity.PatientContext{
			Name:             r.Patient.Name,
			Age:              r.Patient.Age,
			HealthConditions: r.Patient.HealthConditions,
			Medications:      r.Patient.Medications,
			FamilyContext:    r.Patient.FamilyContext,
		}
	}
	return opts
}

// ToMessageResponse converts an entity.ChatMessage to its DTO.
func ToMessageResponse(msg *entity.ChatMessage) *MessageResponse {
	if msg == nil {
		return nil
	}
	return &MessageResponse{
		ID:        msg.ID,
		Content:   msg.Content,
		Timestamp: msg.Timestamp.Format(time.RFC3339),
		FromUser:  msg.FromUser,
		Type:      string(msg.Type),
		Loading:   msg.Loading,
	}
}

// ToSessionResponse converts an entity.ChatSession to its DTO.
func ToSessionResponse(session *entity.ChatSession) *SessionResponse {
	messages := make([]*MessageResponse, len(session.Messages))
	for i, msg := range session.Messages {
		messages[i] = ToMessageResponse(msg)
	}
	return &SessionResponse{
		ID:        session.ID,
		UserID:    session.UserID,
		Messages:  messages,
		Busy:      session.Busy,
		LastError: session.LastError,
		CreatedAt: session.CreatedAt.Format(time.RFC3339),
		UpdatedAt: session.UpdatedAt.Format(time.RFC3339),
	}
}
