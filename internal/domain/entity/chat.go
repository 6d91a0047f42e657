package entity

import "time"

// MessageType indicates how a chat message was produced.
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeVoice MessageType = "voice"
)

// ChatMessage is one entry of a conversation transcript (domain layer, no
// serialization concerns). A message is immutable once Loading is false; the
// single exception is the streaming assistant message, which accumulates
// content in place until the stream completes.
type ChatMessage struct {
	ID        string
	Content   string
	Timestamp time.Time
	FromUser  bool
	Type      MessageType
	Loading   bool
}

// PatientContext is optional caller-supplied context forwarded to the
// assistant so replies can reference the patient's situation.
type PatientContext struct {
	Name             string
	Age              int
	HealthConditions []string
	Medications      []string
	FamilyContext    string
}

// ChatOptions configures how a session's turns are answered.
type ChatOptions struct {
	FamilySimulation bool
	FamilyMemberName string
	Relationship     string
	Patient          *PatientContext
}

// ChatSession is an in-memory conversation: the ordered transcript, the
// per-turn busy guard and the last-error slot. Sessions are never persisted;
// they live for as long as the owning client keeps them open.
type ChatSession struct {
	ID        string
	UserID    string
	Messages  []*ChatMessage
	Busy      bool
	LastError string
	Options   ChatOptions
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LastMessage returns the newest transcript entry, or nil for an empty
// session.
func (s *ChatSession) LastMessage() *ChatMessage {
	if len(s.Messages) == 0 {
		return nil
	}
	return s.Messages[len(s.Messages)-1]
}

// StreamChunk is one increment of a streaming assistant reply.
type StreamChunk struct {
	Text      string
	IsEnd     bool
	Error     string
	MessageID string
}
