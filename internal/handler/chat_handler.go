package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/protocol/sse"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/handler/dto"
)

// ChatHandler serves the OpenAI-compatible chat endpoint and the session
// management endpoints.
type ChatHandler struct {
	usecase  domain.ChatUsecase
	contacts domain.ContactUsecase
	logger   *slog.Logger
}

// NewChatHandler creates the chat handler. The contact usecase is used to
// attach emergency contacts to emergency-classified turns.
func NewChatHandler(usecase domain.ChatUsecase, contacts domain.ContactUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		usecase:  usecase,
		contacts: contacts,
		logger:   logger,
	}
}

// CreateChatCompletion handles a chat turn in the OpenAI request format.
//
//	@Summary		Chat completion
//	@Description	OpenAI-compatible chat endpoint with streaming and non-streaming responses
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.ChatCompletionRequest	true	"Chat request"
//	@Success		200		{object}	dto.ChatCompletionResponse	"Chat response"
//	@Failure		400		{object}	Response					"Invalid request parameters"
//	@Failure		401		{object}	Response					"Unauthorized"
//	@Router			/chat/completions [post]
func (h *ChatHandler) CreateChatCompletion(ctx context.Context, c *app.RequestContext) {
	var req dto.ChatCompletionRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	if len(req.Messages) == 0 {
		h.logger.Error("messages is required")
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	// The transcript lives server side; only the last user message matters.
	lastMessage := req.Messages[len(req.Messages)-1]
	if lastMessage.Role != "user" {
		h.logger.Error("last message must be from user")
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		h.logger.Error("user_id not found in context")
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	// Empty session_id opens a fresh session for this turn.
	sessionID := req.SessionID
	if sessionID == "" {
		session, err := h.usecase.CreateSession(ctx, userID, entity.ChatOptions{})
		if err != nil {
			h.logger.Error("failed to create session", "error", err)
			ErrorResponse(c, err)
			return
		}
		sessionID = session.ID
	}

	h.logger.Info("chat request received",
		"user_id", userID,
		"session_id", sessionID,
		"stream", req.Stream)

	if req.Stream {
		h.handleStreaming(ctx, c, sessionID, lastMessage.Content, req.Model)
	} else {
		h.handleNonStreaming(ctx, c, userID, sessionID, lastMessage.Content, req.Model)
	}
}

// handleNonStreaming runs a complete turn and answers in one response body.
func (h *ChatHandler) handleNonStreaming(ctx context.Context, c *app.RequestContext, userID, sessionID, text, model string) {
	turn, err := h.usecase.SendMessage(ctx, sessionID, text)
	if err != nil {
		h.logger.Error("chat failed", "error", err)
		ErrorResponse(c, err)
		return
	}

	openaiResp := dto.ChatCompletionResponse{
		ID:      fmt.Sprintf("chatcmpl-%d", time.Now().Unix()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   h.getModel(model),
		Choices: []dto.ChatCompletionChoice{
			{
				Index: 0,
				Message: dto.ChatCompletionMessage{
					Role:    "assistant",
					Content: turn.AssistantMessage.Content,
				},
				FinishReason: "stop",
			},
		},
		SessionID: turn.SessionID,
	}

	if turn.Analysis != nil {
		openaiResp.Intent = dto.ToIntentResponse(turn.Analysis)
		openaiResp.ReminderDraft = dto.ToReminderDraftResponse(turn.Analysis.Reminder)

		// Emergency turns carry the caller's emergency contacts so the
		// client can surface them without a second round trip.
		if turn.Analysis.Intent == entity.IntentEmergency {
			contacts, err := h.contacts.ListEmergencyContacts(ctx, userID)
			if err != nil {
				h.logger.Warn("failed to list emergency contacts", "user_id", userID, "error", err)
			} else {
				openaiResp.EmergencyContacts = dto.ToContactListResponse(contacts).Contacts
			}
		}
	}

	c.JSON(consts.StatusOK, openaiResp)
}

// handleStreaming runs a turn and delivers the reply over SSE.
func (h *ChatHandler) handleStreaming(ctx context.Context, c *app.RequestContext, sessionID, text, model string) {
	streamCh, err := h.usecase.SendMessageStream(ctx, sessionID, text)
	if err != nil {
		h.logger.Error("streaming chat failed", "error", err)
		ErrorResponse(c, err)
		return
	}

	// The status code must be set before the SSE writer takes over.
	c.SetStatusCode(consts.StatusOK)

	writer := sse.NewWriter(c)
	defer writer.Close()

	chatID := fmt.Sprintf("chatcmpl-%d", time.Now().Unix())
	created := time.Now().Unix()
	modelName := h.getModel(model)

	firstChunk := true

	for chunk := range streamCh {
		if chunk.Error != "" {
			h.logger.Error("stream error", "session_id", sessionID, "error", chunk.Error)
		}

		if chunk.Text != "" || firstChunk {
			openaiChunk := dto.ChatCompletionChunk{
				ID:      chatID,
				Object:  "chat.completion.chunk",
				Created: created,
				Model:   modelName,
				Choices: []dto.ChatCompletionStreamChoice{
					{
						Index: 0,
						Delta: dto.ChatCompletionDelta{
							Content: chunk.Text,
						},
						FinishReason: nil,
					},
				},
			}

			// The first chunk carries the role and the session extension.
			if firstChunk {
				openaiChunk.SessionID = sessionID
				openaiChunk.Choices[0].Delta.Role = "assistant"
				firstChunk = false
			}

			if err := h.writeSSEJSON(writer, openaiChunk); err != nil {
				h.logger.Error("failed to write sse event", "error", err)
				break
			}
		}

		if chunk.IsEnd {
			finishReason := "stop"
			finalChunk := dto.ChatCompletionChunk{
				ID:      chatID,
				Object:  "chat.completion.chunk",
				Created: created,
				Model:   modelName,
				Choices: []dto.ChatCompletionStreamChoice{
					{
						Index:        0,
						Delta:        dto.ChatCompletionDelta{},
						FinishReason: &finishReason,
					},
				},
			}
			if err := h.writeSSEJSON(writer, finalChunk); err != nil {
				h.logger.Error("failed to write final event", "error", err)
				break
			}

			// OpenAI convention: terminate the stream with [DONE].
			if err := writer.WriteEvent("", "", []byte("[DONE]")); err != nil {
				h.logger.Error("failed to write done event", "error", err)
			}
			break
		}
	}
}

// writeSSEJSON sends a JSON payload through the Hertz SSE writer.
// Writer.WriteEvent flushes internally, no manual flush needed.
func (h *ChatHandler) writeSSEJSON(writer *sse.Writer, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	return writer.WriteEvent("", "", jsonData)
}

func (h *ChatHandler) getModel(model string) string {
	if model == "" {
		return "conecta-assistant"
	}
	return model
}

// ============ Session management ============

// CreateSession opens a conversation session.
//
//	@Summary		Create chat session
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateSessionRequest	true	"Session options"
//	@Success		201		{object}	Response{data=dto.SessionResponse}
//	@Failure		401		{object}	Response	"Unauthorized"
//	@Router			/chat/sessions [post]
func (h *ChatHandler) CreateSession(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	var req dto.CreateSessionRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	session, err := h.usecase.CreateSession(ctx, userID, req.ToChatOptions())
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToSessionResponse(session))
}

// GetSession returns a session and its transcript.
//
//	@Summary		Get chat session
//	@Tags			Chat
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	Response{data=dto.SessionResponse}
//	@Failure		404	{object}	Response	"Session not found"
//	@Router			/chat/sessions/{id} [get]
func (h *ChatHandler) GetSession(ctx context.Context, c *app.RequestContext) {
	sessionID := c.Param("id")

	session, err := h.usecase.GetSession(ctx, sessionID)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	if !h.sessionOwned(c, session) {
		ErrorResponse(c, domain.ErrForbidden)
		return
	}

	SuccessResponse(c, dto.ToSessionResponse(session))
}

// ClearSession empties a session's transcript, keeping its options.
//
//	@Summary		Clear chat transcript
//	@Tags			Chat
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	Response
//	@Failure		404	{object}	Response	"Session not found"
//	@Router			/chat/sessions/{id}/clear [post]
func (h *ChatHandler) ClearSession(ctx context.Context, c *app.RequestContext) {
	sessionID := c.Param("id")

	if !h.ownsSession(ctx, c, sessionID) {
		return
	}

	if err := h.usecase.ClearChat(ctx, sessionID); err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, nil)
}

// DeleteSession discards a session.
//
//	@Summary		Delete chat session
//	@Tags			Chat
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Session ID"
//	@Success		204
//	@Failure		404	{object}	Response	"Session not found"
//	@Router			/chat/sessions/{id} [delete]
func (h *ChatHandler) DeleteSession(ctx context.Context, c *app.RequestContext) {
	sessionID := c.Param("id")

	if !h.ownsSession(ctx, c, sessionID) {
		return
	}

	if err := h.usecase.CloseSession(ctx, sessionID); err != nil {
		ErrorResponse(c, err)
		return
	}

	NoContentResponse(c)
}

// SendVoiceMessage runs a turn for a recorded voice message.
//
//	@Summary		Send voice message
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Session ID"
//	@Param			request	body		dto.VoiceMessageRequest	true	"Base64-encoded audio"
//	@Success		200		{object}	Response{data=dto.SessionResponse}
//	@Failure		400		{object}	Response	"Invalid request parameters"
//	@Router			/chat/sessions/{id}/voice [post]
func (h *ChatHandler) SendVoiceMessage(ctx context.Context, c *app.RequestContext) {
	sessionID := c.Param("id")

	if !h.ownsSession(ctx, c, sessionID) {
		return
	}

	var req dto.VoiceMessageRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		h.logger.Error("failed to decode audio", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	turn, err := h.usecase.SendVoiceMessage(ctx, sessionID, audio)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	session, err := h.usecase.GetSession(ctx, turn.SessionID)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToSessionResponse(session))
}

// StartFamilySimulation enables family roleplay on a session.
//
//	@Summary		Start family simulation
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Session ID"
//	@Param			request	body		dto.FamilySimulationRequest	true	"Family member"
//	@Success		200		{object}	Response{data=dto.MessageResponse}
//	@Failure		409		{object}	Response	"Session busy"
//	@Router			/chat/sessions/{id}/family [post]
func (h *ChatHandler) StartFamilySimulation(ctx context.Context, c *app.RequestContext) {
	sessionID := c.Param("id")

	if !h.ownsSession(ctx, c, sessionID) {
		return
	}

	var req dto.FamilySimulationRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	greeting, err := h.usecase.StartFamilySimulation(ctx, sessionID, req.MemberName, req.Relationship)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToMessageResponse(greeting))
}

// sessionOwned reports whether the authenticated user owns the session.
func (h *ChatHandler) sessionOwned(c *app.RequestContext, session *entity.ChatSession) bool {
	userID, ok := currentUserID(c)
	return ok && session.UserID == userID
}

// ownsSession loads the session and verifies ownership, writing the error
// response itself when the check fails.
func (h *ChatHandler) ownsSession(ctx context.Context, c *app.RequestContext, sessionID string) bool {
	session, err := h.usecase.GetSession(ctx, sessionID)
	if err != nil {
		ErrorResponse(c, err)
		return false
	}
	if !h.sessionOwned(c, session) {
		ErrorResponse(c, domain.ErrForbidden)
		return false
	}
	return true
}
