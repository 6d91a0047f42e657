package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/infrastructure/memory"
	"github.com/nogueira-gui/conecta-apiserver/internal/intent"
)

// Fake AssistantClient for testing (simple hand-rolled implementation).
type fakeAssistant struct {
	mu            sync.Mutex
	generateCalls int
	familyCalls   int

	reply      string
	err        error
	generateFn func() (string, error)

	chunks    []string
	finalText string
	streamErr error
	midStream func()
}

func (f *fakeAssistant) Generate(ctx context.Context, userMessage string, patient *entity.PatientContext) (string, error) {
	f.mu.Lock()
	f.generateCalls++
	fn := f.generateFn
	reply, err := f.reply, f.err
	f.mu.Unlock()

	if fn != nil {
		return fn()
	}
	return reply, err
}

func (f *fakeAssistant) GenerateStream(ctx context.Context, userMessage string, patient *entity.PatientContext, onChunk func(string)) (string, error) {
	f.mu.Lock()
	f.generateCalls++
	f.mu.Unlock()

	for _, c := range f.chunks {
		onChunk(c)
	}
	if f.midStream != nil {
		f.midStream()
	}
	if f.streamErr != nil {
		return "", f.streamErr
	}
	return f.finalText, nil
}

func (f *fakeAssistant) SimulateFamily(ctx context.Context, memberName, relationship, userMessage string) (string, error) {
	f.mu.Lock()
	f.familyCalls++
	f.mu.Unlock()
	return "Que bom falar com você!", nil
}

func (f *fakeAssistant) calls() (generate, family int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generateCalls, f.familyCalls
}

type reminderHandOffCall struct {
	userID string
	draft  *entity.ReminderDraft
}

type chatFixture struct {
	uc        domain.ChatUsecase
	store     *memory.SessionStore
	assistant *fakeAssistant
	sessionID string
	handOffs  chan reminderHandOffCall
}

func newChatFixture(t *testing.T, assistant *fakeAssistant, opts ...ChatOption) *chatFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := memory.NewSessionStore()
	t.Cleanup(store.Close)
	classifier := intent.NewClassifier()
	handOffs := make(chan reminderHandOffCall, 4)

	onReminder := func(ctx context.Context, userID string, draft *entity.ReminderDraft) {
		handOffs <- reminderHandOffCall{userID: userID, draft: draft}
	}

	uc := NewChatUsecase(assistant, store, classifier, onReminder, logger, opts...)

	session, err := uc.CreateSession(context.Background(), "user-1", entity.ChatOptions{})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	return &chatFixture{
		uc:        uc,
		store:     store,
		assistant: assistant,
		sessionID: session.ID,
		handOffs:  handOffs,
	}
}

func (fx *chatFixture) session(t *testing.T) *entity.ChatSession {
	t.Helper()
	s, err := fx.uc.GetSession(context.Background(), fx.sessionID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	return s
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached: %s", msg)
}

func TestSendMessageGeneralChat(t *testing.T) {
	fa := &fakeAssistant{reply: "Bom dia! Como posso ajudar?"}
	fx := newChatFixture(t, fa)

	turn, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "bom dia")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if turn.UserMessage.Content != "bom dia" || !turn.UserMessage.FromUser {
		t.Errorf("unexpected user message: %+v", turn.UserMessage)
	}
	if turn.AssistantMessage.Content != fa.reply {
		t.Errorf("assistant content = %q, want %q", turn.AssistantMessage.Content, fa.reply)
	}
	if turn.AssistantMessage.Loading {
		t.Error("assistant message still marked loading")
	}
	if turn.Analysis == nil || turn.Analysis.Intent != entity.IntentGeneralChat {
		t.Errorf("analysis = %+v, want general_chat", turn.Analysis)
	}

	s := fx.session(t)
	if len(s.Messages) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(s.Messages))
	}
	if s.Messages[0].ID != turn.UserMessage.ID || s.Messages[1].ID != turn.AssistantMessage.ID {
		t.Error("transcript order does not match the turn")
	}
	if s.Busy {
		t.Error("session still busy after the turn")
	}
	if s.LastError != "" {
		t.Errorf("error slot = %q, want empty", s.LastError)
	}
}

func TestSendMessageEmergencyGuidance(t *testing.T) {
	fa := &fakeAssistant{reply: "should not be used"}
	fx := newChatFixture(t, fa)

	turn, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "estou com dor no peito")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if turn.Analysis.Intent != entity.IntentEmergency {
		t.Errorf("intent = %s, want emergency", turn.Analysis.Intent)
	}
	if turn.AssistantMessage.Content != emergencyGuidanceMessage {
		t.Errorf("assistant content = %q, want the fixed guidance", turn.AssistantMessage.Content)
	}
	if !strings.Contains(turn.AssistantMessage.Content, "SAMU") || !strings.Contains(turn.AssistantMessage.Content, "192") {
		t.Errorf("guidance %q does not name SAMU 192", turn.AssistantMessage.Content)
	}
	if gen, family := fa.calls(); gen != 0 || family != 0 {
		t.Errorf("assistant calls = %d/%d, want 0/0; emergency turns never reach the assistant", gen, family)
	}

	s := fx.session(t)
	if s.Busy {
		t.Error("session still busy after the emergency turn")
	}
}

func TestSendMessageStreamEmergencyGuidance(t *testing.T) {
	fa := &fakeAssistant{chunks: []string{"should "}, finalText: "should not be used"}
	fx := newChatFixture(t, fa)

	ch, err := fx.uc.SendMessageStream(context.Background(), fx.sessionID, "socorro, falta de ar")
	if err != nil {
		t.Fatalf("SendMessageStream failed: %v", err)
	}

	var final entity.StreamChunk
	for chunk := range ch {
		if chunk.IsEnd {
			final = chunk
		}
	}

	if final.Text != emergencyGuidanceMessage || final.Error != "" {
		t.Errorf("final chunk = %+v, want the fixed guidance", final)
	}
	if gen, _ := fa.calls(); gen != 0 {
		t.Errorf("assistant calls = %d, want 0", gen)
	}
}

func TestSendMessageAssistantFailure(t *testing.T) {
	fa := &fakeAssistant{err: errors.New("upstream timeout")}
	fx := newChatFixture(t, fa)

	turn, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "bom dia")
	if err != nil {
		t.Fatalf("a responder failure must not fail the turn, got: %v", err)
	}

	if turn.AssistantMessage.Content != apologyMessage {
		t.Errorf("assistant content = %q, want the fixed apology", turn.AssistantMessage.Content)
	}
	if turn.AssistantMessage.Loading {
		t.Error("apology message still marked loading")
	}

	s := fx.session(t)
	if s.LastError != sendErrorMessage {
		t.Errorf("error slot = %q, want %q", s.LastError, sendErrorMessage)
	}
	if s.Busy {
		t.Error("session still busy after a failed turn")
	}
}

func TestSendMessageReminderShortCircuit(t *testing.T) {
	fa := &fakeAssistant{reply: "should not be used"}
	fx := newChatFixture(t, fa, WithReminderHandOffDelay(10*time.Millisecond))

	turn, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "lembrar de tomar losartana às 8h amanhã")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if turn.Analysis.Intent != entity.IntentCreateReminder {
		t.Fatalf("intent = %s, want create_reminder", turn.Analysis.Intent)
	}
	if !strings.HasPrefix(turn.AssistantMessage.Content, "Entendi! Vou criar um lembrete") {
		t.Errorf("confirmation text = %q", turn.AssistantMessage.Content)
	}
	if gen, _ := fa.calls(); gen != 0 {
		t.Errorf("assistant calls = %d, want 0; reminder turns short-circuit", gen)
	}

	select {
	case call := <-fx.handOffs:
		if call.userID != "user-1" {
			t.Errorf("hand-off user = %q, want user-1", call.userID)
		}
		if call.draft.Type != entity.ReminderTypeMedication {
			t.Errorf("hand-off draft type = %s, want medication", call.draft.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("reminder draft was never handed off")
	}
}

func TestCloseSessionCancelsReminderHandOff(t *testing.T) {
	fa := &fakeAssistant{}
	fx := newChatFixture(t, fa, WithReminderHandOffDelay(100*time.Millisecond))

	if _, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "lembrar de tomar remédio às 8h"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if err := fx.uc.CloseSession(context.Background(), fx.sessionID); err != nil {
		t.Fatalf("CloseSession failed: %v", err)
	}

	select {
	case <-fx.handOffs:
		t.Fatal("hand-off fired after the session was closed")
	case <-time.After(300 * time.Millisecond):
	}

	if _, err := fx.uc.GetSession(context.Background(), fx.sessionID); !domain.IsNotFound(err) {
		t.Errorf("closed session still retrievable, err = %v", err)
	}
}

func TestSessionExpiryCancelsReminderHandOff(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := memory.NewSessionStore(
		memory.WithSessionTTL(50*time.Millisecond),
		memory.WithSweepInterval(10*time.Millisecond),
	)
	defer store.Close()

	fa := &fakeAssistant{}
	handOffs := make(chan reminderHandOffCall, 1)
	onReminder := func(ctx context.Context, userID string, draft *entity.ReminderDraft) {
		handOffs <- reminderHandOffCall{userID: userID, draft: draft}
	}

	uc := NewChatUsecase(fa, store, intent.NewClassifier(), onReminder, logger,
		WithReminderHandOffDelay(500*time.Millisecond))
	store.OnEvict(func(sessionID string) {
		if err := uc.CloseSession(context.Background(), sessionID); err != nil {
			t.Errorf("CloseSession on eviction failed: %v", err)
		}
	})

	session, err := uc.CreateSession(context.Background(), "user-1", entity.ChatOptions{})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := uc.SendMessage(context.Background(), session.ID, "lembrar de tomar remédio às 8h"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	waitFor(t, func() bool {
		_, err := uc.GetSession(context.Background(), session.ID)
		return domain.IsNotFound(err)
	}, "idle session swept")

	select {
	case <-handOffs:
		t.Fatal("hand-off fired after the session expired")
	case <-time.After(700 * time.Millisecond):
	}
}

func TestSendMessageBusyGuard(t *testing.T) {
	release := make(chan struct{})
	fa := &fakeAssistant{generateFn: func() (string, error) {
		<-release
		return "resposta", nil
	}}
	fx := newChatFixture(t, fa)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "bom dia"); err != nil {
			t.Errorf("first SendMessage failed: %v", err)
		}
	}()

	waitFor(t, func() bool { return fx.session(t).Busy }, "session busy")

	_, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "oi de novo")
	if !domain.IsConflict(err) {
		t.Errorf("second concurrent turn err = %v, want conflict", err)
	}

	close(release)
	<-done

	s := fx.session(t)
	if s.Busy {
		t.Error("session still busy after release")
	}
	// The rejected turn must have left no trace in the transcript.
	if len(s.Messages) != 2 {
		t.Errorf("transcript length = %d, want 2", len(s.Messages))
	}
}

func TestSendMessageStream(t *testing.T) {
	fa := &fakeAssistant{
		chunks:    []string{"Olá, ", "tudo"},
		finalText: "Olá, tudo bem com você?",
	}
	fx := newChatFixture(t, fa)

	// Mid-stream the placeholder must be visible and still loading.
	fa.midStream = func() {
		s := fx.session(t)
		last := s.LastMessage()
		if last == nil || !last.Loading {
			t.Error("placeholder not loading mid-stream")
		}
		if last.Content != "Olá, tudo" {
			t.Errorf("mid-stream placeholder content = %q", last.Content)
		}
		if !s.Busy {
			t.Error("session not busy mid-stream")
		}
	}

	ch, err := fx.uc.SendMessageStream(context.Background(), fx.sessionID, "bom dia")
	if err != nil {
		t.Fatalf("SendMessageStream failed: %v", err)
	}

	var texts []string
	var final entity.StreamChunk
	for chunk := range ch {
		if chunk.IsEnd {
			final = chunk
			continue
		}
		texts = append(texts, chunk.Text)
	}

	if len(texts) != 2 || texts[0] != "Olá, " || texts[1] != "tudo" {
		t.Errorf("stream chunks = %q", texts)
	}
	if final.Text != fa.finalText || final.Error != "" {
		t.Errorf("final chunk = %+v", final)
	}

	s := fx.session(t)
	if len(s.Messages) != 2 {
		t.Fatalf("transcript length = %d, want 2; streaming must create one assistant message", len(s.Messages))
	}
	last := s.LastMessage()
	// The responder's final text replaces the chunk concatenation.
	if last.Content != fa.finalText {
		t.Errorf("assistant content = %q, want final text %q", last.Content, fa.finalText)
	}
	if last.Loading {
		t.Error("assistant message still loading after stream end")
	}
	if s.Busy {
		t.Error("session still busy after stream end")
	}
}

func TestSendMessageStreamFailure(t *testing.T) {
	fa := &fakeAssistant{
		chunks:    []string{"Olá"},
		streamErr: errors.New("connection reset"),
	}
	fx := newChatFixture(t, fa)

	ch, err := fx.uc.SendMessageStream(context.Background(), fx.sessionID, "bom dia")
	if err != nil {
		t.Fatalf("SendMessageStream failed: %v", err)
	}

	var final entity.StreamChunk
	for chunk := range ch {
		if chunk.IsEnd {
			final = chunk
		}
	}

	if final.Text != apologyMessage || final.Error != sendErrorMessage {
		t.Errorf("final chunk = %+v, want apology with error", final)
	}

	s := fx.session(t)
	if s.LastMessage().Content != apologyMessage {
		t.Errorf("assistant content = %q, want the fixed apology", s.LastMessage().Content)
	}
	if s.LastError != sendErrorMessage {
		t.Errorf("error slot = %q, want %q", s.LastError, sendErrorMessage)
	}
	if s.Busy {
		t.Error("session still busy after failed stream")
	}
}

func TestSendVoiceMessage(t *testing.T) {
	fa := &fakeAssistant{reply: "Entendi sua mensagem de voz."}
	fx := newChatFixture(t, fa)

	turn, err := fx.uc.SendVoiceMessage(context.Background(), fx.sessionID, []byte{0x01, 0x02})
	if err != nil {
		t.Fatalf("SendVoiceMessage failed: %v", err)
	}

	if turn.UserMessage.Type != entity.MessageTypeVoice {
		t.Errorf("user message type = %s, want voice", turn.UserMessage.Type)
	}
	if turn.UserMessage.Content != voiceTranscriptionStub {
		t.Errorf("transcription = %q, want the placeholder text", turn.UserMessage.Content)
	}

	if _, err := fx.uc.SendVoiceMessage(context.Background(), fx.sessionID, nil); !domain.IsInvalidInput(err) {
		t.Errorf("empty audio err = %v, want invalid input", err)
	}
}

func TestClearChat(t *testing.T) {
	fa := &fakeAssistant{err: errors.New("boom")}
	fx := newChatFixture(t, fa)

	if _, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "bom dia"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if err := fx.uc.ClearChat(context.Background(), fx.sessionID); err != nil {
		t.Fatalf("ClearChat failed: %v", err)
	}

	s := fx.session(t)
	if len(s.Messages) != 0 {
		t.Errorf("transcript length = %d, want 0", len(s.Messages))
	}
	if s.LastError != "" {
		t.Errorf("error slot = %q, want empty", s.LastError)
	}
}

func TestStartFamilySimulation(t *testing.T) {
	fa := &fakeAssistant{}
	fx := newChatFixture(t, fa)

	greeting, err := fx.uc.StartFamilySimulation(context.Background(), fx.sessionID, "João", "filho")
	if err != nil {
		t.Fatalf("StartFamilySimulation failed: %v", err)
	}

	want := "Olá! Sou o João, seu filho. Como você está se sentindo hoje?"
	if greeting.Content != want {
		t.Errorf("greeting = %q, want %q", greeting.Content, want)
	}
	if _, family := fa.calls(); family != 0 {
		t.Error("greeting must not call the assistant")
	}

	// Later general-chat turns route through the family roleplay.
	turn, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "bom dia")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if gen, family := fa.calls(); gen != 0 || family != 1 {
		t.Errorf("assistant calls = %d/%d, want 0/1", gen, family)
	}
	if turn.Analysis == nil || turn.Analysis.Intent != entity.IntentGeneralChat {
		t.Errorf("family turn analysis = %+v, want general_chat", turn.Analysis)
	}
}

func TestFamilySimulationReminderStillShortCircuits(t *testing.T) {
	fa := &fakeAssistant{}
	fx := newChatFixture(t, fa, WithReminderHandOffDelay(10*time.Millisecond))

	if _, err := fx.uc.StartFamilySimulation(context.Background(), fx.sessionID, "João", "filho"); err != nil {
		t.Fatalf("StartFamilySimulation failed: %v", err)
	}

	turn, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "lembrar de tomar losartana às 8h")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if turn.Analysis == nil || turn.Analysis.Intent != entity.IntentCreateReminder {
		t.Fatalf("analysis = %+v, want create_reminder", turn.Analysis)
	}
	if !strings.HasPrefix(turn.AssistantMessage.Content, "Entendi! Vou criar um lembrete") {
		t.Errorf("confirmation text = %q", turn.AssistantMessage.Content)
	}
	if gen, family := fa.calls(); gen != 0 || family != 0 {
		t.Errorf("assistant calls = %d/%d, want 0/0; reminder turns short-circuit even during family roleplay", gen, family)
	}

	select {
	case call := <-fx.handOffs:
		if call.draft.Type != entity.ReminderTypeMedication {
			t.Errorf("hand-off draft type = %s, want medication", call.draft.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("reminder draft was never handed off")
	}
}

func TestFamilySimulationWithoutNameFallsBack(t *testing.T) {
	fa := &fakeAssistant{reply: "resposta geral"}
	fx := newChatFixture(t, fa)

	session, err := fx.uc.CreateSession(context.Background(), "user-2", entity.ChatOptions{FamilySimulation: true})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	turn, err := fx.uc.SendMessage(context.Background(), session.ID, "bom dia")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	// Without a configured member name the turn goes to the general responder.
	if gen, family := fa.calls(); gen != 1 || family != 0 {
		t.Errorf("assistant calls = %d/%d, want 1/0", gen, family)
	}
	if turn.AssistantMessage.Content != "resposta geral" {
		t.Errorf("assistant content = %q", turn.AssistantMessage.Content)
	}
}

func TestSendMessageValidation(t *testing.T) {
	fa := &fakeAssistant{}
	fx := newChatFixture(t, fa)

	if _, err := fx.uc.SendMessage(context.Background(), "", "oi"); !domain.IsInvalidInput(err) {
		t.Errorf("empty session ID err = %v, want invalid input", err)
	}
	if _, err := fx.uc.SendMessage(context.Background(), fx.sessionID, ""); !domain.IsInvalidInput(err) {
		t.Errorf("empty message err = %v, want invalid input", err)
	}
	if _, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "   \n\t  "); !domain.IsInvalidInput(err) {
		t.Errorf("whitespace-only message err = %v, want invalid input", err)
	}
	if _, err := fx.uc.SendMessage(context.Background(), "missing", "oi"); !domain.IsNotFound(err) {
		t.Errorf("unknown session err = %v, want not found", err)
	}

	if gen, family := fa.calls(); gen != 0 || family != 0 {
		t.Errorf("assistant calls = %d/%d, want 0/0 for rejected turns", gen, family)
	}
	if s := fx.session(t); len(s.Messages) != 0 {
		t.Errorf("transcript length = %d, want 0; rejected turns leave no trace", len(s.Messages))
	}
}

func TestSendMessageTrimsInput(t *testing.T) {
	fa := &fakeAssistant{reply: "resposta"}
	fx := newChatFixture(t, fa)

	turn, err := fx.uc.SendMessage(context.Background(), fx.sessionID, "  bom dia  \n")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if turn.UserMessage.Content != "bom dia" {
		t.Errorf("stored user message = %q, want trimmed %q", turn.UserMessage.Content, "bom dia")
	}
	if turn.Analysis == nil || turn.Analysis.Intent != entity.IntentGeneralChat {
		t.Errorf("analysis = %+v, want general_chat", turn.Analysis)
	}
}
