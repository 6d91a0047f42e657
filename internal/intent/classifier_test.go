package intent

import (
	"reflect"
	"testing"
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// fixedClock pins date extraction for deterministic assertions.
func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
}

func newTestClassifier() *Classifier {
	return NewClassifier(WithClock(fixedClock))
}

func TestClassifyEmergency(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name    string
		message string
	}{
		{"explicit keyword", "isso é uma emergência"},
		{"chest pain", "estou com dor no peito"},
		{"shortness of breath", "minha mãe está com falta de ar"},
		{"uppercase input", "SOCORRO, preciso de ajuda"},
		{"emergency beats reminder trigger", "urgente, preciso criar um lembrete de remédio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			if got.Intent != entity.IntentEmergency {
				t.Fatalf("Classify(%q) intent = %s, want emergency", tt.message, got.Intent)
			}
			if got.Confidence != 0.9 {
				t.Errorf("confidence = %v, want 0.9", got.Confidence)
			}
		})
	}
}

func TestClassifyMedicationReminder(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("lembrar de tomar Losartana às 8h amanhã")

	if got.Intent != entity.IntentCreateReminder {
		t.Fatalf("intent = %s, want create_reminder", got.Intent)
	}
	if got.Extracted == nil || got.Reminder == nil {
		t.Fatal("expected extracted info and reminder draft")
	}
	if got.Extracted.Medication != "losartana" {
		t.Errorf("medication = %q, want %q", got.Extracted.Medication, "losartana")
	}
	if got.Extracted.Time != "08:00" {
		t.Errorf("time = %q, want 08:00", got.Extracted.Time)
	}
	wantDate := fixedClock().AddDate(0, 0, 1).Format("2006-01-02")
	if got.Extracted.Date != wantDate {
		t.Errorf("date = %q, want %q", got.Extracted.Date, wantDate)
	}
	if got.Reminder.Type != entity.ReminderTypeMedication {
		t.Errorf("draft type = %s, want medication", got.Reminder.Type)
	}
	if !got.Reminder.Recurring {
		t.Error("medication draft must be recurring")
	}
	if got.Reminder.RecurringType != entity.RecurrenceDaily {
		t.Errorf("recurring type = %s, want daily", got.Reminder.RecurringType)
	}
	if got.Reminder.Time != "08:00" {
		t.Errorf("draft time = %q, want 08:00", got.Reminder.Time)
	}
}

func TestClassifyAppointmentReminder(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("agendar consulta com cardiologista")

	if got.Intent != entity.IntentCreateReminder {
		t.Fatalf("intent = %s, want create_reminder", got.Intent)
	}
	if got.Reminder.Type != entity.ReminderTypeAppointment {
		t.Errorf("draft type = %s, want appointment", got.Reminder.Type)
	}
	if got.Reminder.Recurring {
		t.Error("appointment draft must not be recurring")
	}
	if got.Reminder.RecurringType != "" {
		t.Errorf("recurring type = %q, want empty for one-shot draft", got.Reminder.RecurringType)
	}
}

func TestClassifyExamReminder(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("criar lembrete do exame de sangue na quinta")

	if got.Intent != entity.IntentCreateReminder {
		t.Fatalf("intent = %s, want create_reminder", got.Intent)
	}
	if got.Reminder.Type != entity.ReminderTypeExam {
		t.Errorf("draft type = %s, want exam", got.Reminder.Type)
	}
	if got.Reminder.Recurring {
		t.Error("exam draft must not be recurring")
	}
}

func TestClassifyMedicationBeatsAppointment(t *testing.T) {
	c := newTestClassifier()

	// Both keyword families present; medication is evaluated first.
	got := c.Classify("lembrar de tomar remédio antes da consulta")

	if got.Intent != entity.IntentCreateReminder {
		t.Fatalf("intent = %s, want create_reminder", got.Intent)
	}
	if got.Reminder.Type != entity.ReminderTypeMedication {
		t.Errorf("draft type = %s, want medication to win priority", got.Reminder.Type)
	}
	if !got.Reminder.Recurring {
		t.Error("medication priority must keep the draft recurring")
	}
}

func TestClassifyTriggerWithoutFieldsIsNotReminder(t *testing.T) {
	c := newTestClassifier()

	// A bare trigger verb scores 0.5, below the 0.6 acceptance threshold.
	got := c.Classify("vou criar uma senha nova")

	if got.Intent == entity.IntentCreateReminder {
		t.Fatalf("bare trigger verb must not classify as create_reminder, got confidence %v", got.Confidence)
	}
}

func TestClassifyHealthQuestion(t *testing.T) {
	c := newTestClassifier()

	tests := []string{
		"como funciona esse tratamento",
		"qual o sintoma de gripe",
		"o que devo comer no café",
	}

	for _, msg := range tests {
		got := c.Classify(msg)
		if got.Intent != entity.IntentHealthQuestion {
			t.Errorf("Classify(%q) intent = %s, want health_question", msg, got.Intent)
		}
		if got.Confidence != 0.7 {
			t.Errorf("Classify(%q) confidence = %v, want 0.7", msg, got.Confidence)
		}
	}
}

func TestClassifyGeneralChat(t *testing.T) {
	c := newTestClassifier()

	tests := []string{
		"bom dia",
		"gostei muito da nossa conversa",
		"obrigado pela ajuda",
	}

	for _, msg := range tests {
		got := c.Classify(msg)
		if got.Intent != entity.IntentGeneralChat {
			t.Errorf("Classify(%q) intent = %s, want general_chat", msg, got.Intent)
		}
		if got.Confidence != 0.8 {
			t.Errorf("Classify(%q) confidence = %v, want 0.8", msg, got.Confidence)
		}
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	c := newTestClassifier()

	inputs := []string{
		"lembrar de tomar Losartana às 8h amanhã",
		"estou com dor no peito",
		"agendar consulta com cardiologista",
		"bom dia",
	}

	for _, msg := range inputs {
		first := c.Classify(msg)
		second := c.Classify(msg)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Classify(%q) is not idempotent:\nfirst:  %+v\nsecond: %+v", msg, first, second)
		}
	}
}

func TestClassifyConfidenceIsCapped(t *testing.T) {
	c := newTestClassifier()

	// Medication, appointment and exam families plus explicit time and date
	// would sum past the cap.
	got := c.Classify("lembrar de tomar remédio, marcar consulta e exame de sangue às 8h amanhã")

	if got.Intent != entity.IntentCreateReminder {
		t.Fatalf("intent = %s, want create_reminder", got.Intent)
	}
	if got.Confidence > 0.95 {
		t.Errorf("confidence = %v, want capped at 0.95", got.Confidence)
	}
}

func TestClassifyWithCustomVocabulary(t *testing.T) {
	// A minimal English vocabulary, proving the keyword sets are injected
	// configuration rather than package state.
	vocab := Vocabulary{
		Emergency:      []string{"emergency"},
		Triggers:       []string{"remind"},
		Medication:     []string{"pill", "take"},
		Appointment:    []string{"appointment"},
		Exam:           []string{"exam"},
		HealthQuestion: []string{"how", "what"},
	}
	c := NewClassifier(WithVocabulary(vocab), WithClock(fixedClock))

	if got := c.Classify("this is an emergency"); got.Intent != entity.IntentEmergency {
		t.Errorf("custom vocabulary emergency intent = %s", got.Intent)
	}
	if got := c.Classify("remind me to take the pill"); got.Intent != entity.IntentCreateReminder {
		t.Errorf("custom vocabulary reminder intent = %s, confidence %v", got.Intent, got.Confidence)
	}
	// The default Portuguese emergency keyword no longer terminates.
	if got := c.Classify("socorro"); got.Intent == entity.IntentEmergency {
		t.Error("default vocabulary leaked into custom classifier")
	}
}
