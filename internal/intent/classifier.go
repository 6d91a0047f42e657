package intent

import (
	"strings"
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// Confidence values returned by Classify. Only reminderAccept acts as a gate;
// the emergency, health-question and general-chat values are inert metadata
// carried for a possible future ranking consumer.
const (
	emergencyConfidence      = 0.9
	healthQuestionConfidence = 0.7
	generalChatConfidence    = 0.8
	reminderRejectConfidence = 0.3
	reminderBaseConfidence   = 0.5
	reminderMaxConfidence    = 0.95
	reminderAcceptThreshold  = 0.6
)

// Classifier maps a raw utterance to one IntentAnalysis. It is stateless
// apart from its immutable vocabulary and injected clock, so a single
// instance is safe for concurrent use.
type Classifier struct {
	vocab Vocabulary
	now   func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithVocabulary replaces the default keyword sets.
func WithVocabulary(v Vocabulary) Option {
	return func(c *Classifier) { c.vocab = v }
}

// WithClock replaces the wall clock used for date extraction.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) { c.now = now }
}

// NewClassifier creates a classifier with the default Brazilian Portuguese
// vocabulary unless overridden.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		vocab: DefaultVocabulary(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify determines the intent of a user message. The stages run in fixed
// order and the first terminal stage wins:
//
//  1. emergency keywords, terminal at confidence 0.9
//  2. reminder-trigger verbs plus field extraction, accepted above 0.6
//  3. health-question keywords at confidence 0.7
//  4. general chat at confidence 0.8
//
// Classify never fails; unmatched extraction fields fall back to fixed
// defaults rather than producing an error.
func (c *Classifier) Classify(message string) *entity.IntentAnalysis {
	msg := strings.ToLower(message)

	if containsAny(msg, c.vocab.Emergency) {
		return &entity.IntentAnalysis{
			Intent:     entity.IntentEmergency,
			Confidence: emergencyConfidence,
		}
	}

	if analysis := c.classifyReminder(msg); analysis.Confidence > reminderAcceptThreshold {
		return analysis
	}

	if containsAny(msg, c.vocab.HealthQuestion) {
		return &entity.IntentAnalysis{
			Intent:     entity.IntentHealthQuestion,
			Confidence: healthQuestionConfidence,
		}
	}

	return &entity.IntentAnalysis{
		Intent:     entity.IntentGeneralChat,
		Confidence: generalChatConfidence,
	}
}

// classifyReminder scores the message as a reminder-creation request. Without
// a trigger verb the request is rejected outright; with one, confidence grows
// with every explicitly recognized field.
func (c *Classifier) classifyReminder(msg string) *entity.IntentAnalysis {
	if !containsAny(msg, c.vocab.Triggers) {
		return &entity.IntentAnalysis{
			Intent:     entity.IntentGeneralChat,
			Confidence: reminderRejectConfidence,
		}
	}

	ext := c.extract(msg)

	confidence := reminderBaseConfidence
	if ext.info.Medication != "" {
		confidence += 0.2
	}
	if ext.info.Appointment != "" {
		confidence += 0.2
	}
	if ext.info.Exam != "" {
		confidence += 0.2
	}
	// Time and date always carry defaults; only explicit mentions score.
	if ext.explicitTime {
		confidence += 0.1
	}
	if ext.explicitDate {
		confidence += 0.1
	}
	if confidence > reminderMaxConfidence {
		confidence = reminderMaxConfidence
	}

	return &entity.IntentAnalysis{
		Intent:     entity.IntentCreateReminder,
		Confidence: confidence,
		Reminder:   c.buildDraft(ext.info),
		Extracted:  ext.info,
	}
}

// buildDraft turns extracted fields into a reminder draft. The keyword
// families are tried in the fixed priority medication > appointment > exam;
// medication reminders recur daily by default, appointments and exams are
// one-shot. RecurringType is cleared whenever the draft does not recur.
func (c *Classifier) buildDraft(info *entity.ExtractedInfo) *entity.ReminderDraft {
	draft := &entity.ReminderDraft{
		Active:        true,
		ScheduledDate: c.parseDate(info.Date),
		Time:          info.Time,
		Recurring:     true,
		RecurringType: entity.RecurrenceType(info.Frequency),
	}

	switch {
	case info.Medication != "":
		draft.Title = "Tomar " + info.Medication
		draft.Description = "Lembrete para tomar " + info.Medication
		draft.Type = entity.ReminderTypeMedication
	case info.Appointment != "":
		draft.Title = "Consulta: " + info.Appointment
		draft.Description = "Lembrete de consulta médica"
		draft.Type = entity.ReminderTypeAppointment
		draft.Recurring = false
	case info.Exam != "":
		draft.Title = "Exame: " + info.Exam
		draft.Description = "Lembrete de exame médico"
		draft.Type = entity.ReminderTypeExam
		draft.Recurring = false
	default:
		draft.Title = "Lembrete de saúde"
		draft.Description = "Lembrete geral de saúde"
		draft.Type = entity.ReminderTypeGeneral
	}

	if !draft.Recurring {
		draft.RecurringType = ""
	}

	return draft
}

// parseDate converts an extracted "YYYY-MM-DD" string into a local-midnight
// time. Extraction guarantees a well-formed value, but a parse failure still
// degrades to today rather than erroring.
func (c *Classifier) parseDate(date string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		now := c.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	}
	return t
}
