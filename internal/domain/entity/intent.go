package entity

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	IntentCreateReminder Intent = "create_reminder"
	IntentGeneralChat    Intent = "general_chat"
	IntentHealthQuestion Intent = "health_question"
	IntentEmergency      Intent = "emergency"
)

// ExtractedInfo holds the raw fields pulled out of a reminder request. All
// values are lower-cased fragments of the original message, or fixed defaults
// when nothing matched.
type ExtractedInfo struct {
	Medication  string
	Appointment string
	Exam        string
	Time        string // "HH:MM"
	Date        string // "YYYY-MM-DD"
	Frequency   string // daily, weekly, monthly
}

// IntentAnalysis is the result of classifying a single message. Confidence is
// inert metadata for every intent except create_reminder, where the 0.6
// acceptance threshold has already been applied by the classifier.
type IntentAnalysis struct {
	Intent     Intent
	Confidence float64
	Reminder   *ReminderDraft
	Extracted  *ExtractedInfo
}
