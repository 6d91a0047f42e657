// Package intent classifies free-text chat messages from elderly users into
// conversation intents and extracts structured health-reminder drafts from
// them. Matching is keyword and regular-expression based, case-insensitive,
// and never fails: every extractor has a fixed default, so classification is
// a total function of the input text and the clock.
package intent

import "strings"

// Vocabulary is the immutable keyword configuration of a Classifier. The
// default set targets Brazilian Portuguese; tests and future locales can
// inject alternatives instead of patching package state.
type Vocabulary struct {
	// Emergency terms short-circuit classification entirely.
	Emergency []string

	// Triggers are the verbs that signal a reminder-creation request.
	Triggers []string

	// Medication, Appointment and Exam are the keyword families that select
	// which extractor runs. Evaluation order is fixed: medication first, then
	// appointment, then exam; the first family present wins.
	Medication  []string
	Appointment []string
	Exam        []string

	// HealthQuestion terms mark interrogative or symptom-describing messages.
	HealthQuestion []string
}

// DefaultVocabulary returns the built-in Brazilian Portuguese keyword sets.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Emergency: []string{
			"emergência", "urgente", "ambulância", "hospital", "socorro",
			"dor no peito", "falta de ar", "desmaio", "sangramento",
		},
		Triggers: []string{
			"lembrar", "lembrete", "criar", "adicionar", "configurar",
			"marcar", "agendar", "programar", "notificar",
		},
		Medication: []string{
			"medicamento", "remédio", "comprimido", "pílula", "tomar", "medicação",
			"losartana", "pressão", "diabetes", "colesterol", "dor", "anti-inflamatório",
		},
		Appointment: []string{
			"consulta", "médico", "doutor", "agendar", "marcar", "cardiológico",
			"clínico", "especialista", "retorno", "revisão",
		},
		Exam: []string{
			"exame", "laboratório", "sangue", "urina", "raio-x", "ultrassom",
			"mamografia", "colesterol", "glicemia", "hemograma",
		},
		HealthQuestion: []string{
			"como", "o que", "por que", "quando", "onde", "qual",
			"sintoma", "dor", "mal estar", "problema", "causa",
			"tratamento", "cura", "prevenção",
		},
	}
}

// containsAny reports whether message contains at least one of the keywords.
// Matching is plain substring containment: "dormir" matches "dor". The
// lenient hits are accepted on purpose.
func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(message, kw) {
			return true
		}
	}
	return false
}
