package intent

import (
	"fmt"
	"strings"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// Type-specific trailing sentences of the confirmation text. General
// reminders carry no trailing sentence.
var confirmationNotes = map[entity.ReminderType]string{
	entity.ReminderTypeMedication:  ". Este lembrete será diário para você não esquecer de tomar seu medicamento.",
	entity.ReminderTypeAppointment: ". Não esqueça de levar seus documentos e exames.",
	entity.ReminderTypeExam:        ". Lembre-se de seguir as orientações de jejum se necessário.",
}

// BuildConfirmation composes the natural-language confirmation shown to the
// user before a conversation-extracted reminder is created. The text is
// display-only and deterministic for a given draft.
func (c *Classifier) BuildConfirmation(draft *entity.ReminderDraft) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Entendi! Vou criar um lembrete para \"%s\"", draft.Title)

	if !draft.ScheduledDate.IsZero() {
		fmt.Fprintf(&b, " no dia %s", draft.ScheduledDate.Format("02/01/2006"))
	}
	if draft.Time != "" {
		fmt.Fprintf(&b, " às %s", draft.Time)
	}
	if note, ok := confirmationNotes[draft.Type]; ok {
		b.WriteString(note)
	}

	b.WriteString("\n\nDeseja que eu configure este lembrete agora?")

	return b.String()
}
