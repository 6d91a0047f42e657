package intent

import (
	"strings"
	"testing"
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

func TestBuildConfirmation(t *testing.T) {
	c := newTestClassifier()
	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		draft    *entity.ReminderDraft
		contains []string
		excludes []string
	}{
		{
			name: "medication with date and time",
			draft: &entity.ReminderDraft{
				Title:         "Tomar losartana",
				Type:          entity.ReminderTypeMedication,
				ScheduledDate: date,
				Time:          "08:00",
			},
			contains: []string{
				`Entendi! Vou criar um lembrete para "Tomar losartana"`,
				"no dia 11/03/2025",
				"às 08:00",
				"será diário",
				"Deseja que eu configure este lembrete agora?",
			},
		},
		{
			name: "appointment note",
			draft: &entity.ReminderDraft{
				Title:         "Consulta: com cardiologista",
				Type:          entity.ReminderTypeAppointment,
				ScheduledDate: date,
				Time:          "14:00",
			},
			contains: []string{"documentos e exames"},
			excludes: []string{"será diário", "jejum"},
		},
		{
			name: "exam note",
			draft: &entity.ReminderDraft{
				Title:         "Exame: de sangue",
				Type:          entity.ReminderTypeExam,
				ScheduledDate: date,
				Time:          "07:00",
			},
			contains: []string{"jejum"},
		},
		{
			name: "general reminder has no trailing note",
			draft: &entity.ReminderDraft{
				Title:         "Lembrete de saúde",
				Type:          entity.ReminderTypeGeneral,
				ScheduledDate: date,
				Time:          "08:00",
			},
			excludes: []string{"será diário", "documentos", "jejum"},
		},
		{
			name: "zero date and empty time are omitted",
			draft: &entity.ReminderDraft{
				Title: "Tomar medicamento",
				Type:  entity.ReminderTypeMedication,
			},
			excludes: []string{"no dia", "às "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.BuildConfirmation(tt.draft)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("confirmation missing %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("confirmation should not contain %q:\n%s", bad, got)
				}
			}
		})
	}
}

func TestBuildConfirmationIsDeterministic(t *testing.T) {
	c := newTestClassifier()
	draft := c.Classify("lembrar de tomar losartana às 8h amanhã").Reminder

	first := c.BuildConfirmation(draft)
	second := c.BuildConfirmation(draft)
	if first != second {
		t.Errorf("confirmation changed between calls:\n%s\n%s", first, second)
	}
}
