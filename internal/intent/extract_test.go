package intent

import (
	"testing"
	"time"
)

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		want         string
		wantExplicit bool
	}{
		{"hour with h suffix", "tomar remédio às 8h", "08:00", true},
		{"hour and minute with h", "consulta às 14h30", "14:30", true},
		{"colon notation", "exame às 9:15", "09:15", true},
		{"spelled out hours", "me lembre às 7 horas", "07:00", true},
		{"morning period", "tomar o remédio pela manhã", "08:00", true},
		{"afternoon period", "consulta à tarde", "14:00", true},
		{"evening period", "remédio à noite", "20:00", true},
		{"no time mentioned", "criar lembrete de remédio", "08:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, explicit := extractTime(tt.message)
			if got != tt.want {
				t.Errorf("extractTime(%q) = %q, want %q", tt.message, got, tt.want)
			}
			if explicit != tt.wantExplicit {
				t.Errorf("extractTime(%q) explicit = %v, want %v", tt.message, explicit, tt.wantExplicit)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	c := newTestClassifier()
	today := fixedClock().Format("2006-01-02")
	tomorrow := fixedClock().AddDate(0, 0, 1).Format("2006-01-02")

	tests := []struct {
		name         string
		message      string
		want         string
		wantExplicit bool
	}{
		{"tomorrow", "consulta amanhã", tomorrow, true},
		{"today", "tomar remédio hoje", today, true},
		{"no date mentioned", "tomar remédio", today, false},
		// "amanhã" contains "manhã"; the date check runs before any
		// day-period interpretation could claim it.
		{"tomorrow is not a day period", "me lembre amanhã", tomorrow, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, explicit := c.extractDate(tt.message)
			if got != tt.want {
				t.Errorf("extractDate(%q) = %q, want %q", tt.message, got, tt.want)
			}
			if explicit != tt.wantExplicit {
				t.Errorf("extractDate(%q) explicit = %v, want %v", tt.message, explicit, tt.wantExplicit)
			}
		})
	}
}

func TestExtractFrequency(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"tomar remédio diário", "daily"},
		{"tomar todo dia às 8h", "daily"},
		{"exame semanal", "weekly"},
		{"consulta mensal de retorno", "monthly"},
		{"tomar losartana", "daily"},
	}

	for _, tt := range tests {
		if got := extractFrequency(tt.message); got != tt.want {
			t.Errorf("extractFrequency(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestExtractFieldsFollowKeywordFamilies(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name            string
		message         string
		wantMedication  string
		wantAppointment string
		wantExam        string
	}{
		{
			name:           "medication name after tomar",
			message:        "lembrar de tomar losartana às 8h",
			wantMedication: "losartana",
		},
		{
			name:           "medication keyword without a name",
			message:        "criar lembrete de medicação",
			wantMedication: defaultMedication,
		},
		{
			name:            "appointment description",
			message:         "agendar consulta com cardiologista",
			wantAppointment: "com cardiologista",
		},
		{
			name:     "exam keyword without a description",
			message:  "fazer o hemograma na segunda",
			wantExam: defaultExam,
		},
		{
			name:    "no family keywords",
			message: "me lembre de ligar para a vizinha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := c.extract(tt.message)
			if ext.info.Medication != tt.wantMedication {
				t.Errorf("medication = %q, want %q", ext.info.Medication, tt.wantMedication)
			}
			if ext.info.Appointment != tt.wantAppointment {
				t.Errorf("appointment = %q, want %q", ext.info.Appointment, tt.wantAppointment)
			}
			if ext.info.Exam != tt.wantExam {
				t.Errorf("exam = %q, want %q", ext.info.Exam, tt.wantExam)
			}
		})
	}
}

func TestParseDateDegradesToToday(t *testing.T) {
	c := newTestClassifier()

	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	if got := c.parseDate("not-a-date"); !got.Equal(want) {
		t.Errorf("parseDate on malformed input = %v, want today at midnight %v", got, want)
	}

	parsed := c.parseDate("2025-03-11")
	if parsed.Year() != 2025 || parsed.Month() != time.March || parsed.Day() != 11 {
		t.Errorf("parseDate(2025-03-11) = %v", parsed)
	}
}
