package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// Extraction defaults, used whenever no pattern matches.
const (
	defaultMedication  = "Medicamento"
	defaultAppointment = "Consulta médica"
	defaultExam        = "Exame médico"
	defaultTime        = "08:00"
)

// Portuguese word fragment accepted inside extracted names and descriptions.
const ptWord = `[a-záàâãéêíóôõúç\s]+?`

// Extraction patterns. Each family tries its patterns in order and the first
// capturing match wins; reordering them changes observable behavior.
var (
	medicationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:tomar|medicamento|remédio)\s+(` + ptWord + `)(?:\s+às|\s+no|\s+de|$)`),
		regexp.MustCompile(`(` + ptWord + `)\s+(?:mg|ml|comprimido|pílula)`),
	}
	appointmentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:consulta|médico|doutor)\s+(` + ptWord + `)(?:\s+no|\s+de|$)`),
		regexp.MustCompile(`(?:agendar|marcar)\s+(` + ptWord + `)(?:\s+para|\s+no|$)`),
	}
	examPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:exame|laboratório)\s+(` + ptWord + `)(?:\s+no|\s+de|$)`),
		regexp.MustCompile(`(` + ptWord + `)\s+(?:exame|laboratório)`),
	}

	clockTimePattern  = regexp.MustCompile(`(\d{1,2})[h:](\d{0,2})`)
	spelledOutPattern = regexp.MustCompile(`(\d{1,2})\s*horas?`)
	dayPeriodPattern  = regexp.MustCompile(`manhã|tarde|noite`)
)

// dayPeriodTimes maps spoken day periods to their conventional clock times.
var dayPeriodTimes = map[string]string{
	"manhã": "08:00",
	"tarde": "14:00",
	"noite": "20:00",
}

// extraction bundles the extracted fields with the explicitness flags that
// feed confidence scoring.
type extraction struct {
	info         *entity.ExtractedInfo
	explicitTime bool
	explicitDate bool
}

// extract pulls every reminder field out of an already lower-cased message.
// Time, date and frequency always end up populated (with defaults when
// nothing matched); the medication/appointment/exam descriptions are set only
// when their keyword family appears.
func (c *Classifier) extract(msg string) extraction {
	info := &entity.ExtractedInfo{}

	if containsAny(msg, c.vocab.Medication) {
		info.Medication = firstCapture(medicationPatterns, msg, defaultMedication)
	}
	if containsAny(msg, c.vocab.Appointment) {
		info.Appointment = firstCapture(appointmentPatterns, msg, defaultAppointment)
	}
	if containsAny(msg, c.vocab.Exam) {
		info.Exam = firstCapture(examPatterns, msg, defaultExam)
	}

	var ext extraction
	info.Time, ext.explicitTime = extractTime(msg)
	info.Date, ext.explicitDate = c.extractDate(msg)
	info.Frequency = extractFrequency(msg)

	ext.info = info
	return ext
}

// firstCapture returns the trimmed first capturing group of the first pattern
// that matches, or the fallback.
func firstCapture(patterns []*regexp.Regexp, msg, fallback string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(msg); m != nil {
			if captured := strings.TrimSpace(m[1]); captured != "" {
				return captured
			}
		}
	}
	return fallback
}

// extractTime recognizes "8h", "8h30", "8:30", "8 horas" and the day periods
// manhã/tarde/noite, normalizing everything to zero-padded "HH:MM". The
// second result reports whether the time was explicit in the message.
func extractTime(msg string) (string, bool) {
	if m := clockTimePattern.FindStringSubmatch(msg); m != nil {
		return formatClock(m[1], m[2]), true
	}
	if m := spelledOutPattern.FindStringSubmatch(msg); m != nil {
		return formatClock(m[1], ""), true
	}
	if period := dayPeriodPattern.FindString(msg); period != "" {
		return dayPeriodTimes[period], true
	}
	return defaultTime, false
}

// formatClock zero-pads extracted hour/minute digit runs into "HH:MM".
func formatClock(hour, minute string) string {
	h, _ := strconv.Atoi(hour)
	m := 0
	if minute != "" {
		m, _ = strconv.Atoi(minute)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// extractDate resolves "amanhã" to tomorrow and everything else to today, as
// an ISO calendar date. The second result reports whether a date word was
// present. "amanhã" is checked first so its embedded "manhã" never leaks into
// the day-period logic here.
func (c *Classifier) extractDate(msg string) (string, bool) {
	today := c.now()
	if strings.Contains(msg, "amanhã") {
		return today.AddDate(0, 0, 1).Format("2006-01-02"), true
	}
	if strings.Contains(msg, "hoje") {
		return today.Format("2006-01-02"), true
	}
	return today.Format("2006-01-02"), false
}

// extractFrequency maps frequency words to a recurrence type, defaulting to
// daily.
func extractFrequency(msg string) string {
	switch {
	case strings.Contains(msg, "diário") || strings.Contains(msg, "todo dia"):
		return string(entity.RecurrenceDaily)
	case strings.Contains(msg, "semanal"):
		return string(entity.RecurrenceWeekly)
	case strings.Contains(msg, "mensal"):
		return string(entity.RecurrenceMonthly)
	default:
		return string(entity.RecurrenceDaily)
	}
}
