package reservation

import (
	"strings"
	"time"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// WeekdayName retorna o nome canônico (minúsculo) do dia da semana da data.
func WeekdayName(date time.Time) string {
	return weekdayNames[date.Weekday()]
}

func IsValidWeekday(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, canonical := range weekdayNames {
		if n == canonical {
			return true
		}
	}
	return false
}

// ParseWeekdaySet converte a forma persistida ("monday,tuesday") num conjunto
// de nomes canônicos. Entradas vazias são ignoradas; conjunto vazio significa
// todos os dias liberados.
func ParseWeekdaySet(csv string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(csv, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name != "" {
			set[name] = true
		}
	}
	return set
}

// FormatWeekdaySet monta a forma persistida a partir da lista do request.
func FormatWeekdaySet(names []string) string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, ",")
}
