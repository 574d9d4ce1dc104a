package reservation

import (
	"fmt"
	"time"
)

// Horários do dia circulam como "15:04" e são comparados em minutos
// desde a meia-noite.

func ParseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DateOnly normaliza um instante para a data civil, descartando hora e fuso,
// para que datas vindas do banco e do parse de request comparem igual.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
