package reservation

import (
	"time"

	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/models"
)

// CheckAvailability valida a reserva contra a janela de funcionamento do
// recurso: faixa de datas (inclusiva), horário do dia e dias da semana,
// nessa ordem. A primeira violação encerra a checagem.
func CheckAvailability(res *models.Resource, date time.Time, startMin, endMin int) error {
	d := DateOnly(date)

	if d.Before(DateOnly(res.DateFrom)) || d.After(DateOnly(res.DateTo)) {
		return httperr.Availability("date outside resource window")
	}

	windowStart, err := ParseClock(res.TimeFrom)
	if err != nil {
		return httperr.Validation("resource has invalid opening time")
	}
	windowEnd, err := ParseClock(res.TimeTo)
	if err != nil {
		return httperr.Validation("resource has invalid closing time")
	}
	if startMin < windowStart || endMin > windowEnd {
		return httperr.Availability("time outside resource window")
	}

	allowed := ParseWeekdaySet(res.Weekdays)
	if len(allowed) > 0 {
		weekday := WeekdayName(d)
		if !allowed[weekday] {
			return httperr.Availability("resource unavailable on " + weekday)
		}
	}

	return nil
}
