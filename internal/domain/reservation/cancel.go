package reservation

import (
	"strings"
	"time"

	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/models"
)

// Cancel aplica a transição ACTIVE → CANCELLED sobre a reserva, sem persistir.
// Regras, na ordem: motivo obrigatório, antecedência mínima de 1 dia
// (reserva para hoje ou para trás não cancela; para amanhã em diante sim) e
// cancelamento repetido é rejeitado, nunca aceito em silêncio.
func Cancel(r *models.Reservation, reason string, today time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return httperr.Validation("cancellation reason required")
	}

	if DateOnly(r.Date).Before(DateOnly(today).AddDate(0, 0, 1)) {
		return httperr.StateRule("cancellation requires 1 day lead time")
	}

	if r.CancelledOn != nil {
		return httperr.StateRule("reservation already cancelled")
	}

	cancelledOn := DateOnly(today)
	r.CancelledOn = &cancelledOn
	r.Note = reason
	return nil
}
