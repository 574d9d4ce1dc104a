package reservation

import "github.com/empresatech/resource-booking/internal/models"

// Estado de uma reserva. ACTIVE enquanto cancelled_on é nulo; CANCELLED é
// terminal, nunca reativa.

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func StatusOf(r *models.Reservation) Status {
	if r.CancelledOn != nil {
		return StatusCancelled
	}
	return StatusActive
}
