package dto

import (
	"time"

	"github.com/empresatech/resource-booking/internal/models"
)

// ReservationListDTO é a projeção de listagem/detalhe, com os campos
// desnormalizados de exibição (nome do colaborador, descrição do recurso).
type ReservationListDTO struct {
	ID uint `json:"id"`

	ResourceID uint `json:"resource_id"`
	UserID     uint `json:"user_id"`

	Date      time.Time `json:"date"`
	TimeStart string    `json:"time_start"`
	TimeEnd   string    `json:"time_end"`

	CancelledOn *time.Time `json:"cancelled_on"`
	Note        string     `json:"note"`

	CollaboratorName    string `json:"collaborator_name"`
	ResourceDescription string `json:"resource_description"`
}

func FromModel(r *models.Reservation) ReservationListDTO {
	return ReservationListDTO{
		ID:                  r.ID,
		ResourceID:          r.ResourceID,
		UserID:              r.UserID,
		Date:                r.Date,
		TimeStart:           r.TimeStart,
		TimeEnd:             r.TimeEnd,
		CancelledOn:         r.CancelledOn,
		Note:                r.Note,
		CollaboratorName:    r.User.Name,
		ResourceDescription: r.Resource.Description,
	}
}
