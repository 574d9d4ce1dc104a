package reservation

import (
	"context"
	"time"

	"github.com/empresatech/resource-booking/internal/audit"
	"github.com/empresatech/resource-booking/internal/cache"
	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/models"
)

type UpdateReservationInput struct {
	ReservationID uint

	Date      time.Time
	TimeStart string
	TimeEnd   string
}

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.SlotCache
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.SlotCache,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
		slots: slots,
	}
}

// Execute remarca data/horário de uma reserva ativa. Recurso e colaborador
// são imutáveis após a criação; a checagem de conflito exclui a própria
// reserva do conjunto candidato, senão remarcar para o mesmo horário falharia.
func (uc *UpdateReservation) Execute(
	ctx context.Context,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	existing, err := uc.repo.GetReservation(ctx, in.ReservationID)
	if err != nil {
		return nil, err
	}

	if existing.CancelledOn != nil {
		return nil, httperr.StateRule("reservation already cancelled")
	}

	if err := domain.Validate(ctx, uc.repo, domain.Request{
		UserID:     existing.UserID,
		ResourceID: existing.ResourceID,
		Date:       in.Date,
		TimeStart:  in.TimeStart,
		TimeEnd:    in.TimeEnd,
	}); err != nil {
		return nil, err
	}

	if in.TimeStart == "" {
		return nil, httperr.Validation("start time is required")
	}
	if in.TimeEnd == "" {
		return nil, httperr.Validation("end time is required")
	}

	start, err := domain.ParseClock(in.TimeStart)
	if err != nil {
		return nil, httperr.Validation("invalid start time")
	}
	end, err := domain.ParseClock(in.TimeEnd)
	if err != nil {
		return nil, httperr.Validation("invalid end time")
	}

	resource, err := uc.repo.GetResource(ctx, existing.ResourceID)
	if err != nil {
		return nil, err
	}

	previousDate := domain.DateOnly(existing.Date)
	date := domain.DateOnly(in.Date)

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		active, err := tx.FindActiveReservations(ctx, existing.ResourceID, date)
		if err != nil {
			return err
		}

		if conflicts := domain.FilterConflicts(active, start, end, existing.ID); len(conflicts) > 0 {
			return httperr.Conflict("resource already booked for this time")
		}

		if err := domain.CheckAvailability(resource, date, start, end); err != nil {
			return err
		}

		existing.Date = date
		existing.TimeStart = in.TimeStart
		existing.TimeEnd = in.TimeEnd

		return tx.SaveReservation(ctx, existing)
	})
	if err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, existing.ResourceID, previousDate)
	uc.slots.Invalidate(ctx, existing.ResourceID, date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &existing.UserID,
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: &existing.ID,
	})

	return existing, nil
}
