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

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	UserID     uint
	ResourceID uint

	Date      time.Time
	TimeStart string
	TimeEnd   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.SlotCache
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.SlotCache,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		slots: slots,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Fluxo: validação estrutural → detecção de conflito → janela de
// disponibilidade → insert. Conflito e insert rodam na mesma transação,
// com as reservas candidatas trancadas.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	if err := domain.Validate(ctx, uc.repo, domain.Request{
		UserID:     in.UserID,
		ResourceID: in.ResourceID,
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

	resource, err := uc.repo.GetResource(ctx, in.ResourceID)
	if err != nil {
		return nil, err
	}

	date := domain.DateOnly(in.Date)
	var created *models.Reservation

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		active, err := tx.FindActiveReservations(ctx, in.ResourceID, date)
		if err != nil {
			return err
		}

		if conflicts := domain.FilterConflicts(active, start, end, 0); len(conflicts) > 0 {
			return httperr.Conflict("resource already booked for this time")
		}

		if err := domain.CheckAvailability(resource, date, start, end); err != nil {
			return err
		}

		r := &models.Reservation{
			ResourceID: in.ResourceID,
			UserID:     in.UserID,
			Date:       date,
			TimeStart:  in.TimeStart,
			TimeEnd:    in.TimeEnd,
		}

		if err := tx.SaveReservation(ctx, r); err != nil {
			return err
		}

		created = r
		return nil
	})

	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: "reservation_conflict",
				Entity: "reservation",
				Metadata: map[string]any{
					"resource_id": in.ResourceID,
					"date":        date.Format("2006-01-02"),
					"time_start":  in.TimeStart,
					"time_end":    in.TimeEnd,
				},
			})
		}
		return nil, err
	}

	uc.slots.Invalidate(ctx, in.ResourceID, date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &created.ID,
	})

	return created, nil
}
