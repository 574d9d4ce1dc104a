package reservation

import (
	"context"
	"time"

	"github.com/empresatech/resource-booking/internal/audit"
	"github.com/empresatech/resource-booking/internal/cache"
	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
	"github.com/empresatech/resource-booking/internal/models"
	"github.com/empresatech/resource-booking/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.SlotCache
	tz    string

	today func() time.Time
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.SlotCache,
	tz string,
) *CancelReservation {
	uc := &CancelReservation{
		repo:  repo,
		audit: audit,
		slots: slots,
		tz:    tz,
	}
	uc.today = func() time.Time { return timezone.TodayIn(uc.tz) }
	return uc
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	reservationID uint,
	reason string,
) (*models.Reservation, error) {

	r, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(r, reason, uc.today()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveReservation(ctx, r); err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, r.ResourceID, domain.DateOnly(r.Date))

	uc.audit.Dispatch(audit.Event{
		UserID:   &r.UserID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &r.ID,
		Metadata: map[string]any{"reason": reason},
	})

	return r, nil
}
