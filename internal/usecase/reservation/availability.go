package reservation

import (
	"context"

	"github.com/empresatech/resource-booking/internal/cache"
	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
	"github.com/empresatech/resource-booking/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	slots *cache.SlotCache
}

func NewGetAvailability(
	repo domain.Repository,
	slots *cache.SlotCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		slots: slots,
	}
}

// Execute monta a grade de horários livres do recurso na data: a janela de
// funcionamento fatiada em blocos de SlotMinutes, menos os blocos tomados
// por reservas ativas. Data fora da janela ou dia da semana bloqueado
// devolvem grade vazia, não erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if in.SlotMinutes <= 0 {
		return nil, httperr.Validation("slot duration must be positive")
	}

	resource, err := uc.repo.GetResource(ctx, in.ResourceID)
	if err != nil {
		return nil, err
	}

	date := domain.DateOnly(in.Date)

	if cached, ok := uc.slots.Get(ctx, in.ResourceID, date, in.SlotMinutes); ok {
		return cached, nil
	}

	if date.Before(domain.DateOnly(resource.DateFrom)) || date.After(domain.DateOnly(resource.DateTo)) {
		return []domain.TimeSlot{}, nil
	}

	allowed := domain.ParseWeekdaySet(resource.Weekdays)
	if len(allowed) > 0 && !allowed[domain.WeekdayName(date)] {
		return []domain.TimeSlot{}, nil
	}

	windowStart, err := domain.ParseClock(resource.TimeFrom)
	if err != nil {
		return nil, err
	}
	windowEnd, err := domain.ParseClock(resource.TimeTo)
	if err != nil {
		return nil, err
	}

	active, err := uc.repo.FindActiveReservations(ctx, in.ResourceID, date)
	if err != nil {
		return nil, err
	}

	slots := []domain.TimeSlot{}

	for cur := windowStart; cur+in.SlotMinutes <= windowEnd; cur += in.SlotMinutes {
		slotStart := cur
		slotEnd := cur + in.SlotMinutes

		if len(domain.FilterConflicts(active, slotStart, slotEnd, 0)) > 0 {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start: domain.FormatClock(slotStart),
			End:   domain.FormatClock(slotEnd),
		})
	}

	uc.slots.Set(ctx, in.ResourceID, date, in.SlotMinutes, slots)

	return slots, nil
}
