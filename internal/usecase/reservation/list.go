package reservation

import (
	"context"

	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
	"github.com/empresatech/resource-booking/internal/dto"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	resourceID *uint,
) ([]dto.ReservationListDTO, error) {

	reservations, err := uc.repo.ListReservations(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, dto.FromModel(&r))
	}

	return out, nil
}
