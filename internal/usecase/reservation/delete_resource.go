package reservation

import (
	"context"

	"github.com/empresatech/resource-booking/internal/audit"
	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
	"github.com/empresatech/resource-booking/internal/httperr"
)

type DeleteResource struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteResource(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteResource {
	return &DeleteResource{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o recurso e todas as suas reservas na mesma transação.
// O cascade é feito aqui na aplicação, não no ORM, e deixa rastro de
// auditoria com a contagem removida.
func (uc *DeleteResource) Execute(
	ctx context.Context,
	actorID uint,
	resourceID uint,
) error {

	ok, err := uc.repo.ResourceExists(ctx, resourceID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.NotFoundErr("resource not found")
	}

	var removed int64

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		n, err := tx.DeleteReservationsForResource(ctx, resourceID)
		if err != nil {
			return err
		}
		removed = n

		return tx.DeleteResource(ctx, resourceID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "resource_deleted",
		Entity:   "resource",
		EntityID: &resourceID,
		Metadata: map[string]any{"reservations_removed": removed},
	})

	return nil
}
