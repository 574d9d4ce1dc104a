package reservation

import (
	"context"
	"time"

	"github.com/empresatech/resource-booking/internal/models"
)

type Repository interface {
	// -------- Sondas de existência --------
	UserExists(ctx context.Context, id uint) (bool, error)
	ResourceExists(ctx context.Context, id uint) (bool, error)

	// -------- Leituras --------
	GetResource(ctx context.Context, id uint) (*models.Resource, error)
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)

	// Reservas ativas (cancelled_on IS NULL) do recurso na data, ordenadas
	// por horário. Dentro de transação a implementação tranca as linhas;
	// o predicado de sobreposição é aplicado por quem consome.
	FindActiveReservations(ctx context.Context, resourceID uint, date time.Time) ([]models.Reservation, error)

	ListReservations(ctx context.Context, resourceID *uint) ([]models.Reservation, error)

	// -------- Escritas --------
	SaveReservation(ctx context.Context, r *models.Reservation) error
	DeleteReservationsForResource(ctx context.Context, resourceID uint) (int64, error)
	DeleteResource(ctx context.Context, id uint) error

	// InTransaction executa fn com um Repository preso à mesma transação.
	// Checagem de conflito + insert rodam dentro de uma única chamada.
	InTransaction(ctx context.Context, fn func(Repository) error) error
}
