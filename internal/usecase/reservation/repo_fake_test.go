package reservation

import (
	"context"
	"time"

	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/models"
)

// fakeRepo guarda tudo em memória, com a mesma semântica observável da
// implementação gorm: cópias na saída, NotFound tipado, transação = executar
// direto (um request por vez nos testes).
type fakeRepo struct {
	users        map[uint]bool
	resources    map[uint]models.Resource
	reservations map[uint]models.Reservation
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        make(map[uint]bool),
		resources:    make(map[uint]models.Resource),
		reservations: make(map[uint]models.Reservation),
		nextID:       1,
	}
}

func (f *fakeRepo) addUser(id uint) {
	f.users[id] = true
}

func (f *fakeRepo) addResource(r models.Resource) {
	f.resources[r.ID] = r
}

func (f *fakeRepo) UserExists(_ context.Context, id uint) (bool, error) {
	return f.users[id], nil
}

func (f *fakeRepo) ResourceExists(_ context.Context, id uint) (bool, error) {
	_, ok := f.resources[id]
	return ok, nil
}

func (f *fakeRepo) GetResource(_ context.Context, id uint) (*models.Resource, error) {
	r, ok := f.resources[id]
	if !ok {
		return nil, httperr.NotFoundErr("resource not found")
	}
	out := r
	return &out, nil
}

func (f *fakeRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, httperr.NotFoundErr("reservation not found")
	}
	out := r
	return &out, nil
}

func (f *fakeRepo) FindActiveReservations(_ context.Context, resourceID uint, date time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.ResourceID != resourceID {
			continue
		}
		if !domain.DateOnly(r.Date).Equal(domain.DateOnly(date)) {
			continue
		}
		if r.CancelledOn != nil {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) ListReservations(_ context.Context, resourceID *uint) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if resourceID != nil && r.ResourceID != *resourceID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) SaveReservation(_ context.Context, r *models.Reservation) error {
	if r.ID == 0 {
		r.ID = f.nextID
		f.nextID++
	}
	f.reservations[r.ID] = *r
	return nil
}

func (f *fakeRepo) DeleteReservationsForResource(_ context.Context, resourceID uint) (int64, error) {
	var removed int64
	for id, r := range f.reservations {
		if r.ResourceID == resourceID {
			delete(f.reservations, id)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeRepo) DeleteResource(_ context.Context, id uint) error {
	delete(f.resources, id)
	return nil
}

func (f *fakeRepo) InTransaction(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)
