package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/models"
)

type ReservationGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Sondas de existência
// --------------------------------------------------

func (r *ReservationGormRepository) UserExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReservationGormRepository) ResourceExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Resource{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Leituras
// --------------------------------------------------

func (r *ReservationGormRepository) GetResource(
	ctx context.Context,
	id uint,
) (*models.Resource, error) {

	var res models.Resource
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("resource not found")
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Resource").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("reservation not found")
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) FindActiveReservations(
	ctx context.Context,
	resourceID uint,
	date time.Time,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).Model(&models.Reservation{})
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var out []models.Reservation
	if err := q.
		Where(
			"resource_id = ? AND date = ? AND cancelled_on IS NULL",
			resourceID, domain.DateOnly(date),
		).
		Order("time_start ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	resourceID *uint,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Resource")

	if resourceID != nil {
		q = q.Where("resource_id = ?", *resourceID)
	}

	var out []models.Reservation
	if err := q.
		Order("date ASC, time_start ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Escritas
// --------------------------------------------------

func (r *ReservationGormRepository) SaveReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Save(res).Error
	if httperr.IsExclusionConflict(err) {
		return httperr.Conflict("resource already booked for this time")
	}
	return err
}

func (r *ReservationGormRepository) DeleteReservationsForResource(
	ctx context.Context,
	resourceID uint,
) (int64, error) {

	tx := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Delete(&models.Reservation{})
	return tx.RowsAffected, tx.Error
}

func (r *ReservationGormRepository) DeleteResource(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Resource{}, id).Error
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *ReservationGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx, inTx: true})
	})
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
