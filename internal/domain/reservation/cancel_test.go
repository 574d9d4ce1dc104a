package reservation

import (
	"testing"
	"time"

	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/models"
)

func TestCancel(t *testing.T) {
	today := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	newReservation := func(date time.Time) *models.Reservation {
		return &models.Reservation{
			ID:         1,
			ResourceID: 1,
			UserID:     2,
			Date:       date,
			TimeStart:  "10:00",
			TimeEnd:    "11:00",
		}
	}

	t.Run("blank reason is rejected", func(t *testing.T) {
		r := newReservation(today.AddDate(0, 0, 5))
		err := Cancel(r, "   ", today)
		if !httperr.IsKind(err, httperr.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("same-day cancellation is rejected", func(t *testing.T) {
		r := newReservation(today)
		err := Cancel(r, "mudança de agenda", today)
		if !httperr.IsKind(err, httperr.KindStateRule) {
			t.Fatalf("expected state rule error, got %v", err)
		}
		if err.Error() != "cancellation requires 1 day lead time" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("past reservation is rejected", func(t *testing.T) {
		r := newReservation(today.AddDate(0, 0, -3))
		err := Cancel(r, "mudança de agenda", today)
		if !httperr.IsKind(err, httperr.KindStateRule) {
			t.Fatalf("expected state rule error, got %v", err)
		}
	})

	t.Run("next day exactly is allowed", func(t *testing.T) {
		r := newReservation(today.AddDate(0, 0, 1))
		if err := Cancel(r, "mudança de agenda", today); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if r.CancelledOn == nil || !r.CancelledOn.Equal(today) {
			t.Fatalf("expected cancelled_on = today, got %v", r.CancelledOn)
		}
		if r.Note != "mudança de agenda" {
			t.Fatalf("expected note to hold the reason, got %q", r.Note)
		}
	})

	t.Run("already cancelled is always rejected", func(t *testing.T) {
		r := newReservation(today.AddDate(0, 0, 5))
		if err := Cancel(r, "primeiro motivo", today); err != nil {
			t.Fatalf("setup cancel failed: %v", err)
		}

		err := Cancel(r, "outro motivo qualquer", today)
		if !httperr.IsKind(err, httperr.KindStateRule) {
			t.Fatalf("expected state rule error, got %v", err)
		}
		if err.Error() != "reservation already cancelled" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
		if r.Note != "primeiro motivo" {
			t.Fatalf("second cancel must not overwrite the note, got %q", r.Note)
		}
	})
}
