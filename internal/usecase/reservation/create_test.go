package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/empresatech/resource-booking/internal/audit"
	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/models"
)

func testResource() models.Resource {
	return models.Resource{
		ID:          1,
		Description: "Sala de reunião 101",
		Category:    "room",
		DateFrom:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		TimeFrom:    "08:00",
		TimeTo:      "18:00",
	}
}

func newCreateFixture() (*fakeRepo, *CreateReservation) {
	repo := newFakeRepo()
	repo.addUser(2)
	repo.addResource(testResource())

	uc := NewCreateReservation(repo, audit.NewDispatcher(nil), nil)
	return repo, uc
}

func TestCreateReservation_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, uc := newCreateFixture()

	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	created, err := uc.Execute(ctx, CreateReservationInput{
		UserID:     2,
		ResourceID: 1,
		Date:       date,
		TimeStart:  "14:00",
		TimeEnd:    "15:00",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	stored, err := repo.GetReservation(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetReservation failed: %v", err)
	}
	if stored.ResourceID != 1 || stored.UserID != 2 {
		t.Fatalf("stored refs differ: %+v", stored)
	}
	if !stored.Date.Equal(date) || stored.TimeStart != "14:00" || stored.TimeEnd != "15:00" {
		t.Fatalf("stored schedule differs: %+v", stored)
	}
	if stored.CancelledOn != nil {
		t.Fatalf("new reservation must be active, got cancelled_on %v", stored.CancelledOn)
	}
}

func TestCreateReservation_Conflict(t *testing.T) {
	ctx := context.Background()
	_, uc := newCreateFixture()

	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	if _, err := uc.Execute(ctx, CreateReservationInput{
		UserID: 2, ResourceID: 1, Date: date, TimeStart: "14:00", TimeEnd: "15:00",
	}); err != nil {
		t.Fatalf("setup reservation failed: %v", err)
	}

	_, err := uc.Execute(ctx, CreateReservationInput{
		UserID: 2, ResourceID: 1, Date: date, TimeStart: "14:30", TimeEnd: "15:30",
	})
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// encostada na anterior: livre
	if _, err := uc.Execute(ctx, CreateReservationInput{
		UserID: 2, ResourceID: 1, Date: date, TimeStart: "15:00", TimeEnd: "16:00",
	}); err != nil {
		t.Fatalf("back-to-back reservation should pass, got %v", err)
	}
}

func TestCreateReservation_CancelledDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	repo, uc := newCreateFixture()

	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	cancelledOn := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	repo.reservations[50] = models.Reservation{
		ID: 50, ResourceID: 1, UserID: 2, Date: date,
		TimeStart: "14:00", TimeEnd: "15:00", CancelledOn: &cancelledOn,
	}

	if _, err := uc.Execute(ctx, CreateReservationInput{
		UserID: 2, ResourceID: 1, Date: date, TimeStart: "14:00", TimeEnd: "15:00",
	}); err != nil {
		t.Fatalf("cancelled reservation must not block the slot, got %v", err)
	}
}

func TestCreateReservation_OutsideWindow(t *testing.T) {
	ctx := context.Background()
	_, uc := newCreateFixture()

	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(ctx, CreateReservationInput{
		UserID: 2, ResourceID: 1, Date: date, TimeStart: "07:00", TimeEnd: "09:00",
	})
	if !httperr.IsKind(err, httperr.KindAvailability) {
		t.Fatalf("expected availability error, got %v", err)
	}
}

func TestCreateReservation_Validation(t *testing.T) {
	ctx := context.Background()
	_, uc := newCreateFixture()

	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   CreateReservationInput
		kind httperr.Kind
		msg  string
	}{
		{
			"missing collaborator",
			CreateReservationInput{ResourceID: 1, Date: date, TimeStart: "10:00", TimeEnd: "11:00"},
			httperr.KindValidation, "collaborator is required",
		},
		{
			"unknown user",
			CreateReservationInput{UserID: 99, ResourceID: 1, Date: date, TimeStart: "10:00", TimeEnd: "11:00"},
			httperr.KindValidation, "user not found",
		},
		{
			"inverted times",
			CreateReservationInput{UserID: 2, ResourceID: 1, Date: date, TimeStart: "11:00", TimeEnd: "10:00"},
			httperr.KindValidation, "start time must precede end time",
		},
		{
			"missing times",
			CreateReservationInput{UserID: 2, ResourceID: 1, Date: date},
			httperr.KindValidation, "start time is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.in)
			if !httperr.IsKind(err, tt.kind) {
				t.Fatalf("expected %s error, got %v", tt.kind, err)
			}
			if err.Error() != tt.msg {
				t.Fatalf("expected %q, got %q", tt.msg, err.Error())
			}
		})
	}
}
