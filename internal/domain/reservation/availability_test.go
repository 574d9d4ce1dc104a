package reservation

import (
	"testing"
	"time"

	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/models"
)

func weekdayResource() *models.Resource {
	return &models.Resource{
		ID:          1,
		Description: "Sala de reunião 101",
		Category:    "room",
		DateFrom:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		TimeFrom:    "08:00",
		TimeTo:      "18:00",
		Weekdays:    "monday,tuesday,wednesday,thursday,friday",
	}
}

func TestCheckAvailability_DateWindow(t *testing.T) {
	res := weekdayResource()

	// 2024-12-31 antes da janela
	before := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	err := CheckAvailability(res, before, mustClock(t, "10:00"), mustClock(t, "11:00"))
	if !httperr.IsKind(err, httperr.KindAvailability) {
		t.Fatalf("expected availability error for date before window, got %v", err)
	}

	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	err = CheckAvailability(res, after, mustClock(t, "10:00"), mustClock(t, "11:00"))
	if !httperr.IsKind(err, httperr.KindAvailability) {
		t.Fatalf("expected availability error for date after window, got %v", err)
	}

	// limites inclusivos: primeiro e último dia da janela passam
	firstDay := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) // quarta-feira
	if err := CheckAvailability(res, firstDay, mustClock(t, "10:00"), mustClock(t, "11:00")); err != nil {
		t.Fatalf("expected first day of window to pass, got %v", err)
	}
}

func TestCheckAvailability_TimeWindow(t *testing.T) {
	res := weekdayResource()
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"exactly the full window", "08:00", "18:00", false},
		{"inside the window", "09:00", "10:00", false},
		{"one minute before opening", "07:59", "10:00", true},
		{"one minute past closing", "17:00", "18:01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAvailability(res, monday, mustClock(t, tt.start), mustClock(t, tt.end))
			if tt.wantErr && !httperr.IsKind(err, httperr.KindAvailability) {
				t.Fatalf("expected availability error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected pass, got %v", err)
			}
		})
	}
}

func TestCheckAvailability_Weekdays(t *testing.T) {
	res := weekdayResource()

	// 2025-01-11 é sábado
	saturday := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	err := CheckAvailability(res, saturday, mustClock(t, "10:00"), mustClock(t, "11:00"))
	if !httperr.IsKind(err, httperr.KindAvailability) {
		t.Fatalf("expected availability error on saturday, got %v", err)
	}
	if err.Error() != "resource unavailable on saturday" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	t.Run("empty set allows every weekday", func(t *testing.T) {
		open := weekdayResource()
		open.Weekdays = ""
		if err := CheckAvailability(open, saturday, mustClock(t, "10:00"), mustClock(t, "11:00")); err != nil {
			t.Fatalf("expected pass with empty weekday set, got %v", err)
		}
	})

	t.Run("stored names compare case-insensitively", func(t *testing.T) {
		mixed := weekdayResource()
		mixed.Weekdays = "Saturday, Sunday"
		if err := CheckAvailability(mixed, saturday, mustClock(t, "10:00"), mustClock(t, "11:00")); err != nil {
			t.Fatalf("expected saturday to pass, got %v", err)
		}
	})
}

func TestCheckAvailability_CheckOrder(t *testing.T) {
	res := weekdayResource()

	// sábado fora da janela de datas E fora do horário: a violação de data
	// vem primeiro
	outside := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	err := CheckAvailability(res, outside, mustClock(t, "06:00"), mustClock(t, "07:00"))
	if err == nil || err.Error() != "date outside resource window" {
		t.Fatalf("expected date window violation first, got %v", err)
	}
}
