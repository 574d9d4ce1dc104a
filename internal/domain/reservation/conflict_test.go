package reservation

import (
	"testing"
	"time"

	"github.com/empresatech/resource-booking/internal/models"
)

func mustClock(t *testing.T, hm string) int {
	t.Helper()
	m, err := ParseClock(hm)
	if err != nil {
		t.Fatalf("ParseClock(%q) failed: %v", hm, err)
	}
	return m
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		existing [2]string
		proposed [2]string
		want     bool
	}{
		{"identical ranges", [2]string{"10:00", "11:00"}, [2]string{"10:00", "11:00"}, true},
		{"new starts inside existing", [2]string{"14:00", "15:00"}, [2]string{"14:30", "15:30"}, true},
		{"new ends inside existing", [2]string{"14:00", "15:00"}, [2]string{"13:30", "14:30"}, true},
		{"existing fully inside new", [2]string{"10:00", "10:30"}, [2]string{"09:00", "12:00"}, true},
		{"new fully inside existing", [2]string{"09:00", "12:00"}, [2]string{"10:00", "10:30"}, true},
		{"back to back, existing first", [2]string{"10:00", "11:00"}, [2]string{"11:00", "12:00"}, false},
		{"back to back, new first", [2]string{"11:00", "12:00"}, [2]string{"10:00", "11:00"}, false},
		{"fully disjoint before", [2]string{"08:00", "09:00"}, [2]string{"10:00", "11:00"}, false},
		{"fully disjoint after", [2]string{"16:00", "17:00"}, [2]string{"10:00", "11:00"}, false},
		{"one minute of overlap", [2]string{"10:00", "11:00"}, [2]string{"10:59", "12:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				mustClock(t, tt.existing[0]), mustClock(t, tt.existing[1]),
				mustClock(t, tt.proposed[0]), mustClock(t, tt.proposed[1]),
			)
			if got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.existing, tt.proposed, got, tt.want)
			}
		})
	}
}

func TestFilterConflicts(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	cancelled := date

	candidates := []models.Reservation{
		{ID: 7, Date: date, TimeStart: "14:00", TimeEnd: "15:00"},
		{ID: 8, Date: date, TimeStart: "16:00", TimeEnd: "17:00"},
		{ID: 9, Date: date, TimeStart: "14:00", TimeEnd: "15:00", CancelledOn: &cancelled},
	}

	t.Run("overlapping request conflicts", func(t *testing.T) {
		got := FilterConflicts(candidates, mustClock(t, "14:30"), mustClock(t, "15:30"), 0)
		if len(got) != 1 || got[0].ID != 7 {
			t.Fatalf("expected conflict with reservation 7, got %v", got)
		}
	})

	t.Run("cancelled reservations never conflict", func(t *testing.T) {
		onlyCancelled := []models.Reservation{candidates[2]}
		got := FilterConflicts(onlyCancelled, mustClock(t, "14:00"), mustClock(t, "15:00"), 0)
		if len(got) != 0 {
			t.Fatalf("expected no conflicts, got %v", got)
		}
	})

	t.Run("editing excludes the reservation itself", func(t *testing.T) {
		// remarcar a reserva 7 para exatamente o mesmo horário não pode
		// conflitar com ela mesma
		got := FilterConflicts(candidates, mustClock(t, "14:00"), mustClock(t, "15:00"), 7)
		if len(got) != 0 {
			t.Fatalf("expected no conflicts when excluding id 7, got %v", got)
		}
	})

	t.Run("back to back slot is free", func(t *testing.T) {
		got := FilterConflicts(candidates, mustClock(t, "15:00"), mustClock(t, "16:00"), 0)
		if len(got) != 0 {
			t.Fatalf("expected no conflicts, got %v", got)
		}
	})
}
