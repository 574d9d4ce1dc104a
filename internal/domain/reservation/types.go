package reservation

import "time"

type AvailabilityInput struct {
	ResourceID  uint
	Date        time.Time
	SlotMinutes int
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
