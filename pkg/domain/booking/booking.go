package booking

import (
	"fmt"
	"time"
)

// Booking is an immutable record linking a client, a room and an interval.
type Booking struct {
	ID            string
	ClientID      string
	RoomID        string
	Start         time.Time
	DurationHours int
	End           time.Time
}

// NewBooking creates a validated booking. End is derived from the duration.
func NewBooking(id, clientID, roomID string, start time.Time, durationHours int) (Booking, error) {
	if id == "" {
		return Booking{}, fmt.Errorf("booking ID must not be empty")
	}
	if durationHours <= 0 {
		return Booking{}, fmt.Errorf("booking duration must be > 0 hours")
	}
	return Booking{
		ID:            id,
		ClientID:      clientID,
		RoomID:        roomID,
		Start:         start,
		DurationHours: durationHours,
		End:           start.Add(time.Duration(durationHours) * time.Hour),
	}, nil
}

// Interval returns the half-open interval the booking occupies.
func (b Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}
