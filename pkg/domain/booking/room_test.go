package booking

import (
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2026, 9, 1, hour, 0, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", Interval{at(10), at(12)}, Interval{at(10), at(12)}, true},
		{"partial overlap", Interval{at(10), at(12)}, Interval{at(11), at(13)}, true},
		{"contained", Interval{at(10), at(14)}, Interval{at(11), at(12)}, true},
		{"touching endpoints", Interval{at(10), at(12)}, Interval{at(12), at(14)}, false},
		{"disjoint", Interval{at(8), at(9)}, Interval{at(12), at(14)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewRoomValidation(t *testing.T) {
	if _, err := NewRoom("", "Small Room", 4); err == nil {
		t.Error("expected error for empty id")
	}
	if _, err := NewRoom("S1", "", 4); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewRoom("S1", "Small Room", 0); err == nil {
		t.Error("expected error for zero capacity")
	}
}

func TestRoomAvailability(t *testing.T) {
	room, err := NewRoom("S1", "Small Room", 4)
	if err != nil {
		t.Fatalf("NewRoom failed: %v", err)
	}
	room.Commit(Interval{Start: at(10), End: at(12)})

	if room.IsAvailable(at(11), 2) {
		t.Error("expected [11,13) to conflict with [10,12)")
	}
	if !room.IsAvailable(at(12), 2) {
		t.Error("expected [12,14) to be free, bookings are half-open")
	}
	if !room.IsAvailable(at(8), 2) {
		t.Error("expected [8,10) to be free")
	}
}

func TestNewBooking(t *testing.T) {
	b, err := NewBooking("R1", "C1", "S1", at(10), 2)
	if err != nil {
		t.Fatalf("NewBooking failed: %v", err)
	}
	if !b.End.Equal(at(12)) {
		t.Errorf("expected end at 12:00, got %v", b.End)
	}
	iv := b.Interval()
	if !iv.Start.Equal(at(10)) || !iv.End.Equal(at(12)) {
		t.Errorf("unexpected interval %+v", iv)
	}
}

func TestNewBookingRejectsNonPositiveDuration(t *testing.T) {
	if _, err := NewBooking("R1", "C1", "S1", at(10), 0); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := NewBooking("R1", "C1", "S1", at(10), -2); err == nil {
		t.Error("expected error for negative duration")
	}
}
