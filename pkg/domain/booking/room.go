// Package booking provides bookable rooms and the immutable booking
// records that tie a client to a room for a time interval.
package booking

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Room is a bookable resource holding the intervals it is committed to.
type Room struct {
	ID       string
	Name     string
	Capacity int
	Booked   []Interval
}

// NewRoom creates a validated room.
func NewRoom(id, name string, capacity int) (*Room, error) {
	if id == "" {
		return nil, fmt.Errorf("room ID must not be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("room name must not be empty")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("room capacity must be > 0")
	}
	return &Room{ID: id, Name: name, Capacity: capacity}, nil
}

// IsAvailable reports whether the room is free for the whole requested
// interval. Linear scan over committed intervals; the contract holds for
// any occupancy size.
func (r *Room) IsAvailable(start time.Time, durationHours int) bool {
	requested := Interval{Start: start, End: start.Add(time.Duration(durationHours) * time.Hour)}
	for _, booked := range r.Booked {
		if requested.Overlaps(booked) {
			return false
		}
	}
	return true
}

// Commit records an interval as taken.
func (r *Room) Commit(iv Interval) {
	r.Booked = append(r.Booked, iv)
}
