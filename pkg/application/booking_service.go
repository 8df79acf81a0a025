package application

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/cowork/pkg/domain"
	"github.com/felixgeelhaar/cowork/pkg/domain/booking"
)

type BookingService struct {
	repo  domain.SpaceRepository
	audit domain.AuditLogger
}

func NewBookingService(repo domain.SpaceRepository, audit domain.AuditLogger) *BookingService {
	return &BookingService{repo: repo, audit: audit}
}

// Book reserves a room for a client, consuming one of the client's included
// visits, and persists the result.
func (s *BookingService) Book(clientID, roomID string, start time.Time, durationHours int) (booking.Booking, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to load space: %w", err)
	}

	b, err := sp.BookRoom(clientID, roomID, start, durationHours)
	if err != nil {
		return booking.Booking{}, err
	}

	if err := s.repo.SaveSpace(sp); err != nil {
		return booking.Booking{}, fmt.Errorf("failed to save space: %w", err)
	}

	_ = s.audit.Log("room.booked", "operator", map[string]interface{}{
		"booking_id": b.ID,
		"client_id":  clientID,
		"room_id":    roomID,
		"hours":      durationHours,
	})

	return b, nil
}

// Rooms returns all rooms sorted by id.
func (s *BookingService) Rooms() ([]*booking.Room, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return nil, fmt.Errorf("failed to load space: %w", err)
	}
	return sp.Rooms(), nil
}

// Bookings returns all bookings in creation order.
func (s *BookingService) Bookings() ([]booking.Booking, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return nil, fmt.Errorf("failed to load space: %w", err)
	}
	return sp.Bookings(), nil
}
