// Package space provides the aggregate root of the coworking domain. A
// Space owns all clients, rooms, products and bookings by id and
// orchestrates the cross-entity operations, appending every monetary event
// to an injected sales ledger.
package space

import (
	"fmt"
	"sort"
	"time"

	"github.com/felixgeelhaar/cowork/pkg/domain/booking"
	"github.com/felixgeelhaar/cowork/pkg/domain/inventory"
	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
	"github.com/felixgeelhaar/cowork/pkg/domain/sales"
)

// Space is the aggregate root. It is constructed empty and populated either
// from persisted documents or from the default seed. All operations are
// synchronous mutations of the in-memory maps.
type Space struct {
	clients      map[string]*membership.Client
	clientOrder  []string
	rooms        map[string]*booking.Room
	products     map[string]*inventory.Product
	bookings     map[string]booking.Booking
	bookingOrder []string
	nextBooking  int
}

// New creates an empty space.
func New() *Space {
	return &Space{
		clients:     make(map[string]*membership.Client),
		rooms:       make(map[string]*booking.Room),
		products:    make(map[string]*inventory.Product),
		bookings:    make(map[string]booking.Booking),
		nextBooking: 1,
	}
}

// AddClient registers a client. Ids are unique.
func (s *Space) AddClient(c *membership.Client) error {
	if _, exists := s.clients[c.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateClient, c.ID)
	}
	s.clients[c.ID] = c
	s.clientOrder = append(s.clientOrder, c.ID)
	return nil
}

// AddRoom registers a room. Ids are unique.
func (s *Space) AddRoom(r *booking.Room) error {
	if _, exists := s.rooms[r.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRoom, r.ID)
	}
	s.rooms[r.ID] = r
	return nil
}

// AddProduct registers a product. Ids are unique.
func (s *Space) AddProduct(p *inventory.Product) error {
	if _, exists := s.products[p.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
	}
	s.products[p.ID] = p
	return nil
}

// Client resolves a client by id.
func (s *Space) Client(id string) (*membership.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrClientNotFound, id)
	}
	return c, nil
}

// Room resolves a room by id.
func (s *Space) Room(id string) (*booking.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return r, nil
}

// Product resolves a product by id.
func (s *Space) Product(id string) (*inventory.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

// Clients returns all clients in registration order.
func (s *Space) Clients() []*membership.Client {
	out := make([]*membership.Client, 0, len(s.clientOrder))
	for _, id := range s.clientOrder {
		out = append(out, s.clients[id])
	}
	return out
}

// Rooms returns all rooms sorted by id.
func (s *Space) Rooms() []*booking.Room {
	out := make([]*booking.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Products returns all products sorted by id.
func (s *Space) Products() []*inventory.Product {
	out := make([]*inventory.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Bookings returns all bookings in creation order.
func (s *Space) Bookings() []booking.Booking {
	out := make([]booking.Booking, 0, len(s.bookingOrder))
	for _, id := range s.bookingOrder {
		out = append(out, s.bookings[id])
	}
	return out
}

// NextBookingSeq returns the monotonically increasing booking counter.
func (s *Space) NextBookingSeq() int {
	return s.nextBooking
}

// RestoreBooking re-registers a persisted booking: it is indexed, committed
// to its room's intervals, attached to its client and the id counter is
// advanced past it.
func (s *Space) RestoreBooking(b booking.Booking) error {
	room, err := s.Room(b.RoomID)
	if err != nil {
		return err
	}
	client, err := s.Client(b.ClientID)
	if err != nil {
		return err
	}
	if _, exists := s.bookings[b.ID]; exists {
		return fmt.Errorf("booking %s already exists", b.ID)
	}
	s.bookings[b.ID] = b
	s.bookingOrder = append(s.bookingOrder, b.ID)
	room.Commit(b.Interval())
	client.BookingIDs = append(client.BookingIDs, b.ID)

	var seq int
	if _, err := fmt.Sscanf(b.ID, "R%d", &seq); err == nil && seq >= s.nextBooking {
		s.nextBooking = seq + 1
	}
	return nil
}

// BookRoom books a room for a client. The room is resolved and its
// availability verified before the client's visit is consumed, so a failed
// booking leaves the client untouched.
func (s *Space) BookRoom(clientID, roomID string, start time.Time, durationHours int) (booking.Booking, error) {
	client, err := s.Client(clientID)
	if err != nil {
		return booking.Booking{}, err
	}
	room, err := s.Room(roomID)
	if err != nil {
		return booking.Booking{}, err
	}
	if durationHours <= 0 {
		return booking.Booking{}, fmt.Errorf("booking duration must be > 0 hours")
	}
	if !room.IsAvailable(start, durationHours) {
		return booking.Booking{}, fmt.Errorf("%w: %s", ErrRoomUnavailable, room.Name)
	}
	if err := client.ConsumeVisit(); err != nil {
		return booking.Booking{}, err
	}

	b, err := booking.NewBooking(fmt.Sprintf("R%d", s.nextBooking), clientID, roomID, start, durationHours)
	if err != nil {
		return booking.Booking{}, err
	}
	s.bookings[b.ID] = b
	s.bookingOrder = append(s.bookingOrder, b.ID)
	room.Commit(b.Interval())
	client.BookingIDs = append(client.BookingIDs, b.ID)
	s.nextBooking++

	return b, nil
}

// PurchaseProduct sells qty units of a product to a client and appends the
// sale to the ledger.
func (s *Space) PurchaseProduct(ledger sales.Ledger, clientID, productID string, qty int) (membership.PurchaseRecord, error) {
	client, err := s.Client(clientID)
	if err != nil {
		return membership.PurchaseRecord{}, err
	}
	product, err := s.Product(productID)
	if err != nil {
		return membership.PurchaseRecord{}, err
	}

	record, err := client.Purchase(product, qty)
	if err != nil {
		return membership.PurchaseRecord{}, err
	}

	entry := sales.NewEntry(sales.TypeProduct, clientID,
		fmt.Sprintf("%s x%d", product.Name, qty), record.Total)
	if err := ledger.Append(entry); err != nil {
		return record, fmt.Errorf("record sale: %w", err)
	}
	return record, nil
}

// Restock adds qty units to a product and returns the new stock level.
func (s *Space) Restock(productID string, qty int) (int, error) {
	product, err := s.Product(productID)
	if err != nil {
		return 0, err
	}
	if err := product.IncreaseStock(qty); err != nil {
		return product.Stock, err
	}
	return product.Stock, nil
}

// RenewalNotice reports the outcome of one client's renewal.
type RenewalNotice struct {
	ClientID   string
	ClientName string
	Suspended  bool
	Debt       float64
}

// RenewAll accrues one month of renewal debt on every active client, in
// registration order. Successful renewals are recorded in the ledger;
// suspensions are not.
func (s *Space) RenewAll(ledger sales.Ledger) ([]RenewalNotice, error) {
	var notices []RenewalNotice
	for _, id := range s.clientOrder {
		client := s.clients[id]
		if !client.Active() {
			continue
		}
		result := client.AccrueRenewal()
		if !result.Suspended {
			entry := sales.NewEntry(sales.TypeMembershipRenewal, client.ID,
				fmt.Sprintf("%s renewal", client.Plan.Name), client.Plan.MonthlyPrice)
			if err := ledger.Append(entry); err != nil {
				return notices, fmt.Errorf("record renewal: %w", err)
			}
		}
		notices = append(notices, RenewalNotice{
			ClientID:   client.ID,
			ClientName: client.Name,
			Suspended:  result.Suspended,
			Debt:       result.Debt,
		})
	}
	return notices, nil
}

// CancelMembership cancels a client's membership, billing the current
// period. Cancelling an already inactive membership is a no-op and records
// no sale.
func (s *Space) CancelMembership(ledger sales.Ledger, clientID string) (membership.CancelResult, error) {
	client, err := s.Client(clientID)
	if err != nil {
		return membership.CancelResult{}, err
	}

	result := client.Cancel()
	if result.AlreadyInactive {
		return result, nil
	}

	entry := sales.NewEntry(sales.TypeMembershipCancellation, clientID,
		fmt.Sprintf("%s cancellation", client.Plan.Name), result.Charged)
	if err := ledger.Append(entry); err != nil {
		return result, fmt.Errorf("record cancellation: %w", err)
	}
	return result, nil
}

// PayRenewal applies a debt payment and records it in the ledger. The entry
// is only written after the payment succeeded.
func (s *Space) PayRenewal(ledger sales.Ledger, clientID string, amount float64) (float64, error) {
	client, err := s.Client(clientID)
	if err != nil {
		return 0, err
	}

	remaining, err := client.PayDebt(amount)
	if err != nil {
		return remaining, err
	}

	entry := sales.NewEntry(sales.TypeRenewalPayment, clientID, "renewal debt payment", amount)
	if err := ledger.Append(entry); err != nil {
		return remaining, fmt.Errorf("record payment: %w", err)
	}
	return remaining, nil
}
