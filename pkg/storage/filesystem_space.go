package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/felixgeelhaar/cowork/pkg/domain/booking"
	"github.com/felixgeelhaar/cowork/pkg/domain/inventory"
	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
	"github.com/felixgeelhaar/cowork/pkg/domain/space"
)

// Document records use the legacy field names so existing data directories
// keep loading. Timestamps are stored as strings because legacy writers
// emitted ISO-8601 without a zone offset.

type purchaseRecord struct {
	Date      string  `json:"fecha"`
	Product   string  `json:"producto"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio_unitario"`
	Discount  float64 `json:"descuento"`
	Total     float64 `json:"total"`
}

type clientRecord struct {
	ID         string           `json:"id_cliente"`
	Name       string           `json:"nombre"`
	Email      string           `json:"correo"`
	PlanTier   string           `json:"membresia_tipo"`
	Active     bool             `json:"activo"`
	VisitsUsed int              `json:"entradas_usadas"`
	Debt       float64          `json:"deuda_renovacion"`
	LastVisit  string           `json:"fecha_ultimo_uso"`
	Purchases  []purchaseRecord `json:"compras"`
}

type productRecord struct {
	ID    string  `json:"id_producto"`
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
	Stock int     `json:"stock"`
}

type roomRecord struct {
	ID       string `json:"id_sala"`
	Name     string `json:"nombre"`
	Capacity int    `json:"capacidad"`
}

type bookingRecord struct {
	ID            string `json:"id_reserva"`
	ClientID      string `json:"cliente_id"`
	RoomID        string `json:"sala_id"`
	Start         string `json:"inicio"`
	DurationHours int    `json:"duracion_horas"`
}

// timestampLayouts covers RFC3339 and the zone-less ISO-8601 forms legacy
// writers produced.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// LoadSpace assembles the space from the persisted documents. If neither
// the clients nor the products document exists, the default products are
// seeded; rooms seed whenever no rooms document exists. Malformed documents
// degrade to empty collections with a warning, never a hard failure.
func (r *FilesystemRepository) LoadSpace() (*space.Space, error) {
	sp := space.New()

	clientsFound := r.loadClients(sp)
	productsFound := r.loadProducts(sp)

	if !clientsFound && !productsFound {
		sp.SeedProducts()
	}
	if !r.loadRooms(sp) {
		sp.SeedRooms()
	}
	r.loadBookings(sp)

	return sp, nil
}

func (r *FilesystemRepository) loadClients(sp *space.Space) bool {
	data, err := r.readDocument(ClientsFile)
	if err != nil || data == nil {
		return false
	}
	if err := validateClientsDocument(data); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", ClientsFile, err)
		return false
	}

	var records []clientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", ClientsFile, err)
		return false
	}

	for _, rec := range records {
		tier := membership.Tier(rec.PlanTier)
		if !tier.IsValid() {
			fmt.Fprintf(os.Stderr, "Warning: client %s has unknown plan tag %q, using Basic\n", rec.ID, rec.PlanTier)
		}
		client, err := membership.NewClient(rec.ID, rec.Name, rec.Email, membership.PlanFor(tier))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping client record: %v\n", err)
			continue
		}
		client.Status = statusFromRecord(rec)
		client.VisitsUsed = rec.VisitsUsed
		client.Debt = rec.Debt
		client.LastVisitAt = parseTimestamp(rec.LastVisit)
		for _, p := range rec.Purchases {
			client.Purchases = append(client.Purchases, membership.PurchaseRecord{
				Timestamp: parseTimestamp(p.Date),
				Product:   p.Product,
				Quantity:  p.Quantity,
				UnitPrice: p.UnitPrice,
				Discount:  p.Discount,
				Total:     p.Total,
			})
		}
		if err := sp.AddClient(client); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping client %s: %v\n", rec.ID, err)
		}
	}
	return true
}

// statusFromRecord maps the persisted active flag back onto the lifecycle.
// The flag does not distinguish suspension from cancellation; an inactive
// client at or over the ceiling is treated as suspended, below it as
// cancelled. Both block identically and both reactivate on payment.
func statusFromRecord(rec clientRecord) membership.Status {
	if rec.Active {
		return membership.StatusActive
	}
	plan := membership.PlanFor(membership.Tier(rec.PlanTier))
	if rec.Debt >= plan.DebtCeiling {
		return membership.StatusSuspended
	}
	return membership.StatusCancelled
}

func (r *FilesystemRepository) loadProducts(sp *space.Space) bool {
	data, err := r.readDocument(ProductsFile)
	if err != nil || data == nil {
		return false
	}
	if err := validateProductsDocument(data); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", ProductsFile, err)
		return false
	}

	var records []productRecord
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", ProductsFile, err)
		return false
	}

	for _, rec := range records {
		product, err := inventory.NewProduct(rec.ID, rec.Name, rec.Price, rec.Stock)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping product record: %v\n", err)
			continue
		}
		if err := sp.AddProduct(product); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping product %s: %v\n", rec.ID, err)
		}
	}
	return true
}

func (r *FilesystemRepository) loadRooms(sp *space.Space) bool {
	data, err := r.readDocument(RoomsFile)
	if err != nil || data == nil {
		return false
	}

	var records []roomRecord
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", RoomsFile, err)
		return false
	}

	for _, rec := range records {
		room, err := booking.NewRoom(rec.ID, rec.Name, rec.Capacity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping room record: %v\n", err)
			continue
		}
		if err := sp.AddRoom(room); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping room %s: %v\n", rec.ID, err)
		}
	}
	return len(records) > 0
}

func (r *FilesystemRepository) loadBookings(sp *space.Space) {
	data, err := r.readDocument(BookingsFile)
	if err != nil || data == nil {
		return
	}

	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", BookingsFile, err)
		return
	}

	for _, rec := range records {
		b, err := booking.NewBooking(rec.ID, rec.ClientID, rec.RoomID, parseTimestamp(rec.Start), rec.DurationHours)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping booking record: %v\n", err)
			continue
		}
		if err := sp.RestoreBooking(b); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping booking %s: %v\n", rec.ID, err)
		}
	}
}

// SaveSpace rewrites the client, product, room and booking documents in full.
func (r *FilesystemRepository) SaveSpace(sp *space.Space) error {
	if err := r.Initialize(); err != nil {
		return err
	}

	clients := make([]clientRecord, 0, len(sp.Clients()))
	for _, c := range sp.Clients() {
		rec := clientRecord{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			PlanTier:   c.Plan.Tier.String(),
			Active:     c.Active(),
			VisitsUsed: c.VisitsUsed,
			Debt:       c.Debt,
			LastVisit:  formatTimestamp(c.LastVisitAt),
			Purchases:  make([]purchaseRecord, 0, len(c.Purchases)),
		}
		for _, p := range c.Purchases {
			rec.Purchases = append(rec.Purchases, purchaseRecord{
				Date:      formatTimestamp(p.Timestamp),
				Product:   p.Product,
				Quantity:  p.Quantity,
				UnitPrice: p.UnitPrice,
				Discount:  p.Discount,
				Total:     p.Total,
			})
		}
		clients = append(clients, rec)
	}
	if err := r.writeJSON(ClientsFile, clients); err != nil {
		return err
	}

	products := make([]productRecord, 0)
	for _, p := range sp.Products() {
		products = append(products, productRecord{ID: p.ID, Name: p.Name, Price: p.UnitPrice, Stock: p.Stock})
	}
	if err := r.writeJSON(ProductsFile, products); err != nil {
		return err
	}

	rooms := make([]roomRecord, 0)
	for _, room := range sp.Rooms() {
		rooms = append(rooms, roomRecord{ID: room.ID, Name: room.Name, Capacity: room.Capacity})
	}
	if err := r.writeJSON(RoomsFile, rooms); err != nil {
		return err
	}

	bookings := make([]bookingRecord, 0)
	for _, b := range sp.Bookings() {
		bookings = append(bookings, bookingRecord{
			ID:            b.ID,
			ClientID:      b.ClientID,
			RoomID:        b.RoomID,
			Start:         formatTimestamp(b.Start),
			DurationHours: b.DurationHours,
		})
	}
	return r.writeJSON(BookingsFile, bookings)
}

func (r *FilesystemRepository) writeJSON(filename string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filename, err)
	}
	return r.writeDocument(filename, data)
}
