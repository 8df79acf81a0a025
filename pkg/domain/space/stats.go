package space

import (
	"sort"

	"github.com/felixgeelhaar/cowork/pkg/domain/sales"
)

// DefaultLowStockThreshold flags products running low in statistics.
const DefaultLowStockThreshold = 10

// Stats is a point-in-time aggregation over the space and its ledger.
type Stats struct {
	TotalClients    int
	ActiveClients   int
	TotalBookings   int
	ClientsByPlan   map[string]int
	InventoryValue  float64
	LowStock        []string
	SalesTotal      float64
	SalesByType     map[sales.Type]float64
	LedgerEntries   int
	LowStockLimit   int
}

// Statistics aggregates client counts, inventory value, low-stock products
// and ledger totals. The full ledger is re-read from storage on every call.
func (s *Space) Statistics(ledger sales.Ledger, lowStockThreshold int) (Stats, error) {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	stats := Stats{
		TotalClients:  len(s.clients),
		TotalBookings: len(s.bookings),
		ClientsByPlan: make(map[string]int),
		LowStockLimit: lowStockThreshold,
	}

	for _, id := range s.clientOrder {
		client := s.clients[id]
		if client.Active() {
			stats.ActiveClients++
		}
		stats.ClientsByPlan[client.Plan.Name]++
	}

	for _, p := range s.Products() {
		stats.InventoryValue += p.UnitPrice * float64(p.Stock)
		if p.Stock < lowStockThreshold {
			stats.LowStock = append(stats.LowStock, p.Name)
		}
	}
	sort.Strings(stats.LowStock)

	entries, err := ledger.All()
	if err != nil {
		return Stats{}, err
	}
	stats.LedgerEntries = len(entries)
	stats.SalesTotal, stats.SalesByType = sales.TotalsByType(entries)

	return stats, nil
}
