package wiring

import (
	"github.com/felixgeelhaar/cowork/internal/infrastructure/config"
	"github.com/felixgeelhaar/cowork/pkg/application"
)

// AppServices holds the fully wired application services for one workspace.
type AppServices struct {
	Workspace *Workspace
	Config    *config.Config
	Init      *application.InitService
	Clients   *application.ClientService
	Bookings  *application.BookingService
	Inventory *application.InventoryService
	Billing   *application.BillingService
	Stats     *application.StatsService
}

// BuildAppServices constructs the service graph for the workspace rooted at
// the given directory. A broken config file degrades to the defaults; the
// services are still returned alongside the error.
func BuildAppServices(root string) (*AppServices, error) {
	ws := NewWorkspace(root)

	cfg, cfgErr := config.Load(root)
	if cfg == nil {
		cfg = &config.Config{
			Currency:          config.DefaultCurrency,
			LowStockThreshold: config.DefaultLowStockThreshold,
		}
	}

	return &AppServices{
		Workspace: ws,
		Config:    cfg,
		Init:      application.NewInitService(ws.Repo, ws.Audit),
		Clients:   application.NewClientService(ws.Repo, ws.Audit),
		Bookings:  application.NewBookingService(ws.Repo, ws.Audit),
		Inventory: application.NewInventoryService(ws.Repo, ws.Ledger, ws.Audit),
		Billing:   application.NewBillingService(ws.Repo, ws.Ledger, ws.Audit),
		Stats:     application.NewStatsService(ws.Repo, ws.Ledger, cfg.LowStockThreshold),
	}, cfgErr
}
