package cli

import (
	"fmt"
	"sort"

	"github.com/felixgeelhaar/cowork/pkg/domain/sales"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workspace statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		stats, err := services.Stats.Statistics()
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Clients: %d total, %d active\n", stats.TotalClients, stats.ActiveClients)

		plans := make([]string, 0, len(stats.ClientsByPlan))
		for plan := range stats.ClientsByPlan {
			plans = append(plans, plan)
		}
		sort.Strings(plans)
		for _, plan := range plans {
			fmt.Printf("  %s: %d\n", plan, stats.ClientsByPlan[plan])
		}

		fmt.Printf("Bookings: %d\n", stats.TotalBookings)
		fmt.Printf("Inventory value: $%.2f\n", stats.InventoryValue)
		if len(stats.LowStock) > 0 {
			fmt.Printf("Low stock (below %d units):\n", stats.LowStockLimit)
			for _, name := range stats.LowStock {
				fmt.Printf("  %s\n", name)
			}
		}

		fmt.Printf("Sales: %d entries, $%.2f total\n", stats.LedgerEntries, stats.SalesTotal)
		types := make([]string, 0, len(stats.SalesByType))
		for t := range stats.SalesByType {
			types = append(types, string(t))
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  %s: $%.2f\n", t, stats.SalesByType[sales.Type(t)])
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
