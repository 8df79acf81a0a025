package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product inventory",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products and stock levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		products, err := services.Inventory.Products()
		if err != nil {
			return MapError(err)
		}

		if len(products) == 0 {
			fmt.Println("No products in the inventory. Run 'cowork init' to seed the defaults.")
			return nil
		}

		fmt.Printf("Products (%d):\n", len(products))
		for _, p := range products {
			lowMark := ""
			if p.Stock < services.Config.LowStockThreshold {
				lowMark = " (low stock)"
			}
			fmt.Printf("  %s: %s - $%.2f, %d in stock%s\n", p.ID, p.Name, p.UnitPrice, p.Stock, lowMark)
		}
		return nil
	},
}

var productBuyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Sell a product to a client",
	Long: `Sell a product to a client. The client's plan discount is applied
per unit and the sale is recorded in the ledger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		record, err := services.Inventory.Purchase(buyClientID, buyProductID, buyQty)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Sold %d x %s to %s: $%.2f", record.Quantity, record.Product, buyClientID, record.Total)
		if record.Discount > 0 {
			fmt.Printf(" (discount $%.2f)", record.Discount)
		}
		fmt.Println()
		return nil
	},
}

var productRestockCmd = &cobra.Command{
	Use:   "restock",
	Short: "Add units to a product's stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		newStock, err := services.Inventory.Restock(restockProductID, restockQty)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Restocked %s: now %d in stock\n", restockProductID, newStock)
		return nil
	},
}

var buyClientID string
var buyProductID string
var buyQty int

var restockProductID string
var restockQty int

func init() {
	productBuyCmd.Flags().StringVar(&buyClientID, "client", "", "Client ID")
	productBuyCmd.Flags().StringVar(&buyProductID, "product", "", "Product ID (e.g., P1)")
	productBuyCmd.Flags().IntVar(&buyQty, "qty", 1, "Number of units")
	productBuyCmd.MarkFlagRequired("client")
	productBuyCmd.MarkFlagRequired("product")

	productRestockCmd.Flags().StringVar(&restockProductID, "product", "", "Product ID (e.g., P1)")
	productRestockCmd.Flags().IntVar(&restockQty, "qty", 0, "Units to add")
	productRestockCmd.MarkFlagRequired("product")
	productRestockCmd.MarkFlagRequired("qty")

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productBuyCmd)
	productCmd.AddCommand(productRestockCmd)
	RootCmd.AddCommand(productCmd)
}
