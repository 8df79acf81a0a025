package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/cowork/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive text menu covering all operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := services.Init.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}
		return runMenu(services, bufio.NewReader(os.Stdin))
	},
}

func runMenu(services *wiring.AppServices, reader *bufio.Reader) error {
	for {
		fmt.Println("\n--- Coworking Space ---")
		fmt.Println(" 1. Register client")
		fmt.Println(" 2. List clients")
		fmt.Println(" 3. Book room")
		fmt.Println(" 4. Buy product")
		fmt.Println(" 5. Pay renewal debt")
		fmt.Println(" 6. Cancel membership")
		fmt.Println(" 7. Restock product")
		fmt.Println(" 8. Statistics")
		fmt.Println(" 9. Run monthly renewals")
		fmt.Println("10. Sales history")
		fmt.Println("11. Exit")

		fmt.Print("  Option: ")
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			fmt.Println()
			return nil
		}
		choice := strings.TrimSpace(line)

		var err error
		switch choice {
		case "1":
			err = menuRegister(services, reader)
		case "2":
			err = menuListClients(services)
		case "3":
			err = menuBook(services, reader)
		case "4":
			err = menuBuy(services, reader)
		case "5":
			err = menuPay(services, reader)
		case "6":
			err = menuCancel(services, reader)
		case "7":
			err = menuRestock(services, reader)
		case "8":
			err = statsCmd.RunE(statsCmd, nil)
		case "9":
			err = billingRenewAllCmd.RunE(billingRenewAllCmd, nil)
		case "10":
			_, err = printSales(services.Stats, 0)
		case "11":
			fmt.Println("Goodbye.")
			return nil
		default:
			fmt.Println("Unknown option.")
			continue
		}

		if err != nil {
			printMenuError(err)
		}
	}
}

func menuRegister(services *wiring.AppServices, reader *bufio.Reader) error {
	id := prompt(reader, "Client ID", "")
	name := prompt(reader, "Name", "")
	email := prompt(reader, "Email", "")

	fmt.Println("  Plans:")
	for _, p := range membership.Plans() {
		fmt.Printf("    %s: $%.2f/month, %d visits, %.0f%% product discount\n",
			p.Tier, p.MonthlyPrice, p.IncludedVisits, p.ProductDiscountPct)
	}
	tier := prompt(reader, "Plan", string(membership.TierBasic))

	client, err := services.Clients.Register(id, name, email, membership.Tier(tier))
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s on plan %s.\n", client.Name, client.Plan.Name)
	return nil
}

func menuListClients(services *wiring.AppServices) error {
	return clientListCmd.RunE(clientListCmd, nil)
}

func menuBook(services *wiring.AppServices, reader *bufio.Reader) error {
	rooms, err := services.Bookings.Rooms()
	if err != nil {
		return err
	}
	fmt.Println("  Rooms:")
	for _, r := range rooms {
		fmt.Printf("    %s: %s (capacity %d)\n", r.ID, r.Name, r.Capacity)
	}

	clientID := prompt(reader, "Client ID", "")
	roomID := prompt(reader, "Room ID", "")
	inHoursStr := prompt(reader, "Start in how many hours", "0")
	durationStr := prompt(reader, "Duration (hours)", "1")

	inHours, _ := strconv.Atoi(inHoursStr)
	duration, _ := strconv.Atoi(durationStr)
	start := time.Now().Add(time.Duration(inHours) * time.Hour)

	booking, err := services.Bookings.Book(clientID, roomID, start, duration)
	if err != nil {
		return err
	}
	fmt.Printf("Booked %s: %s - %s.\n",
		booking.ID, booking.Start.Format("2006-01-02 15:04"), booking.End.Format("15:04"))
	return nil
}

func menuBuy(services *wiring.AppServices, reader *bufio.Reader) error {
	products, err := services.Inventory.Products()
	if err != nil {
		return err
	}
	fmt.Println("  Products:")
	for _, p := range products {
		fmt.Printf("    %s: %s - $%.2f (%d in stock)\n", p.ID, p.Name, p.UnitPrice, p.Stock)
	}

	clientID := prompt(reader, "Client ID", "")
	productID := prompt(reader, "Product ID", "")
	qtyStr := prompt(reader, "Quantity", "1")
	qty, _ := strconv.Atoi(qtyStr)

	record, err := services.Inventory.Purchase(clientID, productID, qty)
	if err != nil {
		return err
	}
	fmt.Printf("Sold %d x %s for $%.2f.\n", record.Quantity, record.Product, record.Total)
	return nil
}

func menuPay(services *wiring.AppServices, reader *bufio.Reader) error {
	clientID := prompt(reader, "Client ID", "")
	amountStr := prompt(reader, "Amount", "")
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", amountStr)
	}

	remaining, err := services.Billing.Pay(clientID, amount)
	if err != nil {
		return err
	}
	if remaining > 0 {
		fmt.Printf("Payment accepted; $%.2f still outstanding.\n", remaining)
	} else {
		fmt.Println("Debt settled; membership active.")
	}
	return nil
}

func menuCancel(services *wiring.AppServices, reader *bufio.Reader) error {
	clientID := prompt(reader, "Client ID", "")

	result, err := services.Billing.Cancel(clientID)
	if err != nil {
		return err
	}
	if result.AlreadyInactive {
		fmt.Println("Membership was already inactive; nothing to do.")
		return nil
	}
	fmt.Printf("Membership cancelled (final charge $%.2f).\n", result.Charged)
	return nil
}

func menuRestock(services *wiring.AppServices, reader *bufio.Reader) error {
	productID := prompt(reader, "Product ID", "")
	qtyStr := prompt(reader, "Units to add", "")
	qty, _ := strconv.Atoi(qtyStr)

	newStock, err := services.Inventory.Restock(productID, qty)
	if err != nil {
		return err
	}
	fmt.Printf("Restocked; %d now in stock.\n", newStock)
	return nil
}

func printMenuError(err error) {
	mapped := MapError(err)
	var cliErr *CLIError
	if errors.As(mapped, &cliErr) {
		fmt.Printf("Error: %s\n", cliErr.Message)
		if cliErr.Hint != "" {
			fmt.Printf("Hint: %s\n", cliErr.Hint)
		}
		return
	}
	fmt.Printf("Error: %v\n", mapped)
}

func prompt(reader *bufio.Reader, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("  %s [%s]: ", label, defaultVal)
	} else {
		fmt.Printf("  %s: ", label)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	return input
}

func init() {
	RootCmd.AddCommand(menuCmd)
}
