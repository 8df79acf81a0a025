package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Manage renewals, debt payments and cancellations",
}

var billingPayCmd = &cobra.Command{
	Use:   "pay [client-id]",
	Short: "Pay down a client's renewal debt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		clientID := args[0]
		remaining, err := services.Billing.Pay(clientID, payAmount)
		if err != nil {
			return MapError(err)
		}

		if remaining > 0 {
			fmt.Printf("Payment accepted for %s: $%.2f still outstanding\n", clientID, remaining)
		} else {
			fmt.Printf("Payment accepted for %s: debt settled, membership active\n", clientID)
		}
		return nil
	},
}

var billingCancelCmd = &cobra.Command{
	Use:   "cancel [client-id]",
	Short: "Cancel a client's membership",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		clientID := args[0]
		result, err := services.Billing.Cancel(clientID)
		if err != nil {
			return MapError(err)
		}

		if result.AlreadyInactive {
			fmt.Printf("Membership of %s was already inactive; nothing to do\n", clientID)
			return nil
		}
		fmt.Printf("Cancelled membership of %s (final charge $%.2f)\n", clientID, result.Charged)
		return nil
	},
}

var billingRenewAllCmd = &cobra.Command{
	Use:   "renew-all",
	Short: "Run the monthly renewal cycle for all active clients",
	Long: `Run the monthly renewal cycle. Each active client is charged their
plan price. Clients whose accumulated debt reaches the plan ceiling are
suspended until they pay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		notices, err := services.Billing.RenewAll()
		if err != nil {
			return MapError(err)
		}

		if len(notices) == 0 {
			fmt.Println("No active clients to renew.")
			return nil
		}

		renewed := 0
		for _, n := range notices {
			if n.Suspended {
				fmt.Printf("  %s (%s): SUSPENDED, debt $%.2f\n", n.ClientID, n.ClientName, n.Debt)
			} else {
				renewed++
			}
		}
		fmt.Printf("Renewed %d of %d clients\n", renewed, len(notices))
		return nil
	},
}

var payAmount float64

func init() {
	billingPayCmd.Flags().Float64Var(&payAmount, "amount", 0, "Payment amount")
	billingPayCmd.MarkFlagRequired("amount")

	billingCmd.AddCommand(billingPayCmd)
	billingCmd.AddCommand(billingCancelCmd)
	billingCmd.AddCommand(billingRenewAllCmd)
	RootCmd.AddCommand(billingCmd)
}
