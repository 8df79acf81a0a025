package cli

import (
	"fmt"

	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
	"github.com/spf13/cobra"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage coworking clients",
}

var clientRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new client on a membership plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		client, err := services.Clients.Register(clientID, clientName, clientEmail, membership.Tier(clientPlan))
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Registered client: %s (%s) on plan %s - $%.2f/month, %d visits\n",
			client.ID, client.Name, client.Plan.Name, client.Plan.MonthlyPrice, client.Plan.IncludedVisits)
		return nil
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		clients, err := services.Clients.List()
		if err != nil {
			return MapError(err)
		}

		if len(clients) == 0 {
			fmt.Println("No clients registered. Use 'cowork client register' to add one.")
			return nil
		}

		fmt.Printf("Clients (%d):\n", len(clients))
		for _, c := range clients {
			statusMark := ""
			if c.Status != membership.StatusActive {
				statusMark = fmt.Sprintf(" [%s]", c.Status)
			}
			debtMark := ""
			if c.Debt > 0 {
				debtMark = fmt.Sprintf(", debt $%.2f", c.Debt)
			}
			fmt.Printf("  %s: %s <%s> - %s, %d/%d visits%s%s\n",
				c.ID, c.Name, c.Email, c.Plan.Name, c.VisitsUsed, c.Plan.IncludedVisits, debtMark, statusMark)
		}
		return nil
	},
}

var clientID string
var clientName string
var clientEmail string
var clientPlan string

func init() {
	clientRegisterCmd.Flags().StringVar(&clientID, "id", "", "Client ID (e.g., C1)")
	clientRegisterCmd.Flags().StringVar(&clientName, "name", "", "Client name")
	clientRegisterCmd.Flags().StringVar(&clientEmail, "email", "", "Client email address")
	clientRegisterCmd.Flags().StringVar(&clientPlan, "plan", string(membership.TierBasic), "Membership plan (Basica, Estandar, Premium, Estudiante)")
	clientRegisterCmd.MarkFlagRequired("id")
	clientRegisterCmd.MarkFlagRequired("name")

	clientCmd.AddCommand(clientRegisterCmd)
	clientCmd.AddCommand(clientListCmd)
	RootCmd.AddCommand(clientCmd)
}
