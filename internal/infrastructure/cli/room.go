package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Manage rooms and bookings",
}

var roomListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rooms and their bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		rooms, err := services.Bookings.Rooms()
		if err != nil {
			return MapError(err)
		}

		if len(rooms) == 0 {
			fmt.Println("No rooms configured. Run 'cowork init' to seed the defaults.")
			return nil
		}

		fmt.Printf("Rooms (%d):\n", len(rooms))
		for _, r := range rooms {
			fmt.Printf("  %s: %s (capacity %d)\n", r.ID, r.Name, r.Capacity)
			for _, iv := range r.Booked {
				fmt.Printf("      booked %s - %s\n",
					iv.Start.Format("2006-01-02 15:04"), iv.End.Format("15:04"))
			}
		}
		return nil
	},
}

var roomBookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a room for a client",
	Long: `Book a room for a client. The booking consumes one of the client's
included visits and is rejected when the slot overlaps an existing booking.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		start := time.Now()
		if bookStart != "" {
			parsed, err := time.ParseInLocation("2006-01-02 15:04", bookStart, time.Local)
			if err != nil {
				return NewCLIError(
					fmt.Sprintf("invalid start time %q", bookStart),
					"Use the format '2006-01-02 15:04', e.g. '2026-09-01 14:00'",
					err,
				)
			}
			start = parsed
		} else if bookInHours > 0 {
			start = start.Add(time.Duration(bookInHours) * time.Hour)
		}

		booking, err := services.Bookings.Book(bookClientID, bookRoomID, start, bookDuration)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Booked %s: room %s for client %s, %s - %s (%dh)\n",
			booking.ID, booking.RoomID, booking.ClientID,
			booking.Start.Format("2006-01-02 15:04"), booking.End.Format("15:04"), booking.DurationHours)
		return nil
	},
}

var bookClientID string
var bookRoomID string
var bookStart string
var bookInHours int
var bookDuration int

func init() {
	roomBookCmd.Flags().StringVar(&bookClientID, "client", "", "Client ID")
	roomBookCmd.Flags().StringVar(&bookRoomID, "room", "", "Room ID (e.g., S1)")
	roomBookCmd.Flags().StringVar(&bookStart, "start", "", "Start time ('2006-01-02 15:04'), defaults to now")
	roomBookCmd.Flags().IntVar(&bookInHours, "in", 0, "Start in N hours from now (ignored when --start is set)")
	roomBookCmd.Flags().IntVar(&bookDuration, "hours", 1, "Duration in whole hours")
	roomBookCmd.MarkFlagRequired("client")
	roomBookCmd.MarkFlagRequired("room")

	roomCmd.AddCommand(roomListCmd)
	roomCmd.AddCommand(roomBookCmd)
	RootCmd.AddCommand(roomCmd)
}
