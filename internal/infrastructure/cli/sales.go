package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/felixgeelhaar/cowork/internal/infrastructure/watch"
	"github.com/felixgeelhaar/cowork/pkg/domain/sales"
	"github.com/felixgeelhaar/cowork/pkg/storage"
	"github.com/spf13/cobra"
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Show the sales ledger",
	Long: `Show the sales ledger in chronological order. With --follow the
command keeps running and prints new entries as they are appended.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		printed, err := printSales(services.Stats, 0)
		if err != nil {
			return MapError(err)
		}

		if !salesFollow {
			return nil
		}

		ledger, ok := services.Workspace.Ledger.(*storage.FileLedger)
		if !ok {
			return fmt.Errorf("ledger does not support following")
		}

		var mu sync.Mutex
		seen := printed
		watcher, err := watch.NewLedgerWatcher(ledger.Path(), 200*time.Millisecond, func() {
			mu.Lock()
			defer mu.Unlock()
			n, err := printSales(services.Stats, seen)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				return
			}
			seen += n
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Println("Following the sales ledger; press Ctrl-C to stop.")
		if err := watcher.Run(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}

// printSales prints ledger entries in chronological order, skipping the
// oldest skip entries, and returns how many it printed.
func printSales(stats salesHistory, skip int) (int, error) {
	entries, err := stats.History()
	if err != nil {
		return 0, err
	}

	if len(entries) == 0 && skip == 0 {
		fmt.Println("The sales ledger is empty.")
		return 0, nil
	}
	if skip >= len(entries) {
		return 0, nil
	}

	// History is newest first; new entries since skip are at the front.
	fresh := entries[:len(entries)-skip]
	for i := len(fresh) - 1; i >= 0; i-- {
		e := fresh[i]
		client := e.ClientID
		if client == "" {
			client = "-"
		}
		fmt.Printf("  %s  %-15s %-6s %-30s $%.2f\n",
			e.Timestamp.Format("2006-01-02 15:04"), e.Type, client, e.Description, e.Amount)
	}
	return len(fresh), nil
}

type salesHistory interface {
	History() ([]sales.Entry, error)
}

var salesFollow bool

func init() {
	salesCmd.Flags().BoolVar(&salesFollow, "follow", false, "Keep running and print new entries as they appear")
	RootCmd.AddCommand(salesCmd)
}
