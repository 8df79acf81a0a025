package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/felixgeelhaar/cowork/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit and verify workspace history",
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the integrity of the workspace audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return fmt.Errorf("resolve workspace path: %w", err)
		}
		workspace := wiring.NewWorkspace(root)

		fmt.Println("Verifying audit trail integrity...")
		violations, err := workspace.Audit.VerifyIntegrity()
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}

		if len(violations) == 0 {
			fmt.Println("Audit trail is intact and verified.")
			return nil
		}

		fmt.Printf("Found %d integrity violations:\n", len(violations))
		for _, v := range violations {
			fmt.Printf("  - %s\n", v)
		}
		os.Exit(1)
		return nil
	},
}

var auditTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show a chronological view of workspace activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return fmt.Errorf("resolve workspace path: %w", err)
		}
		workspace := wiring.NewWorkspace(root)

		events, err := workspace.Audit.GetTimeline()
		if err != nil {
			return fmt.Errorf("failed to load timeline: %w", err)
		}

		fmt.Println("Workspace Timeline")
		fmt.Println("------------------")
		for i := len(events) - 1; i >= 0; i-- {
			e := events[i]
			ts := e.Timestamp.Format(time.RFC822)
			fmt.Printf("[%s] %-15s | %-22s", ts, e.Actor, e.Action)
			if len(e.Metadata) > 0 {
				fmt.Printf(" (%v)", e.Metadata)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditTimelineCmd)
	RootCmd.AddCommand(auditCmd)
}
