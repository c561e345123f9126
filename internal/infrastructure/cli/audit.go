package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the workspace audit trail",
}

var auditTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show all recorded audit events in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		events, err := services.Audit.GetTimeline()
		if err != nil {
			return MapError(err)
		}

		if len(events) == 0 {
			fmt.Println("No audit events recorded yet.")
			return nil
		}

		for _, e := range events {
			fmt.Printf("%s  %-20s %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.Actor)
		}
		return nil
	},
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the hash chain of the audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		violations, err := services.Audit.VerifyIntegrity()
		if err != nil {
			return MapError(err)
		}

		if len(violations) == 0 {
			fmt.Println("Audit trail intact.")
			return nil
		}

		fmt.Printf("Audit trail has %d violations:\n", len(violations))
		for _, v := range violations {
			fmt.Printf("  - %s\n", v)
		}
		return fmt.Errorf("audit trail verification failed")
	},
}

var auditPaceCmd = &cobra.Command{
	Use:   "pace",
	Short: "Show average topics completed per week",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		pace, err := services.Audit.GetPace()
		if err != nil {
			return MapError(err)
		}

		if pace == 0 {
			fmt.Println("No topics completed yet.")
			return nil
		}
		fmt.Printf("Average pace: %.1f topics/week\n", pace)
		return nil
	},
}

func init() {
	auditCmd.AddCommand(auditTimelineCmd)
	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditPaceCmd)
	RootCmd.AddCommand(auditCmd)
}
