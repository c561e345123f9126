package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a flowmap workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		if services.Workspace.Repo.IsInitialized() {
			fmt.Println("Workspace already initialized.")
			return nil
		}

		if err := services.Workspace.Repo.Initialize(); err != nil {
			return MapError(fmt.Errorf("failed to initialize workspace: %w", err))
		}

		if err := services.Audit.Log("workspace.init", "cli", nil); err != nil {
			return MapError(fmt.Errorf("write audit log: %w", err))
		}

		fmt.Println("Workspace initialized. Run 'flowmap generate' to create a roadmap.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
