package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track topic completion for the current roadmap",
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show completion status for every topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		rm, err := services.Generator().GetRoadmap()
		if err != nil {
			return MapError(err)
		}
		state, err := services.Progress.GetProgress()
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("%s\n", rm.Title)
		fmt.Printf("Completion: %.0f%%\n\n", state.Completion()*100)

		for _, phase := range rm.Curriculum.Phases {
			fmt.Printf("%s\n", phase.Title)
			for _, topic := range phase.Topics {
				status := state.StatusOf(topic.ID)
				marker := " "
				if status.IsComplete() {
					marker = "x"
				}
				fmt.Printf("  [%s] %-14s %s (%s)\n", marker, status.DisplayName(), topic.Title, topic.ID)
			}
		}
		return nil
	},
}

func transitionCmd(event, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <topic-id>", event),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := loadServicesForCurrentDir()
			if err != nil {
				return err
			}

			status, err := services.Progress.Transition(args[0], event)
			if err != nil {
				return MapError(err)
			}

			fmt.Printf("Topic %s is now %s.\n", args[0], status.DisplayName())
			return nil
		},
	}
}

func init() {
	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(transitionCmd("start", "Start working on a topic"))
	progressCmd.AddCommand(transitionCmd("complete", "Mark an in-progress topic as done"))
	progressCmd.AddCommand(transitionCmd("stop", "Put an in-progress topic back to pending"))
	progressCmd.AddCommand(transitionCmd("skip", "Skip a topic"))
	progressCmd.AddCommand(transitionCmd("reopen", "Reopen a done or skipped topic"))
	RootCmd.AddCommand(progressCmd)
}
