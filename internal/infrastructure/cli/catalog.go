package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowlabs/flowmap/pkg/domain/profile"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the curriculum template catalog",
}

var catalogDomainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List available domains and their skill levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		templates := services.Templates()
		for _, name := range templates.Domains() {
			levels := make([]string, 0, 3)
			for _, l := range templates.Levels(name) {
				levels = append(levels, l.String())
			}
			fmt.Printf("%-30s %s\n", name, strings.Join(levels, ", "))
		}
		return nil
	},
}

var catalogLevel string

var catalogShowCmd = &cobra.Command{
	Use:   "show <domain>",
	Short: "Show the curriculum template for a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		c, err := services.Templates().Lookup(args[0], profile.SkillLevel(catalogLevel))
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("%s\n%s\n\n", c.Title, c.Description)
		for i, phase := range c.Phases {
			fmt.Printf("Phase %d: %s\n", i+1, phase.Title)
			for _, topic := range phase.Topics {
				fmt.Printf("  - %s (%s, %s)\n", topic.Title, topic.Duration, topic.Difficulty)
			}
		}
		return nil
	},
}

func init() {
	catalogShowCmd.Flags().StringVar(&catalogLevel, "level", "beginner", "Skill level (beginner, intermediate, advanced)")
	catalogCmd.AddCommand(catalogDomainsCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	RootCmd.AddCommand(catalogCmd)
}
