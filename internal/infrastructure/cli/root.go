package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "flowmap",
	Version: Version,
	Short:   "Personalized learning roadmap generator for AI skills",
	Long: `Flowmap turns a learner profile into a personalized, week-by-week
learning roadmap. It answers:
1. What should I learn?
2. In what order?
3. How long will it take at my pace?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&projectPath, "workspace", "w", "", "Workspace directory (defaults to the current directory)")
}
