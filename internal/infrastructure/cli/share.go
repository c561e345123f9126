package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shareChannel string

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print a shareable link for the current roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		rm, err := services.Generator().GetRoadmap()
		if err != nil {
			return MapError(err)
		}

		switch shareChannel {
		case "", "link":
			fmt.Println(services.Share.LinkFor(rm))
		case "email":
			fmt.Println(services.Share.EmailURL(rm))
		case "twitter":
			fmt.Println(services.Share.TwitterURL(rm))
		case "linkedin":
			fmt.Println(services.Share.LinkedInURL(rm))
		default:
			return NewCLIError(
				fmt.Sprintf("unknown share channel: %s", shareChannel),
				"Use one of: link, email, twitter, linkedin",
				nil,
			)
		}
		return nil
	},
}

func init() {
	shareCmd.Flags().StringVar(&shareChannel, "via", "link", "Share channel (link, email, twitter, linkedin)")
	RootCmd.AddCommand(shareCmd)
}
