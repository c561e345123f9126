package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowlabs/flowmap/pkg/application"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current roadmap as a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		format := application.ExportFormat(exportFormat)
		doc, err := services.Export.Export(format)
		if err != nil {
			return MapError(err)
		}

		if exportOut == "" {
			fmt.Print(doc)
			return nil
		}

		out := exportOut
		if out == "auto" {
			rm, err := services.Generator().GetRoadmap()
			if err != nil {
				return MapError(err)
			}
			out = application.FileName(rm, format)
		}

		if err := os.WriteFile(out, []byte(doc), 0600); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}
		fmt.Printf("Roadmap exported to %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "markdown", "Export format (markdown, text, json)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path ('auto' derives a name from the roadmap title)")
	RootCmd.AddCommand(exportCmd)
}
