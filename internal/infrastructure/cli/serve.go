package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowlabs/flowmap/internal/infrastructure/server"
	"github.com/flowlabs/flowmap/internal/infrastructure/watch"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the workspace over a JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("FLOWMAP_SKIP_SERVE_RUN") == "true" {
			return nil
		}

		root, err := getWorkspaceRoot()
		if err != nil {
			return err
		}
		services, err := loadServices(root)
		if err != nil {
			return err
		}
		if err := services.Workspace.Repo.Initialize(); err != nil {
			return MapError(err)
		}

		if serveWatch {
			watcher, err := watch.NewCatalogWatcher(root, 0, func(path string) {
				if err := services.ReloadCatalogs(); err != nil {
					fmt.Printf("Catalog reload failed: %v\n", err)
					return
				}
				fmt.Printf("Catalog reloaded after change to %s\n", path)
			})
			if err != nil {
				return fmt.Errorf("start catalog watcher: %w", err)
			}
			go func() {
				_ = watcher.Run(cmd.Context())
			}()
			fmt.Println("Watching workspace catalogs for changes...")
		}

		fmt.Printf("Serving flowmap API on %s\n", serveAddr)
		return server.New(services).ListenAndServe(cmd.Context(), serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8484", "Address to listen on")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload catalog overrides when .flowmap files change")
	RootCmd.AddCommand(serveCmd)
}
