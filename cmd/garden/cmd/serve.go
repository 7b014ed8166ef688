package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/garden/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Long: `Warm the caches, build the route index and serve the JSON API until
SIGINT or SIGTERM.

Example:
  GARDEN_CONTENT_DIR=./content garden serve`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.New().Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
