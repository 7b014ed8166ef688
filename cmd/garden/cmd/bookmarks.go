package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/garden/internal/app"
)

var bookmarksCollectionsOnly bool

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Fetch the Raindrop bookmarks of the site",
	Long: `Fetch every bookmark and the collections scoped to the site name.

Example:
  garden bookmarks --collections`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := app.New().Bookmarks(cmd.Context())
		if err != nil {
			return err
		}

		if bookmarksCollectionsOnly {
			counts := make(map[int64]int)
			for _, b := range data.Bookmarks {
				counts[b.CollectionID]++
			}
			for _, c := range data.Collections {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %d\n", c.Title, counts[c.ID])
			}
			return nil
		}
		return printJSON(cmd.OutOrStdout(), data)
	},
}

func init() {
	bookmarksCmd.Flags().BoolVar(&bookmarksCollectionsOnly, "collections", false, "print collections with their bookmark count")
	rootCmd.AddCommand(bookmarksCmd)
}
