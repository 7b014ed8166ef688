package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/garden/internal/app"
	"github.com/MrSnakeDoc/garden/internal/routes"
)

var (
	routesGroup     string
	routesPathsOnly bool
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List every route the site renders",
	Long: `Run every route generator and print the routes as JSON, or one path
per line with --paths.

Example:
  garden routes --group tags --paths`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := app.New().Routes(cmd.Context())
		if err != nil {
			return err
		}

		out := []routes.Route{}
		for _, r := range routes.Flatten(groups) {
			if routesGroup != "" && r.Group != routesGroup {
				continue
			}
			if r.Props.Entry != nil {
				e := *r.Props.Entry
				e.Body, e.Rendered = "", ""
				r.Props.Entry = &e
			}
			out = append(out, r)
		}

		if routesPathsOnly {
			for _, r := range out {
				fmt.Fprintln(cmd.OutOrStdout(), r.Path)
			}
			return nil
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	routesCmd.Flags().StringVarP(&routesGroup, "group", "g", "", "only list routes of this group")
	routesCmd.Flags().BoolVar(&routesPathsOnly, "paths", false, "print paths only")
	rootCmd.AddCommand(routesCmd)
}
