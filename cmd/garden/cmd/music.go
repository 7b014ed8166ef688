package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/garden/internal/app"
)

var musicCmd = &cobra.Command{
	Use:   "music",
	Short: "Fetch the Last.fm listening snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		music, err := app.New().Music(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), music)
	},
}

func init() {
	rootCmd.AddCommand(musicCmd)
}
