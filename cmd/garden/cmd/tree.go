package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/garden/internal/app"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/format"
	"github.com/MrSnakeDoc/garden/internal/tree"
)

var treeFilesFirst bool

var treeCmd = &cobra.Command{
	Use:   "tree <collection>",
	Short: "Display the navigation tree of a collection",
	Long: `Display the folder tree built from the entry ids of a collection.

Example:
  garden tree wiki --files-first`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := app.New().Tree(cmd.Context(), args[0], treeFilesFirst)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		printTree(w, nodes)
		fmt.Fprintf(w, "\n%d files, %d folders\n", tree.CountFiles(nodes), tree.CountFolders(nodes))
		return nil
	},
}

func printTree(w io.Writer, nodes []domain.NodeItem) {
	for _, n := range nodes {
		indent := strings.Repeat("  ", n.Level)
		if n.IsFolder() {
			fmt.Fprintf(w, "%s📁 %s\n", indent, format.Capitalize(n.Name))
			printTree(w, n.Children)
			continue
		}
		fmt.Fprintf(w, "%s📄 %s  %s\n", indent, n.Name, n.Path)
	}
}

func init() {
	treeCmd.Flags().BoolVar(&treeFilesFirst, "files-first", false, "list files before folders at every level")
	rootCmd.AddCommand(treeCmd)
}
