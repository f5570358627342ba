package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bendaprile/recifree-cli/internal/display"
)

var aislesCmd = &cobra.Command{
	Use:   "aisles",
	Short: "Show the shopping list grouped by aisle",
	Long:  "Aggregate the shopping list into store aisles, with duplicate ingredients merged into a single line.",
	Example: `  recifree aisles
  recifree aisles --json`,
	RunE: runAisles,
}

func init() {
	rootCmd.AddCommand(aislesCmd)
}

func runAisles(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	aisles := store.ItemsByAisle()
	if flagJSON {
		return display.PrintAislesJSON(cmd.OutOrStdout(), aisles)
	}
	if len(aisles) == 0 {
		display.PrintEmptyList(cmd.OutOrStdout())
		return nil
	}
	display.PrintAisles(cmd.OutOrStdout(), aisles, store.ItemCount())
	return nil
}
