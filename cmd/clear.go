package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the shopping list",
	Long:  "Empty the whole shopping list, or with --checked remove only checked-off items.",
	Example: `  recifree clear
  recifree clear --checked`,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVar(&flagChecked, "checked", false, "Remove only checked items")
}

type clearResultJSON struct {
	Removed   int  `json:"removed"`
	ItemCount int  `json:"itemCount"`
	Checked   bool `json:"checkedOnly"`
}

func runClear(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	removed := 0
	if flagChecked {
		removed = store.ClearChecked()
	} else {
		removed = store.ItemCount()
		store.ClearList()
	}

	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(clearResultJSON{
			Removed:   removed,
			ItemCount: store.ItemCount(),
			Checked:   flagChecked,
		})
	}

	if flagChecked {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d checked items (%d left).\n", removed, store.ItemCount())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared the shopping list (%d items removed).\n", removed)
	}
	return nil
}
