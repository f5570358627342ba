package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove RECIPE_ID [ITEM_ID]",
	Short: "Remove an item or a whole recipe from the list",
	Long: "With one argument, remove the recipe's entire group from the shopping list.\n" +
		"With two, remove a single item; its group is dropped when it empties.",
	Example: `  recifree remove beef-stew
  recifree remove beef-stew 3f1f9c2e-8a74-4b5e-9f6d-2f4f8f1a9c21`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

type removeResultJSON struct {
	RecipeID  string `json:"recipeId"`
	ItemID    string `json:"itemId,omitempty"`
	ItemCount int    `json:"itemCount"`
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	recipeID := args[0]
	if len(args) == 2 {
		itemID := args[1]
		if !store.RemoveItem(recipeID, itemID) {
			return notFoundError(
				fmt.Sprintf("item %q of recipe %q is not on the shopping list", itemID, recipeID),
				"recifree --json",
			)
		}
		if flagJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(removeResultJSON{
				RecipeID:  recipeID,
				ItemID:    itemID,
				ItemCount: store.ItemCount(),
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed item %s (%d items left).\n", itemID, store.ItemCount())
		return nil
	}

	if !store.RemoveRecipe(recipeID) {
		return notFoundError(
			fmt.Sprintf("recipe %q is not on the shopping list", recipeID),
			"recifree",
		)
	}
	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(removeResultJSON{
			RecipeID:  recipeID,
			ItemCount: store.ItemCount(),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%d items left).\n", recipeID, store.ItemCount())
	return nil
}
