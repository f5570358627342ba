package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add RECIPE_ID",
	Short: "Add a recipe's ingredients to the shopping list",
	Long: "Add every ingredient of the given recipe to the shopping list.\n" +
		"Adding a recipe twice appends its ingredients again (for doubling); duplicates\n" +
		"are merged in the aisle view, not here.",
	Example: `  recifree add tomato-basil-soup
  recifree add beef-stew --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

type addResultJSON struct {
	RecipeID   string `json:"recipeId"`
	Title      string `json:"title"`
	ItemsAdded int    `json:"itemsAdded"`
	ItemCount  int    `json:"itemCount"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return err
	}

	recipe, ok := catalog.ByID(args[0])
	if !ok {
		suggestions := []string{"recifree recipes"}
		ids := make([]string, 0, catalog.Len())
		for _, r := range catalog.All() {
			ids = append(ids, r.ID)
		}
		if suggestion, found := closestMatch(args[0], ids, 3); found {
			suggestions = append([]string{fmt.Sprintf("Did you mean `%s`?", suggestion)}, suggestions...)
		}
		return notFoundError(
			fmt.Sprintf("recipe %q is not in the recipe catalog", args[0]),
			suggestions...,
		)
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	added := store.AddRecipe(recipe)

	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(addResultJSON{
			RecipeID:   recipe.ID,
			Title:      recipe.Title,
			ItemsAdded: added,
			ItemCount:  store.ItemCount(),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %d ingredients from %s (%d items on the list).\n",
		added, recipe.Title, store.ItemCount())
	return nil
}
