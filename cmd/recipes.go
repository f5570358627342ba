package cmd

import (
	"github.com/bendaprile/recifree-cli/internal/display"
	"github.com/bendaprile/recifree-cli/internal/recipes"
	"github.com/spf13/cobra"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Browse the bundled recipe catalog",
	Long:  "List the recipes shipped with recifree. Use this to discover recipe ids for `recifree add`.",
	Example: `  recifree recipes
  recifree recipes --query soup
  recifree recipes --tag vegetarian --json`,
	RunE: runRecipes,
}

func init() {
	rootCmd.AddCommand(recipesCmd)
	registerCatalogFilterFlags(recipesCmd.Flags())
}

func runRecipes(cmd *cobra.Command, _ []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return err
	}

	result := catalog.Filter(recipes.Options{
		Query: flagQuery,
		Tag:   flagTag,
		Limit: flagLimit,
	})
	if len(result) == 0 {
		return notFoundError(
			"no recipes match your filters",
			"Relax filters like --query/--tag.",
			"recifree recipes",
		)
	}

	if flagJSON {
		return display.PrintRecipesJSON(cmd.OutOrStdout(), result)
	}
	display.PrintRecipes(cmd.OutOrStdout(), result)
	return nil
}
