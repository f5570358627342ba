package display_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/bendaprile/recifree-cli/internal/display"
	"github.com/bendaprile/recifree-cli/internal/grocery"
	"github.com/bendaprile/recifree-cli/internal/list"
	"github.com/bendaprile/recifree-cli/internal/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGroups() []list.RecipeGroup {
	return []list.RecipeGroup{
		{
			RecipeID:    "soup",
			RecipeTitle: "Tomato Soup",
			AddedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Ingredients: []list.Item{
				{ID: "a", Item: "Onion, diced", Amount: "1"},
				{ID: "b", Item: "Heavy cream", Amount: "1/2", Unit: "cup", Checked: true},
				{ID: "c", Item: "Salt"},
			},
		},
		{
			RecipeID:    "stew",
			RecipeTitle: "Beef Stew",
			AddedAt:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			Ingredients: []list.Item{
				{ID: "d", Item: "onion", Amount: "2"},
			},
		},
	}
}

func TestPrintList_ContainsExpectedContent(t *testing.T) {
	var buf bytes.Buffer
	display.PrintList(&buf, sampleGroups(), 4)
	output := buf.String()

	assert.Contains(t, output, "Shopping List")
	assert.Contains(t, output, "4 items")
	assert.Contains(t, output, "Tomato Soup")
	assert.Contains(t, output, "Beef Stew")
	assert.Contains(t, output, "Onion, diced")
	assert.Contains(t, output, "[x]")
	assert.Contains(t, output, "[ ] Salt")
}

func TestPrintListJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintListJSON(&buf, sampleGroups(), 4))

	var out display.ListJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 4, out.ItemCount)
	require.Len(t, out.Recipes, 2)
	assert.Equal(t, "soup", out.Recipes[0].RecipeID)
	assert.Equal(t, "2026-03-01T12:00:00Z", out.Recipes[0].AddedAt)
	require.Len(t, out.Recipes[0].Ingredients, 3)
	assert.True(t, out.Recipes[0].Ingredients[1].Checked)
}

func TestPrintAisles(t *testing.T) {
	aisles := []list.Aisle{
		{
			Category: grocery.Categories[0], // produce
			Items: []grocery.AggregatedItem{
				{
					DisplayName:    "Onion, diced",
					NormalizedName: "onion",
					Quantities: []grocery.Quantity{
						{Amount: "1", RecipeTitle: "Tomato Soup", ID: "a"},
						{Amount: "2", RecipeTitle: "Beef Stew", ID: "d"},
					},
					Sources: []string{"Tomato Soup", "Beef Stew"},
				},
			},
		},
	}

	var buf bytes.Buffer
	display.PrintAisles(&buf, aisles, 2)
	output := buf.String()

	assert.Contains(t, output, "Produce")
	assert.Contains(t, output, "1 + 2")
	assert.Contains(t, output, "Onion, diced")
	assert.Contains(t, output, "Tomato Soup, Beef Stew")
}

func TestPrintAislesJSON(t *testing.T) {
	aisles := []list.Aisle{
		{
			Category: grocery.Categories[3], // pantry
			Items: []grocery.AggregatedItem{
				{
					DisplayName:    "sugar",
					NormalizedName: "sugar",
					Quantities:     []grocery.Quantity{{Amount: "1", Unit: "cup", ID: "x", RecipeID: "cake", RecipeTitle: "Cake"}},
					Sources:        []string{"Cake"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, display.PrintAislesJSON(&buf, aisles))

	var out []display.AisleJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "pantry", out[0].ID)
	require.Len(t, out[0].Items, 1)
	assert.Equal(t, "1 cup", out[0].Items[0].Quantity)
	assert.Equal(t, []string{"Cake"}, out[0].Items[0].Sources)
}

func TestPrintRecipes(t *testing.T) {
	rs := []recipes.Recipe{
		{
			ID:          "greek-salad",
			Title:       "Greek Salad",
			Description: "Crunchy vegetables and feta.",
			Tags:        []string{"salad", "vegetarian"},
			Servings:    4,
			PrepTime:    "15 min",
			Ingredients: recipes.Ingredients{Flat: []recipes.Ingredient{{Item: "Cucumber"}, {Item: "Feta"}}},
		},
	}

	var buf bytes.Buffer
	display.PrintRecipes(&buf, rs)
	output := buf.String()

	assert.Contains(t, output, "1 found")
	assert.Contains(t, output, "greek-salad")
	assert.Contains(t, output, "Greek Salad")
	assert.Contains(t, output, "serves 4")
	assert.Contains(t, output, "2 ingredients")
	assert.Contains(t, output, "salad, vegetarian")
}

func TestPrintRecipesJSON_NilTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.PrintRecipesJSON(&buf, []recipes.Recipe{{ID: "x", Title: "X"}}))

	var out []display.RecipeJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Tags)
	assert.Empty(t, out[0].Tags)
}
