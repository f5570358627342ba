package recipes_test

import (
	"encoding/json"
	"testing"

	"github.com/bendaprile/recifree-cli/internal/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := recipes.Load()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Len(), 5)

	// All recipes flatten to at least one ingredient.
	for _, r := range c.All() {
		assert.NotEmpty(t, r.Ingredients.Flatten(), "recipe %s has no ingredients", r.ID)
	}
}

func TestByID(t *testing.T) {
	c, err := recipes.Load()
	require.NoError(t, err)

	r, ok := c.ByID("tomato-basil-soup")
	require.True(t, ok)
	assert.Equal(t, "Tomato Basil Soup", r.Title)
	assert.False(t, r.Ingredients.Sectioned())

	_, ok = c.ByID("no-such-recipe")
	assert.False(t, ok)
}

func TestByID_TrimsWhitespace(t *testing.T) {
	c, err := recipes.Load()
	require.NoError(t, err)

	_, ok := c.ByID("  greek-salad  ")
	assert.True(t, ok)
}

func TestSectionedRecipeFlattens(t *testing.T) {
	c, err := recipes.Load()
	require.NoError(t, err)

	r, ok := c.ByID("weeknight-chicken-tacos")
	require.True(t, ok)
	require.True(t, r.Ingredients.Sectioned())

	flat := r.Ingredients.Flatten()
	assert.Len(t, flat, 12)
	assert.Equal(t, "Chicken thighs, boneless", flat[0].Item)
	assert.Equal(t, "Sour cream", flat[len(flat)-1].Item)
}

func TestFilter_Query(t *testing.T) {
	c, err := recipes.Load()
	require.NoError(t, err)

	result := c.Filter(recipes.Options{Query: "salmon"})
	require.Len(t, result, 1)
	assert.Equal(t, "lemon-garlic-salmon", result[0].ID)
}

func TestFilter_QueryMatchesTags(t *testing.T) {
	c, err := recipes.Load()
	require.NoError(t, err)

	result := c.Filter(recipes.Options{Query: "breakfast"})
	require.Len(t, result, 1)
	assert.Equal(t, "sunday-pancakes", result[0].ID)
}

func TestFilter_Tag(t *testing.T) {
	c, err := recipes.Load()
	require.NoError(t, err)

	result := c.Filter(recipes.Options{Tag: "VEGETARIAN"})
	assert.NotEmpty(t, result)
	for _, r := range result {
		assert.Contains(t, r.Tags, "vegetarian")
	}
}

func TestFilter_Limit(t *testing.T) {
	c, err := recipes.Load()
	require.NoError(t, err)

	result := c.Filter(recipes.Options{Limit: 2})
	assert.Len(t, result, 2)
}

func TestFilter_NoMatch(t *testing.T) {
	c, err := recipes.Load()
	require.NoError(t, err)

	assert.Empty(t, c.Filter(recipes.Options{Query: "xyzzy"}))
}

func TestIngredientsDecode_Flat(t *testing.T) {
	var ing recipes.Ingredients
	raw := `[{"item":"flour","amount":"2","unit":"cups"},{"item":"salt"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &ing))

	assert.False(t, ing.Sectioned())
	require.Len(t, ing.Flatten(), 2)
	assert.Equal(t, "flour", ing.Flatten()[0].Item)
}

func TestIngredientsDecode_Sectioned(t *testing.T) {
	var ing recipes.Ingredients
	raw := `[{"title":"Dry","items":[{"item":"flour"}]},{"title":"Wet","items":[{"item":"milk"},{"item":"eggs"}]}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &ing))

	assert.True(t, ing.Sectioned())
	assert.Len(t, ing.Flatten(), 3)
	assert.Equal(t, "Dry", ing.Sections[0].Title)
}

func TestIngredientsRoundTrip(t *testing.T) {
	for _, raw := range []string{
		`[{"item":"flour","amount":"2","unit":"cups"}]`,
		`[{"title":"Dry","items":[{"item":"flour"}]}]`,
	} {
		var ing recipes.Ingredients
		require.NoError(t, json.Unmarshal([]byte(raw), &ing))
		out, err := json.Marshal(ing)
		require.NoError(t, err)

		var again recipes.Ingredients
		require.NoError(t, json.Unmarshal(out, &again))
		assert.Equal(t, ing, again)
	}
}
