package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempListPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "shopping-list.json")
}

func TestRunCLI_CompletionZsh(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := runCLI([]string{"completion", "zsh"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "#compdef recifree")
	assert.Empty(t, stderr.String())
}

func TestRunCLI_HelpRecipes(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := runCLI([]string{"help", "recipes"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "recifree recipes [flags]")
	assert.Empty(t, stderr.String())
}

func TestRunCLI_TolerantRewriteOnHelpRequest(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := runCLI([]string{"recipes", "-query", "soup", "--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "recifree recipes [flags]")
	assert.Contains(t, stderr.String(), "interpreted `-query` as `--query`")
}

func TestRunCLI_DoubleDashBoundary(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := runCLI([]string{"recipes", "--", "query", "soup", "--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "recifree recipes [flags]")
	assert.False(t, strings.Contains(stderr.String(), "interpreted `query` as `--query`"))
}

func TestRunCLI_RecipesJSON(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := runCLI([]string{"recipes", "--json"}, &stdout, &stderr)

	require.Equal(t, 0, code)

	var payload []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &payload))
	assert.NotEmpty(t, payload)
	assert.Contains(t, stdout.String(), "tomato-basil-soup")
}

func TestRunCLI_RecipesFilterNoMatch(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := runCLI([]string{"recipes", "--query", "zzzznotarecipe"}, &stdout, &stderr)

	assert.Equal(t, ExitNotFound, code)
	assert.Contains(t, stderr.String(), "no recipes match")
}

func TestRunCLI_AddThenCheckThenExport(t *testing.T) {
	listPath := tempListPath(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runCLI([]string{"--list", listPath, "add", "tomato-basil-soup"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	// Stdout is not a TTY in tests, so output is auto-upgraded to JSON.
	var added addResultJSON
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &added))
	assert.Equal(t, "tomato-basil-soup", added.RecipeID)
	assert.Positive(t, added.ItemsAdded)
	assert.Equal(t, added.ItemsAdded, added.ItemCount)

	stdout.Reset()
	stderr.Reset()
	code = runCLI([]string{"--list", listPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var listed struct {
		ItemCount int `json:"itemCount"`
		Recipes   []struct {
			RecipeID    string `json:"recipeId"`
			Ingredients []struct {
				ID      string `json:"id"`
				Checked bool   `json:"checked"`
			} `json:"ingredients"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &listed))
	require.Len(t, listed.Recipes, 1)
	require.NotEmpty(t, listed.Recipes[0].Ingredients)

	itemID := listed.Recipes[0].Ingredients[0].ID
	stdout.Reset()
	stderr.Reset()
	code = runCLI([]string{"--list", listPath, "check", "tomato-basil-soup", itemID}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var checked checkResultJSON
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &checked))
	assert.True(t, checked.Checked)
	assert.Equal(t, itemID, checked.ItemID)

	stdout.Reset()
	stderr.Reset()
	code = runCLI([]string{"--list", listPath, "export"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Shopping List (")
	assert.Contains(t, out, "[x]")
	assert.False(t, strings.HasPrefix(out, "{"), "export stays plain text when piped")
}

func TestRunCLI_AddUnknownRecipe(t *testing.T) {
	listPath := tempListPath(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runCLI([]string{"--list", listPath, "add", "tomato-basil-supp"}, &stdout, &stderr)

	assert.Equal(t, ExitNotFound, code)

	// Auto-JSON applies to the error payload too.
	var payload map[string]map[string]any
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &payload))
	assert.Equal(t, "NOT_FOUND", payload["error"]["code"])
	assert.Contains(t, payload["error"]["message"], "not in the recipe catalog")
}

func TestRunCLI_RemoveUnknownItem(t *testing.T) {
	listPath := tempListPath(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runCLI([]string{"--list", listPath, "remove", "tomato-basil-soup", "no-such-id"}, &stdout, &stderr)

	assert.Equal(t, ExitNotFound, code)
	assert.Contains(t, stderr.String(), "not on the shopping list")
}

func TestRunCLI_ClearChecked(t *testing.T) {
	listPath := tempListPath(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runCLI([]string{"--list", listPath, "add", "greek-salad"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	stdout.Reset()
	stderr.Reset()
	code = runCLI([]string{"--list", listPath, "clear", "--checked"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var cleared clearResultJSON
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &cleared))
	assert.Equal(t, 0, cleared.Removed)
	assert.Positive(t, cleared.ItemCount)

	stdout.Reset()
	stderr.Reset()
	code = runCLI([]string{"--list", listPath, "clear"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	require.NoError(t, json.Unmarshal(stdout.Bytes(), &cleared))
	assert.Equal(t, 0, cleared.ItemCount)
	assert.Positive(t, cleared.Removed)
}

func TestRunCLI_AislesJSONEmptyList(t *testing.T) {
	listPath := tempListPath(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runCLI([]string{"--list", listPath, "aisles", "--json"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "[]\n", stdout.String())
}

func TestRunCLI_TUIRequiresInteractiveTerminal(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := runCLI([]string{"tui"}, &stdout, &stderr)

	assert.Equal(t, ExitInvalidArgs, code)
	assert.Contains(t, stderr.String(), "requires an interactive terminal")
}
