package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bendaprile/recifree-cli/internal/grocery"
	"github.com/bendaprile/recifree-cli/internal/list"
	"github.com/bendaprile/recifree-cli/internal/recipes"
	"github.com/charmbracelet/lipgloss"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green
	checkedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	amountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// ItemJSON is the JSON output shape for one list item.
type ItemJSON struct {
	ID      string `json:"id"`
	Item    string `json:"item"`
	Amount  string `json:"amount,omitempty"`
	Unit    string `json:"unit,omitempty"`
	Checked bool   `json:"checked"`
}

// GroupJSON is the JSON output shape for one recipe group.
type GroupJSON struct {
	RecipeID    string     `json:"recipeId"`
	RecipeTitle string     `json:"recipeTitle"`
	AddedAt     string     `json:"addedAt"`
	Ingredients []ItemJSON `json:"ingredients"`
}

// ListJSON is the JSON output shape for the whole shopping list.
type ListJSON struct {
	ItemCount int         `json:"itemCount"`
	Recipes   []GroupJSON `json:"recipes"`
}

// QuantityJSON is the JSON output shape for one aggregated quantity.
type QuantityJSON struct {
	Amount      string `json:"amount,omitempty"`
	Unit        string `json:"unit,omitempty"`
	RecipeID    string `json:"recipeId"`
	RecipeTitle string `json:"recipeTitle"`
	ID          string `json:"id"`
	Checked     bool   `json:"checked"`
}

// AggregatedJSON is the JSON output shape for one aggregated item.
type AggregatedJSON struct {
	Name           string         `json:"name"`
	NormalizedName string         `json:"normalizedName"`
	Quantity       string         `json:"quantity,omitempty"`
	Quantities     []QuantityJSON `json:"quantities"`
	Sources        []string       `json:"sources"`
}

// AisleJSON is the JSON output shape for one populated aisle.
type AisleJSON struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Icon  string           `json:"icon"`
	Items []AggregatedJSON `json:"items"`
}

// RecipeJSON is the JSON output shape for a catalog recipe.
type RecipeJSON struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	Servings    int      `json:"servings,omitempty"`
	PrepTime    string   `json:"prepTime,omitempty"`
	CookTime    string   `json:"cookTime,omitempty"`
	Ingredients int      `json:"ingredientCount"`
}

// PrintList renders the shopping list grouped by recipe.
func PrintList(w io.Writer, groups []list.RecipeGroup, itemCount int) {
	fmt.Fprintf(w, "\n%s • %s\n\n",
		headerStyle.Render("Shopping List"),
		cyanStyle.Render(fmt.Sprintf("%d items", itemCount)),
	)

	for _, group := range groups {
		fmt.Fprintf(w, "  %s %s\n",
			titleStyle.Render(group.RecipeTitle),
			dimStyle.Render("("+group.RecipeID+")"),
		)
		for _, item := range group.Ingredients {
			printListItem(w, item)
		}
		fmt.Fprintln(w)
	}
}

func printListItem(w io.Writer, item list.Item) {
	marker := "[ ]"
	name := item.Item
	if item.Checked {
		marker = "[x]"
		name = checkedStyle.Render(name)
	}

	qty := strings.TrimSpace(item.Amount + " " + item.Unit)
	if qty != "" {
		fmt.Fprintf(w, "    %s %s %s  %s\n", marker, amountStyle.Render(qty), name, dimStyle.Render(item.ID))
	} else {
		fmt.Fprintf(w, "    %s %s  %s\n", marker, name, dimStyle.Render(item.ID))
	}
}

// PrintListJSON renders the shopping list as JSON.
func PrintListJSON(w io.Writer, groups []list.RecipeGroup, itemCount int) error {
	out := ListJSON{ItemCount: itemCount, Recipes: make([]GroupJSON, 0, len(groups))}
	for _, group := range groups {
		g := GroupJSON{
			RecipeID:    group.RecipeID,
			RecipeTitle: group.RecipeTitle,
			AddedAt:     group.AddedAt.Format(time.RFC3339),
			Ingredients: make([]ItemJSON, 0, len(group.Ingredients)),
		}
		for _, item := range group.Ingredients {
			g.Ingredients = append(g.Ingredients, ItemJSON{
				ID:      item.ID,
				Item:    item.Item,
				Amount:  item.Amount,
				Unit:    item.Unit,
				Checked: item.Checked,
			})
		}
		out.Recipes = append(out.Recipes, g)
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintEmptyList renders the empty-list state.
func PrintEmptyList(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n%s\n\n",
		titleStyle.Render("Your shopping list is empty."),
		dimStyle.Render("Browse `recifree recipes` and add one with `recifree add RECIPE_ID`."),
	)
}

// PrintAisles renders the aggregated store view, one section per aisle.
func PrintAisles(w io.Writer, aisles []list.Aisle, itemCount int) {
	fmt.Fprintf(w, "\n%s • %s\n\n",
		headerStyle.Render("Shopping List by Aisle"),
		cyanStyle.Render(fmt.Sprintf("%d items", itemCount)),
	)

	for _, aisle := range aisles {
		fmt.Fprintf(w, "  %s %s %s\n",
			aisle.Category.Icon,
			titleStyle.Render(aisle.Category.Name),
			dimStyle.Render(fmt.Sprintf("(%d)", len(aisle.Items))),
		)
		for _, item := range aisle.Items {
			printAggregated(w, item)
		}
		fmt.Fprintln(w)
	}
}

func printAggregated(w io.Writer, item grocery.AggregatedItem) {
	marker := list.Marker(item)
	name := item.DisplayName
	if item.AllChecked() {
		name = checkedStyle.Render(name)
	}

	line := "    " + marker
	if qty := item.QuantityLabel(); qty != "" {
		line += " " + amountStyle.Render(qty)
	}
	line += " " + name
	if len(item.Sources) > 1 {
		line += " " + dimStyle.Render("("+strings.Join(item.Sources, ", ")+")")
	}
	fmt.Fprintln(w, line)
}

// PrintAislesJSON renders the aggregated store view as JSON.
func PrintAislesJSON(w io.Writer, aisles []list.Aisle) error {
	out := make([]AisleJSON, 0, len(aisles))
	for _, aisle := range aisles {
		a := AisleJSON{
			ID:    aisle.Category.ID,
			Name:  aisle.Category.Name,
			Icon:  aisle.Category.Icon,
			Items: make([]AggregatedJSON, 0, len(aisle.Items)),
		}
		for _, item := range aisle.Items {
			agg := AggregatedJSON{
				Name:           item.DisplayName,
				NormalizedName: item.NormalizedName,
				Quantity:       item.QuantityLabel(),
				Quantities:     make([]QuantityJSON, 0, len(item.Quantities)),
				Sources:        item.Sources,
			}
			for _, q := range item.Quantities {
				agg.Quantities = append(agg.Quantities, QuantityJSON{
					Amount:      q.Amount,
					Unit:        q.Unit,
					RecipeID:    q.RecipeID,
					RecipeTitle: q.RecipeTitle,
					ID:          q.ID,
					Checked:     q.Checked,
				})
			}
			a.Items = append(a.Items, agg)
		}
		out = append(out, a)
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintRecipes renders catalog entries.
func PrintRecipes(w io.Writer, rs []recipes.Recipe) {
	fmt.Fprintf(w, "\n%s • %s\n\n",
		headerStyle.Render("Recipes"),
		cyanStyle.Render(fmt.Sprintf("%d found", len(rs))),
	)

	for _, r := range rs {
		fmt.Fprintf(w, "  %s  %s\n", cyanStyle.Render(r.ID), titleStyle.Render(r.Title))
		if r.Description != "" {
			fmt.Fprintf(w, "        %s\n", dimStyle.Render(wordWrap(r.Description, 72, "        ")))
		}

		var meta []string
		if r.Servings > 0 {
			meta = append(meta, fmt.Sprintf("serves %d", r.Servings))
		}
		if r.PrepTime != "" {
			meta = append(meta, "prep "+r.PrepTime)
		}
		if r.CookTime != "" {
			meta = append(meta, "cook "+r.CookTime)
		}
		meta = append(meta, fmt.Sprintf("%d ingredients", len(r.Ingredients.Flatten())))
		if len(r.Tags) > 0 {
			meta = append(meta, strings.Join(r.Tags, ", "))
		}
		fmt.Fprintf(w, "        %s\n\n", dimStyle.Render(strings.Join(meta, " | ")))
	}
}

// PrintRecipesJSON renders catalog entries as JSON.
func PrintRecipesJSON(w io.Writer, rs []recipes.Recipe) error {
	out := make([]RecipeJSON, 0, len(rs))
	for _, r := range rs {
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, RecipeJSON{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Tags:        tags,
			Servings:    r.Servings,
			PrepTime:    r.PrepTime,
			CookTime:    r.CookTime,
			Ingredients: len(r.Ingredients.Flatten()),
		})
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

func wordWrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+indent)
}
