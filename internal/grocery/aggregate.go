package grocery

import "strings"

// Entry is one shopping-list ingredient with its recipe context, the unit of
// aggregation.
type Entry struct {
	Item        string
	Amount      string
	Unit        string
	ID          string
	Checked     bool
	RecipeID    string
	RecipeTitle string
}

// Quantity is one entry's contribution to an aggregated item. Amounts are
// listed side by side, never summed or unit-converted.
type Quantity struct {
	Amount      string
	Unit        string
	RecipeID    string
	RecipeTitle string
	ID          string
	Checked     bool
}

// Label renders the quantity as "amount unit", omitting missing parts.
func (q Quantity) Label() string {
	parts := make([]string, 0, 2)
	if q.Amount != "" {
		parts = append(parts, q.Amount)
	}
	if q.Unit != "" {
		parts = append(parts, q.Unit)
	}
	return strings.Join(parts, " ")
}

// AggregatedItem is a single normalized ingredient merged across every entry
// that references it.
type AggregatedItem struct {
	DisplayName    string
	NormalizedName string
	Quantities     []Quantity
	Sources        []string
}

// QuantityLabel joins the non-empty quantity labels with " + ".
func (a AggregatedItem) QuantityLabel() string {
	parts := make([]string, 0, len(a.Quantities))
	for _, q := range a.Quantities {
		if label := q.Label(); label != "" {
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, " + ")
}

// AllChecked reports whether every quantity is checked.
func (a AggregatedItem) AllChecked() bool {
	for _, q := range a.Quantities {
		if !q.Checked {
			return false
		}
	}
	return len(a.Quantities) > 0
}

// AnyChecked reports whether at least one quantity is checked.
func (a AggregatedItem) AnyChecked() bool {
	for _, q := range a.Quantities {
		if q.Checked {
			return true
		}
	}
	return false
}

// Aggregate groups entries by their normalized name. The first entry seen for
// a key supplies the display name; later entries only append quantities.
// Sources collect recipe titles deduplicated in first-seen order, and the
// output preserves the order in which keys first appeared.
func Aggregate(entries []Entry) []AggregatedItem {
	byKey := make(map[string]int, len(entries))
	items := make([]AggregatedItem, 0, len(entries))

	for _, e := range entries {
		key := Normalize(e.Item)
		qty := Quantity{
			Amount:      e.Amount,
			Unit:        e.Unit,
			RecipeID:    e.RecipeID,
			RecipeTitle: e.RecipeTitle,
			ID:          e.ID,
			Checked:     e.Checked,
		}

		idx, ok := byKey[key]
		if !ok {
			byKey[key] = len(items)
			items = append(items, AggregatedItem{
				DisplayName:    e.Item,
				NormalizedName: key,
				Quantities:     []Quantity{qty},
				Sources:        []string{e.RecipeTitle},
			})
			continue
		}

		items[idx].Quantities = append(items[idx].Quantities, qty)
		if !containsString(items[idx].Sources, e.RecipeTitle) {
			items[idx].Sources = append(items[idx].Sources, e.RecipeTitle)
		}
	}

	return items
}

func containsString(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
