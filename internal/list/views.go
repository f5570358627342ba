package list

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bendaprile/recifree-cli/internal/grocery"
)

// Aisle is one populated category in the store view.
type Aisle struct {
	Category grocery.Category
	Items    []grocery.AggregatedItem
}

// Entries flattens every group's items, tagged with recipe context, as input
// for categorization and aggregation.
func (s *Store) Entries() []grocery.Entry {
	entries := make([]grocery.Entry, 0, s.ItemCount())
	for _, g := range s.groups {
		for _, item := range g.Ingredients {
			entries = append(entries, grocery.Entry{
				Item:        item.Item,
				Amount:      item.Amount,
				Unit:        item.Unit,
				ID:          item.ID,
				Checked:     item.Checked,
				RecipeID:    g.RecipeID,
				RecipeTitle: g.RecipeTitle,
			})
		}
	}
	return entries
}

// ItemsByAisle recomputes the aggregated store view from the current state:
// every item is categorized, bucketed in category declaration order, and
// aggregated per aisle. Empty aisles are dropped.
func (s *Store) ItemsByAisle() []Aisle {
	buckets := make(map[string][]grocery.Entry)
	for _, e := range s.Entries() {
		cat := grocery.Categorize(e.Item)
		buckets[cat.ID] = append(buckets[cat.ID], e)
	}

	aisles := make([]Aisle, 0, len(buckets))
	for _, cat := range grocery.Categories {
		entries := buckets[cat.ID]
		if len(entries) == 0 {
			continue
		}
		aisles = append(aisles, Aisle{
			Category: cat,
			Items:    grocery.Aggregate(entries),
		})
	}
	return aisles
}

// Marker returns the plain-text checkbox for an aggregated item: [x] when
// every quantity is checked, [-] when only some are, [ ] otherwise.
func Marker(item grocery.AggregatedItem) string {
	switch {
	case item.AllChecked():
		return "[x]"
	case item.AnyChecked():
		return "[-]"
	default:
		return "[ ]"
	}
}

// PlainText renders the aisle view as a clipboard-friendly report: a title
// line, then per aisle an icon+name header over a dashed rule and one line
// per aggregated item.
func (s *Store) PlainText() string {
	var b strings.Builder

	count := s.ItemCount()
	fmt.Fprintf(&b, "Shopping List (%d items)\n", count)

	for _, aisle := range s.ItemsByAisle() {
		header := fmt.Sprintf("%s %s", aisle.Category.Icon, aisle.Category.Name)
		fmt.Fprintf(&b, "\n%s\n%s\n", header, strings.Repeat("-", utf8.RuneCountInString(header)))

		for _, item := range aisle.Items {
			line := Marker(item)
			if qty := item.QuantityLabel(); qty != "" {
				line += " " + qty
			}
			line += " " + item.DisplayName
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
