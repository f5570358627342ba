// Package list owns the shopping-list state: recipe groups of checkable
// ingredients, persisted to disk on every mutation.
package list

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bendaprile/recifree-cli/internal/recipes"
	"github.com/google/uuid"
)

// Item is one ingredient on the shopping list. The ID is assigned when the
// ingredient is added and is the identity used for toggling and removal.
type Item struct {
	ID      string `json:"id"`
	Item    string `json:"item"`
	Amount  string `json:"amount,omitempty"`
	Unit    string `json:"unit,omitempty"`
	Checked bool   `json:"checked"`
}

// RecipeGroup is the set of list items contributed by one recipe. The store
// keeps at most one group per recipe id and never persists an empty group.
type RecipeGroup struct {
	RecipeID    string    `json:"recipeId"`
	RecipeTitle string    `json:"recipeTitle"`
	AddedAt     time.Time `json:"addedAt"`
	Ingredients []Item    `json:"ingredients"`
}

// Store is the shopping-list state container. It is the sole writer of its
// groups; construct one per session with New and share it.
type Store struct {
	persister Persister
	warn      io.Writer
	groups    []RecipeGroup
	now       func() time.Time
}

// New builds a store and loads persisted state. Load failures degrade to an
// empty in-memory list with a warning on warn (stderr if nil); they never
// fail construction.
func New(p Persister, warn io.Writer) *Store {
	if warn == nil {
		warn = os.Stderr
	}
	s := &Store{
		persister: p,
		warn:      warn,
		now:       time.Now,
	}

	groups, err := p.Load()
	if err != nil {
		fmt.Fprintf(warn, "warning: could not load shopping list, starting empty: %v\n", err)
		groups = nil
	}
	s.groups = groups
	return s
}

// Groups returns a snapshot of the current recipe groups.
func (s *Store) Groups() []RecipeGroup {
	out := make([]RecipeGroup, len(s.groups))
	copy(out, s.groups)
	return out
}

// ItemCount returns the total number of items across all groups.
func (s *Store) ItemCount() int {
	total := 0
	for _, g := range s.groups {
		total += len(g.Ingredients)
	}
	return total
}

// AddRecipe flattens the recipe's ingredients onto the list, each with a
// fresh id and unchecked. Re-adding a recipe appends to its existing group;
// duplicate ingredients are expected and merged later by aggregation, not
// here. A recipe with no ingredients adds nothing and creates no group.
// Returns the number of items added.
func (s *Store) AddRecipe(r recipes.Recipe) int {
	flat := r.Ingredients.Flatten()
	if len(flat) == 0 {
		return 0
	}

	added := make([]Item, 0, len(flat))
	for _, ing := range flat {
		added = append(added, Item{
			ID:     uuid.NewString(),
			Item:   ing.Item,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	if idx := s.groupIndex(r.ID); idx >= 0 {
		s.groups[idx].Ingredients = append(s.groups[idx].Ingredients, added...)
	} else {
		s.groups = append(s.groups, RecipeGroup{
			RecipeID:    r.ID,
			RecipeTitle: r.Title,
			AddedAt:     s.now(),
			Ingredients: added,
		})
	}

	s.save()
	return len(added)
}

// RemoveItem removes one item by id from the given recipe's group, dropping
// the group if it empties. Unknown ids are a no-op. Reports whether an item
// was removed.
func (s *Store) RemoveItem(recipeID, itemID string) bool {
	idx := s.groupIndex(recipeID)
	if idx < 0 {
		return false
	}

	group := &s.groups[idx]
	for i, item := range group.Ingredients {
		if item.ID != itemID {
			continue
		}
		group.Ingredients = append(group.Ingredients[:i], group.Ingredients[i+1:]...)
		if len(group.Ingredients) == 0 {
			s.groups = append(s.groups[:idx], s.groups[idx+1:]...)
		}
		s.save()
		return true
	}
	return false
}

// RemoveRecipe removes a recipe's entire group. Reports whether it existed.
func (s *Store) RemoveRecipe(recipeID string) bool {
	idx := s.groupIndex(recipeID)
	if idx < 0 {
		return false
	}
	s.groups = append(s.groups[:idx], s.groups[idx+1:]...)
	s.save()
	return true
}

// ToggleItem flips the checked state of one item. Unknown ids are a no-op.
// Reports whether an item was toggled.
func (s *Store) ToggleItem(recipeID, itemID string) bool {
	idx := s.groupIndex(recipeID)
	if idx < 0 {
		return false
	}

	for i, item := range s.groups[idx].Ingredients {
		if item.ID == itemID {
			s.groups[idx].Ingredients[i].Checked = !item.Checked
			s.save()
			return true
		}
	}
	return false
}

// ClearList empties the whole list.
func (s *Store) ClearList() {
	s.groups = nil
	s.save()
}

// ClearChecked removes every checked item, dropping groups that empty.
// Returns the number of items removed.
func (s *Store) ClearChecked() int {
	removed := 0
	kept := s.groups[:0]
	for _, g := range s.groups {
		remaining := make([]Item, 0, len(g.Ingredients))
		for _, item := range g.Ingredients {
			if item.Checked {
				removed++
				continue
			}
			remaining = append(remaining, item)
		}
		if len(remaining) > 0 {
			g.Ingredients = remaining
			kept = append(kept, g)
		}
	}
	s.groups = kept

	if removed > 0 {
		s.save()
	}
	return removed
}

func (s *Store) groupIndex(recipeID string) int {
	for i, g := range s.groups {
		if g.RecipeID == recipeID {
			return i
		}
	}
	return -1
}

func (s *Store) save() {
	if err := s.persister.Save(s.groups); err != nil {
		fmt.Fprintf(s.warn, "warning: could not save shopping list: %v\n", err)
	}
}
