package recipes

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog is the read-only set of bundled recipes.
type Catalog struct {
	recipes []Recipe
	byID    map[string]int
}

// Load parses every bundled recipe file, sorted by id for stable listing.
func Load() (*Catalog, error) {
	return loadFrom(dataFS, "data")
}

func loadFrom(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.Glob(fsys, dir+"/*.json")
	if err != nil {
		return nil, fmt.Errorf("globbing recipe data: %w", err)
	}

	c := &Catalog{byID: make(map[string]int, len(entries))}
	for _, path := range entries {
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var r Recipe
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if r.ID == "" || r.Title == "" {
			return nil, fmt.Errorf("recipe %s is missing id or title", path)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %q in %s", r.ID, path)
		}
		c.recipes = append(c.recipes, r)
		c.byID[r.ID] = 0 // reindexed after sort
	}

	sort.Slice(c.recipes, func(i, j int) bool { return c.recipes[i].ID < c.recipes[j].ID })
	for i, r := range c.recipes {
		c.byID[r.ID] = i
	}
	return c, nil
}

// Len returns the number of recipes in the catalog.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// All returns every recipe in id order.
func (c *Catalog) All() []Recipe {
	out := make([]Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// ByID looks a recipe up by its id.
func (c *Catalog) ByID(id string) (Recipe, bool) {
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Recipe{}, false
	}
	return c.recipes[idx], true
}

// Options holds catalog filter criteria.
type Options struct {
	Query string
	Tag   string
	Limit int
}

// Filter applies the given options to the catalog in id order.
func (c *Catalog) Filter(opts Options) []Recipe {
	result := c.All()

	if opts.Query != "" {
		q := strings.ToLower(opts.Query)
		result = where(result, func(r Recipe) bool {
			if strings.Contains(strings.ToLower(r.Title), q) ||
				strings.Contains(strings.ToLower(r.Description), q) {
				return true
			}
			for _, tag := range r.Tags {
				if strings.Contains(strings.ToLower(tag), q) {
					return true
				}
			}
			return false
		})
	}

	if opts.Tag != "" {
		result = where(result, func(r Recipe) bool {
			return containsIgnoreCase(r.Tags, opts.Tag)
		})
	}

	if opts.Limit > 0 && opts.Limit < len(result) {
		result = result[:opts.Limit]
	}

	return result
}

func where(recipes []Recipe, fn func(Recipe) bool) []Recipe {
	var result []Recipe
	for _, r := range recipes {
		if fn(r) {
			result = append(result, r)
		}
	}
	return result
}

func containsIgnoreCase(slice []string, val string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, val) {
			return true
		}
	}
	return false
}
