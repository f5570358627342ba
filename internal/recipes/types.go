// Package recipes holds the bundled recipe catalog. Recipe data ships inside
// the binary; the catalog is read-only input for the shopping list.
package recipes

import "encoding/json"

// Ingredient is one raw ingredient line as authored in a recipe.
type Ingredient struct {
	Item   string `json:"item"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// Section is a named group of ingredients ("For the sauce", ...).
type Section struct {
	Title string       `json:"title"`
	Items []Ingredient `json:"items"`
}

// Ingredients is a tagged variant: recipes author their ingredients either as
// a flat list or as named sections. The shape is decided once at decode time
// by probing the first element for an "items" field; consumers go through
// Flatten and never re-probe.
type Ingredients struct {
	Flat     []Ingredient
	Sections []Section
}

// Sectioned reports whether the recipe uses named ingredient sections.
func (ing Ingredients) Sectioned() bool {
	return len(ing.Sections) > 0
}

// Flatten returns all ingredients in authoring order regardless of shape.
func (ing Ingredients) Flatten() []Ingredient {
	if !ing.Sectioned() {
		return ing.Flat
	}
	var out []Ingredient
	for _, sec := range ing.Sections {
		out = append(out, sec.Items...)
	}
	return out
}

// UnmarshalJSON decodes either shape.
func (ing *Ingredients) UnmarshalJSON(data []byte) error {
	var probe []struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	if len(probe) > 0 && probe[0].Items != nil {
		ing.Flat = nil
		return json.Unmarshal(data, &ing.Sections)
	}
	ing.Sections = nil
	return json.Unmarshal(data, &ing.Flat)
}

// MarshalJSON re-encodes the shape the recipe was authored in.
func (ing Ingredients) MarshalJSON() ([]byte, error) {
	if ing.Sectioned() {
		return json.Marshal(ing.Sections)
	}
	if ing.Flat == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(ing.Flat)
}

// Recipe is one catalog entry.
type Recipe struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Servings    int         `json:"servings,omitempty"`
	PrepTime    string      `json:"prepTime,omitempty"`
	CookTime    string      `json:"cookTime,omitempty"`
	Ingredients Ingredients `json:"ingredients"`
	Steps       []string    `json:"steps,omitempty"`
}
