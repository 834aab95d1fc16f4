// Package theme holds the cosmetic theme catalog: per-category display
// name overrides, phrase pools, manager's-note tables, and terminal
// palettes. Themes never affect counts or the event log.
package theme

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
)

// DefaultPhrase is returned when no pool exists for a category and the
// theme has no default pool either.
const DefaultPhrase = "Event recorded!"

// ensurePhrase seeds the pool for a brand-new category when the theme
// lacks a default pool to copy.
const ensurePhrase = "Event added."

// Palette maps a theme onto terminal colors.
type Palette struct {
	Title  []color.Attribute
	Accent []color.Attribute
	Faint  []color.Attribute
}

// Definition is one theme: display name plus its lookup tables.
type Definition struct {
	Name          string
	Palette       Palette
	CategoryNames map[string]string
	Phrases       map[string][]string
	Notes         map[string]string
	NoteFormat    string
}

// Catalog is the two-level themeId -> categoryId mapping. Intn supplies
// the randomness for phrase picking and can be replaced in tests.
type Catalog struct {
	themes map[string]*Definition
	order  []string

	Intn func(n int) int
}

// NewCatalog returns the built-in themes.
func NewCatalog() *Catalog {
	c := &Catalog{
		themes: make(map[string]*Definition),
		Intn:   rand.Intn,
	}
	for _, b := range builtin() {
		c.themes[b.id] = b.def
		c.order = append(c.order, b.id)
	}
	return c
}

// Has reports whether the theme id exists.
func (c *Catalog) Has(themeID string) bool {
	_, ok := c.themes[themeID]
	return ok
}

// IDs returns the theme ids in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Definition returns the theme definition, or nil for unknown ids.
func (c *Catalog) Definition(themeID string) *Definition {
	return c.themes[themeID]
}

// PaletteFor returns the theme's palette, falling back to a plain one.
func (c *Catalog) PaletteFor(themeID string) Palette {
	if d := c.themes[themeID]; d != nil {
		return d.Palette
	}
	return Palette{
		Title:  []color.Attribute{color.Bold, color.Underline},
		Accent: []color.Attribute{color.FgHiWhite},
		Faint:  []color.Attribute{color.Faint},
	}
}

// DisplayName resolves a category's display name: the theme override when
// present, else the provided fallback.
func (c *Catalog) DisplayName(themeID, categoryID, fallback string) string {
	if d := c.themes[themeID]; d != nil {
		if name, ok := d.CategoryNames[categoryID]; ok && name != "" {
			return name
		}
	}
	return fallback
}

// PickPhrase returns a random phrase from the theme's pool for the
// category, falling back to the theme's default pool, then to a fixed
// string. Purely decorative.
func (c *Catalog) PickPhrase(themeID, categoryID string) string {
	d := c.themes[themeID]
	if d == nil {
		return DefaultPhrase
	}
	if pool := d.Phrases[categoryID]; len(pool) > 0 {
		return pool[c.Intn(len(pool))]
	}
	if pool := d.Phrases["default"]; len(pool) > 0 {
		return pool[c.Intn(len(pool))]
	}
	return DefaultPhrase
}

// Ensure backfills every theme's name and phrase tables for a category so
// later lookups never miss. Called once when a category is created.
func (c *Catalog) Ensure(categoryID, name string) {
	for _, d := range c.themes {
		if d.CategoryNames == nil {
			d.CategoryNames = make(map[string]string)
		}
		if d.Phrases == nil {
			d.Phrases = make(map[string][]string)
		}
		if _, ok := d.CategoryNames[categoryID]; !ok {
			d.CategoryNames[categoryID] = name
		}
		if _, ok := d.Phrases[categoryID]; !ok {
			if pool := d.Phrases["default"]; len(pool) > 0 {
				d.Phrases[categoryID] = append([]string(nil), pool...)
			} else {
				d.Phrases[categoryID] = []string{ensurePhrase}
			}
		}
	}
}

// Note returns the themed manager's note for the most-active category.
// mostActiveID is empty when no activity was recorded today.
func (c *Catalog) Note(themeID, mostActiveID, displayName string) string {
	if mostActiveID == "" {
		return "No activity recorded today."
	}
	d := c.themes[themeID]
	if d == nil {
		return "High activity in " + displayName + " today!"
	}
	if note, ok := d.Notes[mostActiveID]; ok {
		return note
	}
	format := d.NoteFormat
	if format == "" {
		format = "High activity in %s today!"
	}
	return fmt.Sprintf(format, displayName)
}
