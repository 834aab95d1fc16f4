package theme

import (
	"testing"
)

func TestCatalogBuiltins(t *testing.T) {
	c := NewCatalog()

	want := []string{"dragon-dynasty", "neon-nexus", "forest-grove", "ruby-sea"}
	got := c.IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, got[i], want[i])
		}
		if !c.Has(want[i]) {
			t.Errorf("Has(%q) = false", want[i])
		}
		if c.Definition(want[i]) == nil {
			t.Errorf("Definition(%q) = nil", want[i])
		}
	}
	if c.Has("vaporwave") {
		t.Error("Has(vaporwave) = true")
	}
}

func TestDisplayName(t *testing.T) {
	c := NewCatalog()

	if got := c.DisplayName("neon-nexus", "coffee", "Coffee Consumed"); got == "Coffee Consumed" {
		t.Errorf("DisplayName() = %q, want the theme override", got)
	}
	if got := c.DisplayName("neon-nexus", "unknown-cat", "Fallback"); got != "Fallback" {
		t.Errorf("DisplayName() = %q, want fallback for unknown category", got)
	}
	if got := c.DisplayName("vaporwave", "coffee", "Fallback"); got != "Fallback" {
		t.Errorf("DisplayName() = %q, want fallback for unknown theme", got)
	}
}

func TestPickPhrase(t *testing.T) {
	c := NewCatalog()
	c.Intn = func(n int) int { return 0 } // deterministic

	d := c.Definition("dragon-dynasty")
	if got, want := c.PickPhrase("dragon-dynasty", "coffee"), d.Phrases["coffee"][0]; got != want {
		t.Errorf("PickPhrase() = %q, want %q", got, want)
	}

	// Unknown category falls back to the theme's default pool.
	if got, want := c.PickPhrase("dragon-dynasty", "unknown-cat"), d.Phrases["default"][0]; got != want {
		t.Errorf("PickPhrase(unknown category) = %q, want %q", got, want)
	}

	// Unknown theme falls back to the fixed phrase.
	if got := c.PickPhrase("vaporwave", "coffee"); got != DefaultPhrase {
		t.Errorf("PickPhrase(unknown theme) = %q, want %q", got, DefaultPhrase)
	}
}

func TestEnsureBackfillsEveryTheme(t *testing.T) {
	c := NewCatalog()
	c.Intn = func(n int) int { return 0 }

	c.Ensure("tea", "Cups of Tea")

	for _, id := range c.IDs() {
		d := c.Definition(id)
		if got := d.CategoryNames["tea"]; got != "Cups of Tea" {
			t.Errorf("%s CategoryNames[tea] = %q", id, got)
		}
		if len(d.Phrases["tea"]) == 0 {
			t.Errorf("%s has no phrase pool for tea", id)
		}
	}
	if got := c.PickPhrase("neon-nexus", "tea"); got == DefaultPhrase {
		t.Errorf("PickPhrase after Ensure = %q, want a pool phrase", got)
	}

	// Ensure never clobbers an existing entry.
	c.Ensure("coffee", "Renamed")
	if got := c.Definition("dragon-dynasty").CategoryNames["coffee"]; got == "Renamed" {
		t.Error("Ensure overwrote an existing category name")
	}
}

func TestNote(t *testing.T) {
	c := NewCatalog()

	if got, want := c.Note("dragon-dynasty", "", ""), "No activity recorded today."; got != want {
		t.Errorf("Note(no activity) = %q, want %q", got, want)
	}

	d := c.Definition("dragon-dynasty")
	if got, want := c.Note("dragon-dynasty", "coffee", "Coffee"), d.Notes["coffee"]; got != want {
		t.Errorf("Note() = %q, want themed note %q", got, want)
	}

	// No per-category note: the theme's format string applies.
	got := c.Note("forest-grove", "tea", "Cups of Tea")
	if got == "" || got == "No activity recorded today." {
		t.Errorf("Note(formatted) = %q", got)
	}
}

func TestPaletteFor(t *testing.T) {
	c := NewCatalog()

	p := c.PaletteFor("vaporwave")
	if len(p.Title) == 0 || len(p.Accent) == 0 {
		t.Error("PaletteFor(unknown) returned an empty fallback palette")
	}
	if got := c.PaletteFor("neon-nexus"); len(got.Accent) == 0 {
		t.Error("PaletteFor(neon-nexus) has no accent")
	}
}
