package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/quirk/pkg/state"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func newTestPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	return p
}

func TestLoadFirstRun(t *testing.T) {
	p := newTestPersistence(t)

	_, err := p.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() on empty store = %v, want ErrNotFound", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()

	stamp := state.Timestamp{Time: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
	in := state.New()
	in.Theme = "neon-nexus"
	in.LastResetDate = "2026-03-14"
	in.Category("coffee").Count = 2
	in.Events = append(in.Events, &state.Event{
		Timestamp:  stamp,
		CategoryID: "coffee",
		Phrase:     "Caffeine dragon feeds!",
	})
	in.Todos = append(in.Todos, &state.Todo{
		ID: "abc", Text: "water the plants", Status: state.StatusInProgress, CreatedAt: stamp,
	})
	in.Reminders = append(in.Reminders, &state.Reminder{
		CategoryID: "coffee", Time: "09:30", Enabled: true, LastTriggered: &stamp,
	})

	if err := p.Save(ctx, in); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	out, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if out.Theme != "neon-nexus" || out.LastResetDate != "2026-03-14" {
		t.Errorf("round trip lost scalars: theme=%q reset=%q", out.Theme, out.LastResetDate)
	}
	if got := out.Category("coffee"); got == nil || got.Count != 2 {
		t.Errorf("coffee = %+v, want Count=2", got)
	}
	if len(out.Events) != 1 || out.Events[0].Phrase != "Caffeine dragon feeds!" {
		t.Errorf("events = %+v", out.Events)
	}
	if !out.Events[0].Timestamp.Time.Equal(stamp.Time) {
		t.Errorf("timestamp = %v, want %v", out.Events[0].Timestamp, stamp)
	}
	if len(out.Todos) != 1 || out.Todos[0].Status != state.StatusInProgress {
		t.Errorf("todos = %+v", out.Todos)
	}
	r := out.Reminder("coffee")
	if r == nil || r.LastTriggered == nil || !r.LastTriggered.Time.Equal(stamp.Time) {
		t.Errorf("reminder = %+v", r)
	}
}

func TestLoadCorruptBlob(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, stateKey), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	_, err = p.Load(context.Background())
	if !errors.Is(err, ErrCorruptState) {
		t.Errorf("Load() on corrupt blob = %v, want ErrCorruptState", err)
	}
}

func TestLoadPartialBlobNormalizes(t *testing.T) {
	dir := t.TempDir()
	blob := []byte(`{"theme":"ruby-sea"}`)
	if err := os.WriteFile(filepath.Join(dir, stateKey), blob, 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	s, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if s.Theme != "ruby-sea" {
		t.Errorf("Theme = %q, want ruby-sea", s.Theme)
	}
	if s.Categories == nil || len(s.Categories) != 5 {
		t.Errorf("Categories = %v, want defaults backfilled", s.Categories)
	}
	if s.Events == nil || s.Todos == nil || s.Reminders == nil {
		t.Error("Normalize left nil collections")
	}
	if s.LastResetDate != "" {
		t.Errorf("LastResetDate = %q, want empty to force reconciliation", s.LastResetDate)
	}
}

func TestSaveOverwrites(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()

	first := state.New()
	first.Theme = "forest-grove"
	if err := p.Save(ctx, first); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	second := state.New()
	second.Theme = "ruby-sea"
	if err := p.Save(ctx, second); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	out, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if out.Theme != "ruby-sea" {
		t.Errorf("Theme = %q, want the second write", out.Theme)
	}
}
