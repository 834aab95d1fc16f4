// Package app owns the application state and every mutation against it.
// A Service hydrates state from persistence, reconciles the day rollover,
// and applies operations that keep the category counts paired with the
// event log. Saves are best-effort: a failed write is reported on stderr
// and never rolls a mutation back.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"tableflip.dev/quirk/pkg/state"
	"tableflip.dev/quirk/pkg/store"
	"tableflip.dev/quirk/pkg/theme"
	"tableflip.dev/quirk/pkg/timeutil"
)

// Service provides high-level operations over the single application
// state. Now is injectable so tests can pin the clock.
type Service struct {
	Persistence store.Persistence
	Catalog     *theme.Catalog
	Now         func() time.Time

	State *state.State
}

// New builds a Service around the given persistence.
func New(p store.Persistence) *Service {
	return &Service{
		Persistence: p,
		Catalog:     theme.NewCatalog(),
		Now:         time.Now,
	}
}

// Hydrate loads the saved state (or defaults on first run / corruption),
// backfills theme tables for stored categories, and reconciles the day
// rollover. Must be called before any operation.
func (s *Service) Hydrate(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}

	st, err := s.Persistence.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		st = state.New()
	case errors.Is(err, store.ErrCorruptState):
		fmt.Fprintf(os.Stderr, "quirk: %v, starting from defaults\n", err)
		st = state.New()
	default:
		return err
	}

	s.State = st
	for _, c := range st.Categories {
		s.Catalog.Ensure(c.ID, c.Name)
	}
	if s.Reconcile() {
		s.save(ctx)
	}
	return nil
}

// Reconcile zeroes every category count and rebuilds it from today's
// events when the stored last-reset date is not today. The event log is
// the source of truth; the counts are a cache. Idempotent within a day.
// Reports whether a rollover happened.
func (s *Service) Reconcile() bool {
	today := timeutil.DayKey(s.Now())
	if s.State.LastResetDate == today {
		return false
	}

	for _, c := range s.State.Categories {
		c.Count = 0
	}
	for _, e := range s.State.Events {
		if !timeutil.SameDay(e.Timestamp.Time, s.Now()) {
			continue
		}
		// Dangling events for deleted categories are skipped.
		if c := s.State.Category(e.CategoryID); c != nil {
			c.Count++
		}
	}
	s.State.LastResetDate = today
	return true
}

// Increment bumps a category's count and appends a matching event,
// creating the category on the fly when it does not exist. Returns the
// decorative phrase recorded on the event. Never fails.
func (s *Service) Increment(ctx context.Context, categoryID string) string {
	c := s.State.Category(categoryID)
	if c == nil {
		c = &state.Category{ID: categoryID, Name: categoryID}
		s.State.Categories = append(s.State.Categories, c)
		s.Catalog.Ensure(categoryID, categoryID)
	}
	c.Count++

	phrase := s.Catalog.PickPhrase(s.State.Theme, categoryID)
	s.State.Events = append(s.State.Events, &state.Event{
		Timestamp:  state.Timestamp{Time: s.Now()},
		CategoryID: categoryID,
		Phrase:     phrase,
	})

	s.save(ctx)
	return phrase
}

// Decrement undoes the most recent event for a category. Returns a
// confirmation message, or false when the category is missing or already
// at zero.
func (s *Service) Decrement(ctx context.Context, categoryID string) (string, bool) {
	c := s.State.Category(categoryID)
	if c == nil || c.Count == 0 {
		return "", false
	}
	c.Count--

	// Remove the newest event for this category, scanning from the tail.
	// Finding none means the log drifted from the cache; tolerate it.
	for i := len(s.State.Events) - 1; i >= 0; i-- {
		if s.State.Events[i].CategoryID == categoryID {
			s.State.Events = append(s.State.Events[:i], s.State.Events[i+1:]...)
			break
		}
	}

	s.save(ctx)
	return fmt.Sprintf("Removed: %s entry", s.DisplayName(categoryID)), true
}

// AddCategory creates a category after validating its id and name. The
// id is folded to lowercase before the format check.
func (s *Service) AddCategory(ctx context.Context, id, name string) error {
	id = strings.ToLower(strings.TrimSpace(id))
	name = strings.TrimSpace(name)
	if id == "" {
		return &state.ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if name == "" {
		return &state.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !state.ValidCategoryID(id) {
		return &state.ValidationError{Field: "id", Reason: "use lowercase letters, numbers, - or _"}
	}
	if s.State.Category(id) != nil {
		return &state.ValidationError{Field: "id", Reason: fmt.Sprintf("%q already exists", id)}
	}

	s.State.Categories = append(s.State.Categories, &state.Category{ID: id, Name: name})
	s.Catalog.Ensure(id, name)
	s.save(ctx)
	return nil
}

// DeleteCategory removes a category, cascading to every event and the
// reminder that reference it. No-op when the id is unknown.
func (s *Service) DeleteCategory(ctx context.Context, id string) bool {
	if s.State.Category(id) == nil {
		return false
	}

	categories := s.State.Categories[:0]
	for _, c := range s.State.Categories {
		if c.ID != id {
			categories = append(categories, c)
		}
	}
	s.State.Categories = categories

	events := s.State.Events[:0]
	for _, e := range s.State.Events {
		if e.CategoryID != id {
			events = append(events, e)
		}
	}
	s.State.Events = events

	reminders := s.State.Reminders[:0]
	for _, r := range s.State.Reminders {
		if r.CategoryID != id {
			reminders = append(reminders, r)
		}
	}
	s.State.Reminders = reminders

	s.save(ctx)
	return true
}

// SetTheme switches the active theme.
func (s *Service) SetTheme(ctx context.Context, themeID string) error {
	if !s.Catalog.Has(themeID) {
		return &state.ValidationError{Field: "theme", Reason: fmt.Sprintf("unknown theme %q", themeID)}
	}
	s.State.Theme = themeID
	s.save(ctx)
	return nil
}

// DisplayName resolves a category's display name under the active theme.
func (s *Service) DisplayName(categoryID string) string {
	fallback := categoryID
	if c := s.State.Category(categoryID); c != nil {
		fallback = c.Name
	}
	return s.Catalog.DisplayName(s.State.Theme, categoryID, fallback)
}

// save persists the full state. Failure is diagnostic only; the
// in-memory state stays authoritative for the session.
func (s *Service) save(ctx context.Context) {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.Save(ctx, s.State); err != nil {
		fmt.Fprintf(os.Stderr, "quirk: state not saved: %v\n", err)
	}
}
